package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// PersonModel represents the people table in the database.
type PersonModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the PersonModel.
func (PersonModel) TableName() string {
	return "people"
}

// ToEntity converts a PersonModel to a domain Person entity.
func (m *PersonModel) ToEntity() *entity.Person {
	return &entity.Person{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}

// PersonFromEntity creates a PersonModel from a domain Person entity.
func PersonFromEntity(person *entity.Person) *PersonModel {
	return &PersonModel{
		ID:        person.ID,
		Name:      person.Name,
		CreatedAt: person.CreatedAt,
	}
}
