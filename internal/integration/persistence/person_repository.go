package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	"github.com/pocket-ledger/backend/internal/integration/persistence/model"
)

// personRepository implements the adapter.PersonRepository interface.
type personRepository struct {
	db *gorm.DB
}

// NewPersonRepository creates a new person repository instance.
func NewPersonRepository(db *gorm.DB) adapter.PersonRepository {
	return &personRepository{
		db: db,
	}
}

// FindAll retrieves all people ordered by name.
func (r *personRepository) FindAll(ctx context.Context) ([]*entity.Person, error) {
	var personModels []model.PersonModel
	result := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&personModels)
	if result.Error != nil {
		return nil, result.Error
	}

	people := make([]*entity.Person, len(personModels))
	for i, pm := range personModels {
		people[i] = pm.ToEntity()
	}
	return people, nil
}
