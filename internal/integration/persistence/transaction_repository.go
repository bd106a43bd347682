// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	return r.db.WithContext(ctx).Create(model.TransactionFromEntity(txn)).Error
}

func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var row model.TransactionModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found: "+id.String(),
			domainerror.ErrTransactionNotFound,
		)
	}
	if err != nil {
		return nil, err
	}
	return row.ToEntity(), nil
}

// FindAll retrieves the entire collection in stable insertion order. Filtering
// and sorting happen in the use case layer, so the query stays a plain scan.
func (r *transactionRepository) FindAll(ctx context.Context) ([]*entity.Transaction, error) {
	var rows []model.TransactionModel
	err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	txns := make([]*entity.Transaction, len(rows))
	for i := range rows {
		txns[i] = rows[i].ToEntity()
	}
	return txns, nil
}

func (r *transactionRepository) Update(ctx context.Context, txn *entity.Transaction) error {
	return r.db.WithContext(ctx).Save(model.TransactionFromEntity(txn)).Error
}

func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.TransactionModel{}, "id = ?", id).Error
}

// BulkDelete removes the given ids in one transaction and reports how many
// rows actually existed.
func (r *transactionRepository) BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id IN ?", ids).Delete(&model.TransactionModel{})
		deleted = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
