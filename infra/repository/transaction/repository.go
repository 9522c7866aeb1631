// Package transaction implements the transaction repository on gorm.
package transaction

import (
	"context"
	"errors"

	"github.com/bankinc/cardledger/pkg/domain/transaction"
	"github.com/bankinc/cardledger/pkg/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct {
	db *gorm.DB
}

// New creates a transaction repository bound to the given gorm session.
func New(db *gorm.DB) repository.TransactionRepository {
	return &repo{db: db}
}

// FindByTransactionID implements repository.TransactionRepository. Absence is (nil, nil).
func (r *repo) FindByTransactionID(ctx context.Context, transactionID string) (*transaction.Transaction, error) {
	var m Transaction
	err := r.db.WithContext(ctx).First(&m, "transaction_id = ?", transactionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toEntity(&m), nil
}

// Save implements repository.TransactionRepository as an upsert keyed on
// transaction_id. Only the status can legitimately change after creation.
func (r *repo) Save(ctx context.Context, t *transaction.Transaction) error {
	m := toModel(t)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "transaction_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(&m).Error
}
