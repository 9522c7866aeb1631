// Package card implements the card repository on gorm.
package card

import (
	"context"
	"errors"

	"github.com/bankinc/cardledger/pkg/domain/card"
	"github.com/bankinc/cardledger/pkg/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct {
	db *gorm.DB
}

// New creates a card repository bound to the given gorm session.
func New(db *gorm.DB) repository.CardRepository {
	return &repo{db: db}
}

// FindByCardID implements repository.CardRepository. Absence is (nil, nil).
func (r *repo) FindByCardID(ctx context.Context, cardID string) (*card.Card, error) {
	var m Card
	err := r.db.WithContext(ctx).First(&m, "card_id = ?", cardID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toEntity(&m), nil
}

// Save implements repository.CardRepository as an upsert keyed on card_id.
func (r *repo) Save(ctx context.Context, c *card.Card) error {
	m := toModel(c)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "card_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"holder_name", "balance", "active", "blocked", "updated_at",
		}),
	}).Create(&m).Error
}
