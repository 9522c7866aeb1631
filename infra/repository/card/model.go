package card

import (
	"time"

	"github.com/bankinc/cardledger/pkg/domain/card"
	"github.com/shopspring/decimal"
)

// Card is the database record for a prepaid card. The surrogate ID stays
// internal; callers only ever see the 16-character CardID natural key.
type Card struct {
	ID             uint   `gorm:"primaryKey"`
	CardID         string `gorm:"type:varchar(16);uniqueIndex;not null"`
	ProductID      string `gorm:"type:varchar(6);not null"`
	HolderName     string
	ExpirationDate time.Time
	Balance        decimal.Decimal `gorm:"type:numeric(19,4)"`
	Active         bool
	Blocked        bool
	Owner          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for the Card model.
func (Card) TableName() string {
	return "cards"
}

func toModel(c *card.Card) Card {
	return Card{
		CardID:         c.CardID,
		ProductID:      c.ProductID,
		HolderName:     c.HolderName,
		ExpirationDate: c.ExpirationDate,
		Balance:        c.Balance,
		Active:         c.Active,
		Blocked:        c.Blocked,
		Owner:          c.Owner,
		CreatedAt:      c.CreatedAt,
	}
}

func toEntity(m *Card) *card.Card {
	return &card.Card{
		CardID:         m.CardID,
		ProductID:      m.ProductID,
		HolderName:     m.HolderName,
		ExpirationDate: m.ExpirationDate,
		Balance:        m.Balance,
		Active:         m.Active,
		Blocked:        m.Blocked,
		Owner:          m.Owner,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
