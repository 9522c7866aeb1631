package transaction

import (
	"time"

	"github.com/bankinc/cardledger/pkg/domain/transaction"
	"github.com/shopspring/decimal"
)

// Transaction is the database record for a purchase. The card is referenced
// by its natural key, mirroring the card table's unique card_id column.
type Transaction struct {
	ID              uint            `gorm:"primaryKey"`
	TransactionID   string          `gorm:"type:varchar(36);uniqueIndex;not null"`
	CardID          string          `gorm:"type:varchar(16);index;not null"`
	Price           decimal.Decimal `gorm:"type:numeric(19,4)"`
	TransactionDate time.Time
	Status          string `gorm:"type:varchar(16);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}

func toModel(t *transaction.Transaction) Transaction {
	return Transaction{
		TransactionID:   t.TransactionID,
		CardID:          t.CardID,
		Price:           t.Price,
		TransactionDate: t.TransactionDate,
		Status:          string(t.Status),
	}
}

func toEntity(m *Transaction) *transaction.Transaction {
	return &transaction.Transaction{
		TransactionID:   m.TransactionID,
		CardID:          m.CardID,
		Price:           m.Price,
		TransactionDate: m.TransactionDate,
		Status:          transaction.Status(m.Status),
	}
}
