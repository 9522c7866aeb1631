// Package transaction defines the purchase Transaction entity and its
// annulment state machine: COMPLETED -> ANNULLED, terminal, only within the
// 24-hour reversal window.
package transaction

import (
	"time"

	"github.com/bankinc/cardledger/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AnnulmentWindow is how long after the purchase a transaction may be annulled.
const AnnulmentWindow = 24 * time.Hour

// Status is the lifecycle state of a transaction.
type Status string

const (
	StatusCompleted Status = "COMPLETED"
	StatusAnnulled  Status = "ANNULLED"
)

// Transaction records a single purchase debit against a card. It references
// the card by its 16-character natural key; surrogate storage keys never
// surface here.
type Transaction struct {
	TransactionID   string
	CardID          string
	Price           decimal.Decimal
	TransactionDate time.Time
	Status          Status
}

// New creates a COMPLETED transaction with a fresh random UUID identifier.
func New(cardID string, price decimal.Decimal, at time.Time) *Transaction {
	return &Transaction{
		TransactionID:   uuid.NewString(),
		CardID:          cardID,
		Price:           price,
		TransactionDate: at,
		Status:          StatusCompleted,
	}
}

// AnnulDeadline is the last instant at which the transaction may be annulled.
func (t *Transaction) AnnulDeadline() time.Time {
	return t.TransactionDate.Add(AnnulmentWindow)
}

// Annul transitions the transaction to ANNULLED. It fails if the transaction
// was already annulled or the reversal window has closed; on failure the
// status is left untouched.
func (t *Transaction) Annul(now time.Time) error {
	if t.Status == StatusAnnulled {
		return domain.ErrTransactionAlreadyAnnulled
	}
	if now.After(t.AnnulDeadline()) {
		return domain.ErrTransactionExpired
	}
	t.Status = StatusAnnulled
	return nil
}
