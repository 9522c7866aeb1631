package transaction_test

import (
	"testing"
	"time"

	"github.com/bankinc/cardledger/pkg/domain"
	"github.com/bankinc/cardledger/pkg/domain/transaction"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	at := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	price := decimal.RequireFromString("12.34")

	tx := transaction.New("1020300123456789", price, at)

	_, err := uuid.Parse(tx.TransactionID)
	require.NoError(t, err, "transaction id must be a UUID")
	assert.Equal(t, "1020300123456789", tx.CardID)
	assert.True(t, tx.Price.Equal(price))
	assert.Equal(t, at, tx.TransactionDate)
	assert.Equal(t, transaction.StatusCompleted, tx.Status)
}

func TestNew_UniqueIdentifiers(t *testing.T) {
	at := time.Now()
	a := transaction.New("1020300123456789", decimal.NewFromInt(1), at)
	b := transaction.New("1020300123456789", decimal.NewFromInt(1), at)
	assert.NotEqual(t, a.TransactionID, b.TransactionID)
}

func TestAnnul_WithinWindow(t *testing.T) {
	at := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	tx := transaction.New("1020300123456789", decimal.NewFromInt(5), at)

	require.NoError(t, tx.Annul(at.Add(23*time.Hour)))
	assert.Equal(t, transaction.StatusAnnulled, tx.Status)
}

func TestAnnul_AtDeadline(t *testing.T) {
	at := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	tx := transaction.New("1020300123456789", decimal.NewFromInt(5), at)

	// exactly 24 hours later is still inside the window
	require.NoError(t, tx.Annul(tx.AnnulDeadline()))
}

func TestAnnul_PastWindow(t *testing.T) {
	at := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	tx := transaction.New("1020300123456789", decimal.NewFromInt(5), at)

	err := tx.Annul(at.Add(24*time.Hour + time.Second))
	assert.ErrorIs(t, err, domain.ErrTransactionExpired)
	assert.Equal(t, transaction.StatusCompleted, tx.Status, "status must be unchanged")
}

func TestAnnul_Twice(t *testing.T) {
	at := time.Now()
	tx := transaction.New("1020300123456789", decimal.NewFromInt(5), at)

	require.NoError(t, tx.Annul(at.Add(time.Hour)))
	err := tx.Annul(at.Add(2 * time.Hour))
	assert.ErrorIs(t, err, domain.ErrTransactionAlreadyAnnulled)
	assert.Equal(t, transaction.StatusAnnulled, tx.Status)
}
