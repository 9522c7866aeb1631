// Package repository defines the data-access contracts the services depend
// on. Lookups return (nil, nil) when no record exists: absence is a valid
// query outcome, and each service decides which error kind it maps to.
package repository

import (
	"context"

	"github.com/bankinc/cardledger/pkg/domain/card"
	"github.com/bankinc/cardledger/pkg/domain/transaction"
	"github.com/bankinc/cardledger/pkg/domain/user"
)

// CardRepository is keyed storage of Card records by their 16-character
// natural identifier.
type CardRepository interface {
	// FindByCardID returns the card or (nil, nil) when absent.
	FindByCardID(ctx context.Context, cardID string) (*card.Card, error)
	// Save upserts the card, enforcing card_id uniqueness.
	Save(ctx context.Context, c *card.Card) error
}

// TransactionRepository is keyed storage of Transaction records by their
// opaque identifier.
type TransactionRepository interface {
	// FindByTransactionID returns the transaction or (nil, nil) when absent.
	FindByTransactionID(ctx context.Context, transactionID string) (*transaction.Transaction, error)
	// Save upserts the transaction, enforcing transaction_id uniqueness.
	Save(ctx context.Context, t *transaction.Transaction) error
}

// UserRepository is keyed storage of API identities.
type UserRepository interface {
	// FindByUsername returns the user or (nil, nil) when absent.
	FindByUsername(ctx context.Context, username string) (*user.User, error)
	Create(ctx context.Context, u *user.User) error
}
