package repository

import "context"

// UnitOfWork is the scoped atomic unit every multi-write operation runs in.
//
// Do executes fn inside a transaction boundary; if fn returns an error, every
// write made through the repositories of the UnitOfWork it received is rolled
// back. This is what keeps a debit and its transaction insert (or a credit
// and its status update) atomic, and what serializes read-modify-write
// sequences on the same card.
//
// The repository accessors are bound to the current session: inside Do they
// share the transaction, outside Do they read through the base session.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	Cards() CardRepository
	Transactions() TransactionRepository
	Users() UserRepository
}
