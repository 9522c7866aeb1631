// Package repository implements the unit of work on gorm. All repositories
// handed out by a UoW share one session, so every write inside Do commits or
// rolls back together.
package repository

import (
	"context"

	cardrepo "github.com/bankinc/cardledger/infra/repository/card"
	txrepo "github.com/bankinc/cardledger/infra/repository/transaction"
	userrepo "github.com/bankinc/cardledger/infra/repository/user"
	"github.com/bankinc/cardledger/pkg/repository"
	"gorm.io/gorm"
)

// UoW provides the transaction boundary and session-bound repository access.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a UoW over the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs fn inside a database transaction. The UoW passed to fn hands out
// repositories bound to that transaction; any error from fn rolls every
// write back.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

// session is the transaction when inside Do, the base connection otherwise.
func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// Cards returns a card repository bound to the current session.
func (u *UoW) Cards() repository.CardRepository {
	return cardrepo.New(u.session())
}

// Transactions returns a transaction repository bound to the current session.
func (u *UoW) Transactions() repository.TransactionRepository {
	return txrepo.New(u.session())
}

// Users returns a user repository bound to the current session.
func (u *UoW) Users() repository.UserRepository {
	return userrepo.New(u.session())
}
