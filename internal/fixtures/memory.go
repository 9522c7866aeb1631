// Package fixtures provides in-memory test doubles for the repository
// contracts, plus deterministic randomness and clock helpers.
package fixtures

import (
	"context"
	"sync"

	"github.com/bankinc/cardledger/pkg/domain/card"
	"github.com/bankinc/cardledger/pkg/domain/transaction"
	"github.com/bankinc/cardledger/pkg/domain/user"
	"github.com/bankinc/cardledger/pkg/repository"
)

// MemoryUoW is a map-backed unit of work. Do simply runs fn against the same
// stores; it does not emulate rollback, so atomicity behavior is covered by
// the database-backed tests, not here.
type MemoryUoW struct {
	mu           sync.Mutex
	cards        map[string]card.Card
	transactions map[string]transaction.Transaction
	users        map[string]user.User
}

// NewMemoryUoW creates an empty in-memory unit of work.
func NewMemoryUoW() *MemoryUoW {
	return &MemoryUoW{
		cards:        make(map[string]card.Card),
		transactions: make(map[string]transaction.Transaction),
		users:        make(map[string]user.User),
	}
}

// Do implements repository.UnitOfWork.
func (m *MemoryUoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return fn(m)
}

// Cards implements repository.UnitOfWork.
func (m *MemoryUoW) Cards() repository.CardRepository { return memoryCards{m} }

// Transactions implements repository.UnitOfWork.
func (m *MemoryUoW) Transactions() repository.TransactionRepository { return memoryTransactions{m} }

// Users implements repository.UnitOfWork.
func (m *MemoryUoW) Users() repository.UserRepository { return memoryUsers{m} }

type memoryCards struct{ m *MemoryUoW }

func (r memoryCards) FindByCardID(_ context.Context, cardID string) (*card.Card, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	c, ok := r.m.cards[cardID]
	if !ok {
		return nil, nil
	}
	out := c
	return &out, nil
}

func (r memoryCards) Save(_ context.Context, c *card.Card) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.cards[c.CardID] = *c
	return nil
}

type memoryTransactions struct{ m *MemoryUoW }

func (r memoryTransactions) FindByTransactionID(_ context.Context, transactionID string) (*transaction.Transaction, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	t, ok := r.m.transactions[transactionID]
	if !ok {
		return nil, nil
	}
	out := t
	return &out, nil
}

func (r memoryTransactions) Save(_ context.Context, t *transaction.Transaction) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.transactions[t.TransactionID] = *t
	return nil
}

type memoryUsers struct{ m *MemoryUoW }

func (r memoryUsers) FindByUsername(_ context.Context, username string) (*user.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	u, ok := r.m.users[username]
	if !ok {
		return nil, nil
	}
	out := u
	return &out, nil
}

func (r memoryUsers) Create(_ context.Context, u *user.User) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.users[u.Username] = *u
	return nil
}

// FixedDigits returns a DigitSource that yields the given sequences in order
// and keeps repeating the last one.
func FixedDigits(sequences ...string) card.DigitSource {
	i := 0
	return func(n int) (string, error) {
		seq := sequences[i]
		if i < len(sequences)-1 {
			i++
		}
		return seq[:n], nil
	}
}
