// Package transaction implements the transaction processor: purchases against
// a card and their time-bounded annulment. The debit plus transaction insert
// of a purchase, and the credit plus status update of an annulment, each run
// inside a single unit of work so a failure on either side rolls both back.
package transaction

import (
	"context"
	"log/slog"
	"time"

	"github.com/bankinc/cardledger/pkg/config"
	"github.com/bankinc/cardledger/pkg/domain"
	txdomain "github.com/bankinc/cardledger/pkg/domain/transaction"
	"github.com/bankinc/cardledger/pkg/repository"
	"github.com/shopspring/decimal"
)

// Service is the transaction processor.
type Service struct {
	uow    repository.UnitOfWork
	now    func() time.Time
	logger *slog.Logger
}

// NewService creates a Service from the wired dependencies.
func NewService(deps config.Deps) *Service {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &Service{uow: deps.Uow, now: now, logger: deps.Logger}
}

// Purchase debits price from the card and records a COMPLETED transaction,
// returning the new transaction identifier.
//
// Validation order: the card must exist, be enrolled (an inactive card is
// reported as not found, matching the historical behavior), not be blocked,
// not be past its expiration date, and hold at least price in balance.
func (s *Service) Purchase(ctx context.Context, cardID string, price decimal.Decimal) (string, error) {
	logger := s.logger.With("cardID", cardID)
	if !price.IsPositive() {
		return "", domain.ErrInvalidAmount
	}

	var transactionID string
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		c, err := uow.Cards().FindByCardID(ctx, cardID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrCardNotFound
		}
		if !c.Active {
			return domain.ErrCardNotActivated
		}
		if c.Blocked {
			return domain.ErrCardBlocked
		}
		now := s.now()
		if c.Expired(now) {
			return domain.ErrTransactionExpired
		}
		if err := c.Debit(price); err != nil {
			return err
		}
		if err := uow.Cards().Save(ctx, c); err != nil {
			return err
		}

		t := txdomain.New(c.CardID, price, now)
		if err := uow.Transactions().Save(ctx, t); err != nil {
			return err
		}
		transactionID = t.TransactionID
		return nil
	})
	if err != nil {
		logger.Error("purchase failed", "error", err)
		return "", err
	}
	logger.Info("purchase completed", "transactionID", transactionID, "price", price)
	return transactionID, nil
}

// GetTransaction looks up a transaction by identifier. A missing transaction
// returns (nil, nil): absence is a valid query outcome here, and the caller
// decides how to surface it.
func (s *Service) GetTransaction(ctx context.Context, transactionID string) (*txdomain.Transaction, error) {
	return s.uow.Transactions().FindByTransactionID(ctx, transactionID)
}

// Annul reverses a completed purchase within the 24-hour window: the price is
// credited back to the card (even a blocked one) and the transaction becomes
// ANNULLED, terminally.
func (s *Service) Annul(ctx context.Context, transactionID string) error {
	logger := s.logger.With("transactionID", transactionID)
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		t, err := uow.Transactions().FindByTransactionID(ctx, transactionID)
		if err != nil {
			return err
		}
		if t == nil {
			return domain.ErrTransactionNotFound
		}
		if err := t.Annul(s.now()); err != nil {
			return err
		}

		c, err := uow.Cards().FindByCardID(ctx, t.CardID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrCardNotFound
		}
		c.Credit(t.Price)
		if err := uow.Cards().Save(ctx, c); err != nil {
			return err
		}
		return uow.Transactions().Save(ctx, t)
	})
	if err != nil {
		logger.Error("annulment failed", "error", err)
		return err
	}
	logger.Info("transaction annulled")
	return nil
}
