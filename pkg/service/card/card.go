// Package card implements the card lifecycle: issuance, enrollment, blocking,
// recharges and balance inquiry. Every mutating operation runs inside the
// unit of work so concurrent mutations of the same card cannot interleave
// their read-modify-write sequences.
package card

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/bankinc/cardledger/pkg/config"
	"github.com/bankinc/cardledger/pkg/domain"
	carddomain "github.com/bankinc/cardledger/pkg/domain/card"
	"github.com/bankinc/cardledger/pkg/repository"
	"github.com/shopspring/decimal"
)

// generateAttempts bounds the collision retry loop. At 10 random digits a
// collision is negligible, so a couple of retries is plenty.
const generateAttempts = 3

var errNumberCollision = errors.New("card number collision")

// Service is the card lifecycle manager.
type Service struct {
	uow    repository.UnitOfWork
	digits carddomain.DigitSource
	now    func() time.Time
	logger *slog.Logger
}

// NewService creates a Service from the wired dependencies.
func NewService(deps config.Deps) *Service {
	digits := deps.Digits
	if digits == nil {
		digits = carddomain.CryptoDigits
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &Service{uow: deps.Uow, digits: digits, now: now, logger: deps.Logger}
}

// GenerateCard issues a new card under the given product and returns its
// 16-character identifier. The requester identity is optional; blank means
// anonymous creation. Uniqueness is enforced by the store; a collision with
// an existing number is retried with fresh digits.
func (s *Service) GenerateCard(ctx context.Context, productID, holderName, requester string) (string, error) {
	logger := s.logger.With("productID", productID)
	if len(productID) != carddomain.ProductIDLength {
		logger.Error("GenerateCard rejected: invalid product id")
		return "", domain.ErrInvalidProduct
	}

	var cardID string
	for attempt := 0; attempt < generateAttempts; attempt++ {
		c, err := carddomain.New().
			WithProductID(productID).
			WithHolderName(holderName).
			WithOwner(requester).
			WithDigits(s.digits).
			WithCreatedAt(s.now()).
			Build()
		if err != nil {
			return "", err
		}

		err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
			existing, err := uow.Cards().FindByCardID(ctx, c.CardID)
			if err != nil {
				return err
			}
			if existing != nil {
				return errNumberCollision
			}
			return uow.Cards().Save(ctx, c)
		})
		if errors.Is(err, errNumberCollision) {
			logger.Warn("card number collision, retrying", "attempt", attempt+1)
			continue
		}
		if err != nil {
			logger.Error("GenerateCard failed", "error", err)
			return "", err
		}
		cardID = c.CardID
		break
	}
	if cardID == "" {
		return "", errNumberCollision
	}
	logger.Info("card generated", "cardID", cardID)
	return cardID, nil
}

// Enroll activates a card. A second enrollment fails with
// domain.ErrCardAlreadyActive; activation is deliberately not idempotent.
func (s *Service) Enroll(ctx context.Context, cardID string) error {
	return s.mutate(ctx, cardID, func(c *carddomain.Card) error {
		return c.Enroll()
	})
}

// Block marks a card blocked. Blocking an already-blocked card succeeds.
func (s *Service) Block(ctx context.Context, cardID string) error {
	return s.mutate(ctx, cardID, func(c *carddomain.Card) error {
		c.Block()
		return nil
	})
}

// Recharge adds amount to the card balance. Inactive cards may be recharged;
// blocked cards and non-positive amounts are rejected.
func (s *Service) Recharge(ctx context.Context, cardID string, amount decimal.Decimal) error {
	return s.mutate(ctx, cardID, func(c *carddomain.Card) error {
		return c.Recharge(amount)
	})
}

// GetBalance returns the card's current balance.
func (s *Service) GetBalance(ctx context.Context, cardID string) (decimal.Decimal, error) {
	c, err := s.uow.Cards().FindByCardID(ctx, cardID)
	if err != nil {
		return decimal.Zero, err
	}
	if c == nil {
		return decimal.Zero, domain.ErrCardNotFound
	}
	return c.Balance, nil
}

// GetCard returns the full card record.
func (s *Service) GetCard(ctx context.Context, cardID string) (*carddomain.Card, error) {
	c, err := s.uow.Cards().FindByCardID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCardNotFound
	}
	return c, nil
}

// mutate loads the card, applies fn and persists the result inside one
// atomic unit. A missing card fails with domain.ErrCardNotFound.
func (s *Service) mutate(ctx context.Context, cardID string, fn func(*carddomain.Card) error) error {
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		c, err := uow.Cards().FindByCardID(ctx, cardID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrCardNotFound
		}
		if err := fn(c); err != nil {
			return err
		}
		return uow.Cards().Save(ctx, c)
	})
	if err != nil {
		s.logger.Error("card mutation failed", "cardID", cardID, "error", err)
		return err
	}
	return nil
}
