// Package card defines the prepaid Card entity and its lifecycle invariants.
//
// Invariants:
//   - CardID is 16 characters: the 6-character product id followed by 10
//     randomly drawn digits. Both are immutable after creation.
//   - Balance is a decimal that can never go negative.
//   - Active starts false and can be set true exactly once (enrollment).
//   - Blocked starts false and is monotonic once set (no unblock operation).
package card

import (
	"strings"
	"time"

	"github.com/bankinc/cardledger/pkg/domain"
	"github.com/shopspring/decimal"
)

const (
	// ProductIDLength is the required length of a product identifier.
	ProductIDLength = 6

	// NumberLength is the total length of a card identifier.
	NumberLength = 16

	// DefaultHolderName is used when no holder name is supplied at creation.
	DefaultHolderName = "TITULAR DE TARJETA"

	// ValidityYears is how long a newly issued card stays valid.
	ValidityYears = 3
)

// Card is the aggregate for a single prepaid card. All balance and state
// mutations go through its methods so the invariants hold everywhere.
type Card struct {
	CardID         string
	ProductID      string
	HolderName     string
	ExpirationDate time.Time // date precision, midnight UTC
	Balance        decimal.Decimal
	Active         bool
	Blocked        bool
	Owner          string // optional requester identity, not used by any rule
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Builder constructs Card instances, validating invariants at Build time.
type Builder struct {
	productID  string
	holderName string
	owner      string
	digits     DigitSource
	now        time.Time
}

// New creates a Builder with crypto/rand digits and the current time.
func New() *Builder {
	return &Builder{digits: CryptoDigits, now: time.Now()}
}

// WithProductID sets the 6-character product identifier. Mandatory.
func (b *Builder) WithProductID(productID string) *Builder {
	b.productID = productID
	return b
}

// WithHolderName sets the card holder name. Blank falls back to DefaultHolderName.
func (b *Builder) WithHolderName(name string) *Builder {
	b.holderName = name
	return b
}

// WithOwner sets the requester identity to associate with the card. Optional;
// anonymous creation is valid.
func (b *Builder) WithOwner(owner string) *Builder {
	b.owner = owner
	return b
}

// WithDigits overrides the randomness source for the card number.
func (b *Builder) WithDigits(digits DigitSource) *Builder {
	b.digits = digits
	return b
}

// WithCreatedAt overrides the creation time, which anchors the expiration date.
func (b *Builder) WithCreatedAt(t time.Time) *Builder {
	b.now = t
	return b
}

// Build validates the product identifier, generates the 16-character card
// number, and returns a card with zero balance, inactive and unblocked, owned
// expiration three years out.
func (b *Builder) Build() (*Card, error) {
	if len(b.productID) != ProductIDLength {
		return nil, domain.ErrInvalidProduct
	}
	random, err := b.digits(NumberLength - ProductIDLength)
	if err != nil {
		return nil, err
	}
	holder := strings.TrimSpace(b.holderName)
	if holder == "" {
		holder = DefaultHolderName
	}
	expiry := b.now.AddDate(ValidityYears, 0, 0)
	return &Card{
		CardID:         b.productID + random,
		ProductID:      b.productID,
		HolderName:     holder,
		ExpirationDate: time.Date(expiry.Year(), expiry.Month(), expiry.Day(), 0, 0, 0, 0, time.UTC),
		Balance:        decimal.Zero,
		Owner:          b.owner,
		CreatedAt:      b.now,
	}, nil
}

// Enroll activates the card. A second enrollment fails: activation is a
// one-time transition, not an idempotent toggle.
func (c *Card) Enroll() error {
	if c.Active {
		return domain.ErrCardAlreadyActive
	}
	c.Active = true
	return nil
}

// Block marks the card blocked. Blocking an already-blocked card succeeds
// silently; the flag is monotonic.
func (c *Card) Block() {
	c.Blocked = true
}

// Recharge adds amount to the balance. The card need not be active, but a
// blocked card rejects recharges.
func (c *Card) Recharge(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	if c.Blocked {
		return domain.ErrCardBlocked
	}
	c.Balance = c.Balance.Add(amount)
	return nil
}

// Debit subtracts price from the balance, refusing to go negative.
func (c *Card) Debit(price decimal.Decimal) error {
	if c.Balance.LessThan(price) {
		return domain.ErrInsufficientBalance
	}
	c.Balance = c.Balance.Sub(price)
	return nil
}

// Credit adds amount back to the balance. Annulment-driven credits apply even
// to blocked cards, so there is no blocked guard here.
func (c *Card) Credit(amount decimal.Decimal) {
	c.Balance = c.Balance.Add(amount)
}

// Expired reports whether the card's expiration date is before the calendar
// date of now.
func (c *Card) Expired(now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return c.ExpirationDate.Before(today)
}
