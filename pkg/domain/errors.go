// Package domain holds the business error kinds shared across the card and
// transaction entities and their services. Errors are sentinel values matched
// with errors.Is; the presentation layer maps them to response classes.
package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidProduct is returned when a product identifier is not exactly 6 characters.
	ErrInvalidProduct = errors.New("product id must be exactly 6 characters")

	// ErrInvalidAmount is returned when a recharge or purchase amount is not strictly positive.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrCardNotFound is returned when no card exists for the given identifier.
	ErrCardNotFound = errors.New("card not found")

	// ErrCardAlreadyActive is returned when enrollment is attempted on an already-active card.
	ErrCardAlreadyActive = errors.New("card already active")

	// ErrCardBlocked is returned when a recharge or purchase is attempted on a blocked card.
	ErrCardBlocked = errors.New("card blocked")

	// ErrInsufficientBalance is returned when a purchase price exceeds the available balance.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrTransactionExpired is returned when a card is past its expiration date at
	// purchase time, or when an annulment is attempted past the 24-hour window.
	ErrTransactionExpired = errors.New("transaction expired")

	// ErrTransactionNotFound is returned when no transaction exists for the given identifier.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrTransactionAlreadyAnnulled is returned when annulment is attempted on an
	// already-annulled transaction.
	ErrTransactionAlreadyAnnulled = errors.New("transaction already annulled")

	// ErrUserNotFound is returned when no user exists for the given identity.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when registration is attempted with a username
	// that already exists.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials is returned when login is attempted with a bad
	// username/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ErrCardNotActivated signals a purchase on a card that exists but was never
// enrolled. It wraps ErrCardNotFound: callers that only distinguish the
// not-found class keep working, callers that care can check for this sentinel
// specifically.
var ErrCardNotActivated = fmt.Errorf("card not activated: %w", ErrCardNotFound)
