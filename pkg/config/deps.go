package config

import (
	"log/slog"
	"time"

	"github.com/bankinc/cardledger/pkg/domain/card"
	"github.com/bankinc/cardledger/pkg/repository"
)

// Deps holds the infrastructure dependencies the services are built from.
// Now and Digits are injection seams: wiring leaves them nil to get real time
// and crypto/rand digits, tests set them for determinism.
type Deps struct {
	Uow    repository.UnitOfWork
	Digits card.DigitSource
	Now    func() time.Time
	Logger *slog.Logger
	Config *App
}
