// Package webapi is the HTTP presentation adapter. It translates transport
// inputs into the typed core operations and maps core error kinds onto
// response classes; no business rule lives here.
package webapi

import (
	"time"

	"github.com/bankinc/cardledger/pkg/config"
	"github.com/bankinc/cardledger/pkg/middleware"
	authsvc "github.com/bankinc/cardledger/pkg/service/auth"
	cardsvc "github.com/bankinc/cardledger/pkg/service/card"
	txsvc "github.com/bankinc/cardledger/pkg/service/transaction"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the fiber application with all routes and middleware wired
// from the given dependencies.
func NewApp(deps config.Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
		},
	}))
	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Card ledger is up")
	})

	var guards []fiber.Handler
	if deps.Config.Auth.Enabled {
		guards = append(guards, middleware.JwtProtected(deps.Config.Auth.Jwt))
	}

	CardRoutes(app, cardsvc.NewService(deps), guards...)
	TransactionRoutes(app, txsvc.NewService(deps), guards...)
	AuthRoutes(app, authsvc.NewService(deps))

	return app
}
