// Card routes mirror the card controller of the ledger API:
//
//   - POST /cards/generate          : issue a card under a product
//   - GET  /cards/:cardId           : read the card record
//   - POST /cards/:cardId/enroll    : one-time activation
//   - POST /cards/:cardId/block     : block the card
//   - POST /cards/:cardId/recharge  : add balance
//   - GET  /cards/:cardId/balance   : balance inquiry
package webapi

import (
	"time"

	cardsvc "github.com/bankinc/cardledger/pkg/service/card"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// GenerateCardRequest is the payload for issuing a new card.
type GenerateCardRequest struct {
	ProductID  string `json:"product_id" validate:"required"`
	HolderName string `json:"holder_name"`
}

// RechargeRequest carries the recharge amount as a string; the presentation
// layer owns parsing it into a decimal.
type RechargeRequest struct {
	Amount string `json:"amount" validate:"required"`
}

// CardDTO is the API representation of a card.
type CardDTO struct {
	CardID         string `json:"card_id"`
	ProductID      string `json:"product_id"`
	HolderName     string `json:"holder_name"`
	ExpirationDate string `json:"expiration_date"`
	Balance        string `json:"balance"`
	Active         bool   `json:"active"`
	Blocked        bool   `json:"blocked"`
}

// CardRoutes registers the card endpoints. The guards run before every
// handler; with auth enabled they hold the JWT middleware.
func CardRoutes(app *fiber.App, svc *cardsvc.Service, guards ...fiber.Handler) {
	app.Post("/cards/generate", withGuards(guards, GenerateCard(svc))...)
	app.Get("/cards/:cardId", withGuards(guards, GetCard(svc))...)
	app.Post("/cards/:cardId/enroll", withGuards(guards, EnrollCard(svc))...)
	app.Post("/cards/:cardId/block", withGuards(guards, BlockCard(svc))...)
	app.Post("/cards/:cardId/recharge", withGuards(guards, RechargeCard(svc))...)
	app.Get("/cards/:cardId/balance", withGuards(guards, GetBalance(svc))...)
}

// GenerateCard issues a new card and returns its identifier. The requester
// identity comes from the bearer token when auth is enabled; anonymous
// creation is valid otherwise.
func GenerateCard(svc *cardsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := BindAndValidate[GenerateCardRequest](c)
		if err != nil {
			return nil
		}
		cardID, err := svc.GenerateCard(c.UserContext(), req.ProductID, req.HolderName, requesterFromContext(c))
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Card generation failed", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Card generated", fiber.Map{"card_id": cardID})
	}
}

// GetCard returns the card record.
func GetCard(svc *cardsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cd, err := svc.GetCard(c.UserContext(), c.Params("cardId"))
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Card lookup failed", err.Error())
		}
		dto := CardDTO{
			CardID:         cd.CardID,
			ProductID:      cd.ProductID,
			HolderName:     cd.HolderName,
			ExpirationDate: cd.ExpirationDate.Format(time.DateOnly),
			Balance:        cd.Balance.String(),
			Active:         cd.Active,
			Blocked:        cd.Blocked,
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Card found", dto)
	}
}

// EnrollCard activates the card. A second call fails.
func EnrollCard(svc *cardsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cardID := c.Params("cardId")
		if err := svc.Enroll(c.UserContext(), cardID); err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Enrollment failed", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Card enrolled", nil)
	}
}

// BlockCard blocks the card. Blocking twice succeeds.
func BlockCard(svc *cardsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cardID := c.Params("cardId")
		if err := svc.Block(c.UserContext(), cardID); err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Block failed", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Card blocked", nil)
	}
}

// RechargeCard adds balance to the card.
func RechargeCard(svc *cardsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := BindAndValidate[RechargeRequest](c)
		if err != nil {
			return nil
		}
		amount, err := decimal.NewFromString(req.Amount)
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid amount", err.Error())
		}
		if err := svc.Recharge(c.UserContext(), c.Params("cardId"), amount); err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Recharge failed", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Card recharged", nil)
	}
}

// GetBalance returns the card balance as a decimal string.
func GetBalance(svc *cardsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cardID := c.Params("cardId")
		balance, err := svc.GetBalance(c.UserContext(), cardID)
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Balance inquiry failed", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Balance", fiber.Map{
			"card_id": cardID,
			"balance": balance.String(),
		})
	}
}

// withGuards prefixes the route guards to the terminal handler so the pair
// can be registered as one variadic handler list.
func withGuards(guards []fiber.Handler, h fiber.Handler) []fiber.Handler {
	return append(append(make([]fiber.Handler, 0, len(guards)+1), guards...), h)
}
