// Transaction routes mirror the transaction controller of the ledger API:
//
//   - POST /transaction/purchase        : purchase against a card
//   - GET  /transaction/:transactionId  : look up a transaction
//   - POST /transaction/anulation       : annul a purchase within 24 hours
package webapi

import (
	"time"

	"github.com/bankinc/cardledger/pkg/domain/transaction"
	txsvc "github.com/bankinc/cardledger/pkg/service/transaction"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// PurchaseRequest is the payload for a purchase. The price arrives as a
// string and is parsed here.
type PurchaseRequest struct {
	CardID string `json:"card_id" validate:"required"`
	Price  string `json:"price" validate:"required"`
}

// AnnulmentRequest identifies the transaction to reverse.
type AnnulmentRequest struct {
	TransactionID string `json:"transaction_id" validate:"required"`
}

// TransactionDTO is the API representation of a transaction.
type TransactionDTO struct {
	TransactionID   string `json:"transaction_id"`
	CardID          string `json:"card_id"`
	Price           string `json:"price"`
	TransactionDate string `json:"transaction_date"`
	Status          string `json:"status"`
}

func toTransactionDTO(t *transaction.Transaction) TransactionDTO {
	return TransactionDTO{
		TransactionID:   t.TransactionID,
		CardID:          t.CardID,
		Price:           t.Price.String(),
		TransactionDate: t.TransactionDate.Format(time.RFC3339),
		Status:          string(t.Status),
	}
}

// TransactionRoutes registers the transaction endpoints.
func TransactionRoutes(app *fiber.App, svc *txsvc.Service, guards ...fiber.Handler) {
	app.Post("/transaction/purchase", withGuards(guards, Purchase(svc))...)
	app.Get("/transaction/:transactionId", withGuards(guards, GetTransaction(svc))...)
	app.Post("/transaction/anulation", withGuards(guards, AnnulTransaction(svc))...)
}

// Purchase debits the card and returns the new transaction identifier.
func Purchase(svc *txsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := BindAndValidate[PurchaseRequest](c)
		if err != nil {
			return nil
		}
		price, err := decimal.NewFromString(req.Price)
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid price", err.Error())
		}
		transactionID, err := svc.Purchase(c.UserContext(), req.CardID, price)
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Purchase failed", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Purchase completed", fiber.Map{
			"transaction_id": transactionID,
			"status":         string(transaction.StatusCompleted),
		})
	}
}

// GetTransaction looks up a transaction. The core reports absence as a nil
// result; this layer turns that into a 404.
func GetTransaction(svc *txsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		t, err := svc.GetTransaction(c.UserContext(), c.Params("transactionId"))
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusInternalServerError, "Transaction lookup failed", err.Error())
		}
		if t == nil {
			return ErrorResponseJSON(c, fiber.StatusNotFound, "Transaction not found", nil)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Transaction found", toTransactionDTO(t))
	}
}

// AnnulTransaction reverses a purchase within its 24-hour window.
func AnnulTransaction(svc *txsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := BindAndValidate[AnnulmentRequest](c)
		if err != nil {
			return nil
		}
		if err := svc.Annul(c.UserContext(), req.TransactionID); err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Annulment failed", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Transaction annulled", fiber.Map{
			"transaction_id": req.TransactionID,
		})
	}
}
