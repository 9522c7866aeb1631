// Auth routes issue the bearer tokens that attach a requester identity to
// card creation:
//
//   - POST /auth/register : create a user, returns a token
//   - POST /auth/login    : verify credentials, returns a token
package webapi

import (
	authsvc "github.com/bankinc/cardledger/pkg/service/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AuthRequest carries register/login credentials.
type AuthRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
}

// AuthRoutes registers the auth endpoints. They are always unguarded.
func AuthRoutes(app *fiber.App, svc *authsvc.Service) {
	app.Post("/auth/register", Register(svc))
	app.Post("/auth/login", Login(svc))
}

// Register creates a user and returns a signed token.
func Register(svc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := BindAndValidate[AuthRequest](c)
		if err != nil {
			return nil
		}
		token, err := svc.Register(c.UserContext(), req.Username, req.Password)
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Registration failed", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "User registered", fiber.Map{"token": token})
	}
}

// Login verifies credentials and returns a signed token.
func Login(svc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := BindAndValidate[AuthRequest](c)
		if err != nil {
			return nil
		}
		token, err := svc.Login(c.UserContext(), req.Username, req.Password)
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Login failed", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Login successful", fiber.Map{"token": token})
	}
}

// requesterFromContext extracts the authenticated subject from the verified
// token the JWT middleware stored, or "" for anonymous requests.
func requesterFromContext(c *fiber.Ctx) string {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return ""
	}
	subject, err := token.Claims.GetSubject()
	if err != nil {
		return ""
	}
	return subject
}
