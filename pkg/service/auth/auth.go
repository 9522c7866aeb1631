// Package auth issues and verifies the bearer tokens the presentation layer
// uses to attach a requester identity to card creation. No card or
// transaction business rule depends on it.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/bankinc/cardledger/pkg/config"
	"github.com/bankinc/cardledger/pkg/domain"
	"github.com/bankinc/cardledger/pkg/domain/user"
	"github.com/bankinc/cardledger/pkg/repository"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Service registers users and issues signed JWTs.
type Service struct {
	uow    repository.UnitOfWork
	cfg    config.Jwt
	now    func() time.Time
	logger *slog.Logger
}

// NewService creates an auth Service from the wired dependencies.
func NewService(deps config.Deps) *Service {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &Service{uow: deps.Uow, cfg: deps.Config.Auth.Jwt, now: now, logger: deps.Logger}
}

// Register creates a user with a bcrypt-hashed password and returns a token
// for it. An existing username fails with domain.ErrUsernameTaken.
func (s *Service) Register(ctx context.Context, username, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	u := user.New(username, string(hash))
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		existing, err := uow.Users().FindByUsername(ctx, username)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrUsernameTaken
		}
		return uow.Users().Create(ctx, u)
	})
	if err != nil {
		s.logger.Error("register failed", "username", username, "error", err)
		return "", err
	}
	s.logger.Info("user registered", "username", username)
	return s.GenerateToken(username)
}

// Login verifies the credentials and returns a token. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.uow.Users().FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		s.logger.Warn("login rejected", "username", username)
		return "", domain.ErrInvalidCredentials
	}
	return s.GenerateToken(username)
}

// GenerateToken signs an HS256 JWT whose subject is the username.
func (s *Service) GenerateToken(username string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Expiry)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}
