// Package user implements the user repository on gorm.
package user

import (
	"context"
	"errors"

	"github.com/bankinc/cardledger/pkg/domain/user"
	"github.com/bankinc/cardledger/pkg/repository"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

// New creates a user repository bound to the given gorm session.
func New(db *gorm.DB) repository.UserRepository {
	return &repo{db: db}
}

// FindByUsername implements repository.UserRepository. Absence is (nil, nil).
func (r *repo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	var m User
	err := r.db.WithContext(ctx).First(&m, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toEntity(&m), nil
}

// Create implements repository.UserRepository.
func (r *repo) Create(ctx context.Context, u *user.User) error {
	m := toModel(u)
	return r.db.WithContext(ctx).Create(&m).Error
}
