package repository

import (
	"context"
	"errors"

	"flights-service/internal/domain/entity"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
)

// UserRepository defines the interface for account operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// UpdatePasswordHash replaces the stored hash, used to upgrade legacy
	// hashes after a successful verification.
	UpdatePasswordHash(ctx context.Context, userID uint, hash string) error
}
