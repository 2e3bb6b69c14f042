package repository

import (
	"context"
	"errors"
	"strings"

	"flights-service/internal/domain/entity"
	"flights-service/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository on PostgreSQL
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository
func NewGormUserRepository(db *gorm.DB) repository.UserRepository {
	return &GormUserRepository{
		db: db,
	}
}

// Create inserts a new account. Unique violations are mapped to the
// duplicate sentinel for whichever constraint fired.
func (r *GormUserRepository) Create(ctx context.Context, user *entity.User) error {
	result := r.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return repository.ErrDuplicateEmail
			}
			return repository.ErrDuplicateUsername
		}
		return result.Error
	}
	return nil
}

// GetByUsername finds an account by username
func (r *GormUserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var user entity.User
	result := r.db.WithContext(ctx).Where("username = ?", username).First(&user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}
		return nil, result.Error
	}

	return &user, nil
}

// UpdatePasswordHash replaces the stored password hash for an account
func (r *GormUserRepository) UpdatePasswordHash(ctx context.Context, userID uint, hash string) error {
	result := r.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", userID).Update("password_hash", hash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}
	return nil
}
