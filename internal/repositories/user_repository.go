package repositories

import (
	"context"
	"errors"

	"credvia/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailTaken        = errors.New("email already taken")
	ErrDatabaseOperation = errors.New("database operation failed")
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	// Create inserts a new user. Returns ErrEmailTaken when the email is
	// already registered.
	Create(ctx context.Context, user *models.User) error

	// GetByID retrieves a user by primary key.
	GetByID(ctx context.Context, id uint) (*models.User, error)

	// GetByEmail retrieves a user by email address.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *models.User) error

	// UpdateStatus moves a user's account status. Users are never deleted.
	UpdateStatus(ctx context.Context, userID uint, status string) error

	// IncrementTokenVersion revokes all outstanding tokens for the user.
	IncrementTokenVersion(ctx context.Context, userID uint) error

	// List retrieves users with pagination, newest first.
	List(ctx context.Context, offset, limit int) ([]models.User, int64, error)
}
