package repositories

import (
	"context"

	"recados/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	// Create stores user, assigning an ID when empty. It returns
	// ErrEmailAlreadyExists when another user holds the same email.
	Create(ctx context.Context, user *models.User) error
	// GetAll returns every user in registration order.
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Delete(ctx context.Context, id string) error
}
