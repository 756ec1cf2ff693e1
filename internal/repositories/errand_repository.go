package repositories

import (
	"context"

	"recados/internal/models"
)

// ErrandRepository defines the interface for errand data access.
type ErrandRepository interface {
	Create(ctx context.Context, errand *models.Errand) error
	GetByID(ctx context.Context, id string) (*models.Errand, error)
	// ListByUserID returns the errands owned by userID in creation order.
	// The owner does not have to exist.
	ListByUserID(ctx context.Context, userID string) ([]models.Errand, error)
	// Update replaces the title and description of an existing errand.
	Update(ctx context.Context, errand *models.Errand) error
	Delete(ctx context.Context, id string) error
}
