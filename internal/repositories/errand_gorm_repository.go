package repositories

import (
	"context"
	"errors"
	"fmt"

	"recados/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMErrandRepository is a GORM implementation of ErrandRepository.
type GORMErrandRepository struct {
	db *gorm.DB
}

// NewGORMErrandRepository creates a new instance of GORMErrandRepository.
func NewGORMErrandRepository(db *gorm.DB) *GORMErrandRepository {
	return &GORMErrandRepository{
		db: db,
	}
}

// Create creates a new errand in the database.
func (r *GORMErrandRepository) Create(ctx context.Context, errand *models.Errand) error {
	if errand.ID == "" {
		errand.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(errand).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to create errand: %w", err)
	}
	return nil
}

// GetByID retrieves a single errand by its ID from the database.
func (r *GORMErrandRepository) GetByID(ctx context.Context, id string) (*models.Errand, error) {
	var errand models.Errand
	if err := r.db.WithContext(ctx).First(&errand, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get errand by ID %s: %w", id, err)
	}
	return &errand, nil
}

// ListByUserID retrieves the errands of a user in insertion order.
func (r *GORMErrandRepository) ListByUserID(ctx context.Context, userID string) ([]models.Errand, error) {
	errands := make([]models.Errand, 0)
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("rowid").Find(&errands).Error; err != nil {
		return nil, fmt.Errorf("failed to list errands of user %s: %w", userID, err)
	}
	return errands, nil
}

// Update writes the title and description of an existing errand and
// reloads it into errand.
func (r *GORMErrandRepository) Update(ctx context.Context, errand *models.Errand) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Errand{}).Where("id = ?", errand.ID).Updates(map[string]any{
			"title":       errand.Title,
			"description": errand.Description,
		})
		if res.Error != nil {
			return fmt.Errorf("failed to update errand: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.First(errand, "id = ?", errand.ID).Error
	})
}

// Delete deletes an errand by its ID from the database.
func (r *GORMErrandRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Errand{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete errand: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
