package repositories

import (
	"context"
	"sync"
	"time"

	"recados/internal/models"

	"github.com/google/uuid"
)

// MemoryErrandRepository is an in-memory implementation of ErrandRepository.
type MemoryErrandRepository struct {
	mu      sync.RWMutex
	errands map[string]models.Errand
	order   []string
}

// NewMemoryErrandRepository creates a new instance of MemoryErrandRepository.
func NewMemoryErrandRepository() *MemoryErrandRepository {
	return &MemoryErrandRepository{
		errands: make(map[string]models.Errand),
	}
}

// Create adds a new errand.
func (r *MemoryErrandRepository) Create(_ context.Context, errand *models.Errand) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if errand.ID == "" {
		errand.ID = uuid.New().String()
	}
	if _, ok := r.errands[errand.ID]; ok {
		return ErrAlreadyExists
	}
	if errand.CreatedAt.IsZero() {
		errand.CreatedAt = time.Now()
	}
	r.errands[errand.ID] = *errand
	r.order = append(r.order, errand.ID)
	return nil
}

// GetByID returns an errand by its ID.
func (r *MemoryErrandRepository) GetByID(_ context.Context, id string) (*models.Errand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	errand, ok := r.errands[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &errand, nil
}

// ListByUserID returns the errands of a user in creation order.
func (r *MemoryErrandRepository) ListByUserID(_ context.Context, userID string) ([]models.Errand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	errands := make([]models.Errand, 0)
	for _, id := range r.order {
		if e := r.errands[id]; e.UserID == userID {
			errands = append(errands, e)
		}
	}
	return errands, nil
}

// Update modifies the title and description of an existing errand.
func (r *MemoryErrandRepository) Update(_ context.Context, errand *models.Errand) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.errands[errand.ID]
	if !ok {
		return ErrNotFound
	}
	stored.Title = errand.Title
	stored.Description = errand.Description
	// Reuse the stored key; errand.ID may alias a request buffer.
	r.errands[stored.ID] = stored
	*errand = stored
	return nil
}

// Delete removes an errand by its ID.
func (r *MemoryErrandRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.errands[id]; !ok {
		return ErrNotFound
	}
	delete(r.errands, id)
	r.order = removeID(r.order, id)
	return nil
}
