package services

import (
	"context"
	"errors"
	"fmt"

	"recados/internal/models"
	"recados/internal/repositories"

	"go.uber.org/zap"
)

// ErrandService handles business logic related to errands.
type ErrandService struct {
	errands repositories.ErrandRepository
	users   repositories.UserRepository
	events  eventEmitter
	logger  *zap.Logger
}

// NewErrandService creates a new ErrandService. publisher may be nil.
func NewErrandService(errands repositories.ErrandRepository, users repositories.UserRepository, publisher EventPublisher, logger *zap.Logger) *ErrandService {
	return &ErrandService{
		errands: errands,
		users:   users,
		events:  newEventEmitter(publisher, logger),
		logger:  logger,
	}
}

// Create stores a new errand for userID. The title is checked before the
// owner so an empty title is always reported as ErrTitleRequired.
func (s *ErrandService) Create(ctx context.Context, title, description, userID string) (*models.Errand, error) {
	if title == "" {
		return nil, ErrTitleRequired
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user %s: %w", userID, err)
	}

	errand := &models.Errand{
		Title:       title,
		Description: description,
		UserID:      userID,
	}
	if err := s.errands.Create(ctx, errand); err != nil {
		return nil, fmt.Errorf("failed to create errand: %w", err)
	}

	s.logger.Info("errand created", zap.String("errand_id", errand.ID), zap.String("user_id", userID))
	s.events.emit(EventErrandCreated, errand.ID, userID)
	return errand, nil
}

// ListForUser returns the errands of userID, including errands whose owner
// has since been deleted. An empty result is not an error.
func (s *ErrandService) ListForUser(ctx context.Context, userID string) ([]models.Errand, error) {
	errands, err := s.errands.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list errands: %w", err)
	}
	return errands, nil
}

// Update replaces the title and description of an errand. A rejected
// update leaves the errand untouched.
func (s *ErrandService) Update(ctx context.Context, id, title, description string) error {
	if _, err := s.errands.GetByID(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrErrandNotFound
		}
		return fmt.Errorf("failed to find errand %s: %w", id, err)
	}

	if title == "" {
		return ErrTitleRequired
	}

	errand := &models.Errand{ID: id, Title: title, Description: description}
	if err := s.errands.Update(ctx, errand); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrErrandNotFound
		}
		return fmt.Errorf("failed to update errand %s: %w", id, err)
	}

	s.logger.Info("errand updated", zap.String("errand_id", id))
	s.events.emit(EventErrandUpdated, id, errand.UserID)
	return nil
}

// Delete removes an errand.
func (s *ErrandService) Delete(ctx context.Context, id string) error {
	errand, err := s.errands.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrErrandNotFound
		}
		return fmt.Errorf("failed to find errand %s: %w", id, err)
	}

	if err := s.errands.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrErrandNotFound
		}
		return fmt.Errorf("failed to delete errand %s: %w", id, err)
	}

	s.logger.Info("errand deleted", zap.String("errand_id", id))
	s.events.emit(EventErrandDeleted, id, errand.UserID)
	return nil
}
