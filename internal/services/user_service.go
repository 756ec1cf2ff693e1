package services

import (
	"context"
	"errors"
	"fmt"

	"recados/internal/models"
	"recados/internal/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles registration, login and removal of users.
type UserService struct {
	repo       repositories.UserRepository
	events     eventEmitter
	logger     *zap.Logger
	bcryptCost int
}

// LoginResult is returned by a successful login. No session token is issued.
type LoginResult struct {
	Message string
	ID      string
}

// NewUserService creates a new UserService. publisher may be nil.
func NewUserService(repo repositories.UserRepository, publisher EventPublisher, logger *zap.Logger, bcryptCost int) *UserService {
	return &UserService{
		repo:       repo,
		events:     newEventEmitter(publisher, logger),
		logger:     logger,
		bcryptCost: bcryptCost,
	}
}

// Register hashes the password and stores a new user. The returned record
// carries the hash, not the plaintext.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	// Known duplicates are rejected before hashing.
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrEmailAlreadyExists) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID))
	s.events.emit(EventUserRegistered, user.ID, user.ID)
	return user, nil
}

// ListAll returns every registered user. An empty store is reported as
// ErrNoUsers rather than an empty list.
func (s *UserService) ListAll(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if len(users) == 0 {
		return nil, ErrNoUsers
	}
	return users, nil
}

// Login checks the credentials of a user.
func (s *UserService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" {
		return nil, ErrMissingEmail
	}
	if password == "" {
		return nil, ErrMissingPassword
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.logger.Debug("login rejected", zap.String("user_id", user.ID))
		return nil, ErrInvalidPassword
	}

	return &LoginResult{
		Message: fmt.Sprintf("Logado com sucesso. Bem vindo %s", user.Name),
		ID:      user.ID,
	}, nil
}

// Delete removes a user. Errands owned by the user are left in place.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user %s: %w", id, err)
	}

	s.logger.Info("user deleted", zap.String("user_id", id))
	s.events.emit(EventUserDeleted, id, id)
	return nil
}
