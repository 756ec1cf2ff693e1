package handlers

import (
	"errors"

	"recados/internal/models"
	"recados/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	service          *services.UserService
	logger           *zap.Logger
	hidePasswordHash bool
}

// NewUserHandler creates a new UserHandler. When hidePasswordHash is set
// the bcrypt hash is stripped from every user in a response.
func NewUserHandler(service *services.UserService, logger *zap.Logger, hidePasswordHash bool) *UserHandler {
	return &UserHandler{
		service:          service,
		logger:           logger,
		hidePasswordHash: hidePasswordHash,
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/register", h.HandleRegister)
	router.Get("/users", h.HandleListUsers)
	router.Post("/login", h.HandleLogin)
	router.Delete("/deleteUser/:userId", h.HandleDeleteUser)
}

// RegisterRequest represents the request body for registration.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister handles new user registration.
func (h *UserHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := parseBody(c, &req); err != nil {
		h.logger.Debug("invalid register body", zap.Error(err))
		return message(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	user, err := h.service.Register(c.UserContext(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailAlreadyExists) {
			return message(c, fiber.StatusBadRequest, msgEmailTaken)
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": msgUserRegistered,
		"user":    h.present(*user),
	})
}

// HandleListUsers returns every registered user, or 404 when there are none.
func (h *UserHandler) HandleListUsers(c *fiber.Ctx) error {
	users, err := h.service.ListAll(c.UserContext())
	if err != nil {
		if errors.Is(err, services.ErrNoUsers) {
			return message(c, fiber.StatusNotFound, msgNoUsers)
		}
		return err
	}

	out := make([]models.User, 0, len(users))
	for _, u := range users {
		out = append(out, h.present(u))
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

// HandleLogin checks credentials. Missing fields and unknown users are
// answered with 404, a wrong password with 400.
func (h *UserHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := parseBody(c, &req); err != nil {
		h.logger.Debug("invalid login body", zap.Error(err))
		return message(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	result, err := h.service.Login(c.UserContext(), req.Email, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrMissingEmail):
		return message(c, fiber.StatusNotFound, msgMissingEmail)
	case errors.Is(err, services.ErrMissingPassword):
		return message(c, fiber.StatusNotFound, msgMissingPass)
	case errors.Is(err, services.ErrUserNotFound):
		return message(c, fiber.StatusNotFound, msgLoginNotFound)
	case errors.Is(err, services.ErrInvalidPassword):
		return message(c, fiber.StatusBadRequest, msgWrongPassword)
	default:
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": result.Message,
		"ID":      result.ID,
	})
}

// HandleDeleteUser removes a user. The user's errands are kept.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("userId")); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return message(c, fiber.StatusNotFound, msgUserIDNotFound)
		}
		return err
	}
	return message(c, fiber.StatusOK, msgUserDeleted)
}

func (h *UserHandler) present(u models.User) models.User {
	if h.hidePasswordHash {
		u.Password = ""
	}
	return u
}
