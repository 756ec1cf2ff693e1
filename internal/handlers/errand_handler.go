package handlers

import (
	"errors"

	"recados/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrandHandler handles HTTP requests for errands.
type ErrandHandler struct {
	service *services.ErrandService
	logger  *zap.Logger
}

// NewErrandHandler creates a new ErrandHandler.
func NewErrandHandler(service *services.ErrandService, logger *zap.Logger) *ErrandHandler {
	return &ErrandHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the errand routes with the Fiber app.
func (h *ErrandHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/errands", h.HandleCreateErrand)
	router.Get("/list/:userId", h.HandleListErrands)
	router.Put("/update/:errandId", h.HandleUpdateErrand)
	router.Delete("/delete/:errandId", h.HandleDeleteErrand)
}

// CreateErrandRequest represents the request body for a new errand.
type CreateErrandRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	UserID      string `json:"userId"`
}

// UpdateErrandRequest represents the request body for an errand update.
type UpdateErrandRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// HandleCreateErrand creates a new errand for an existing user.
func (h *ErrandHandler) HandleCreateErrand(c *fiber.Ctx) error {
	var req CreateErrandRequest
	if err := parseBody(c, &req); err != nil {
		h.logger.Debug("invalid errand body", zap.Error(err))
		return message(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	errand, err := h.service.Create(c.UserContext(), req.Title, req.Description, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTitleRequired):
			return message(c, fiber.StatusNotFound, msgTitleRequired)
		case errors.Is(err, services.ErrUserNotFound):
			return message(c, fiber.StatusNotFound, msgOwnerNotFound)
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   msgErrandCreated,
		"newErrand": errand,
	})
}

// HandleListErrands returns the errands of a user. The user does not have
// to exist: errands of deleted users are still listed.
func (h *ErrandHandler) HandleListErrands(c *fiber.Ctx) error {
	errands, err := h.service.ListForUser(c.UserContext(), c.Params("userId"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(errands)
}

// HandleUpdateErrand replaces the title and description of an errand.
func (h *ErrandHandler) HandleUpdateErrand(c *fiber.Ctx) error {
	var req UpdateErrandRequest
	if err := parseBody(c, &req); err != nil {
		h.logger.Debug("invalid errand update body", zap.Error(err))
		return message(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	if err := h.service.Update(c.UserContext(), c.Params("errandId"), req.Title, req.Description); err != nil {
		switch {
		case errors.Is(err, services.ErrErrandNotFound):
			return message(c, fiber.StatusNotFound, msgErrandNotFound)
		case errors.Is(err, services.ErrTitleRequired):
			return message(c, fiber.StatusNotFound, msgUpdateTitleNeeded)
		}
		return err
	}
	return message(c, fiber.StatusOK, msgErrandUpdated)
}

// HandleDeleteErrand removes an errand.
func (h *ErrandHandler) HandleDeleteErrand(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("errandId")); err != nil {
		if errors.Is(err, services.ErrErrandNotFound) {
			return message(c, fiber.StatusNotFound, msgErrandNotFound)
		}
		return err
	}
	return message(c, fiber.StatusOK, msgErrandDeleted)
}
