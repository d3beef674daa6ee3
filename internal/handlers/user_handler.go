package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/martinkovac/poolwatch/internal/dto"
	"github.com/martinkovac/poolwatch/internal/middleware"
	"github.com/martinkovac/poolwatch/internal/services"
)

// UserHandler serves the admin user-administration endpoints. Routes are
// already gated by the admin middleware; Authorize is checked again here so
// the decision stays with the service.
type UserHandler struct {
	authService *services.AuthService
}

func NewUserHandler(authService *services.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	if err := h.authService.Authorize(middleware.GetRole(c), services.OpListUsers); err != nil {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	users, err := h.authService.ListUsers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list users",
		})
	}

	return c.JSON(fiber.Map{"users": users, "total": len(users)})
}

func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	if err := h.authService.Authorize(middleware.GetRole(c), services.OpCreateUser); err != nil {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	user, err := h.authService.CreateUser(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrCredentialsEmpty), errors.Is(err, services.ErrInvalidRole):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to create user",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}
