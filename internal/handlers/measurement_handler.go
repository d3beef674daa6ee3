package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/martinkovac/poolwatch/internal/chemistry"
	"github.com/martinkovac/poolwatch/internal/dto"
	"github.com/martinkovac/poolwatch/internal/middleware"
	"github.com/martinkovac/poolwatch/internal/services"
)

type MeasurementHandler struct {
	measurementService *services.MeasurementService
}

func NewMeasurementHandler(measurementService *services.MeasurementService) *MeasurementHandler {
	return &MeasurementHandler{measurementService: measurementService}
}

func (h *MeasurementHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateMeasurementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	m, err := h.measurementService.Create(userID, &req)
	if err != nil {
		if isInvalidReading(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to store measurement",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(m)
}

// History serves the full history, or one calendar month when both year and
// month query parameters are present.
func (h *MeasurementHandler) History(c *fiber.Ctx) error {
	year, month, err := optionalPeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	resp, err := h.measurementService.History(year, month)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPeriod) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load history",
		})
	}

	return c.JSON(resp)
}

func isInvalidReading(err error) bool {
	return errors.Is(err, chemistry.ErrNegativeChlorine) ||
		errors.Is(err, chemistry.ErrInvalidPH) ||
		errors.Is(err, chemistry.ErrInvalidTemperature) ||
		errors.Is(err, services.ErrInvalidDate) ||
		errors.Is(err, services.ErrInvalidTime)
}

func optionalPeriod(c *fiber.Ctx) (*int, *int, error) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")
	if yearStr == "" && monthStr == "" {
		return nil, nil, nil
	}
	if yearStr == "" || monthStr == "" {
		return nil, nil, errors.New("year and month must be provided together")
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return nil, nil, errors.New("year must be a number")
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return nil, nil, errors.New("month must be a number")
	}
	return &year, &month, nil
}
