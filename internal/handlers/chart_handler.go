package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/martinkovac/poolwatch/internal/dto"
	"github.com/martinkovac/poolwatch/internal/services"
)

type ChartHandler struct {
	chartService *services.ChartService
}

func NewChartHandler(chartService *services.ChartService) *ChartHandler {
	return &ChartHandler{chartService: chartService}
}

func (h *ChartHandler) Series(c *fiber.Ctx) error {
	resp, err := h.chartService.Series()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to build chart data",
		})
	}

	return c.JSON(resp)
}
