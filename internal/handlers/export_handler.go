package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/martinkovac/poolwatch/internal/dto"
	"github.com/martinkovac/poolwatch/internal/services"
)

type ExportHandler struct {
	exportService *services.ExportService
}

func NewExportHandler(exportService *services.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

func (h *ExportHandler) ExportCSV(c *fiber.Ctx) error {
	return h.export(c, "csv", services.CSVContentType, h.exportService.CSV)
}

func (h *ExportHandler) ExportXLSX(c *fiber.Ctx) error {
	return h.export(c, "xlsx", services.XLSXContentType, h.exportService.XLSX)
}

func (h *ExportHandler) export(c *fiber.Ctx, ext, contentType string, generate func(int, int) ([]byte, error)) error {
	year, month, err := requiredPeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	payload, err := generate(year, month)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoDataForPeriod):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrInvalidPeriod):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to generate export",
			})
		}
	}

	c.Set("Content-Type", contentType)
	c.Set("Content-Disposition", "attachment; filename="+h.exportService.Filename(year, month, ext))
	c.Set("Cache-Control", "no-cache")

	return c.Send(payload)
}

func requiredPeriod(c *fiber.Ctx) (int, int, error) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		return 0, 0, errors.New("year must be a number")
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		return 0, 0, errors.New("month must be a number")
	}
	return year, month, nil
}
