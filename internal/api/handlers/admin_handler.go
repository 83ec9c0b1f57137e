package handlers

import (
	migration "FoodShare-Backend/cmd/database/migrate"
	"FoodShare-Backend/cmd/database/seeder"
	"FoodShare-Backend/domain"
	"FoodShare-Backend/internal/api/presenters"
	"FoodShare-Backend/pkg/export"
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type (
	AdminHandler interface {
		Migrate(c *fiber.Ctx) error
		Seed(c *fiber.Ctx) error
		ExportProviders(c *fiber.Ctx) error
		ExportListings(c *fiber.Ctx) error
		ExportClaims(c *fiber.Ctx) error
	}

	adminHandler struct {
		db            *gorm.DB
		exportService export.ExportService
	}
)

func NewAdminHandler(db *gorm.DB, exportService export.ExportService) AdminHandler {
	return &adminHandler{
		db:            db,
		exportService: exportService,
	}
}

func (h *adminHandler) Migrate(c *fiber.Ctx) error {
	if err := migration.Migrate(h.db); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedMigrate, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMigrate)
}

func (h *adminHandler) Seed(c *fiber.Ctx) error {
	message, err := seeder.Seed(c.Context(), h.db)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSeed, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, message)
}

func (h *adminHandler) ExportProviders(c *fiber.Ctx) error {
	return h.sendCSV(c, "providers.csv", h.exportService.ExportProviders)
}

func (h *adminHandler) ExportListings(c *fiber.Ctx) error {
	return h.sendCSV(c, "food_listings.csv", h.exportService.ExportListings)
}

func (h *adminHandler) ExportClaims(c *fiber.Ctx) error {
	return h.sendCSV(c, "claims.csv", h.exportService.ExportClaims)
}

func (h *adminHandler) sendCSV(c *fiber.Ctx, filename string, exportFn func(context.Context) ([]byte, error)) error {
	data, err := exportFn(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedExport, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}
