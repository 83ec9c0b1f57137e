package handlers

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/internal/api/presenters"
	"FoodShare-Backend/pkg/analytics"

	"github.com/gofiber/fiber/v2"
)

type (
	AnalyticsHandler interface {
		GetOverview(c *fiber.Ctx) error
		GetListingsByCity(c *fiber.Ctx) error
		GetFoodTypeDistribution(c *fiber.Ctx) error
		GetClaimsOverTime(c *fiber.Ctx) error
	}

	analyticsHandler struct {
		analyticsService analytics.AnalyticsService
	}
)

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandler{analyticsService: analyticsService}
}

func (h *analyticsHandler) GetOverview(c *fiber.Ctx) error {
	overview, err := h.analyticsService.GetOverview(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetOverview, err)
	}

	return presenters.SuccessResponse(c, overview, fiber.StatusOK, domain.MessageSuccessGetOverview)
}

func (h *analyticsHandler) GetListingsByCity(c *fiber.Ctx) error {
	rows, err := h.analyticsService.GetListingsByCity(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetListingsByCity, err)
	}

	return presenters.SuccessResponse(c, rows, fiber.StatusOK, domain.MessageSuccessGetListingsByCity)
}

func (h *analyticsHandler) GetFoodTypeDistribution(c *fiber.Ctx) error {
	rows, err := h.analyticsService.GetFoodTypeDistribution(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoodTypes, err)
	}

	return presenters.SuccessResponse(c, rows, fiber.StatusOK, domain.MessageSuccessGetFoodTypes)
}

func (h *analyticsHandler) GetClaimsOverTime(c *fiber.Ctx) error {
	rows, err := h.analyticsService.GetClaimsOverTime(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetClaimsOverTime, err)
	}

	return presenters.SuccessResponse(c, rows, fiber.StatusOK, domain.MessageSuccessGetClaimsOverTime)
}
