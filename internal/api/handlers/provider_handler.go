package handlers

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/internal/api/presenters"
	"FoodShare-Backend/pkg/provider"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ProviderHandler interface {
		AddProvider(c *fiber.Ctx) error
		GetProviders(c *fiber.Ctx) error
	}

	providerHandler struct {
		providerService provider.ProviderService
		validator       *validator.Validate
	}
)

func NewProviderHandler(providerService provider.ProviderService, validator *validator.Validate) ProviderHandler {
	return &providerHandler{
		providerService: providerService,
		validator:       validator,
	}
}

func (h *providerHandler) AddProvider(c *fiber.Ctx) error {
	req := new(domain.AddProviderRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddProvider, err)
	}

	res, err := h.providerService.AddProvider(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddProvider, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddProvider)
}

func (h *providerHandler) GetProviders(c *fiber.Ctx) error {
	providers, err := h.providerService.GetProviders(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetProviders, err)
	}

	return presenters.SuccessResponse(c, providers, fiber.StatusOK, domain.MessageSuccessGetProviders)
}
