package handlers

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/internal/api/presenters"
	"FoodShare-Backend/pkg/listing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ListingHandler interface {
		AddListing(c *fiber.Ctx) error
		GetListings(c *fiber.Ctx) error
		GetListingFilters(c *fiber.Ctx) error
	}

	listingHandler struct {
		listingService listing.ListingService
		validator      *validator.Validate
	}
)

func NewListingHandler(listingService listing.ListingService, validator *validator.Validate) ListingHandler {
	return &listingHandler{
		listingService: listingService,
		validator:      validator,
	}
}

func (h *listingHandler) AddListing(c *fiber.Ctx) error {
	req := new(domain.AddListingRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddListing, err)
	}

	res, err := h.listingService.AddListing(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddListing, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddListing)
}

func (h *listingHandler) GetListings(c *fiber.Ctx) error {
	location := c.Query("location")
	foodType := c.Query("food_type")

	listings, err := h.listingService.GetAvailableListings(c.Context(), location, foodType)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetListings, err)
	}

	return presenters.SuccessResponse(c, listings, fiber.StatusOK, domain.MessageSuccessGetListings)
}

func (h *listingHandler) GetListingFilters(c *fiber.Ctx) error {
	filters, err := h.listingService.GetListingFilters(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetListingFilters, err)
	}

	return presenters.SuccessResponse(c, filters, fiber.StatusOK, domain.MessageSuccessGetListingFilters)
}
