package handlers

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/internal/api/presenters"
	"FoodShare-Backend/pkg/receiver"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReceiverHandler interface {
		AddReceiver(c *fiber.Ctx) error
		GetReceivers(c *fiber.Ctx) error
	}

	receiverHandler struct {
		receiverService receiver.ReceiverService
		validator       *validator.Validate
	}
)

func NewReceiverHandler(receiverService receiver.ReceiverService, validator *validator.Validate) ReceiverHandler {
	return &receiverHandler{
		receiverService: receiverService,
		validator:       validator,
	}
}

func (h *receiverHandler) AddReceiver(c *fiber.Ctx) error {
	req := new(domain.AddReceiverRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddReceiver, err)
	}

	res, err := h.receiverService.AddReceiver(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddReceiver, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddReceiver)
}

func (h *receiverHandler) GetReceivers(c *fiber.Ctx) error {
	receivers, err := h.receiverService.GetReceivers(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetReceivers, err)
	}

	return presenters.SuccessResponse(c, receivers, fiber.StatusOK, domain.MessageSuccessGetReceivers)
}
