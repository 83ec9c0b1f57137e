package domain

import "errors"

var (
	MessageSuccessGetReceivers = "receivers retrieved successfully"
	MessageSuccessAddReceiver  = "receiver added successfully"

	MessageFailedGetReceivers = "failed to retrieve receivers"
	MessageFailedAddReceiver  = "failed to add receiver"

	ErrReceiverNameRequired = errors.New("receiver name is required")
)

type (
	AddReceiverRequest struct {
		Name    string `json:"name" validate:"required"`
		Type    string `json:"type" validate:"omitempty"`
		City    string `json:"city" validate:"omitempty"`
		Contact string `json:"contact" validate:"omitempty"`
	}

	ReceiverResponse struct {
		ID      uint   `json:"receiver_id"`
		Name    string `json:"name"`
		Type    string `json:"type"`
		City    string `json:"city"`
		Contact string `json:"contact"`
	}
)
