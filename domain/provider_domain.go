package domain

import "errors"

var (
	MessageSuccessGetProviders = "providers retrieved successfully"
	MessageSuccessAddProvider  = "provider added successfully"

	MessageFailedGetProviders = "failed to retrieve providers"
	MessageFailedAddProvider  = "failed to add provider"

	ErrProviderNameRequired = errors.New("provider name is required")
)

type (
	AddProviderRequest struct {
		Name    string `json:"name" validate:"required"`
		Type    string `json:"type" validate:"omitempty"`
		Address string `json:"address" validate:"omitempty"`
		City    string `json:"city" validate:"omitempty"`
		Contact string `json:"contact" validate:"omitempty"`
	}

	ProviderResponse struct {
		ID      uint   `json:"provider_id"`
		Name    string `json:"name"`
		Type    string `json:"type"`
		Address string `json:"address"`
		City    string `json:"city"`
		Contact string `json:"contact"`
	}
)
