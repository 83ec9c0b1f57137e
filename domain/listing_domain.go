package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetListings       = "food listings retrieved successfully"
	MessageSuccessAddListing        = "food listing added successfully"
	MessageSuccessGetListingFilters = "listing filters retrieved successfully"

	MessageFailedGetListings       = "failed to retrieve food listings"
	MessageFailedAddListing        = "failed to add food listing"
	MessageFailedGetListingFilters = "failed to retrieve listing filters"

	ErrInvalidExpiryDate = errors.New("invalid expiry date, expected YYYY-MM-DD")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
)

type (
	AddListingRequest struct {
		FoodName     string `json:"food_name" validate:"required"`
		Quantity     int    `json:"quantity" validate:"required"`
		ExpiryDate   string `json:"expiry_date" validate:"required"`
		ProviderID   uint   `json:"provider_id" validate:"required"`
		ProviderType string `json:"provider_type" validate:"omitempty"`
		Location     string `json:"location" validate:"omitempty"`
		FoodType     string `json:"food_type" validate:"omitempty"`
		MealType     string `json:"meal_type" validate:"omitempty"`
	}

	ListingResponse struct {
		ID           uint      `json:"food_id"`
		FoodName     string    `json:"food_name"`
		Quantity     int       `json:"quantity"`
		ExpiryDate   time.Time `json:"expiry_date"`
		ProviderID   uint      `json:"provider_id"`
		ProviderType string    `json:"provider_type"`
		Location     string    `json:"location"`
		FoodType     string    `json:"food_type"`
		MealType     string    `json:"meal_type"`
	}

	ListingFiltersResponse struct {
		Locations []string `json:"locations"`
		FoodTypes []string `json:"food_types"`
	}
)
