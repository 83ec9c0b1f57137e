package domain

import (
	"errors"
	"time"
)

const (
	ClaimStatusPending   = "Pending"
	ClaimStatusCompleted = "Completed"
	ClaimStatusCancelled = "Cancelled"
)

var (
	MessageSuccessGetClaims         = "claims retrieved successfully"
	MessageSuccessCreateClaim       = "claim submitted with status Pending"
	MessageSuccessUpdateClaimStatus = "claim status updated"

	MessageFailedGetClaims         = "failed to retrieve claims"
	MessageFailedCreateClaim       = "failed to submit claim"
	MessageFailedUpdateClaimStatus = "failed to update claim status"

	ErrClaimNotFound      = errors.New("claim not found")
	ErrInvalidClaimStatus = errors.New("invalid claim status")
)

type (
	CreateClaimRequest struct {
		FoodID     uint `json:"food_id" validate:"required"`
		ReceiverID uint `json:"receiver_id" validate:"required"`
	}

	UpdateClaimStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=Pending Completed Cancelled"`
	}

	ClaimResponse struct {
		ID         uint      `json:"claim_id"`
		FoodID     uint      `json:"food_id"`
		ReceiverID uint      `json:"receiver_id"`
		Status     string    `json:"status"`
		Timestamp  time.Time `json:"timestamp"`
	}
)
