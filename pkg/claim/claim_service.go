package claim

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type (
	ClaimService interface {
		CreateClaim(ctx context.Context, req domain.CreateClaimRequest) (domain.ClaimResponse, error)
		GetClaims(ctx context.Context, status string) ([]domain.ClaimResponse, error)
		UpdateClaimStatus(ctx context.Context, id uint, req domain.UpdateClaimStatusRequest) error
	}

	claimService struct {
		claimRepository ClaimRepository
	}
)

func NewClaimService(claimRepository ClaimRepository) ClaimService {
	return &claimService{claimRepository: claimRepository}
}

// CreateClaim records a claim with status Pending. Referenced food and
// receiver ids are accepted as given, matching the dashboard behavior of
// not checking them against the other tables.
func (s *claimService) CreateClaim(ctx context.Context, req domain.CreateClaimRequest) (domain.ClaimResponse, error) {
	claim := &entities.Claim{
		FoodID:     req.FoodID,
		ReceiverID: req.ReceiverID,
		Status:     domain.ClaimStatusPending,
		Timestamp:  time.Now(),
	}

	if err := s.claimRepository.CreateClaim(ctx, claim); err != nil {
		return domain.ClaimResponse{}, err
	}

	return toClaimResponse(claim), nil
}

func (s *claimService) GetClaims(ctx context.Context, status string) ([]domain.ClaimResponse, error) {
	if status == "All" {
		status = ""
	}
	if status != "" && !isValidStatus(status) {
		return nil, domain.ErrInvalidClaimStatus
	}

	claims, err := s.claimRepository.GetClaims(ctx, status)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ClaimResponse, 0, len(claims))
	for _, claim := range claims {
		response = append(response, toClaimResponse(claim))
	}
	return response, nil
}

func (s *claimService) UpdateClaimStatus(ctx context.Context, id uint, req domain.UpdateClaimStatusRequest) error {
	claim, err := s.claimRepository.GetClaimByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrClaimNotFound
		}
		return err
	}

	// status transitions are unconstrained, any of the three values may
	// replace any other
	claim.Status = req.Status
	return s.claimRepository.UpdateClaim(ctx, claim)
}

func isValidStatus(status string) bool {
	switch status {
	case domain.ClaimStatusPending, domain.ClaimStatusCompleted, domain.ClaimStatusCancelled:
		return true
	}
	return false
}

func toClaimResponse(claim *entities.Claim) domain.ClaimResponse {
	return domain.ClaimResponse{
		ID:         claim.ID,
		FoodID:     claim.FoodID,
		ReceiverID: claim.ReceiverID,
		Status:     claim.Status,
		Timestamp:  claim.Timestamp,
	}
}
