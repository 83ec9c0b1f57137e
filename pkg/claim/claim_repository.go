package claim

import (
	"FoodShare-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	ClaimRepository interface {
		CreateClaim(ctx context.Context, claim *entities.Claim) error
		GetClaims(ctx context.Context, status string) ([]*entities.Claim, error)
		GetClaimByID(ctx context.Context, id uint) (*entities.Claim, error)
		UpdateClaim(ctx context.Context, claim *entities.Claim) error
	}

	claimRepository struct {
		db *gorm.DB
	}
)

func NewClaimRepository(db *gorm.DB) ClaimRepository {
	return &claimRepository{db: db}
}

func (r *claimRepository) CreateClaim(ctx context.Context, claim *entities.Claim) error {
	return r.db.WithContext(ctx).Create(claim).Error
}

func (r *claimRepository) GetClaims(ctx context.Context, status string) ([]*entities.Claim, error) {
	query := r.db.WithContext(ctx)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var claims []*entities.Claim
	if err := query.Order("timestamp desc").Find(&claims).Error; err != nil {
		return nil, err
	}
	return claims, nil
}

func (r *claimRepository) GetClaimByID(ctx context.Context, id uint) (*entities.Claim, error) {
	var claim entities.Claim
	if err := r.db.WithContext(ctx).Where("claim_id = ?", id).First(&claim).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, err
	}
	return &claim, nil
}

func (r *claimRepository) UpdateClaim(ctx context.Context, claim *entities.Claim) error {
	return r.db.WithContext(ctx).Save(claim).Error
}
