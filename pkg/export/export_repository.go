package export

import (
	"FoodShare-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ExportRepository interface {
		GetAllProviders(ctx context.Context) ([]*entities.Provider, error)
		GetAllListings(ctx context.Context) ([]*entities.FoodListing, error)
		GetAllClaims(ctx context.Context) ([]*entities.Claim, error)
	}

	exportRepository struct {
		db *gorm.DB
	}
)

func NewExportRepository(db *gorm.DB) ExportRepository {
	return &exportRepository{db: db}
}

func (r *exportRepository) GetAllProviders(ctx context.Context) ([]*entities.Provider, error) {
	var providers []*entities.Provider
	if err := r.db.WithContext(ctx).Order("provider_id asc").Find(&providers).Error; err != nil {
		return nil, err
	}
	return providers, nil
}

func (r *exportRepository) GetAllListings(ctx context.Context) ([]*entities.FoodListing, error) {
	var listings []*entities.FoodListing
	if err := r.db.WithContext(ctx).Order("food_id asc").Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *exportRepository) GetAllClaims(ctx context.Context) ([]*entities.Claim, error) {
	var claims []*entities.Claim
	if err := r.db.WithContext(ctx).Order("claim_id asc").Find(&claims).Error; err != nil {
		return nil, err
	}
	return claims, nil
}
