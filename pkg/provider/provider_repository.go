package provider

import (
	"FoodShare-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ProviderRepository interface {
		CreateProvider(ctx context.Context, provider *entities.Provider) error
		GetProviders(ctx context.Context) ([]*entities.Provider, error)
	}

	providerRepository struct {
		db *gorm.DB
	}
)

func NewProviderRepository(db *gorm.DB) ProviderRepository {
	return &providerRepository{db: db}
}

func (r *providerRepository) CreateProvider(ctx context.Context, provider *entities.Provider) error {
	return r.db.WithContext(ctx).Create(provider).Error
}

func (r *providerRepository) GetProviders(ctx context.Context) ([]*entities.Provider, error) {
	var providers []*entities.Provider
	if err := r.db.WithContext(ctx).Order("provider_id asc").Find(&providers).Error; err != nil {
		return nil, err
	}
	return providers, nil
}
