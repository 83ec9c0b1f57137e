package provider

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"context"
	"strings"
)

type (
	ProviderService interface {
		AddProvider(ctx context.Context, req domain.AddProviderRequest) (domain.ProviderResponse, error)
		GetProviders(ctx context.Context) ([]domain.ProviderResponse, error)
	}

	providerService struct {
		providerRepository ProviderRepository
	}
)

func NewProviderService(providerRepository ProviderRepository) ProviderService {
	return &providerService{providerRepository: providerRepository}
}

func (s *providerService) AddProvider(ctx context.Context, req domain.AddProviderRequest) (domain.ProviderResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return domain.ProviderResponse{}, domain.ErrProviderNameRequired
	}

	provider := &entities.Provider{
		Name:    req.Name,
		Type:    req.Type,
		Address: req.Address,
		City:    req.City,
		Contact: req.Contact,
	}

	if err := s.providerRepository.CreateProvider(ctx, provider); err != nil {
		return domain.ProviderResponse{}, err
	}

	return toProviderResponse(provider), nil
}

func (s *providerService) GetProviders(ctx context.Context) ([]domain.ProviderResponse, error) {
	providers, err := s.providerRepository.GetProviders(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ProviderResponse, 0, len(providers))
	for _, provider := range providers {
		response = append(response, toProviderResponse(provider))
	}
	return response, nil
}

func toProviderResponse(provider *entities.Provider) domain.ProviderResponse {
	return domain.ProviderResponse{
		ID:      provider.ID,
		Name:    provider.Name,
		Type:    provider.Type,
		Address: provider.Address,
		City:    provider.City,
		Contact: provider.Contact,
	}
}
