package listing

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"context"
	"time"
)

type (
	ListingService interface {
		AddListing(ctx context.Context, req domain.AddListingRequest) (domain.ListingResponse, error)
		GetAvailableListings(ctx context.Context, location, foodType string) ([]domain.ListingResponse, error)
		GetListingFilters(ctx context.Context) (domain.ListingFiltersResponse, error)
	}

	listingService struct {
		listingRepository ListingRepository
	}
)

func NewListingService(listingRepository ListingRepository) ListingService {
	return &listingService{listingRepository: listingRepository}
}

func (s *listingService) AddListing(ctx context.Context, req domain.AddListingRequest) (domain.ListingResponse, error) {
	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return domain.ListingResponse{}, domain.ErrInvalidExpiryDate
	}

	if req.Quantity <= 0 {
		return domain.ListingResponse{}, domain.ErrInvalidQuantity
	}

	listing := &entities.FoodListing{
		FoodName:     req.FoodName,
		Quantity:     req.Quantity,
		ExpiryDate:   expiryDate,
		ProviderID:   req.ProviderID,
		ProviderType: req.ProviderType,
		Location:     req.Location,
		FoodType:     req.FoodType,
		MealType:     req.MealType,
	}

	if err := s.listingRepository.CreateListing(ctx, listing); err != nil {
		return domain.ListingResponse{}, err
	}

	return toListingResponse(listing), nil
}

func (s *listingService) GetAvailableListings(ctx context.Context, location, foodType string) ([]domain.ListingResponse, error) {
	// "All" mirrors the dashboard dropdown value for an unset filter
	if location == "All" {
		location = ""
	}
	if foodType == "All" {
		foodType = ""
	}

	listings, err := s.listingRepository.GetAvailableListings(ctx, location, foodType, startOfToday())
	if err != nil {
		return nil, err
	}

	response := make([]domain.ListingResponse, 0, len(listings))
	for _, listing := range listings {
		response = append(response, toListingResponse(listing))
	}
	return response, nil
}

func (s *listingService) GetListingFilters(ctx context.Context) (domain.ListingFiltersResponse, error) {
	locations, err := s.listingRepository.GetDistinctLocations(ctx)
	if err != nil {
		return domain.ListingFiltersResponse{}, err
	}

	foodTypes, err := s.listingRepository.GetDistinctFoodTypes(ctx)
	if err != nil {
		return domain.ListingFiltersResponse{}, err
	}

	return domain.ListingFiltersResponse{
		Locations: locations,
		FoodTypes: foodTypes,
	}, nil
}

func toListingResponse(listing *entities.FoodListing) domain.ListingResponse {
	return domain.ListingResponse{
		ID:           listing.ID,
		FoodName:     listing.FoodName,
		Quantity:     listing.Quantity,
		ExpiryDate:   listing.ExpiryDate,
		ProviderID:   listing.ProviderID,
		ProviderType: listing.ProviderType,
		Location:     listing.Location,
		FoodType:     listing.FoodType,
		MealType:     listing.MealType,
	}
}

func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
