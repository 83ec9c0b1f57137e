package listing

import (
	"FoodShare-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	ListingRepository interface {
		CreateListing(ctx context.Context, listing *entities.FoodListing) error
		GetAvailableListings(ctx context.Context, location, foodType string, today time.Time) ([]*entities.FoodListing, error)
		GetDistinctLocations(ctx context.Context) ([]string, error)
		GetDistinctFoodTypes(ctx context.Context) ([]string, error)
	}

	listingRepository struct {
		db *gorm.DB
	}
)

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) CreateListing(ctx context.Context, listing *entities.FoodListing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

func (r *listingRepository) GetAvailableListings(ctx context.Context, location, foodType string, today time.Time) ([]*entities.FoodListing, error) {
	query := r.db.WithContext(ctx).Where("expiry_date >= ?", today)

	if location != "" {
		query = query.Where("location = ?", location)
	}
	if foodType != "" {
		query = query.Where("food_type = ?", foodType)
	}

	var listings []*entities.FoodListing
	if err := query.Order("expiry_date asc").Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) GetDistinctLocations(ctx context.Context) ([]string, error) {
	var locations []string
	if err := r.db.WithContext(ctx).
		Raw("SELECT DISTINCT COALESCE(NULLIF(location, ''), 'Unknown') AS location FROM food_listings ORDER BY location").
		Scan(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *listingRepository) GetDistinctFoodTypes(ctx context.Context) ([]string, error) {
	var foodTypes []string
	if err := r.db.WithContext(ctx).
		Raw("SELECT DISTINCT COALESCE(NULLIF(food_type, ''), 'Unknown') AS food_type FROM food_listings ORDER BY food_type").
		Scan(&foodTypes).Error; err != nil {
		return nil, err
	}
	return foodTypes, nil
}
