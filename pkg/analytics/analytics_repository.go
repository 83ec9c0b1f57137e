package analytics

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	AnalyticsRepository interface {
		CountActiveListings(ctx context.Context, today time.Time) (int64, error)
		SumActiveQuantity(ctx context.Context, today time.Time) (int64, error)
		CountClaims(ctx context.Context) (int64, error)
		CountClaimsByStatus(ctx context.Context, status string) (int64, error)
		CountProviders(ctx context.Context) (int64, error)
		CountReceivers(ctx context.Context) (int64, error)
		GetListingsByCity(ctx context.Context) ([]domain.CityListings, error)
		GetFoodTypeDistribution(ctx context.Context) ([]domain.FoodTypeCount, error)
		GetClaimTimestamps(ctx context.Context) ([]time.Time, error)
	}

	analyticsRepository struct {
		db *gorm.DB
	}
)

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) CountActiveListings(ctx context.Context, today time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.FoodListing{}).
		Where("expiry_date >= ?", today).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *analyticsRepository) SumActiveQuantity(ctx context.Context, today time.Time) (int64, error) {
	var result struct {
		Total int64
	}
	if err := r.db.WithContext(ctx).Model(&entities.FoodListing{}).
		Select("COALESCE(SUM(quantity), 0) as total").
		Where("expiry_date >= ?", today).
		Scan(&result).Error; err != nil {
		return 0, err
	}
	return result.Total, nil
}

func (r *analyticsRepository) CountClaims(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Claim{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *analyticsRepository) CountClaimsByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Claim{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *analyticsRepository) CountProviders(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Provider{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *analyticsRepository) CountReceivers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Receiver{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *analyticsRepository) GetListingsByCity(ctx context.Context) ([]domain.CityListings, error) {
	var rows []domain.CityListings

	// NULLIF folds empty strings in with NULLs so both render as Unknown
	query := `
		SELECT COALESCE(NULLIF(location, ''), 'Unknown') AS location, COUNT(*) AS listings
		FROM food_listings
		GROUP BY COALESCE(NULLIF(location, ''), 'Unknown')
		ORDER BY listings DESC
	`

	if err := r.db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *analyticsRepository) GetFoodTypeDistribution(ctx context.Context) ([]domain.FoodTypeCount, error) {
	var rows []domain.FoodTypeCount

	query := `
		SELECT COALESCE(NULLIF(food_type, ''), 'Unknown') AS food_type, COUNT(*) AS count
		FROM food_listings
		GROUP BY COALESCE(NULLIF(food_type, ''), 'Unknown')
		ORDER BY count DESC
	`

	if err := r.db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *analyticsRepository) GetClaimTimestamps(ctx context.Context) ([]time.Time, error) {
	var timestamps []time.Time
	if err := r.db.WithContext(ctx).Model(&entities.Claim{}).
		Order("timestamp asc").
		Pluck("timestamp", &timestamps).Error; err != nil {
		return nil, err
	}
	return timestamps, nil
}
