package analytics

import (
	"FoodShare-Backend/domain"
	"context"
	"math"
	"sort"
	"time"
)

type (
	AnalyticsService interface {
		GetOverview(ctx context.Context) (domain.OverviewResponse, error)
		GetListingsByCity(ctx context.Context) ([]domain.CityListings, error)
		GetFoodTypeDistribution(ctx context.Context) ([]domain.FoodTypeCount, error)
		GetClaimsOverTime(ctx context.Context) ([]domain.ClaimsPerDay, error)
	}

	analyticsService struct {
		analyticsRepository AnalyticsRepository
	}
)

func NewAnalyticsService(analyticsRepository AnalyticsRepository) AnalyticsService {
	return &analyticsService{analyticsRepository: analyticsRepository}
}

func (s *analyticsService) GetOverview(ctx context.Context) (domain.OverviewResponse, error) {
	today := startOfToday()

	activeListings, err := s.analyticsRepository.CountActiveListings(ctx, today)
	if err != nil {
		return domain.OverviewResponse{}, err
	}

	totalQuantity, err := s.analyticsRepository.SumActiveQuantity(ctx, today)
	if err != nil {
		return domain.OverviewResponse{}, err
	}

	totalClaims, err := s.analyticsRepository.CountClaims(ctx)
	if err != nil {
		return domain.OverviewResponse{}, err
	}

	completedClaims, err := s.analyticsRepository.CountClaimsByStatus(ctx, domain.ClaimStatusCompleted)
	if err != nil {
		return domain.OverviewResponse{}, err
	}

	providers, err := s.analyticsRepository.CountProviders(ctx)
	if err != nil {
		return domain.OverviewResponse{}, err
	}

	receivers, err := s.analyticsRepository.CountReceivers(ctx)
	if err != nil {
		return domain.OverviewResponse{}, err
	}

	listingsByCity, err := s.analyticsRepository.GetListingsByCity(ctx)
	if err != nil {
		return domain.OverviewResponse{}, err
	}

	return domain.OverviewResponse{
		ActiveListings:     activeListings,
		TotalQuantity:      totalQuantity,
		ClaimsCompletedPct: completedPercentage(completedClaims, totalClaims),
		Providers:          providers,
		Receivers:          receivers,
		ListingsByCity:     listingsByCity,
	}, nil
}

func (s *analyticsService) GetListingsByCity(ctx context.Context) ([]domain.CityListings, error) {
	return s.analyticsRepository.GetListingsByCity(ctx)
}

func (s *analyticsService) GetFoodTypeDistribution(ctx context.Context) ([]domain.FoodTypeCount, error) {
	return s.analyticsRepository.GetFoodTypeDistribution(ctx)
}

// GetClaimsOverTime groups claim timestamps per calendar day. Grouping is
// done here rather than in SQL because date truncation syntax differs
// between the SQLite and PostgreSQL backends.
func (s *analyticsService) GetClaimsOverTime(ctx context.Context) ([]domain.ClaimsPerDay, error) {
	timestamps, err := s.analyticsRepository.GetClaimTimestamps(ctx)
	if err != nil {
		return nil, err
	}

	perDay := make(map[string]int64)
	for _, ts := range timestamps {
		perDay[ts.Format("2006-01-02")]++
	}

	days := make([]string, 0, len(perDay))
	for day := range perDay {
		days = append(days, day)
	}
	sort.Strings(days)

	response := make([]domain.ClaimsPerDay, 0, len(days))
	for _, day := range days {
		response = append(response, domain.ClaimsPerDay{
			Day:   day,
			Count: perDay[day],
		})
	}
	return response, nil
}

// completedPercentage reports 0 when there are no claims, otherwise the
// completed share in percent rounded to two decimals.
func completedPercentage(completed, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*100*100) / 100
}

func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
