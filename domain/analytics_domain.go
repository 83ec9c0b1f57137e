package domain

var (
	MessageSuccessGetOverview       = "overview retrieved successfully"
	MessageSuccessGetListingsByCity = "listings by city retrieved successfully"
	MessageSuccessGetFoodTypes      = "food type distribution retrieved successfully"
	MessageSuccessGetClaimsOverTime = "claims over time retrieved successfully"

	MessageFailedGetOverview       = "failed to retrieve overview"
	MessageFailedGetListingsByCity = "failed to retrieve listings by city"
	MessageFailedGetFoodTypes      = "failed to retrieve food type distribution"
	MessageFailedGetClaimsOverTime = "failed to retrieve claims over time"
)

type (
	OverviewResponse struct {
		ActiveListings     int64          `json:"active_listings"`
		TotalQuantity      int64          `json:"total_quantity"`
		ClaimsCompletedPct float64        `json:"claims_completed_pct"`
		Providers          int64          `json:"providers"`
		Receivers          int64          `json:"receivers"`
		ListingsByCity     []CityListings `json:"listings_by_city"`
	}

	CityListings struct {
		Location string `json:"location"`
		Listings int64  `json:"listings"`
	}

	FoodTypeCount struct {
		FoodType string `json:"food_type"`
		Count    int64  `json:"count"`
	}

	ClaimsPerDay struct {
		Day   string `json:"day"`
		Count int64  `json:"count"`
	}
)
