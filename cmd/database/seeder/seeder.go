package seeder

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

// Seed inserts the demo dataset once. The provider count guards against
// duplication, and the whole batch runs in a single transaction so a
// partial failure leaves nothing behind.
func Seed(ctx context.Context, db *gorm.DB) (string, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&entities.Provider{}).Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		return domain.MessageSeedAlreadyPresent, nil
	}

	today := time.Now()

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		providers := []*entities.Provider{
			{Name: "FreshBites Restaurant", Type: "Restaurant", Address: "123 Market Street", City: "Mumbai", Contact: "+91-9876543210"},
			{Name: "Happy Meals", Type: "Caterer", Address: "45 Food Plaza", City: "Delhi", Contact: "+91-9876501234"},
		}
		if err := tx.Create(&providers).Error; err != nil {
			return err
		}

		receivers := []*entities.Receiver{
			{Name: "Helping Hands NGO", Type: "NGO", City: "Mumbai", Contact: "9988776655"},
			{Name: "Care Kitchen", Type: "Community Kitchen", City: "Delhi", Contact: "8877665544"},
		}
		if err := tx.Create(&receivers).Error; err != nil {
			return err
		}

		listings := []*entities.FoodListing{
			{
				FoodName:     "Vegetable Curry",
				Quantity:     20,
				ExpiryDate:   today.AddDate(0, 0, 3),
				ProviderID:   providers[0].ID,
				ProviderType: "Restaurant",
				Location:     "Mumbai",
				FoodType:     "Vegetarian",
				MealType:     "Lunch",
			},
			{
				FoodName:     "Chicken Biryani",
				Quantity:     15,
				ExpiryDate:   today.AddDate(0, 0, 1),
				ProviderID:   providers[1].ID,
				ProviderType: "Caterer",
				Location:     "Delhi",
				FoodType:     "Non-Vegetarian",
				MealType:     "Dinner",
			},
		}
		if err := tx.Create(&listings).Error; err != nil {
			return err
		}

		claims := []*entities.Claim{
			{FoodID: listings[0].ID, ReceiverID: receivers[0].ID, Status: domain.ClaimStatusCompleted, Timestamp: time.Now()},
			{FoodID: listings[1].ID, ReceiverID: receivers[1].ID, Status: domain.ClaimStatusPending, Timestamp: time.Now()},
		}
		return tx.Create(&claims).Error
	})
	if err != nil {
		return "", err
	}

	return domain.MessageSuccessSeed, nil
}
