package migration

import (
	"FoodShare-Backend/entities"
	"log"

	"gorm.io/gorm"
)

// Migrate creates the four tables when missing. AutoMigrate is
// idempotent, so the admin endpoint may call this repeatedly.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Provider{}); err != nil {
		log.Printf("Error migrating providers table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Receiver{}); err != nil {
		log.Printf("Error migrating receivers table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodListing{}); err != nil {
		log.Printf("Error migrating food_listings table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Claim{}); err != nil {
		log.Printf("Error migrating claims table: %v", err)
		return err
	}

	return nil
}
