package entities

import "time"

type FoodListing struct {
	ID           uint      `gorm:"column:food_id;primaryKey;autoIncrement" json:"food_id"`
	FoodName     string    `gorm:"not null" json:"food_name"`
	Quantity     int       `gorm:"check:quantity > 0" json:"quantity"`
	ExpiryDate   time.Time `gorm:"not null" json:"expiry_date"`
	ProviderID   uint      `json:"provider_id"`
	ProviderType string    `json:"provider_type"`
	Location     string    `json:"location"`
	FoodType     string    `json:"food_type"`
	MealType     string    `json:"meal_type"`

	Provider *Provider `gorm:"foreignKey:ProviderID" json:"-"`
}

func (FoodListing) TableName() string { return "food_listings" }
