package entities

type Provider struct {
	ID      uint   `gorm:"column:provider_id;primaryKey;autoIncrement" json:"provider_id"`
	Name    string `gorm:"not null" json:"name"`
	Type    string `json:"type"`
	Address string `json:"address"`
	City    string `json:"city"`
	Contact string `json:"contact"`

	Listings []*FoodListing `gorm:"foreignKey:ProviderID" json:"-"`
}

func (Provider) TableName() string { return "providers" }
