package entities

import "time"

type Claim struct {
	ID         uint      `gorm:"column:claim_id;primaryKey;autoIncrement" json:"claim_id"`
	FoodID     uint      `json:"food_id"`
	ReceiverID uint      `json:"receiver_id"`
	Status     string    `gorm:"type:varchar(20);default:Pending" json:"status"`
	Timestamp  time.Time `gorm:"column:timestamp;default:CURRENT_TIMESTAMP" json:"timestamp"`

	FoodListing *FoodListing `gorm:"foreignKey:FoodID" json:"-"`
	Receiver    *Receiver    `gorm:"foreignKey:ReceiverID" json:"-"`
}

func (Claim) TableName() string { return "claims" }
