package entities

type Receiver struct {
	ID      uint   `gorm:"column:receiver_id;primaryKey;autoIncrement" json:"receiver_id"`
	Name    string `gorm:"not null" json:"name"`
	Type    string `json:"type"`
	City    string `json:"city"`
	Contact string `json:"contact"`

	Claims []*Claim `gorm:"foreignKey:ReceiverID" json:"-"`
}

func (Receiver) TableName() string { return "receivers" }
