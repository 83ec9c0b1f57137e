package receiver

import (
	"FoodShare-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ReceiverRepository interface {
		CreateReceiver(ctx context.Context, receiver *entities.Receiver) error
		GetReceivers(ctx context.Context) ([]*entities.Receiver, error)
	}

	receiverRepository struct {
		db *gorm.DB
	}
)

func NewReceiverRepository(db *gorm.DB) ReceiverRepository {
	return &receiverRepository{db: db}
}

func (r *receiverRepository) CreateReceiver(ctx context.Context, receiver *entities.Receiver) error {
	return r.db.WithContext(ctx).Create(receiver).Error
}

func (r *receiverRepository) GetReceivers(ctx context.Context) ([]*entities.Receiver, error) {
	var receivers []*entities.Receiver
	if err := r.db.WithContext(ctx).Order("receiver_id asc").Find(&receivers).Error; err != nil {
		return nil, err
	}
	return receivers, nil
}
