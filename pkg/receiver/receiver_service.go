package receiver

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"context"
	"strings"
)

type (
	ReceiverService interface {
		AddReceiver(ctx context.Context, req domain.AddReceiverRequest) (domain.ReceiverResponse, error)
		GetReceivers(ctx context.Context) ([]domain.ReceiverResponse, error)
	}

	receiverService struct {
		receiverRepository ReceiverRepository
	}
)

func NewReceiverService(receiverRepository ReceiverRepository) ReceiverService {
	return &receiverService{receiverRepository: receiverRepository}
}

func (s *receiverService) AddReceiver(ctx context.Context, req domain.AddReceiverRequest) (domain.ReceiverResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return domain.ReceiverResponse{}, domain.ErrReceiverNameRequired
	}

	receiver := &entities.Receiver{
		Name:    req.Name,
		Type:    req.Type,
		City:    req.City,
		Contact: req.Contact,
	}

	if err := s.receiverRepository.CreateReceiver(ctx, receiver); err != nil {
		return domain.ReceiverResponse{}, err
	}

	return toReceiverResponse(receiver), nil
}

func (s *receiverService) GetReceivers(ctx context.Context) ([]domain.ReceiverResponse, error) {
	receivers, err := s.receiverRepository.GetReceivers(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ReceiverResponse, 0, len(receivers))
	for _, receiver := range receivers {
		response = append(response, toReceiverResponse(receiver))
	}
	return response, nil
}

func toReceiverResponse(receiver *entities.Receiver) domain.ReceiverResponse {
	return domain.ReceiverResponse{
		ID:      receiver.ID,
		Name:    receiver.Name,
		Type:    receiver.Type,
		City:    receiver.City,
		Contact: receiver.Contact,
	}
}
