package registry

import (
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/supplychain/internal/domain"
	"github.com/vladislavdragonenkov/supplychain/internal/messaging/kafka"
)

// AddClient валидирует payload, выделяет идентификатор и сохраняет нового клиента.
// Валидация выполняется целиком до первой записи: операция не оставляет частичного состояния.
func (s *Service) AddClient(payload domain.ClientPayload) (client domain.Client, err error) {
	defer s.observe("add_client", time.Now(), &err)

	if err = payload.Validate(); err != nil {
		return domain.Client{}, err
	}

	id, err := s.nextID()
	if err != nil {
		return domain.Client{}, err
	}

	client = domain.Client{
		ID:        id,
		Name:      payload.Name,
		Email:     payload.Email,
		Phone:     payload.Phone,
		OrderIDs:  []uint64{},
		CreatedAt: s.clock(),
		UpdatedAt: nil,
	}
	if err = s.clients.Put(client); err != nil {
		return domain.Client{}, fmt.Errorf("persist client %d: %w", id, err)
	}

	if s.metrics != nil {
		s.metrics.RecordEntityCreated("client")
	}
	s.enqueueEvent("client", client.ID, kafka.EventTypeClientCreated,
		kafka.NewEntityEvent(kafka.EventTypeClientCreated, "client", client.ID, client.Name))

	s.logger.WithField("client_id", client.ID).Info("client created")
	return client, nil
}

// GetClient возвращает клиента по идентификатору.
func (s *Service) GetClient(id uint64) (client domain.Client, err error) {
	defer s.observe("get_client", time.Now(), &err)
	return s.getClient(id)
}
