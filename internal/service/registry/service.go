package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/supplychain/internal/domain"
	"github.com/vladislavdragonenkov/supplychain/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/supplychain/internal/metrics"
)

// Service реализует слой ссылочной целостности и запросов над тремя хранилищами.
// Все зависимости внедряются явно: никаких процессно-глобальных хранилищ.
// Хост-окружение сериализует мутации, поэтому слой не занимается координацией записей.
type Service struct {
	clients   domain.ClientRepository
	suppliers domain.SupplierRepository
	orders    domain.OrderRepository
	sequence  domain.IDSequence
	clock     domain.Clock
	logger    *log.Entry
	metrics   *metrics.RegistryMetrics
	outbox    domain.OutboxRepository // опциональный transactional outbox
}

// Option настраивает Service.
type Option func(*Service)

// WithLogger задаёт logger сервиса.
func WithLogger(logger *log.Entry) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithClock задаёт источник времени (для тестов и хост-окружений с собственными часами).
func WithClock(clock domain.Clock) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

// WithOutbox включает публикацию доменных событий через transactional outbox.
func WithOutbox(outbox domain.OutboxRepository) Option {
	return func(s *Service) {
		s.outbox = outbox
	}
}

// WithoutMetrics отключает метрики (для тестов).
func WithoutMetrics() Option {
	return func(s *Service) {
		s.metrics = nil
	}
}

// NewService создаёт рабочий экземпляр сервиса реестра.
func NewService(
	clients domain.ClientRepository,
	suppliers domain.SupplierRepository,
	orders domain.OrderRepository,
	sequence domain.IDSequence,
	options ...Option,
) *Service {
	s := &Service{
		clients:   clients,
		suppliers: suppliers,
		orders:    orders,
		sequence:  sequence,
		clock:     domain.UTCClock,
		metrics:   metrics.NewRegistryMetrics(),
	}
	for _, option := range options {
		option(s)
	}
	if s.logger == nil {
		s.logger = log.WithField("component", "registry")
	}
	if s.clock == nil {
		s.clock = domain.UTCClock
	}
	return s
}

// nextID выделяет очередной идентификатор из общего счётчика.
// Сбой счётчика — невосстановимая ошибка хранилища.
func (s *Service) nextID() (uint64, error) {
	id, err := s.sequence.Next()
	if err != nil {
		return 0, fmt.Errorf("allocate id: %w", err)
	}
	return id, nil
}

// observe записывает метрики операции; err разыменовывается в момент выполнения defer.
func (s *Service) observe(op string, start time.Time, errp *error) {
	if s.metrics == nil {
		return
	}
	s.metrics.ObserveOperationDuration(op, time.Since(start))
	s.metrics.RecordOperation(op, classify(*errp))
}

func classify(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case domain.IsNotFound(err):
		return metrics.ResultNotFound
	case errors.Is(err, domain.ErrInvalidPayload):
		return metrics.ResultInvalidPayload
	case errors.Is(err, domain.ErrAlreadyCompleted):
		return metrics.ResultAlreadyCompleted
	default:
		return metrics.ResultStorageFault
	}
}

// enqueueEvent сохраняет доменное событие в outbox. Ошибка постановки
// логируется, но не роняет бизнес-операцию: событие вторично к записи сущности.
func (s *Service) enqueueEvent(aggregateType string, aggregateID uint64, eventType kafka.EventType, event any) {
	if s.outbox == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.WithError(err).WithField("event_type", eventType).Warn("failed to marshal domain event")
		return
	}

	if _, err := s.outbox.Enqueue(domain.OutboxMessage{
		AggregateType: aggregateType,
		AggregateID:   fmt.Sprintf("%d", aggregateID),
		EventType:     string(eventType),
		Payload:       payload,
	}); err != nil {
		s.logger.WithError(err).WithFields(log.Fields{
			"event_type":   eventType,
			"aggregate_id": aggregateID,
		}).Warn("failed to enqueue domain event")
	}
}

// getClient возвращает клиента или ErrNotFound с понятной вызывающему формулировкой.
func (s *Service) getClient(id uint64) (domain.Client, error) {
	client, ok, err := s.clients.Get(id)
	if err != nil {
		return domain.Client{}, fmt.Errorf("load client %d: %w", id, err)
	}
	if !ok {
		return domain.Client{}, domain.NotFoundf("client id:%d does not exist", id)
	}
	return client, nil
}

func (s *Service) getSupplier(id uint64) (domain.Supplier, error) {
	supplier, ok, err := s.suppliers.Get(id)
	if err != nil {
		return domain.Supplier{}, fmt.Errorf("load supplier %d: %w", id, err)
	}
	if !ok {
		return domain.Supplier{}, domain.NotFoundf("supplier id:%d does not exist", id)
	}
	return supplier, nil
}

func (s *Service) getOrder(id uint64) (domain.Order, error) {
	order, ok, err := s.orders.Get(id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("load order %d: %w", id, err)
	}
	if !ok {
		return domain.Order{}, domain.NotFoundf("order id:%d does not exist", id)
	}
	return order, nil
}
