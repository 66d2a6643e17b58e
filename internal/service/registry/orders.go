package registry

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/supplychain/internal/domain"
	"github.com/vladislavdragonenkov/supplychain/internal/messaging/kafka"
)

// AddOrder создаёт заказ-черновик: без поставщика и с незавершённым статусом.
// Клиент из payload обязан существовать; SupplierID в payload игнорируется.
func (s *Service) AddOrder(payload domain.OrderPayload) (order domain.Order, err error) {
	defer s.observe("add_order", time.Now(), &err)

	if err = payload.Validate(); err != nil {
		return domain.Order{}, err
	}
	if _, err = s.getClient(payload.ClientID); err != nil {
		return domain.Order{}, err
	}

	id, err := s.nextID()
	if err != nil {
		return domain.Order{}, err
	}

	order = domain.Order{
		ID:         id,
		Title:      payload.Title,
		ClientID:   payload.ClientID,
		SupplierID: nil,
		ItemTypes:  append([]string(nil), payload.ItemTypes...),
		Products:   cloneProducts(payload.Products),
		IsComplete: false,
		CreatedAt:  s.clock(),
		UpdatedAt:  nil,
	}
	if err = s.orders.Put(order); err != nil {
		return domain.Order{}, fmt.Errorf("persist order %d: %w", id, err)
	}

	if s.metrics != nil {
		s.metrics.RecordEntityCreated("order")
	}
	s.enqueueEvent("order", order.ID, kafka.EventTypeOrderCreated,
		kafka.NewOrderEvent(kafka.EventTypeOrderCreated, order.ID, order.ClientID, nil, false))

	s.logger.WithFields(log.Fields{
		"order_id":  order.ID,
		"client_id": order.ClientID,
	}).Info("order created")
	return order, nil
}

// GetOrder возвращает заказ по идентификатору.
func (s *Service) GetOrder(id uint64) (order domain.Order, err error) {
	defer s.observe("get_order", time.Now(), &err)
	return s.getOrder(id)
}

// AddOrderSupplier назначает заказу существующего поставщика.
func (s *Service) AddOrderSupplier(orderID, supplierID uint64) (order domain.Order, err error) {
	defer s.observe("add_order_supplier", time.Now(), &err)

	order, err = s.getOrder(orderID)
	if err != nil {
		return domain.Order{}, err
	}
	if _, err = s.getSupplier(supplierID); err != nil {
		return domain.Order{}, err
	}

	now := s.clock()
	order.SupplierID = &supplierID
	order.UpdatedAt = &now
	if err = s.orders.Put(order); err != nil {
		return domain.Order{}, fmt.Errorf("persist order %d: %w", orderID, err)
	}

	s.enqueueEvent("order", order.ID, kafka.EventTypeOrderSupplierAssigned,
		kafka.NewOrderEvent(kafka.EventTypeOrderSupplierAssigned, order.ID, order.ClientID, order.SupplierID, order.IsComplete))

	s.logger.WithFields(log.Fields{
		"order_id":    order.ID,
		"supplier_id": supplierID,
	}).Info("order supplier assigned")
	return order, nil
}

// UpdateOrder заменяет содержимое заказа, сохраняя идентификатор, дату создания
// и текущий статус завершённости. Внешние ключи payload обязаны резолвиться.
func (s *Service) UpdateOrder(id uint64, payload domain.OrderPayload) (order domain.Order, err error) {
	defer s.observe("update_order", time.Now(), &err)

	current, err := s.getOrder(id)
	if err != nil {
		return domain.Order{}, err
	}
	if err = payload.Validate(); err != nil {
		return domain.Order{}, err
	}
	if _, err = s.getClient(payload.ClientID); err != nil {
		return domain.Order{}, err
	}
	if payload.SupplierID != nil {
		if _, err = s.getSupplier(*payload.SupplierID); err != nil {
			return domain.Order{}, err
		}
	}

	now := s.clock()
	order = domain.Order{
		ID:         current.ID,
		Title:      payload.Title,
		ClientID:   payload.ClientID,
		SupplierID: payload.SupplierID,
		ItemTypes:  append([]string(nil), payload.ItemTypes...),
		Products:   cloneProducts(payload.Products),
		IsComplete: current.IsComplete,
		CreatedAt:  current.CreatedAt,
		UpdatedAt:  &now,
	}
	if err = s.orders.Put(order); err != nil {
		return domain.Order{}, fmt.Errorf("persist order %d: %w", id, err)
	}

	s.enqueueEvent("order", order.ID, kafka.EventTypeOrderUpdated,
		kafka.NewOrderEvent(kafka.EventTypeOrderUpdated, order.ID, order.ClientID, order.SupplierID, order.IsComplete))

	s.logger.WithField("order_id", order.ID).Info("order updated")
	return order, nil
}

// CompleteOrder переводит заказ в завершённое состояние. Переход одноразовый:
// повторная попытка отклоняется, а не игнорируется. После записи заказа
// идентификатор дописывается в журналы клиента и поставщика; эти три записи
// не атомарны между хранилищами — порядок фиксирован: сначала заказ, затем связи.
func (s *Service) CompleteOrder(id uint64) (order domain.Order, err error) {
	defer s.observe("complete_order", time.Now(), &err)

	order, err = s.getOrder(id)
	if err != nil {
		return domain.Order{}, err
	}
	if order.IsComplete {
		return domain.Order{}, domain.AlreadyCompletedf("order id:%d is already completed", id)
	}
	if order.SupplierID == nil {
		return domain.Order{}, domain.NotFoundf("order id:%d has no supplier assigned", id)
	}

	client, err := s.getClient(order.ClientID)
	if err != nil {
		return domain.Order{}, err
	}
	supplier, err := s.getSupplier(*order.SupplierID)
	if err != nil {
		return domain.Order{}, err
	}

	now := s.clock()
	order.IsComplete = true
	order.UpdatedAt = &now
	if err = s.orders.Put(order); err != nil {
		return domain.Order{}, fmt.Errorf("persist order %d: %w", id, err)
	}

	client.OrderIDs = append(client.OrderIDs, order.ID)
	client.UpdatedAt = &now
	if err = s.clients.Put(client); err != nil {
		return domain.Order{}, fmt.Errorf("persist client %d order link: %w", client.ID, err)
	}

	supplier.OrderIDs = append(supplier.OrderIDs, order.ID)
	supplier.UpdatedAt = &now
	if err = s.suppliers.Put(supplier); err != nil {
		return domain.Order{}, fmt.Errorf("persist supplier %d order link: %w", supplier.ID, err)
	}

	if s.metrics != nil {
		s.metrics.RecordOrderCompleted()
	}
	s.enqueueEvent("order", order.ID, kafka.EventTypeOrderCompleted,
		kafka.NewOrderEvent(kafka.EventTypeOrderCompleted, order.ID, order.ClientID, order.SupplierID, true))

	s.logger.WithFields(log.Fields{
		"order_id":    order.ID,
		"client_id":   client.ID,
		"supplier_id": supplier.ID,
	}).Info("order completed")
	return order, nil
}

// DeleteOrder удаляет и возвращает заказ. Уже записанные ссылки в OrderIDs
// клиента и поставщика не отзываются: обходы пропускают висячие идентификаторы.
func (s *Service) DeleteOrder(id uint64) (order domain.Order, err error) {
	defer s.observe("delete_order", time.Now(), &err)

	order, ok, err := s.orders.Remove(id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("remove order %d: %w", id, err)
	}
	if !ok {
		return domain.Order{}, domain.NotFoundf("order id:%d deletion unsuccessful, order not found", id)
	}

	if s.metrics != nil {
		s.metrics.RecordOrderDeleted()
	}
	s.enqueueEvent("order", order.ID, kafka.EventTypeOrderDeleted,
		kafka.NewOrderEvent(kafka.EventTypeOrderDeleted, order.ID, order.ClientID, order.SupplierID, order.IsComplete))

	s.logger.WithField("order_id", order.ID).Info("order deleted")
	return order, nil
}

func cloneProducts(products map[string]uint64) map[string]uint64 {
	if products == nil {
		return nil
	}
	clone := make(map[string]uint64, len(products))
	for name, qty := range products {
		clone[name] = qty
	}
	return clone
}
