package registry

import (
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/supplychain/internal/domain"
)

// Слой запросов: полный скан хранилища заказов с предикатом.
// Пустой результат для вызывающей стороны неотличим от отсутствия сущности,
// поэтому каждый запрос возвращает NotFound вместо пустой коллекции.

// Orders возвращает все заказы.
func (s *Service) Orders() (orders []domain.Order, err error) {
	defer s.observe("get_orders", time.Now(), &err)
	return s.scanOrders("no orders available", func(domain.Order) bool { return true })
}

// IncompleteOrders возвращает заказы, ещё не завершённые.
func (s *Service) IncompleteOrders() (orders []domain.Order, err error) {
	defer s.observe("get_incomplete_orders", time.Now(), &err)
	return s.scanOrders("no incomplete orders available", func(o domain.Order) bool { return !o.IsComplete })
}

// CompletedOrders возвращает завершённые заказы.
func (s *Service) CompletedOrders() (orders []domain.Order, err error) {
	defer s.observe("get_completed_orders", time.Now(), &err)
	return s.scanOrders("no completed orders available", func(o domain.Order) bool { return o.IsComplete })
}

// ClientOrders возвращает заказы клиента. Клиент обязан существовать.
func (s *Service) ClientOrders(clientID uint64) (orders []domain.Order, err error) {
	defer s.observe("get_client_orders", time.Now(), &err)

	if _, err = s.getClient(clientID); err != nil {
		return nil, err
	}
	return s.scanOrders(
		fmt.Sprintf("no orders for client id:%d", clientID),
		func(o domain.Order) bool { return o.ClientID == clientID },
	)
}

// SupplierOrders возвращает заказы, назначенные поставщику. Поставщик обязан существовать.
func (s *Service) SupplierOrders(supplierID uint64) (orders []domain.Order, err error) {
	defer s.observe("get_supplier_orders", time.Now(), &err)

	if _, err = s.getSupplier(supplierID); err != nil {
		return nil, err
	}
	return s.scanOrders(
		fmt.Sprintf("no orders for supplier id:%d", supplierID),
		func(o domain.Order) bool { return o.SupplierID != nil && *o.SupplierID == supplierID },
	)
}

// SupplierCompletedOrders возвращает завершённые заказы поставщика.
func (s *Service) SupplierCompletedOrders(supplierID uint64) (orders []domain.Order, err error) {
	defer s.observe("get_supplier_completed_orders", time.Now(), &err)

	if _, err = s.getSupplier(supplierID); err != nil {
		return nil, err
	}
	return s.scanOrders(
		fmt.Sprintf("no completed orders for supplier id:%d", supplierID),
		func(o domain.Order) bool {
			return o.IsComplete && o.SupplierID != nil && *o.SupplierID == supplierID
		},
	)
}

// SupplierPreferredOrders возвращает заказы, типы товаров которых пересекаются
// с предпочтениями поставщика.
func (s *Service) SupplierPreferredOrders(supplierID uint64) (orders []domain.Order, err error) {
	defer s.observe("get_supplier_preferred_orders", time.Now(), &err)

	supplier, err := s.getSupplier(supplierID)
	if err != nil {
		return nil, err
	}
	return s.scanOrders(
		fmt.Sprintf("no orders matching preferred items of supplier id:%d", supplierID),
		func(o domain.Order) bool {
			for _, itemType := range o.ItemTypes {
				if supplier.Prefers(itemType) {
					return true
				}
			}
			return false
		},
	)
}

// FilterOrders применяет конъюнктивный фильтр: все заданные критерии обязаны
// совпасть, незаданные трактуются как wildcard.
func (s *Service) FilterOrders(criteria domain.OrderCriteria) (orders []domain.Order, err error) {
	defer s.observe("filter_orders", time.Now(), &err)
	return s.scanOrders("no orders match the given criteria", criteria.Matches)
}

func (s *Service) scanOrders(emptyMsg string, predicate func(domain.Order) bool) ([]domain.Order, error) {
	all, err := s.orders.All()
	if err != nil {
		return nil, fmt.Errorf("scan orders: %w", err)
	}

	result := make([]domain.Order, 0, len(all))
	for _, order := range all {
		if predicate(order) {
			result = append(result, order)
		}
	}
	if len(result) == 0 {
		return nil, domain.NotFoundf("%s", emptyMsg)
	}
	return result, nil
}
