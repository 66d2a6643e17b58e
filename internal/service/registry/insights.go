package registry

import (
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/supplychain/internal/domain"
)

// Рекомендательные обходы поверх журналов OrderIDs. Журналы — производное
// состояние: записи, не резолвящиеся в хранилище заказов (после delete_order),
// пропускаются без ошибки.

// SuggestSuppliersForClient подбирает поставщиков, чья история заказов
// пересекается по типам товаров с историей клиента. Поставщик попадает в
// результат по одному разу на каждый его заказ с пересечением, поэтому
// дубликаты возможны и отражают силу совпадения.
func (s *Service) SuggestSuppliersForClient(clientID uint64) (suggestions []domain.Supplier, err error) {
	defer s.observe("suggest_suppliers_for_client", time.Now(), &err)

	client, err := s.getClient(clientID)
	if err != nil {
		return nil, err
	}

	clientTypes := s.collectItemTypes(client.OrderIDs)
	if len(clientTypes) == 0 {
		return nil, domain.NotFoundf("client id:%d has no completed orders to base suggestions on", clientID)
	}

	suppliers, err := s.suppliers.All()
	if err != nil {
		return nil, fmt.Errorf("scan suppliers: %w", err)
	}

	suggestions = make([]domain.Supplier, 0)
	for _, supplier := range suppliers {
		for _, orderID := range supplier.OrderIDs {
			order, ok, err := s.orders.Get(orderID)
			if err != nil {
				return nil, fmt.Errorf("load order %d: %w", orderID, err)
			}
			if !ok {
				continue // висячая ссылка после удаления заказа
			}
			for _, itemType := range order.ItemTypes {
				if clientTypes[itemType] {
					suggestions = append(suggestions, supplier)
					break
				}
			}
		}
	}

	if len(suggestions) == 0 {
		return nil, domain.NotFoundf("no suppliers to suggest for client id:%d", clientID)
	}
	return suggestions, nil
}

// ClientEngagement считает, сколько записей журнала клиента всё ещё резолвится
// в хранилище заказов и сколько различных типов товаров они покрывают.
func (s *Service) ClientEngagement(clientID uint64) (engagement domain.ClientEngagement, err error) {
	defer s.observe("analyze_client_engagement", time.Now(), &err)

	client, err := s.getClient(clientID)
	if err != nil {
		return domain.ClientEngagement{}, err
	}

	types := make(map[string]bool)
	total := 0
	for _, orderID := range client.OrderIDs {
		order, ok, err := s.orders.Get(orderID)
		if err != nil {
			return domain.ClientEngagement{}, fmt.Errorf("load order %d: %w", orderID, err)
		}
		if !ok {
			continue
		}
		total++
		for _, itemType := range order.ItemTypes {
			types[itemType] = true
		}
	}

	return domain.ClientEngagement{
		ClientID:          clientID,
		TotalOrders:       total,
		DistinctItemTypes: len(types),
	}, nil
}

func (s *Service) collectItemTypes(orderIDs []uint64) map[string]bool {
	types := make(map[string]bool)
	for _, orderID := range orderIDs {
		order, ok, err := s.orders.Get(orderID)
		if err != nil || !ok {
			continue
		}
		for _, itemType := range order.ItemTypes {
			types[itemType] = true
		}
	}
	return types
}
