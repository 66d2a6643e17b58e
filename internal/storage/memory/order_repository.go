package memory

import (
	"sort"
	"sync"

	"github.com/vladislavdragonenkov/supplychain/internal/domain"
)

// orderRepositoryInMemory — простая in-memory реализация OrderRepository.
type orderRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[uint64]domain.Order
}

// NewOrderRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewOrderRepository() domain.OrderRepository {
	return &orderRepositoryInMemory{
		items: make(map[uint64]domain.Order),
	}
}

// Get возвращает копию заказа по идентификатору.
func (r *orderRepositoryInMemory) Get(id uint64) (domain.Order, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.items[id]
	if !ok {
		return domain.Order{}, false, nil
	}
	return order.Clone(), true, nil
}

// Put сохраняет копию заказа.
func (r *orderRepositoryInMemory) Put(order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[order.ID] = order.Clone()
	return nil
}

// Remove удаляет и возвращает заказ.
func (r *orderRepositoryInMemory) Remove(id uint64) (domain.Order, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.items[id]
	if !ok {
		return domain.Order{}, false, nil
	}
	delete(r.items, id)
	return order, true, nil
}

// All возвращает все заказы по возрастанию идентификатора.
func (r *orderRepositoryInMemory) All() ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Order, 0, len(r.items))
	for _, order := range r.items {
		result = append(result, order.Clone())
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
