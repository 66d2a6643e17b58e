package memory

import (
	"sort"
	"sync"

	"github.com/vladislavdragonenkov/supplychain/internal/domain"
)

// supplierRepositoryInMemory — простая in-memory реализация SupplierRepository.
type supplierRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[uint64]domain.Supplier
}

// NewSupplierRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewSupplierRepository() domain.SupplierRepository {
	return &supplierRepositoryInMemory{
		items: make(map[uint64]domain.Supplier),
	}
}

// Get возвращает копию поставщика по идентификатору.
func (r *supplierRepositoryInMemory) Get(id uint64) (domain.Supplier, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	supplier, ok := r.items[id]
	if !ok {
		return domain.Supplier{}, false, nil
	}
	return supplier.Clone(), true, nil
}

// Put сохраняет копию поставщика.
func (r *supplierRepositoryInMemory) Put(supplier domain.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[supplier.ID] = supplier.Clone()
	return nil
}

// All возвращает всех поставщиков по возрастанию идентификатора.
func (r *supplierRepositoryInMemory) All() ([]domain.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Supplier, 0, len(r.items))
	for _, supplier := range r.items {
		result = append(result, supplier.Clone())
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

var _ domain.SupplierRepository = (*supplierRepositoryInMemory)(nil)
