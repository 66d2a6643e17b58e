package sqlite

import (
	"github.com/vladislavdragonenkov/supplychain/internal/domain"
)

// ClientRepository хранит клиентов в регионе "clients".
type ClientRepository struct {
	store *Store
}

func NewClientRepository(store *Store) *ClientRepository {
	return &ClientRepository{store: store}
}

func (r *ClientRepository) Get(id uint64) (domain.Client, bool, error) {
	var client domain.Client
	found, err := r.store.getRecord(regionClients, id, &client)
	return client, found, err
}

func (r *ClientRepository) Put(client domain.Client) error {
	return r.store.putRecord(regionClients, client.ID, client)
}

// SupplierRepository хранит поставщиков в регионе "suppliers".
type SupplierRepository struct {
	store *Store
}

func NewSupplierRepository(store *Store) *SupplierRepository {
	return &SupplierRepository{store: store}
}

func (r *SupplierRepository) Get(id uint64) (domain.Supplier, bool, error) {
	var supplier domain.Supplier
	found, err := r.store.getRecord(regionSuppliers, id, &supplier)
	return supplier, found, err
}

func (r *SupplierRepository) Put(supplier domain.Supplier) error {
	return r.store.putRecord(regionSuppliers, supplier.ID, supplier)
}

func (r *SupplierRepository) All() ([]domain.Supplier, error) {
	return scanRegion[domain.Supplier](r.store, regionSuppliers)
}

// OrderRepository хранит заказы в регионе "orders".
type OrderRepository struct {
	store *Store
}

func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{store: store}
}

func (r *OrderRepository) Get(id uint64) (domain.Order, bool, error) {
	var order domain.Order
	found, err := r.store.getRecord(regionOrders, id, &order)
	return order, found, err
}

func (r *OrderRepository) Put(order domain.Order) error {
	return r.store.putRecord(regionOrders, order.ID, order)
}

func (r *OrderRepository) Remove(id uint64) (domain.Order, bool, error) {
	order, found, err := r.Get(id)
	if err != nil || !found {
		return domain.Order{}, false, err
	}
	if err := r.store.removeRecord(regionOrders, id); err != nil {
		return domain.Order{}, false, err
	}
	return order, true, nil
}

func (r *OrderRepository) All() ([]domain.Order, error) {
	return scanRegion[domain.Order](r.store, regionOrders)
}

// Sequence выдаёт идентификаторы из единственной строки id_counter.
// Счётчик общий для всех видов сущностей и переживает перезапуск процесса.
type Sequence struct {
	store *Store
}

func NewSequence(store *Store) *Sequence {
	return &Sequence{store: store}
}

func (s *Sequence) Next() (uint64, error) {
	var next int64
	err := s.store.db.QueryRow(
		`UPDATE id_counter SET value = value + 1 WHERE id = 0 RETURNING value`,
	).Scan(&next)
	if err != nil {
		return 0, domain.Storagef("advance id counter: %v", err)
	}
	// value хранит количество выданных идентификаторов, выдача начинается с нуля.
	return uint64(next - 1), nil
}

var (
	_ domain.ClientRepository   = (*ClientRepository)(nil)
	_ domain.SupplierRepository = (*SupplierRepository)(nil)
	_ domain.OrderRepository    = (*OrderRepository)(nil)
	_ domain.IDSequence         = (*Sequence)(nil)
)
