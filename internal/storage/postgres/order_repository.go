package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vladislavdragonenkov/supplychain/internal/domain"
)

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository создаёт PostgreSQL-реализацию OrderRepository.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{db: store.DB()}
}

func (r *orderRepository) Get(id uint64) (domain.Order, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, client_id, supplier_id, item_types, products, is_complete, created_at, updated_at
		FROM orders
		WHERE id = $1
	`, int64(id))

	order, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, false, nil
	}
	if err != nil {
		return domain.Order{}, false, err
	}

	return order, true, nil
}

func (r *orderRepository) Put(order domain.Order) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	itemTypes, err := marshalColumn(order.ItemTypes)
	if err != nil {
		return err
	}
	products, err := marshalColumn(order.Products)
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO orders (id, title, client_id, supplier_id, item_types, products, is_complete, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			client_id = EXCLUDED.client_id,
			supplier_id = EXCLUDED.supplier_id,
			item_types = EXCLUDED.item_types,
			products = EXCLUDED.products,
			is_complete = EXCLUDED.is_complete,
			updated_at = EXCLUDED.updated_at
	`,
		int64(order.ID), order.Title, int64(order.ClientID), nullableID(order.SupplierID),
		itemTypes, products, order.IsComplete, order.CreatedAt, nullableTime(order.UpdatedAt),
	); err != nil {
		return domain.Storagef("upsert order %d: %v", order.ID, err)
	}

	return nil
}

func (r *orderRepository) Remove(id uint64) (domain.Order, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx, `
		DELETE FROM orders
		WHERE id = $1
		RETURNING id, title, client_id, supplier_id, item_types, products, is_complete, created_at, updated_at
	`, int64(id))

	order, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, false, nil
	}
	if err != nil {
		return domain.Order{}, false, err
	}

	return order, true, nil
}

func (r *orderRepository) All() ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, client_id, supplier_id, item_types, products, is_complete, created_at, updated_at
		FROM orders
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, domain.Storagef("scan orders: %v", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Storagef("iterate orders: %v", err)
	}

	return orders, nil
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var (
		order      domain.Order
		supplierID sql.NullInt64
		itemTypes  []byte
		products   []byte
		updated    sql.NullTime
	)
	if err := row.Scan(
		&order.ID, &order.Title, &order.ClientID, &supplierID,
		&itemTypes, &products, &order.IsComplete, &order.CreatedAt, &updated,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, err
		}
		return domain.Order{}, domain.Storagef("scan order row: %v", err)
	}

	order.ItemTypes = make([]string, 0)
	if err := unmarshalColumn(itemTypes, &order.ItemTypes); err != nil {
		return domain.Order{}, err
	}
	order.Products = make(map[string]uint64)
	if err := unmarshalColumn(products, &order.Products); err != nil {
		return domain.Order{}, err
	}
	order.SupplierID = idPtr(supplierID)
	order.CreatedAt = order.CreatedAt.UTC()
	order.UpdatedAt = timePtr(updated)

	return order, nil
}

var _ domain.OrderRepository = (*orderRepository)(nil)
