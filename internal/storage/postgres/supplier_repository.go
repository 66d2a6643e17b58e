package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vladislavdragonenkov/supplychain/internal/domain"
)

type supplierRepository struct {
	db *sql.DB
}

// NewSupplierRepository создаёт PostgreSQL-реализацию SupplierRepository.
func NewSupplierRepository(store *Store) domain.SupplierRepository {
	return &supplierRepository{db: store.DB()}
}

func (r *supplierRepository) Get(id uint64) (domain.Supplier, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone, preferred_items, order_ids, created_at, updated_at
		FROM suppliers
		WHERE id = $1
	`, int64(id))

	supplier, err := scanSupplier(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Supplier{}, false, nil
	}
	if err != nil {
		return domain.Supplier{}, false, err
	}

	return supplier, true, nil
}

func (r *supplierRepository) Put(supplier domain.Supplier) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	preferred, err := marshalColumn(supplier.PreferredItems)
	if err != nil {
		return err
	}
	orderIDs, err := marshalColumn(supplier.OrderIDs)
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO suppliers (id, name, email, phone, preferred_items, order_ids, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			preferred_items = EXCLUDED.preferred_items,
			order_ids = EXCLUDED.order_ids,
			updated_at = EXCLUDED.updated_at
	`,
		int64(supplier.ID), supplier.Name, supplier.Email, supplier.Phone,
		preferred, orderIDs, supplier.CreatedAt, nullableTime(supplier.UpdatedAt),
	); err != nil {
		return domain.Storagef("upsert supplier %d: %v", supplier.ID, err)
	}

	return nil
}

func (r *supplierRepository) All() ([]domain.Supplier, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, phone, preferred_items, order_ids, created_at, updated_at
		FROM suppliers
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, domain.Storagef("scan suppliers: %v", err)
	}
	defer rows.Close()

	suppliers := make([]domain.Supplier, 0)
	for rows.Next() {
		supplier, err := scanSupplier(rows)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, supplier)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Storagef("iterate suppliers: %v", err)
	}

	return suppliers, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSupplier(row rowScanner) (domain.Supplier, error) {
	var (
		supplier  domain.Supplier
		preferred []byte
		orderIDs  []byte
		updated   sql.NullTime
	)
	if err := row.Scan(
		&supplier.ID, &supplier.Name, &supplier.Email, &supplier.Phone,
		&preferred, &orderIDs, &supplier.CreatedAt, &updated,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Supplier{}, err
		}
		return domain.Supplier{}, domain.Storagef("scan supplier row: %v", err)
	}

	supplier.PreferredItems = make([]string, 0)
	if err := unmarshalColumn(preferred, &supplier.PreferredItems); err != nil {
		return domain.Supplier{}, err
	}
	supplier.OrderIDs = make([]uint64, 0)
	if err := unmarshalColumn(orderIDs, &supplier.OrderIDs); err != nil {
		return domain.Supplier{}, err
	}
	supplier.CreatedAt = supplier.CreatedAt.UTC()
	supplier.UpdatedAt = timePtr(updated)

	return supplier, nil
}

var _ domain.SupplierRepository = (*supplierRepository)(nil)
