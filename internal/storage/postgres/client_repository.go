package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vladislavdragonenkov/supplychain/internal/domain"
)

type clientRepository struct {
	db *sql.DB
}

// NewClientRepository создаёт PostgreSQL-реализацию ClientRepository.
func NewClientRepository(store *Store) domain.ClientRepository {
	return &clientRepository{db: store.DB()}
}

func (r *clientRepository) Get(id uint64) (domain.Client, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var (
		client   domain.Client
		orderIDs []byte
		updated  sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone, order_ids, created_at, updated_at
		FROM clients
		WHERE id = $1
	`, int64(id)).Scan(
		&client.ID, &client.Name, &client.Email, &client.Phone,
		&orderIDs, &client.CreatedAt, &updated,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Client{}, false, nil
	}
	if err != nil {
		return domain.Client{}, false, domain.Storagef("select client %d: %v", id, err)
	}

	client.OrderIDs = make([]uint64, 0)
	if err := unmarshalColumn(orderIDs, &client.OrderIDs); err != nil {
		return domain.Client{}, false, err
	}
	client.CreatedAt = client.CreatedAt.UTC()
	client.UpdatedAt = timePtr(updated)

	return client, true, nil
}

func (r *clientRepository) Put(client domain.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	orderIDs, err := marshalColumn(client.OrderIDs)
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO clients (id, name, email, phone, order_ids, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			order_ids = EXCLUDED.order_ids,
			updated_at = EXCLUDED.updated_at
	`,
		int64(client.ID), client.Name, client.Email, client.Phone,
		orderIDs, client.CreatedAt, nullableTime(client.UpdatedAt),
	); err != nil {
		return domain.Storagef("upsert client %d: %v", client.ID, err)
	}

	return nil
}

var _ domain.ClientRepository = (*clientRepository)(nil)
