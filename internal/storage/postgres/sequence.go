package postgres

import (
	"context"
	"database/sql"

	"github.com/vladislavdragonenkov/supplychain/internal/domain"
)

type sequence struct {
	db *sql.DB
}

// NewSequence создаёт PostgreSQL-реализацию общего счётчика идентификаторов.
// Счётчик живёт в единственной строке id_sequence и растёт атомарно,
// поэтому идентификаторы никогда не выдаются повторно.
func NewSequence(store *Store) domain.IDSequence {
	return &sequence{db: store.DB()}
}

func (s *sequence) Next() (uint64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var next int64
	err := s.db.QueryRowContext(ctx, `
		UPDATE id_sequence
		SET next_value = next_value + 1
		WHERE id = 0
		RETURNING next_value
	`).Scan(&next)
	if err != nil {
		return 0, domain.Storagef("advance id sequence: %v", err)
	}

	// next_value хранит количество выданных идентификаторов, выдача начинается с нуля.
	return uint64(next - 1), nil
}

var _ domain.IDSequence = (*sequence)(nil)
