package postgres

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/vladislavdragonenkov/supplychain/internal/domain"
)

const opTimeout = 5 * time.Second

// Срезы и словари сущностей лежат в JSONB-колонках: форма данных повторяет
// доменную модель, и миграции не зависят от расширений для массивов.
func marshalColumn(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, domain.Storagef("encode jsonb column: %v", err)
	}
	return data, nil
}

func unmarshalColumn(data []byte, out any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return domain.Storagef("decode jsonb column: %v", err)
	}
	return nil
}

func nullableTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time.UTC()
	return &t
}

func nullableID(id *uint64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*id), Valid: true}
}

func idPtr(ni sql.NullInt64) *uint64 {
	if !ni.Valid {
		return nil
	}
	id := uint64(ni.Int64)
	return &id
}
