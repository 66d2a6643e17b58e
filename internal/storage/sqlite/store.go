package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/vladislavdragonenkov/supplychain/internal/domain"
)

// Имена регионов долговременного хранения. Каждая сущность сериализуется в байты
// и лежит под своим числовым идентификатором внутри региона.
const (
	regionClients   = "clients"
	regionSuppliers = "suppliers"
	regionOrders    = "orders"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS regions (
    region  TEXT    NOT NULL,
    id      INTEGER NOT NULL,
    payload BLOB    NOT NULL,
    PRIMARY KEY (region, id)
);
CREATE TABLE IF NOT EXISTS id_counter (
    id    INTEGER PRIMARY KEY CHECK (id = 0),
    value INTEGER NOT NULL
);
INSERT OR IGNORE INTO id_counter (id, value) VALUES (0, 0);
CREATE TABLE IF NOT EXISTS outbox_messages (
    id             TEXT    PRIMARY KEY,
    aggregate_type TEXT    NOT NULL,
    aggregate_id   TEXT    NOT NULL,
    event_type     TEXT    NOT NULL,
    payload        BLOB    NOT NULL,
    status         TEXT    NOT NULL DEFAULT 'pending',
    attempt_count  INTEGER NOT NULL DEFAULT 0,
    created_at     INTEGER NOT NULL,
    updated_at     INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_outbox_status_created ON outbox_messages (status, created_at);
`

// Store реализует регионы долговременного хранения поверх одного SQLite-файла.
// Подходит для единственного процесса-писателя: ровно та модель, которую
// гарантирует хост-окружение.
type Store struct {
	db   *sql.DB
	path string
}

// Open открывает (или создаёт) файл хранилища и готовит схему.
func Open(path string) (*Store, error) {
	if path == "" {
		path = "supplychain.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(schemaDDL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Ping проверяет доступность файла хранилища.
func (s *Store) Ping() error {
	if s == nil || s.db == nil {
		return fmt.Errorf("sqlite store is not initialized")
	}
	return s.db.Ping()
}

// Close закрывает подключение к файлу.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) getRecord(region string, id uint64, out any) (bool, error) {
	var payload []byte
	err := s.db.QueryRow(
		`SELECT payload FROM regions WHERE region = ? AND id = ?`, region, int64(id),
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, domain.Storagef("select %s %d: %v", region, id, err)
	}
	if err := decodeRecord(payload, out); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) putRecord(region string, id uint64, record any) error {
	payload, err := encodeRecord(record)
	if err != nil {
		return err
	}
	if _, err := s.db.Exec(
		`INSERT INTO regions (region, id, payload) VALUES (?, ?, ?)
		 ON CONFLICT (region, id) DO UPDATE SET payload = excluded.payload`,
		region, int64(id), payload,
	); err != nil {
		return domain.Storagef("upsert %s %d: %v", region, id, err)
	}
	return nil
}

func (s *Store) removeRecord(region string, id uint64) error {
	if _, err := s.db.Exec(
		`DELETE FROM regions WHERE region = ? AND id = ?`, region, int64(id),
	); err != nil {
		return domain.Storagef("delete %s %d: %v", region, id, err)
	}
	return nil
}

// scanRegion читает все записи региона по возрастанию идентификатора.
func scanRegion[T any](s *Store, region string) ([]T, error) {
	rows, err := s.db.Query(
		`SELECT payload FROM regions WHERE region = ? ORDER BY id ASC`, region,
	)
	if err != nil {
		return nil, domain.Storagef("scan %s: %v", region, err)
	}
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, domain.Storagef("scan %s row: %v", region, err)
		}
		var record T
		if err := decodeRecord(payload, &record); err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Storagef("iterate %s: %v", region, err)
	}
	return result, nil
}
