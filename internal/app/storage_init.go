package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/supplychain/internal/domain"
	"github.com/vladislavdragonenkov/supplychain/internal/storage/memory"
	"github.com/vladislavdragonenkov/supplychain/internal/storage/postgres"
	"github.com/vladislavdragonenkov/supplychain/internal/storage/sqlite"
)

// Storage объединяет репозитории одного бэкенда хранения.
type Storage struct {
	Backend   string
	Clients   domain.ClientRepository
	Suppliers domain.SupplierRepository
	Orders    domain.OrderRepository
	Sequence  domain.IDSequence
	Outbox    domain.OutboxRepository

	ping  func() error
	close func() error
}

// Ping проверяет доступность бэкенда. Для памяти всегда успешен.
func (s *Storage) Ping() error {
	if s.ping == nil {
		return nil
	}
	return s.ping()
}

// Close освобождает ресурсы бэкенда.
func (s *Storage) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// initStorage выбирает бэкенд по конфигурации: PostgreSQL, затем SQLite,
// затем память. Память не переживает перезапуск и годится только для разработки.
func initStorage(ctx context.Context, cfg Config, logger *log.Entry) (*Storage, error) {
	if cfg.PostgresDSN != "" {
		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("init postgres storage: %w", err)
		}
		if err := store.EnsureSchema(ctx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("apply postgres migrations: %w", err)
		}
		logger.Info("using postgres storage backend")
		return &Storage{
			Backend:   "postgres",
			Clients:   postgres.NewClientRepository(store),
			Suppliers: postgres.NewSupplierRepository(store),
			Orders:    postgres.NewOrderRepository(store),
			Sequence:  postgres.NewSequence(store),
			Outbox:    postgres.NewOutboxRepository(store),
			ping:      func() error { return store.Ping(context.Background()) },
			close:     store.Close,
		}, nil
	}

	if cfg.SQLitePath != "" {
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("init sqlite storage: %w", err)
		}
		logger.WithField("path", cfg.SQLitePath).Info("using sqlite storage backend")
		return &Storage{
			Backend:   "sqlite",
			Clients:   sqlite.NewClientRepository(store),
			Suppliers: sqlite.NewSupplierRepository(store),
			Orders:    sqlite.NewOrderRepository(store),
			Sequence:  sqlite.NewSequence(store),
			Outbox:    sqlite.NewOutboxRepository(store),
			ping:      store.Ping,
			close:     store.Close,
		}, nil
	}

	logger.Warn("using in-memory storage backend, data will not survive restarts")
	return &Storage{
		Backend:   "memory",
		Clients:   memory.NewClientRepository(),
		Suppliers: memory.NewSupplierRepository(),
		Orders:    memory.NewOrderRepository(),
		Sequence:  memory.NewSequence(),
		Outbox:    memory.NewOutboxRepository(),
	}, nil
}
