package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/supplychain/internal/domain"
)

// clientRepositoryInMemory — простая in-memory реализация ClientRepository.
type clientRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[uint64]domain.Client
}

// NewClientRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewClientRepository() domain.ClientRepository {
	return &clientRepositoryInMemory{
		items: make(map[uint64]domain.Client),
	}
}

// Get возвращает копию клиента по идентификатору.
func (r *clientRepositoryInMemory) Get(id uint64) (domain.Client, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.items[id]
	if !ok {
		return domain.Client{}, false, nil
	}
	return client.Clone(), true, nil
}

// Put сохраняет копию клиента, чтобы избежать непредсказуемых мутаций извне.
func (r *clientRepositoryInMemory) Put(client domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[client.ID] = client.Clone()
	return nil
}

var _ domain.ClientRepository = (*clientRepositoryInMemory)(nil)
