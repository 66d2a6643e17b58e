package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/supplychain/internal/domain"
)

// sequenceInMemory — счётчик идентификаторов без долговременного хранения.
// Общий для всех видов сущностей, значения никогда не переиспользуются.
type sequenceInMemory struct {
	mu   sync.Mutex
	next uint64
}

// NewSequence возвращает in-memory последовательность идентификаторов.
func NewSequence() domain.IDSequence {
	return &sequenceInMemory{}
}

// NewSequenceAt возвращает последовательность, начинающуюся с заданного значения.
func NewSequenceAt(start uint64) domain.IDSequence {
	return &sequenceInMemory{next: start}
}

// Next возвращает текущее значение счётчика и сдвигает его на единицу.
func (s *sequenceInMemory) Next() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++
	return id, nil
}

var _ domain.IDSequence = (*sequenceInMemory)(nil)
