package domain

import "time"

// Supplier представляет поставщика, исполняющего заказы.
type Supplier struct {
	ID    uint64
	Name  string
	Email string
	Phone string
	// PreferredItems — типы товаров, которые поставщик предпочитает исполнять.
	PreferredItems []string
	// OrderIDs ведётся так же, как у Client: журнал завершённых заказов.
	OrderIDs  []uint64
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Clone возвращает глубокую копию поставщика.
func (s Supplier) Clone() Supplier {
	clone := s
	if s.PreferredItems != nil {
		clone.PreferredItems = append([]string(nil), s.PreferredItems...)
	}
	if s.OrderIDs != nil {
		clone.OrderIDs = append([]uint64(nil), s.OrderIDs...)
	}
	if s.UpdatedAt != nil {
		ts := *s.UpdatedAt
		clone.UpdatedAt = &ts
	}
	return clone
}

// Prefers сообщает, входит ли тип товара в предпочтения поставщика.
func (s Supplier) Prefers(itemType string) bool {
	for _, preferred := range s.PreferredItems {
		if preferred == itemType {
			return true
		}
	}
	return false
}
