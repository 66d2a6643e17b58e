package domain

import "time"

// Client представляет клиента, размещающего заказы.
type Client struct {
	ID    uint64
	Name  string
	Email string
	Phone string
	// OrderIDs — append-only журнал идентификаторов завершённых заказов клиента.
	// Производное состояние: источником истины остаётся сам Order.
	OrderIDs  []uint64
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Clone возвращает глубокую копию клиента, чтобы вызывающая сторона
// не могла мутировать состояние хранилища через разделяемые срезы.
func (c Client) Clone() Client {
	clone := c
	if c.OrderIDs != nil {
		clone.OrderIDs = append([]uint64(nil), c.OrderIDs...)
	}
	if c.UpdatedAt != nil {
		ts := *c.UpdatedAt
		clone.UpdatedAt = &ts
	}
	return clone
}

// ClientEngagement агрегирует вовлечённость клиента по его завершённым заказам.
type ClientEngagement struct {
	ClientID uint64
	// TotalOrders — количество записей OrderIDs, которые всё ещё резолвятся в хранилище заказов.
	TotalOrders int
	// DistinctItemTypes — число различных типов товаров среди этих заказов.
	DistinctItemTypes int
}
