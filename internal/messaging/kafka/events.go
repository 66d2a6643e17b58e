package kafka

import "time"

// EventType определяет тип события жизненного цикла сущности.
type EventType string

const (
	// События клиентов и поставщиков.
	EventTypeClientCreated   EventType = "client.created"
	EventTypeSupplierCreated EventType = "supplier.created"

	// События заказов.
	EventTypeOrderCreated          EventType = "order.created"
	EventTypeOrderSupplierAssigned EventType = "order.supplier_assigned"
	EventTypeOrderUpdated          EventType = "order.updated"
	EventTypeOrderCompleted        EventType = "order.completed"
	EventTypeOrderDeleted          EventType = "order.deleted"
)

// Topics для Kafka.
const (
	TopicEntityEvents    = "supplychain.entity.events"
	TopicOrderEvents     = "supplychain.order.events"
	TopicDeadLetterQueue = "supplychain.dlq"
)

// EntityEvent представляет событие создания клиента или поставщика.
type EntityEvent struct {
	EventType EventType `json:"event_type"`
	Kind      string    `json:"kind"`
	EntityID  uint64    `json:"entity_id"`
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderEvent представляет событие жизненного цикла заказа.
type OrderEvent struct {
	EventType  EventType `json:"event_type"`
	OrderID    uint64    `json:"order_id"`
	ClientID   uint64    `json:"client_id"`
	SupplierID *uint64   `json:"supplier_id,omitempty"`
	IsComplete bool      `json:"is_complete"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewEntityEvent создаёт событие по клиенту или поставщику.
func NewEntityEvent(eventType EventType, kind string, entityID uint64, name string) *EntityEvent {
	return &EntityEvent{
		EventType: eventType,
		Kind:      kind,
		EntityID:  entityID,
		Name:      name,
		Timestamp: time.Now().UTC(),
	}
}

// NewOrderEvent создаёт событие по заказу.
func NewOrderEvent(eventType EventType, orderID, clientID uint64, supplierID *uint64, isComplete bool) *OrderEvent {
	return &OrderEvent{
		EventType:  eventType,
		OrderID:    orderID,
		ClientID:   clientID,
		SupplierID: supplierID,
		IsComplete: isComplete,
		Timestamp:  time.Now().UTC(),
	}
}
