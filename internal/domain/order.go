package domain

import "time"

// Order агрегирует заказ клиента и его связь с поставщиком.
type Order struct {
	ID       uint64
	Title    string
	ClientID uint64
	// SupplierID назначается отдельной операцией; до этого заказ остаётся черновиком.
	SupplierID *uint64
	// ItemTypes — теги типов товаров в заказе.
	ItemTypes []string
	// Products — количество по каждому наименованию.
	Products   map[string]uint64
	IsComplete bool
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// Clone возвращает глубокую копию заказа.
func (o Order) Clone() Order {
	clone := o
	if o.SupplierID != nil {
		id := *o.SupplierID
		clone.SupplierID = &id
	}
	if o.ItemTypes != nil {
		clone.ItemTypes = append([]string(nil), o.ItemTypes...)
	}
	if o.Products != nil {
		clone.Products = make(map[string]uint64, len(o.Products))
		for name, qty := range o.Products {
			clone.Products[name] = qty
		}
	}
	if o.UpdatedAt != nil {
		ts := *o.UpdatedAt
		clone.UpdatedAt = &ts
	}
	return clone
}

// HasItemType сообщает, содержит ли заказ указанный тип товара.
func (o Order) HasItemType(itemType string) bool {
	for _, t := range o.ItemTypes {
		if t == itemType {
			return true
		}
	}
	return false
}

// HasProduct сообщает, есть ли в заказе позиция с указанным наименованием.
func (o Order) HasProduct(name string) bool {
	_, ok := o.Products[name]
	return ok
}

// OrderCriteria задаёт конъюнктивный фильтр по заказам.
// nil-поле означает «любое значение».
type OrderCriteria struct {
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	IsComplete  *bool
	ClientID    *uint64
	SupplierID  *uint64
	// Product отбирает заказы, содержащие позицию с таким наименованием.
	Product *string
}

// Matches проверяет заказ против всех заданных критериев (логическое И).
func (c OrderCriteria) Matches(o Order) bool {
	if c.CreatedFrom != nil && o.CreatedAt.Before(*c.CreatedFrom) {
		return false
	}
	if c.CreatedTo != nil && o.CreatedAt.After(*c.CreatedTo) {
		return false
	}
	if c.IsComplete != nil && o.IsComplete != *c.IsComplete {
		return false
	}
	if c.ClientID != nil && o.ClientID != *c.ClientID {
		return false
	}
	if c.SupplierID != nil {
		if o.SupplierID == nil || *o.SupplierID != *c.SupplierID {
			return false
		}
	}
	if c.Product != nil && !o.HasProduct(*c.Product) {
		return false
	}
	return true
}
