package domain

import "time"

// ClientRepository описывает требования к хранилищу клиентов.
type ClientRepository interface {
	// Get возвращает клиента по идентификатору; второй результат — признак наличия.
	Get(id uint64) (Client, bool, error)
	// Put сохраняет клиента под его идентификатором, перезаписывая прежнюю версию.
	Put(client Client) error
}

// SupplierRepository описывает требования к хранилищу поставщиков.
type SupplierRepository interface {
	Get(id uint64) (Supplier, bool, error)
	Put(supplier Supplier) error
	// All возвращает всех поставщиков; порядок — по возрастанию идентификатора.
	All() ([]Supplier, error)
}

// OrderRepository описывает требования к хранилищу заказов.
// Вторичных индексов нет: выборки выполняются полным сканом в слое запросов.
type OrderRepository interface {
	Get(id uint64) (Order, bool, error)
	Put(order Order) error
	// Remove удаляет и возвращает заказ; второй результат — признак наличия.
	Remove(id uint64) (Order, bool, error)
	// All возвращает все заказы; порядок — по возрастанию идентификатора.
	All() ([]Order, error)
}

// IDSequence выдаёт монотонно растущие идентификаторы, общие для всех видов сущностей.
// Идентификаторы никогда не переиспользуются, в том числе после удаления заказа.
type IDSequence interface {
	// Next возвращает очередное значение счётчика. Ошибка записи счётчика —
	// невосстановимый сбой хранилища (ErrStorage), а не бизнес-ошибка.
	Next() (uint64, error)
}

// Clock абстрагирует источник времени хост-окружения.
type Clock func() time.Time

// UTCClock возвращает текущее время в UTC.
func UTCClock() time.Time {
	return time.Now().UTC()
}
