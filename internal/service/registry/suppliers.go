package registry

import (
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/supplychain/internal/domain"
	"github.com/vladislavdragonenkov/supplychain/internal/messaging/kafka"
)

// AddSupplier валидирует payload, выделяет идентификатор и сохраняет нового поставщика.
// Идентификатор берётся из того же счётчика, что и у клиентов и заказов.
func (s *Service) AddSupplier(payload domain.SupplierPayload) (supplier domain.Supplier, err error) {
	defer s.observe("add_supplier", time.Now(), &err)

	if err = payload.Validate(); err != nil {
		return domain.Supplier{}, err
	}

	id, err := s.nextID()
	if err != nil {
		return domain.Supplier{}, err
	}

	supplier = domain.Supplier{
		ID:             id,
		Name:           payload.Name,
		Email:          payload.Email,
		Phone:          payload.Phone,
		PreferredItems: append([]string(nil), payload.PreferredItems...),
		OrderIDs:       []uint64{},
		CreatedAt:      s.clock(),
		UpdatedAt:      nil,
	}
	if err = s.suppliers.Put(supplier); err != nil {
		return domain.Supplier{}, fmt.Errorf("persist supplier %d: %w", id, err)
	}

	if s.metrics != nil {
		s.metrics.RecordEntityCreated("supplier")
	}
	s.enqueueEvent("supplier", supplier.ID, kafka.EventTypeSupplierCreated,
		kafka.NewEntityEvent(kafka.EventTypeSupplierCreated, "supplier", supplier.ID, supplier.Name))

	s.logger.WithField("supplier_id", supplier.ID).Info("supplier created")
	return supplier, nil
}

// GetSupplier возвращает поставщика по идентификатору.
func (s *Service) GetSupplier(id uint64) (supplier domain.Supplier, err error) {
	defer s.observe("get_supplier", time.Now(), &err)
	return s.getSupplier(id)
}
