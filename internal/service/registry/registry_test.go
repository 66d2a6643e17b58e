package registry_test

import (
	"testing"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/supplychain/internal/domain"
	"github.com/vladislavdragonenkov/supplychain/internal/service/registry"
	"github.com/vladislavdragonenkov/supplychain/internal/storage/memory"
)

// testClock — детерминированные часы: каждый вызов сдвигает время на секунду.
type testClock struct {
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

func newTestService(t *testing.T) *registry.Service {
	t.Helper()

	baseLogger := log.New()
	baseLogger.SetLevel(log.WarnLevel) // уменьшаем шум в тестах
	clock := newTestClock()

	return registry.NewService(
		memory.NewClientRepository(),
		memory.NewSupplierRepository(),
		memory.NewOrderRepository(),
		memory.NewSequence(),
		registry.WithLogger(baseLogger.WithField("component", "registry-test")),
		registry.WithClock(clock.Now),
		registry.WithoutMetrics(),
	)
}

func mustAddClient(t *testing.T, svc *registry.Service) domain.Client {
	t.Helper()
	client, err := svc.AddClient(domain.ClientPayload{
		Name:  "Acme",
		Email: "contact@acme.test",
		Phone: "5551234",
	})
	if err != nil {
		t.Fatalf("add client failed: %v", err)
	}
	return client
}

func mustAddSupplier(t *testing.T, svc *registry.Service, preferred ...string) domain.Supplier {
	t.Helper()
	supplier, err := svc.AddSupplier(domain.SupplierPayload{
		Name:           "Bolts Inc",
		Email:          "sales@bolts.test",
		Phone:          "5550000",
		PreferredItems: preferred,
	})
	if err != nil {
		t.Fatalf("add supplier failed: %v", err)
	}
	return supplier
}

func mustAddOrder(t *testing.T, svc *registry.Service, clientID uint64, itemTypes ...string) domain.Order {
	t.Helper()
	order, err := svc.AddOrder(domain.OrderPayload{
		Title:     "restock",
		ClientID:  clientID,
		ItemTypes: itemTypes,
		Products:  map[string]uint64{"m8-bolt": 500},
	})
	if err != nil {
		t.Fatalf("add order failed: %v", err)
	}
	return order
}

// mustCompleteOrder прогоняет заказ через назначение поставщика и завершение.
func mustCompleteOrder(t *testing.T, svc *registry.Service, orderID, supplierID uint64) domain.Order {
	t.Helper()
	if _, err := svc.AddOrderSupplier(orderID, supplierID); err != nil {
		t.Fatalf("assign supplier failed: %v", err)
	}
	order, err := svc.CompleteOrder(orderID)
	if err != nil {
		t.Fatalf("complete order failed: %v", err)
	}
	return order
}
