package registry_test

import (
	"encoding/json"
	"testing"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/supplychain/internal/domain"
	"github.com/vladislavdragonenkov/supplychain/internal/service/registry"
	"github.com/vladislavdragonenkov/supplychain/internal/storage/memory"
)

func newTestServiceWithOutbox(t *testing.T) (*registry.Service, domain.OutboxRepository) {
	t.Helper()

	baseLogger := log.New()
	baseLogger.SetLevel(log.WarnLevel)
	outbox := memory.NewOutboxRepository()

	svc := registry.NewService(
		memory.NewClientRepository(),
		memory.NewSupplierRepository(),
		memory.NewOrderRepository(),
		memory.NewSequence(),
		registry.WithLogger(baseLogger.WithField("component", "registry-test")),
		registry.WithOutbox(outbox),
		registry.WithoutMetrics(),
	)
	return svc, outbox
}

func TestMutationsEnqueueEvents(t *testing.T) {
	svc, outbox := newTestServiceWithOutbox(t)

	client := mustAddClient(t, svc)
	supplier := mustAddSupplier(t, svc)
	order := mustAddOrder(t, svc, client.ID, "bolts")
	mustCompleteOrder(t, svc, order.ID, supplier.ID)

	pending, err := outbox.PullPending(100)
	if err != nil {
		t.Fatalf("pull pending failed: %v", err)
	}

	// client.created, supplier.created, order.created, order.supplier_assigned, order.completed
	if len(pending) != 5 {
		t.Fatalf("expected 5 enqueued events, got %d", len(pending))
	}

	types := make(map[string]int)
	for _, msg := range pending {
		types[msg.EventType]++
		if msg.AggregateID == "" {
			t.Fatalf("event %s without aggregate id", msg.EventType)
		}
		if !json.Valid(msg.Payload) {
			t.Fatalf("event %s carries invalid JSON payload", msg.EventType)
		}
	}
	for _, want := range []string{"client.created", "supplier.created", "order.created", "order.supplier_assigned", "order.completed"} {
		if types[want] != 1 {
			t.Fatalf("expected exactly one %s event, got %d", want, types[want])
		}
	}
}

func TestFailedMutationEnqueuesNothing(t *testing.T) {
	svc, outbox := newTestServiceWithOutbox(t)

	if _, err := svc.AddOrder(domain.OrderPayload{Title: "x", ClientID: 404}); !domain.IsNotFound(err) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	pending, err := outbox.PullPending(100)
	if err != nil {
		t.Fatalf("pull pending failed: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("rejected mutation must not enqueue events, got %d", len(pending))
	}
}
