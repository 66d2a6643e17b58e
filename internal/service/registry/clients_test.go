package registry_test

import (
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/supplychain/internal/domain"
)

func TestAddClientGetClient(t *testing.T) {
	svc := newTestService(t)

	client := mustAddClient(t, svc)
	if client.Name != "Acme" || client.Phone != "5551234" {
		t.Fatalf("unexpected client fields: %+v", client)
	}
	if len(client.OrderIDs) != 0 {
		t.Fatalf("expected empty order ids, got %v", client.OrderIDs)
	}
	if client.UpdatedAt != nil {
		t.Fatalf("expected nil updated_at, got %v", client.UpdatedAt)
	}
	if client.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set")
	}

	stored, err := svc.GetClient(client.ID)
	if err != nil {
		t.Fatalf("get client failed: %v", err)
	}
	if stored.ID != client.ID || stored.Name != client.Name || stored.Email != client.Email {
		t.Fatalf("stored client differs: %+v vs %+v", stored, client)
	}
	if len(stored.OrderIDs) != 0 || stored.UpdatedAt != nil {
		t.Fatalf("fresh client must have empty order ids and nil updated_at: %+v", stored)
	}
}

func TestAddClientInvalidPayload(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddClient(domain.ClientPayload{Name: "ab", Phone: "5551234"})
	if !errors.Is(err, domain.ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}

	_, err = svc.AddClient(domain.ClientPayload{Name: "Acme", Phone: "123"})
	if !errors.Is(err, domain.ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}
}

// Отклонённый payload не должен тратить идентификаторы: валидация идёт до счётчика.
func TestAddClientValidationPrecedesIDAllocation(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.AddClient(domain.ClientPayload{Name: "ab", Phone: "5551234"}); err == nil {
		t.Fatal("expected validation error")
	}

	first := mustAddClient(t, svc)
	second := mustAddClient(t, svc)
	if second.ID != first.ID+1 {
		t.Fatalf("rejected payload must not consume ids: got %d after %d", second.ID, first.ID)
	}
}

func TestGetClientMissing(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetClient(404)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddSupplierGetSupplier(t *testing.T) {
	svc := newTestService(t)

	supplier := mustAddSupplier(t, svc, "bolts", "nuts")
	if len(supplier.PreferredItems) != 2 {
		t.Fatalf("unexpected preferred items: %v", supplier.PreferredItems)
	}
	if len(supplier.OrderIDs) != 0 || supplier.UpdatedAt != nil {
		t.Fatalf("fresh supplier must have empty order ids and nil updated_at: %+v", supplier)
	}

	stored, err := svc.GetSupplier(supplier.ID)
	if err != nil {
		t.Fatalf("get supplier failed: %v", err)
	}
	if stored.ID != supplier.ID || stored.Name != supplier.Name {
		t.Fatalf("stored supplier differs: %+v", stored)
	}
}

// Счётчик общий для всех видов: идентификаторы никогда не пересекаются.
func TestSharedSequenceAcrossKinds(t *testing.T) {
	svc := newTestService(t)

	client := mustAddClient(t, svc)
	supplier := mustAddSupplier(t, svc)
	order := mustAddOrder(t, svc, client.ID, "bolts")

	seen := map[uint64]bool{client.ID: true}
	if seen[supplier.ID] {
		t.Fatalf("supplier id %d collides with client id", supplier.ID)
	}
	seen[supplier.ID] = true
	if seen[order.ID] {
		t.Fatalf("order id %d collides with an earlier id", order.ID)
	}

	if !(client.ID < supplier.ID && supplier.ID < order.ID) {
		t.Fatalf("ids must be strictly increasing: %d, %d, %d", client.ID, supplier.ID, order.ID)
	}
}

// Идентификаторы не переиспользуются даже после удаления заказа.
func TestSequenceNeverReusedAfterDelete(t *testing.T) {
	svc := newTestService(t)
	client := mustAddClient(t, svc)

	first := mustAddOrder(t, svc, client.ID, "bolts")
	if _, err := svc.DeleteOrder(first.ID); err != nil {
		t.Fatalf("delete order failed: %v", err)
	}

	second := mustAddOrder(t, svc, client.ID, "bolts")
	if second.ID <= first.ID {
		t.Fatalf("expected id above %d after delete, got %d", first.ID, second.ID)
	}
}
