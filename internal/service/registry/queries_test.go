package registry_test

import (
	"testing"
	"time"

	"github.com/vladislavdragonenkov/supplychain/internal/domain"
)

func TestOrdersEmptyStore(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Orders(); !domain.IsNotFound(err) {
		t.Fatalf("expected ErrNotFound on empty store, got %v", err)
	}
}

func TestOrdersByCompletion(t *testing.T) {
	svc := newTestService(t)
	client := mustAddClient(t, svc)
	supplier := mustAddSupplier(t, svc)

	draft := mustAddOrder(t, svc, client.ID, "bolts")
	done := mustAddOrder(t, svc, client.ID, "nuts")
	mustCompleteOrder(t, svc, done.ID, supplier.ID)

	all, err := svc.Orders()
	if err != nil {
		t.Fatalf("orders failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(all))
	}

	incomplete, err := svc.IncompleteOrders()
	if err != nil {
		t.Fatalf("incomplete orders failed: %v", err)
	}
	if len(incomplete) != 1 || incomplete[0].ID != draft.ID {
		t.Fatalf("expected draft order only, got %v", incomplete)
	}

	completed, err := svc.CompletedOrders()
	if err != nil {
		t.Fatalf("completed orders failed: %v", err)
	}
	if len(completed) != 1 || completed[0].ID != done.ID {
		t.Fatalf("expected completed order only, got %v", completed)
	}
}

func TestClientOrders(t *testing.T) {
	svc := newTestService(t)
	first := mustAddClient(t, svc)
	second := mustAddClient(t, svc)
	order := mustAddOrder(t, svc, first.ID, "bolts")

	orders, err := svc.ClientOrders(first.ID)
	if err != nil {
		t.Fatalf("client orders failed: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != order.ID {
		t.Fatalf("unexpected client orders: %v", orders)
	}

	// Существующий клиент без заказов и несуществующий клиент неразличимы для вызывающего.
	if _, err := svc.ClientOrders(second.ID); !domain.IsNotFound(err) {
		t.Fatalf("expected ErrNotFound for client without orders, got %v", err)
	}
	if _, err := svc.ClientOrders(404); !domain.IsNotFound(err) {
		t.Fatalf("expected ErrNotFound for missing client, got %v", err)
	}
}

func TestSupplierOrders(t *testing.T) {
	svc := newTestService(t)
	client := mustAddClient(t, svc)
	supplier := mustAddSupplier(t, svc)

	assigned := mustAddOrder(t, svc, client.ID, "bolts")
	if _, err := svc.AddOrderSupplier(assigned.ID, supplier.ID); err != nil {
		t.Fatalf("assign supplier failed: %v", err)
	}
	mustAddOrder(t, svc, client.ID, "nuts") // без поставщика

	orders, err := svc.SupplierOrders(supplier.ID)
	if err != nil {
		t.Fatalf("supplier orders failed: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != assigned.ID {
		t.Fatalf("unexpected supplier orders: %v", orders)
	}

	if _, err := svc.SupplierCompletedOrders(supplier.ID); !domain.IsNotFound(err) {
		t.Fatalf("expected ErrNotFound before completion, got %v", err)
	}

	if _, err := svc.CompleteOrder(assigned.ID); err != nil {
		t.Fatalf("complete order failed: %v", err)
	}

	completed, err := svc.SupplierCompletedOrders(supplier.ID)
	if err != nil {
		t.Fatalf("supplier completed orders failed: %v", err)
	}
	if len(completed) != 1 || completed[0].ID != assigned.ID {
		t.Fatalf("unexpected completed orders: %v", completed)
	}
}

func TestSupplierPreferredOrders(t *testing.T) {
	svc := newTestService(t)
	client := mustAddClient(t, svc)
	supplier := mustAddSupplier(t, svc, "bolts")

	matching := mustAddOrder(t, svc, client.ID, "bolts", "washers")
	mustAddOrder(t, svc, client.ID, "paint")

	orders, err := svc.SupplierPreferredOrders(supplier.ID)
	if err != nil {
		t.Fatalf("preferred orders failed: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != matching.ID {
		t.Fatalf("unexpected preferred orders: %v", orders)
	}

	other := mustAddSupplier(t, svc, "glue")
	if _, err := svc.SupplierPreferredOrders(other.ID); !domain.IsNotFound(err) {
		t.Fatalf("expected ErrNotFound for supplier without matches, got %v", err)
	}
}

func TestFilterOrdersWildcard(t *testing.T) {
	svc := newTestService(t)
	client := mustAddClient(t, svc)
	mustAddOrder(t, svc, client.ID, "bolts")
	mustAddOrder(t, svc, client.ID, "nuts")

	orders, err := svc.FilterOrders(domain.OrderCriteria{})
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("wildcard criteria must return every order, got %d", len(orders))
	}
}

func TestFilterOrdersConjunction(t *testing.T) {
	svc := newTestService(t)
	client := mustAddClient(t, svc)
	supplier := mustAddSupplier(t, svc)

	done := mustAddOrder(t, svc, client.ID, "bolts")
	mustCompleteOrder(t, svc, done.ID, supplier.ID)
	mustAddOrder(t, svc, client.ID, "nuts")

	isComplete := true
	orders, err := svc.FilterOrders(domain.OrderCriteria{
		ClientID:   &client.ID,
		IsComplete: &isComplete,
		Product:    strPtr("m8-bolt"),
	})
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != done.ID {
		t.Fatalf("unexpected filter result: %v", orders)
	}
}

// Противоречивые критерии дают NotFound, а не пустой срез.
func TestFilterOrdersContradiction(t *testing.T) {
	svc := newTestService(t)
	client := mustAddClient(t, svc)
	mustAddOrder(t, svc, client.ID, "bolts") // клиент имеет только незавершённые заказы

	isComplete := true
	_, err := svc.FilterOrders(domain.OrderCriteria{
		ClientID:   &client.ID,
		IsComplete: &isComplete,
	})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected ErrNotFound for contradictory criteria, got %v", err)
	}
}

func TestFilterOrdersDateRange(t *testing.T) {
	svc := newTestService(t)
	client := mustAddClient(t, svc)
	order := mustAddOrder(t, svc, client.ID, "bolts")

	from := order.CreatedAt.Add(-time.Minute)
	to := order.CreatedAt.Add(time.Minute)
	orders, err := svc.FilterOrders(domain.OrderCriteria{CreatedFrom: &from, CreatedTo: &to})
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected order inside the range, got %d", len(orders))
	}

	past := order.CreatedAt.Add(-time.Hour)
	if _, err := svc.FilterOrders(domain.OrderCriteria{CreatedTo: &past}); !domain.IsNotFound(err) {
		t.Fatalf("expected ErrNotFound outside the range, got %v", err)
	}
}

func strPtr(v string) *string { return &v }
