package sqlite

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/supplychain/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "registry.db"))
	if err != nil {
		t.Fatalf("open store failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestClientRepositoryRoundtrip(t *testing.T) {
	store := newTestStore(t)
	repo := NewClientRepository(store)

	client := domain.Client{
		ID:        1,
		Name:      "Acme Corp",
		Email:     "ops@acme.test",
		Phone:     "+15550100",
		OrderIDs:  []uint64{4, 7},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	if err := repo.Put(client); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	stored, found, err := repo.Get(1)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !found {
		t.Fatal("expected client to be found")
	}
	if stored.Name != client.Name || len(stored.OrderIDs) != 2 {
		t.Fatalf("stored client differs: %+v", stored)
	}

	if _, found, err := repo.Get(404); err != nil || found {
		t.Fatalf("expected clean miss, got found=%v err=%v", found, err)
	}
}

func TestPutOverwritesRecord(t *testing.T) {
	store := newTestStore(t)
	repo := NewSupplierRepository(store)

	supplier := domain.Supplier{ID: 3, Name: "Bolt Works", Email: "sales@bolts.test", Phone: "+15550101"}
	if err := repo.Put(supplier); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	supplier.Name = "Bolt Works Ltd"
	if err := repo.Put(supplier); err != nil {
		t.Fatalf("second put failed: %v", err)
	}

	stored, _, err := repo.Get(3)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.Name != "Bolt Works Ltd" {
		t.Fatalf("expected overwrite, got %q", stored.Name)
	}
}

func TestOrderRepositoryScanOrder(t *testing.T) {
	store := newTestStore(t)
	repo := NewOrderRepository(store)

	for _, id := range []uint64{5, 1, 3} {
		if err := repo.Put(domain.Order{ID: id, Title: "order", ClientID: 1}); err != nil {
			t.Fatalf("put %d failed: %v", id, err)
		}
	}

	orders, err := repo.All()
	if err != nil {
		t.Fatalf("all failed: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}
	for i, want := range []uint64{1, 3, 5} {
		if orders[i].ID != want {
			t.Fatalf("expected ascending id order, got %v", orders)
		}
	}

	removed, found, err := repo.Remove(3)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if !found || removed.ID != 3 {
		t.Fatalf("expected removed order 3, got found=%v order=%+v", found, removed)
	}
	if _, found, _ := repo.Get(3); found {
		t.Fatal("expected order 3 to be removed")
	}
	if _, found, err := repo.Remove(3); err != nil || found {
		t.Fatalf("expected clean miss on repeated remove, got found=%v err=%v", found, err)
	}
}

func TestRecordSizeLimit(t *testing.T) {
	store := newTestStore(t)
	repo := NewClientRepository(store)

	oversized := domain.Client{
		ID:    9,
		Name:  strings.Repeat("x", maxRecordBytes),
		Email: "big@acme.test",
		Phone: "+15550102",
	}
	err := repo.Put(oversized)
	if !domain.IsStorageFault(err) {
		t.Fatalf("expected storage fault for oversized record, got %v", err)
	}
}

func TestSequenceIsSharedAndPersistent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "registry.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store failed: %v", err)
	}
	seq := NewSequence(store)

	for want := uint64(0); want < 3; want++ {
		got, err := seq.Next()
		if err != nil {
			t.Fatalf("next failed: %v", err)
		}
		if got != want {
			t.Fatalf("expected id %d, got %d", want, got)
		}
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	// Счётчик переживает переоткрытие файла.
	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	got, err := NewSequence(reopened).Next()
	if err != nil {
		t.Fatalf("next after reopen failed: %v", err)
	}
	if got != 3 {
		t.Fatalf("expected counter to survive reopen, got %d", got)
	}
}
