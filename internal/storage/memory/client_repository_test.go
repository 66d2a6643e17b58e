package memory_test

import (
	"testing"
	"time"

	"github.com/vladislavdragonenkov/supplychain/internal/domain"
	"github.com/vladislavdragonenkov/supplychain/internal/storage/memory"
)

func TestClientRepository_PutGet(t *testing.T) {
	repo := memory.NewClientRepository()
	client := domain.Client{
		ID:        1,
		Name:      "Acme",
		Email:     "contact@acme.test",
		Phone:     "5551234",
		CreatedAt: time.Now().UTC(),
	}

	if err := repo.Put(client); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	stored, ok, err := repo.Get(client.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !ok {
		t.Fatal("expected client to exist")
	}
	if stored.Name != client.Name || stored.Phone != client.Phone {
		t.Fatalf("stored client differs from the original: %+v", stored)
	}
	if stored.OrderIDs != nil {
		t.Fatalf("expected no order ids, got %v", stored.OrderIDs)
	}
}

func TestClientRepository_GetReturnsCopy(t *testing.T) {
	repo := memory.NewClientRepository()
	client := domain.Client{ID: 1, Name: "Acme", OrderIDs: []uint64{5}}
	if err := repo.Put(client); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	first, _, err := repo.Get(1)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	first.OrderIDs[0] = 99

	second, _, err := repo.Get(1)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if second.OrderIDs[0] != 5 {
		t.Fatal("stored client must not be affected by caller mutations")
	}
}
