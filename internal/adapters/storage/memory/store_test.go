package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jsamuelsen11/petitions-service/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/petitions-service/internal/adapters/storage/storagetest"
	"github.com/jsamuelsen11/petitions-service/internal/ports"
)

func TestStore(t *testing.T) {
	t.Parallel()

	storagetest.Run(t, func(*testing.T) ports.Store { return memory.New() })
}

func TestStore_ReturnsCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := memory.New()
	p := storagetest.NewPetition("Copies", storagetest.Base, "a@example.com")
	if err := s.CreatePetition(ctx, p); err != nil {
		t.Fatalf("CreatePetition() error = %v", err)
	}

	p.Action = "mutated after create"
	got, err := s.GetPetition(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetPetition() error = %v", err)
	}
	if got.Action != "Copies" {
		t.Errorf("Action = %q, want the stored value", got.Action)
	}

	got.Sponsors[0].Email = "changed@example.com"
	again, err := s.GetPetition(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetPetition() error = %v", err)
	}
	if again.Sponsors[0].Email != "a@example.com" {
		t.Errorf("sponsor email = %q, want stored value unaffected by caller", again.Sponsors[0].Email)
	}
}

func TestStore_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := memory.New().GetPetition(ctx, 1)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("GetPetition() error = %v, want context.Canceled", err)
	}
}
