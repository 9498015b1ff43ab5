package store

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/efreitasn/matchbook/internal/domain"
)

func newTestOrder(t *testing.T) *domain.Order {
	t.Helper()
	o, err := domain.NewOrder(domain.SideBuy, domain.MustPrice("100"), 10)
	if err != nil {
		t.Fatalf("NewOrder failed: %v", err)
	}
	return o
}

func TestOrderStore_Create_and_Get(t *testing.T) {
	s := NewOrderStore()
	o := newTestOrder(t)

	s.Create(o)

	got, err := s.Get(o.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != o {
		t.Error("expected the same order back")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestOrderStore_Get_NotFound(t *testing.T) {
	s := NewOrderStore()

	_, err := s.Get(uuid.New())
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
}
