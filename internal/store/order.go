package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/efreitasn/matchbook/internal/domain"
)

// OrderStore is a thread-safe in-memory index of every submitted order,
// keyed by the order's external uuid.
type OrderStore struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]*domain.Order
}

// NewOrderStore creates an empty OrderStore.
func NewOrderStore() *OrderStore {
	return &OrderStore{
		orders: make(map[uuid.UUID]*domain.Order),
	}
}

// Create adds an order to the index.
func (s *OrderStore) Create(o *domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders[o.ID] = o
}

// Get retrieves an order by its external uuid. It returns
// domain.ErrOrderNotFound if the order was never submitted.
func (s *OrderStore) Get(id uuid.UUID) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return o, nil
}

// Len returns the number of indexed orders.
func (s *OrderStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}
