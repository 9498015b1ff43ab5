package store

import (
	"sync"
	"time"

	"github.com/efreitasn/matchbook/internal/domain"
)

// TradeStore is a thread-safe append-only trade history for the single
// traded instrument. Trades are chronological.
type TradeStore struct {
	mu     sync.RWMutex
	trades []*domain.Trade
}

// NewTradeStore creates an empty TradeStore.
func NewTradeStore() *TradeStore {
	return &TradeStore{}
}

// Append adds a trade to the end of the history.
func (s *TradeStore) Append(t *domain.Trade) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trades = append(s.trades, t)
}

// All returns the full history in chronological order.
// The returned slice is a copy.
func (s *TradeStore) All() []*domain.Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Trade, len(s.trades))
	copy(result, s.trades)
	return result
}

// Since returns the trades executed at or after t, in chronological order.
func (s *TradeStore) Since(t time.Time) []*domain.Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []*domain.Trade{}
	for _, tr := range s.trades {
		if !tr.ExecutedAt.Before(t) {
			result = append(result, tr)
		}
	}
	return result
}

// Len returns the number of recorded trades.
func (s *TradeStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.trades)
}
