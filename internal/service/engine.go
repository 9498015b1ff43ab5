package service

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/efreitasn/matchbook/internal/audit"
	"github.com/efreitasn/matchbook/internal/domain"
	"github.com/efreitasn/matchbook/internal/engine"
	"github.com/efreitasn/matchbook/internal/store"
)

// MatchingEngine sequences order submissions into the book and fans the
// results out: trades are appended to the history, the order is indexed
// for later lookup, and the submission, each trade, and a book snapshot
// are written to the audit sink.
//
// The book has no I/O dependency of its own; this layer owns the
// boundary between matching and logging.
type MatchingEngine struct {
	mu     sync.Mutex
	book   *engine.OrderBook
	sink   audit.Sink
	orders *store.OrderStore
	trades *store.TradeStore
}

// NewMatchingEngine creates a MatchingEngine with the given dependencies.
// sink may be nil, in which case no activity is logged.
func NewMatchingEngine(
	book *engine.OrderBook,
	sink audit.Sink,
	orders *store.OrderStore,
	trades *store.TradeStore,
) *MatchingEngine {
	return &MatchingEngine{
		book:   book,
		sink:   sink,
		orders: orders,
		trades: trades,
	}
}

// Submit forwards the order to the book and records the outcome. The
// engine mutex makes submit-then-log-then-append atomic with respect to
// history reads. Audit failures are reported via slog and never fail
// the submission; a book error aborts it with nothing recorded.
func (e *MatchingEngine) Submit(order *domain.Order) ([]*domain.Trade, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.append("SUBMIT: " + order.String())

	newTrades, err := e.book.Submit(order)
	if err != nil {
		return nil, err
	}

	e.orders.Create(order)
	for _, t := range newTrades {
		e.append("TRADE: " + t.String())
		e.trades.Append(t)
	}
	e.append(e.book.Snapshot())

	return newTrades, nil
}

// Trades returns the accumulated trade history in execution order.
func (e *MatchingEngine) Trades() []*domain.Trade {
	return e.trades.All()
}

// Order retrieves a previously submitted order by its external uuid.
func (e *MatchingEngine) Order(id uuid.UUID) (*domain.Order, error) {
	return e.orders.Get(id)
}

// Book exposes the underlying order book for read-only inspection.
func (e *MatchingEngine) Book() *engine.OrderBook {
	return e.book
}

func (e *MatchingEngine) append(line string) {
	if e.sink == nil {
		return
	}
	if err := e.sink.Append(line); err != nil {
		slog.Warn("audit append failed", slog.String("error", err.Error()))
	}
}
