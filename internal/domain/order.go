package domain

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Side indicates whether an order is a buy or a sell.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// orderSeq is the process-wide submission sequence counter.
// The first order constructed gets sequence 1.
var orderSeq atomic.Int64

// Order represents a limit order: an immutable intent (side, limit price,
// original quantity) plus a mutable remaining quantity. The sequence
// number and creation time are the tie-break keys for price-time priority;
// the uuid exists for external reference only.
type Order struct {
	ID          uuid.UUID
	Seq         int64
	Side        Side
	Price       decimal.Decimal
	OriginalQty int64
	CreatedAt   time.Time

	mu        sync.Mutex
	remaining int64
}

// NewOrder constructs an order with remaining quantity equal to qty, a
// fresh uuid, and the next submission sequence number. It returns an
// error wrapping ErrInvalidPrice or ErrInvalidQuantity when price is not
// strictly positive or qty <= 0.
func NewOrder(side Side, price decimal.Decimal, qty int64) (*Order, error) {
	if !price.IsPositive() {
		return nil, fmt.Errorf("%w: order price must be > 0, got %s", ErrInvalidPrice, price)
	}
	if qty <= 0 {
		return nil, fmt.Errorf("%w: original quantity must be > 0, got %d", ErrInvalidQuantity, qty)
	}

	return &Order{
		ID:          uuid.New(),
		Seq:         orderSeq.Add(1),
		Side:        side,
		Price:       price,
		OriginalQty: qty,
		CreatedAt:   time.Now(),
		remaining:   qty,
	}, nil
}

// Reduce decreases the remaining quantity by qty. It is the only mutator
// on an order. It returns an error wrapping ErrInvalidQuantity when
// qty <= 0 or qty exceeds the current remaining quantity, leaving the
// remaining quantity unchanged.
func (o *Order) Reduce(qty int64) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if qty <= 0 {
		return fmt.Errorf("%w: reduction must be > 0, got %d", ErrInvalidQuantity, qty)
	}
	if qty > o.remaining {
		return fmt.Errorf("%w: reduction %d exceeds remaining quantity %d", ErrInvalidQuantity, qty, o.remaining)
	}
	o.remaining -= qty
	return nil
}

// RemainingQty returns the current remaining quantity.
func (o *Order) RemainingQty() int64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.remaining
}

// IsFilled reports whether the order has no remaining quantity.
func (o *Order) IsFilled() bool {
	return o.RemainingQty() == 0
}

// String renders the order as a single audit log line.
func (o *Order) String() string {
	return fmt.Sprintf("Order{seq=%d, id=%s, side=%s, price=%s, remainingQty=%d}",
		o.Seq, o.ID, o.Side, o.Price, o.RemainingQty())
}
