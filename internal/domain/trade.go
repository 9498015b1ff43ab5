package domain

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
)

// tradeSeq is the process-wide trade id counter.
// The first trade constructed gets id 1.
var tradeSeq atomic.Int64

// Trade is an immutable record of one match between a buy order and a
// sell order at a computed execution price. The matched orders are
// referenced by their sequence numbers, by value: both orders may keep
// living and mutating after the trade is recorded.
type Trade struct {
	ID          int64
	BuyOrderID  int64
	SellOrderID int64
	Price       decimal.Decimal
	ExecutedAt  time.Time
}

// NewTrade constructs a trade with the next process-wide trade id and
// the current time. It returns an error wrapping ErrInvalidOrderID,
// ErrSelfTrade, or ErrInvalidPrice when either order id is non-positive,
// the two ids are equal, or the price is not strictly positive.
func NewTrade(buyOrderID, sellOrderID int64, price decimal.Decimal) (*Trade, error) {
	if buyOrderID <= 0 || sellOrderID <= 0 {
		return nil, fmt.Errorf("%w: order ids must be positive, got buy=%d sell=%d",
			ErrInvalidOrderID, buyOrderID, sellOrderID)
	}
	if buyOrderID == sellOrderID {
		return nil, fmt.Errorf("%w: buy and sell order ids are both %d", ErrSelfTrade, buyOrderID)
	}
	if !price.IsPositive() {
		return nil, fmt.Errorf("%w: execution price must be > 0, got %s", ErrInvalidPrice, price)
	}

	return &Trade{
		ID:          tradeSeq.Add(1),
		BuyOrderID:  buyOrderID,
		SellOrderID: sellOrderID,
		Price:       price,
		ExecutedAt:  time.Now(),
	}, nil
}

// String renders the trade as a single audit log line.
func (t *Trade) String() string {
	return fmt.Sprintf("Trade{tradeId=%d, buyOrderId=%d, sellOrderId=%d, price=%s, timestamp=%s}",
		t.ID, t.BuyOrderID, t.SellOrderID, t.Price, t.ExecutedAt.Format(time.RFC3339Nano))
}
