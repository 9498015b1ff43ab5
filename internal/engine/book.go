package engine

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/btree"

	"github.com/efreitasn/matchbook/internal/domain"
)

// buyLess defines ordering for the buy side: price descending, then
// created_at ascending, then sequence ascending. This means Min()
// returns the best buy (highest price, earliest submission).
func buyLess(a, b *domain.Order) bool {
	if !a.Price.Equal(b.Price) {
		return a.Price.GreaterThan(b.Price)
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.Seq < b.Seq
}

// sellLess defines ordering for the sell side: price ascending, then
// created_at ascending, then sequence ascending. Min() returns the
// best sell (lowest price, earliest submission).
func sellLess(a, b *domain.Order) bool {
	if !a.Price.Equal(b.Price) {
		return a.Price.LessThan(b.Price)
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.Seq < b.Seq
}

// OrderBook maintains the resting buy and sell sides for a single
// instrument using B-trees ordered by price-time priority. Only orders
// with remaining quantity rest on a side; the instant an order fills it
// is removed. While an order rests, its remaining quantity is written
// only by the matching loop.
type OrderBook struct {
	mu       sync.Mutex
	buys     *btree.BTreeG[*domain.Order]
	sells    *btree.BTreeG[*domain.Order]
	strategy ExecutionPriceStrategy
}

// New creates an empty order book that records matches at the price
// computed by strategy.
func New(strategy ExecutionPriceStrategy) *OrderBook {
	const degree = 32
	return &OrderBook{
		buys:     btree.NewG[*domain.Order](degree, buyLess),
		sells:    btree.NewG[*domain.Order](degree, sellLess),
		strategy: strategy,
	}
}

// Submit matches the incoming order against the opposite side's resting
// liquidity and rests any unfilled remainder on the order's own side.
// It returns every trade generated by this single submission, possibly
// none, in the order they occurred.
//
// The book mutex is held for the entire pass, so no two submissions can
// interleave their peek/reduce/remove steps.
//
// A reduce or trade-construction failure inside the loop means the loop
// computed an impossible quantity or price. The submission is aborted
// and the error wraps domain.ErrInternalInconsistency.
func (ob *OrderBook) Submit(order *domain.Order) ([]*domain.Trade, error) {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	trades := []*domain.Trade{}

	for !order.IsFilled() {
		var resting *domain.Order
		var ok bool
		if order.Side == domain.SideBuy {
			resting, ok = ob.sells.Min()
		} else {
			resting, ok = ob.buys.Min()
		}
		if !ok {
			break
		}

		// No cross possible: stop without touching either order.
		if order.Side == domain.SideBuy {
			if order.Price.LessThan(resting.Price) {
				break
			}
		} else {
			if resting.Price.LessThan(order.Price) {
				break
			}
		}

		qty := order.RemainingQty()
		if r := resting.RemainingQty(); r < qty {
			qty = r
		}

		// The strategy always receives (buy, sell) in that argument
		// order, regardless of which side is incoming. Strategies may
		// be asymmetric, so this order must not change.
		buy, sell := order, resting
		if order.Side == domain.SideSell {
			buy, sell = resting, order
		}
		price := ob.strategy(buy, sell)

		trade, err := domain.NewTrade(buy.Seq, sell.Seq, price)
		if err != nil {
			return nil, fmt.Errorf("%w: trade for orders %d/%d: %v",
				domain.ErrInternalInconsistency, buy.Seq, sell.Seq, err)
		}
		if err := order.Reduce(qty); err != nil {
			return nil, fmt.Errorf("%w: reduce incoming order %d by %d: %v",
				domain.ErrInternalInconsistency, order.Seq, qty, err)
		}
		if err := resting.Reduce(qty); err != nil {
			return nil, fmt.Errorf("%w: reduce resting order %d by %d: %v",
				domain.ErrInternalInconsistency, resting.Seq, qty, err)
		}
		trades = append(trades, trade)

		if resting.IsFilled() {
			if order.Side == domain.SideBuy {
				ob.sells.Delete(resting)
			} else {
				ob.buys.Delete(resting)
			}
		}
	}

	if !order.IsFilled() {
		if order.Side == domain.SideBuy {
			ob.buys.ReplaceOrInsert(order)
		} else {
			ob.sells.ReplaceOrInsert(order)
		}
	}

	return trades, nil
}

// Snapshot returns a deterministic textual view of the resting book,
// both sides listed top-first in the same priority order used for
// matching. It takes the same mutex as Submit, so the view is always
// consistent, and it is idempotent between submissions.
func (ob *OrderBook) Snapshot() string {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	var sb strings.Builder
	sb.WriteString("=== OrderBook Snapshot ===\n")
	sb.WriteString("BUYS (top first):\n")
	ob.buys.Ascend(func(o *domain.Order) bool {
		sb.WriteString(o.String())
		sb.WriteByte('\n')
		return true
	})
	sb.WriteString("SELLS (top first):\n")
	ob.sells.Ascend(func(o *domain.Order) bool {
		sb.WriteString(o.String())
		sb.WriteByte('\n')
		return true
	})
	return sb.String()
}

// BestBuy returns the highest-priority resting buy, if any.
func (ob *OrderBook) BestBuy() (*domain.Order, bool) {
	ob.mu.Lock()
	defer ob.mu.Unlock()
	return ob.buys.Min()
}

// BestSell returns the highest-priority resting sell, if any.
func (ob *OrderBook) BestSell() (*domain.Order, bool) {
	ob.mu.Lock()
	defer ob.mu.Unlock()
	return ob.sells.Min()
}

// BuyCount returns the number of resting buy orders.
func (ob *OrderBook) BuyCount() int {
	ob.mu.Lock()
	defer ob.mu.Unlock()
	return ob.buys.Len()
}

// SellCount returns the number of resting sell orders.
func (ob *OrderBook) SellCount() int {
	ob.mu.Lock()
	defer ob.mu.Unlock()
	return ob.sells.Len()
}

// WalkBuys iterates resting buys in priority order (best first). The
// callback returns true to continue, false to stop.
func (ob *OrderBook) WalkBuys(fn func(*domain.Order) bool) {
	ob.mu.Lock()
	defer ob.mu.Unlock()
	ob.buys.Ascend(fn)
}

// WalkSells iterates resting sells in priority order (best first). The
// callback returns true to continue, false to stop.
func (ob *OrderBook) WalkSells(fn func(*domain.Order) bool) {
	ob.mu.Lock()
	defer ob.mu.Unlock()
	ob.sells.Ascend(fn)
}
