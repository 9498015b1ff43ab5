package engine

import (
	"github.com/shopspring/decimal"

	"github.com/efreitasn/matchbook/internal/domain"
)

// ExecutionPriceStrategy computes the price a match is recorded at. The
// book always passes the buy order first and the sell order second,
// whichever of the two was the incoming one, so asymmetric conventions
// behave deterministically. Strategies must be pure and must return a
// strictly positive price for any crossing pair.
type ExecutionPriceStrategy func(buy, sell *domain.Order) decimal.Decimal

var half = decimal.New(5, -1)

// MidpointPrice returns a strategy that records matches at the midpoint
// of the two limit prices, rounded to scale decimal places with
// banker's rounding.
func MidpointPrice(scale int32) ExecutionPriceStrategy {
	return func(buy, sell *domain.Order) decimal.Decimal {
		return buy.Price.Add(sell.Price).Mul(half).RoundBank(scale)
	}
}

// SellPrice records matches at the sell order's limit price.
func SellPrice(buy, sell *domain.Order) decimal.Decimal {
	return sell.Price
}
