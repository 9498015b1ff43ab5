package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ParsePrice converts a decimal string (e.g. "150.50") into a strictly
// positive price. It returns an error wrapping ErrInvalidPrice when the
// string is not a decimal number or the value is not > 0.
func ParsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is not a decimal number", ErrInvalidPrice, s)
	}
	if !d.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: price must be > 0, got %s", ErrInvalidPrice, d)
	}
	return d, nil
}

// MustPrice is ParsePrice for statically known values; it panics on
// invalid input. Intended for fixed scripts and tests.
func MustPrice(s string) decimal.Decimal {
	d, err := ParsePrice(s)
	if err != nil {
		panic(err)
	}
	return d
}
