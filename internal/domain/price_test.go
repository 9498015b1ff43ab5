package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParsePrice_Valid(t *testing.T) {
	p, err := ParsePrice("150.50")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Equal(decimal.RequireFromString("150.50")) {
		t.Errorf("ParsePrice(\"150.50\") = %s, want 150.50", p)
	}
}

func TestParsePrice_NotANumber(t *testing.T) {
	_, err := ParsePrice("abc")
	if !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("expected ErrInvalidPrice, got %v", err)
	}
}

func TestParsePrice_NonPositive(t *testing.T) {
	for _, s := range []string{"0", "-1.50"} {
		_, err := ParsePrice(s)
		if !errors.Is(err, ErrInvalidPrice) {
			t.Errorf("ParsePrice(%q): expected ErrInvalidPrice, got %v", s, err)
		}
	}
}

func TestMustPrice_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected MustPrice to panic on invalid input")
		}
	}()
	MustPrice("-3")
}
