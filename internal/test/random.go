package test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/go-petr/cash-card/internal/domain"
	"github.com/go-petr/cash-card/pkg/randompkg"
)

// RandomCashCard returns a random stored cash card owned by the given owner.
func RandomCashCard(owner string) domain.CashCard {
	return domain.CashCard{
		ID:     randompkg.IntBetween(1, 100),
		Amount: randompkg.MoneyAmountBetween(0, 10_000),
		Owner:  owner,
	}
}

// MustDecimal parses s or fails the test.
func MustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("decimal.NewFromString(%q) returned error: %v", s, err)
	}

	return d
}
