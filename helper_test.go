package tracker

import (
	"context"
	"testing"
	"time"
)

// testClock is the fixed instant every test ledger stamps transactions with.
var testClock = time.Date(2025, time.March, 14, 15, 9, 26, 0, time.UTC)

// newTestLedger creates a ledger over a fresh portfolio with the given cash
// balance, a deterministic clock, and the given price source (nil is fine for
// tests that always pass explicit prices).
func newTestLedger(t *testing.T, cash float64, quotes PriceSource) *Ledger {
	t.Helper()
	p := NewPortfolio()
	p.Cash = USD(cash)
	l := NewLedger(p, quotes)
	l.now = func() time.Time { return testClock }
	return l
}

// quotes builds a PriceSource from a symbol-to-price map; unknown symbols
// fail with ErrPriceUnavailable.
func quotes(table map[string]float64) PriceSource {
	return PriceFunc(func(_ context.Context, symbol string) (Money, error) {
		price, ok := table[symbol]
		if !ok {
			return Money{}, ErrPriceUnavailable
		}
		return USD(price), nil
	})
}
