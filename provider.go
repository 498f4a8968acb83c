package tracker

import (
	"context"
	"math/rand"
)

// PriceSource resolves a ticker symbol to its current price.
//
// A lookup is best-effort and one-shot: implementations must bound their own
// latency and return an error wrapping [ErrPriceUnavailable] when no quote
// can be obtained. Callers decide what to do with an outage; the tracker
// never substitutes a price silently.
type PriceSource interface {
	Price(ctx context.Context, symbol string) (Money, error)
}

// PriceFunc adapts a function to the PriceSource interface.
type PriceFunc func(ctx context.Context, symbol string) (Money, error)

func (f PriceFunc) Price(ctx context.Context, symbol string) (Money, error) {
	return f(ctx, symbol)
}

// demoPriceMin and demoPriceMax bound the prices invented by the demo source.
const (
	demoPriceMin = 50
	demoPriceMax = 500
)

// DemoSource is a PriceSource that invents a bounded pseudo-random price for
// every symbol. It exists for running the tracker without an API key; it must
// be selected explicitly and announced to the user, never used as a hidden
// fallback for a real source.
type DemoSource struct {
	rnd *rand.Rand
}

// NewDemoSource creates a demo source with its own seeded generator.
func NewDemoSource(seed int64) *DemoSource {
	return &DemoSource{rnd: rand.New(rand.NewSource(seed))}
}

// Price returns a pseudo-random price in [50, 500), rounded to cents.
func (d *DemoSource) Price(_ context.Context, _ string) (Money, error) {
	cents := demoPriceMin*100 + d.rnd.Intn((demoPriceMax-demoPriceMin)*100)
	return USD(cents).Div(Q(100)), nil
}
