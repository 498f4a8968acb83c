package tracker

import (
	"context"
	"fmt"
)

// PositionReport is the valuation of a single position at current prices.
type PositionReport struct {
	Symbol      string
	Shares      Quantity
	AvgPrice    Money
	Price       Money // current price from the price source
	CostBasis   Money // Shares x AvgPrice
	Value       Money // Shares x Price
	GainLoss    Money
	GainLossPct Percent
}

// Report is the valuation of a whole portfolio at current prices.
type Report struct {
	Positions []PositionReport
	Cash      Money
	Value     Money // sum of position values, excluding cash
	Total     Money // Value plus Cash
	CostBasis Money
	GainLoss  Money
	// GainLossPct is zero when CostBasis is zero (empty portfolio guard).
	GainLossPct Percent
}

// Valuate derives current values and gain/loss metrics for every position and
// in aggregate. The price source is consulted once per position, with no
// caching; the first failed lookup aborts the report.
func Valuate(ctx context.Context, p *Portfolio, quotes PriceSource) (*Report, error) {
	report := &Report{
		Positions: make([]PositionReport, 0, len(p.Positions)),
		Cash:      p.Cash,
		Value:     USD(0),
		CostBasis: USD(0),
	}

	for _, pos := range p.Positions {
		price, err := quotes.Price(ctx, pos.Symbol)
		if err != nil {
			return nil, fmt.Errorf("could not value position %q: %w", pos.Symbol, err)
		}

		costBasis := pos.CostBasis()
		value := price.Mul(pos.Shares)
		gainLoss := value.Sub(costBasis)
		// A held position implies shares > 0, so a zero cost basis can only
		// come from a zero average price. Guard it rather than divide.
		var pct Percent
		if !costBasis.IsZero() {
			pct = gainLoss.Percent(costBasis)
		}

		report.Positions = append(report.Positions, PositionReport{
			Symbol:      pos.Symbol,
			Shares:      pos.Shares,
			AvgPrice:    pos.AvgPrice,
			Price:       price,
			CostBasis:   costBasis,
			Value:       value,
			GainLoss:    gainLoss,
			GainLossPct: pct,
		})

		report.Value = report.Value.Add(value)
		report.CostBasis = report.CostBasis.Add(costBasis)
	}

	report.Total = report.Value.Add(report.Cash)
	report.GainLoss = report.Value.Sub(report.CostBasis)
	if !report.CostBasis.IsZero() {
		report.GainLossPct = report.GainLoss.Percent(report.CostBasis)
	}
	return report, nil
}
