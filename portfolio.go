package tracker

import (
	"encoding/json"
	"fmt"
)

// Position is a stock holding: a number of shares carried at their
// weighted-average purchase price.
//
// A position only exists while Shares is strictly positive; selling the last
// share removes it from the portfolio.
type Position struct {
	Symbol   string   `json:"symbol"`
	Shares   Quantity `json:"shares"`
	AvgPrice Money    `json:"avg_price"`
	OpenedOn Date     `json:"purchase_date"`
}

// CostBasis returns shares times the average purchase price.
func (p Position) CostBasis() Money { return p.AvgPrice.Mul(p.Shares) }

func (p Position) Equal(o Position) bool {
	return p.Symbol == o.Symbol &&
		p.Shares.Equal(o.Shares) &&
		p.AvgPrice.Equal(o.AvgPrice) &&
		p.OpenedOn == o.OpenedOn
}

// Portfolio is the aggregate the ledger operates on: a cash balance, the open
// positions in insertion order, and the chronological transaction log.
//
// A Portfolio is owned by exactly one Store per run; it is loaded once at
// startup and fully rewritten after every mutation.
type Portfolio struct {
	Cash         Money
	Positions    []Position
	Transactions []Transaction
}

// NewPortfolio creates an empty portfolio with a zero cash balance.
func NewPortfolio() *Portfolio {
	return &Portfolio{
		Cash:         USD(0),
		Positions:    make([]Position, 0),
		Transactions: make([]Transaction, 0),
	}
}

// Position returns the position held for symbol, or false if none is held.
func (p *Portfolio) Position(symbol string) (Position, bool) {
	for _, pos := range p.Positions {
		if pos.Symbol == symbol {
			return pos, true
		}
	}
	return Position{}, false
}

// positionIndex returns the index of the position for symbol, or -1.
func (p *Portfolio) positionIndex(symbol string) int {
	for i := range p.Positions {
		if p.Positions[i].Symbol == symbol {
			return i
		}
	}
	return -1
}

// Equal reports field-for-field equality, the round-trip guarantee of the
// snapshot file.
func (p *Portfolio) Equal(o *Portfolio) bool {
	if !p.Cash.Equal(o.Cash) || len(p.Positions) != len(o.Positions) || len(p.Transactions) != len(o.Transactions) {
		return false
	}
	for i := range p.Positions {
		if !p.Positions[i].Equal(o.Positions[i]) {
			return false
		}
	}
	for i := range p.Transactions {
		if !p.Transactions[i].Equal(o.Transactions[i]) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the snapshot document with its keys in a stable order.
func (p *Portfolio) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("stocks", p.Positions)
	w.Append("transactions", p.Transactions)
	w.Append("cash", p.Cash)
	return w.MarshalJSON()
}

// UnmarshalJSON decodes a snapshot document.
func (p *Portfolio) UnmarshalJSON(data []byte) error {
	var temp struct {
		Stocks       []Position    `json:"stocks"`
		Transactions []Transaction `json:"transactions"`
		Cash         Money         `json:"cash"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return fmt.Errorf("could not decode snapshot: %w", err)
	}
	if temp.Cash.IsNegative() {
		return fmt.Errorf("could not decode snapshot: negative cash balance %s", temp.Cash)
	}
	for _, pos := range temp.Stocks {
		if !pos.Shares.IsPositive() {
			return fmt.Errorf("could not decode snapshot: position %s has non-positive shares %s", pos.Symbol, pos.Shares)
		}
	}
	p.Cash = temp.Cash
	p.Positions = temp.Stocks
	p.Transactions = temp.Transactions
	if p.Positions == nil {
		p.Positions = make([]Position, 0)
	}
	if p.Transactions == nil {
		p.Transactions = make([]Transaction, 0)
	}
	return nil
}
