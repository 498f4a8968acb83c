package tracker

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"
)

// Ledger applies the four mutating operations to a single Portfolio. Every
// operation either appends exactly one transaction and updates the balances,
// or fails and leaves the portfolio untouched.
//
// Cost basis is carried as the weighted average of all purchases still held
// (not FIFO/LIFO): buying into an existing position recomputes the average
// price over the merged shares; a partial sale reduces shares and leaves the
// average price unchanged.
type Ledger struct {
	portfolio *Portfolio
	quotes    PriceSource
	now       func() time.Time
}

// NewLedger creates a ledger over the given portfolio. The price source is
// consulted only when a buy or sell is requested without an explicit price.
func NewLedger(portfolio *Portfolio, quotes PriceSource) *Ledger {
	return &Ledger{portfolio: portfolio, quotes: quotes, now: time.Now}
}

// Portfolio returns the portfolio this ledger operates on.
func (l *Ledger) Portfolio() *Portfolio { return l.portfolio }

func (l *Ledger) timestamp() Timestamp { return NewTimestamp(l.now()) }

// Deposit adds cash to the portfolio and records a deposit transaction.
func (l *Ledger) Deposit(amount Money) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, fmt.Errorf("deposit amount must be positive, got %s: %w", amount, ErrInvalidAmount)
	}
	tx := NewDeposit(amount, l.timestamp())
	l.portfolio.Cash = l.portfolio.Cash.Add(amount)
	l.portfolio.Transactions = append(l.portfolio.Transactions, tx)
	return tx, nil
}

// Withdraw removes cash from the portfolio and records a withdrawal
// transaction. It fails when the amount exceeds the cash balance.
func (l *Ledger) Withdraw(amount Money) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, fmt.Errorf("withdrawal amount must be positive, got %s: %w", amount, ErrInvalidAmount)
	}
	if amount.GreaterThan(l.portfolio.Cash) {
		return Transaction{}, fmt.Errorf("cannot withdraw %s, cash balance is %s: %w", amount, l.portfolio.Cash, ErrInsufficientFunds)
	}
	tx := NewWithdrawal(amount, l.timestamp())
	l.portfolio.Cash = l.portfolio.Cash.Sub(amount)
	l.portfolio.Transactions = append(l.portfolio.Transactions, tx)
	return tx, nil
}

// Buy purchases shares of symbol. A zero price means "resolve via the price
// source"; the operation fails when the quote cannot be obtained.
//
// When the symbol is already held the position's average price becomes the
// weighted mean of the existing cost basis and this purchase; otherwise a new
// position is opened. The recorded transaction total is the incremental cost
// of this purchase alone.
func (l *Ledger) Buy(ctx context.Context, symbol string, shares Quantity, price Money) (Transaction, error) {
	if !shares.IsPositive() {
		return Transaction{}, fmt.Errorf("buy shares must be positive, got %s: %w", shares, ErrInvalidAmount)
	}
	price, err := l.resolvePrice(ctx, symbol, price)
	if err != nil {
		return Transaction{}, err
	}

	cost := price.Mul(shares)
	if cost.GreaterThan(l.portfolio.Cash) {
		return Transaction{}, fmt.Errorf("cannot buy %s %s for %s, cash balance is %s: %w",
			shares, symbol, cost, l.portfolio.Cash, ErrInsufficientFunds)
	}

	l.portfolio.Cash = l.portfolio.Cash.Sub(cost)
	if i := l.portfolio.positionIndex(symbol); i >= 0 {
		pos := &l.portfolio.Positions[i]
		total := pos.Shares.Add(shares)
		pos.AvgPrice = pos.CostBasis().Add(cost).Div(total)
		pos.Shares = total
	} else {
		l.portfolio.Positions = append(l.portfolio.Positions, Position{
			Symbol:   symbol,
			Shares:   shares,
			AvgPrice: price,
			OpenedOn: NewDate(l.now().Date()),
		})
	}

	tx := NewBuy(symbol, shares, price, l.timestamp())
	l.portfolio.Transactions = append(l.portfolio.Transactions, tx)
	return tx, nil
}

// Sell disposes of shares of symbol. A zero price means "resolve via the
// price source". Selling exactly the held quantity removes the position;
// a partial sale leaves the average price unchanged.
func (l *Ledger) Sell(ctx context.Context, symbol string, shares Quantity, price Money) (Transaction, error) {
	if !shares.IsPositive() {
		return Transaction{}, fmt.Errorf("sell shares must be positive, got %s: %w", shares, ErrInvalidAmount)
	}
	i := l.portfolio.positionIndex(symbol)
	if i < 0 {
		return Transaction{}, fmt.Errorf("cannot sell %q: %w", symbol, ErrNotFound)
	}
	pos := &l.portfolio.Positions[i]
	if shares.GreaterThan(pos.Shares) {
		return Transaction{}, fmt.Errorf("cannot sell %s %s, position is only %s: %w",
			shares, symbol, pos.Shares, ErrInsufficientShares)
	}
	price, err := l.resolvePrice(ctx, symbol, price)
	if err != nil {
		return Transaction{}, err
	}

	proceeds := price.Mul(shares)
	l.portfolio.Cash = l.portfolio.Cash.Add(proceeds)
	if shares.Equal(pos.Shares) {
		// Exact decimal equality decides full liquidation, no epsilon.
		l.portfolio.Positions = slices.Delete(l.portfolio.Positions, i, i+1)
	} else {
		pos.Shares = pos.Shares.Sub(shares)
	}

	tx := NewSell(symbol, shares, price, l.timestamp())
	l.portfolio.Transactions = append(l.portfolio.Transactions, tx)
	return tx, nil
}

// resolvePrice validates an explicit price, or looks one up when the given
// price is zero.
func (l *Ledger) resolvePrice(ctx context.Context, symbol string, price Money) (Money, error) {
	if !price.IsZero() {
		if price.IsNegative() {
			return Money{}, fmt.Errorf("price must be positive, got %s: %w", price, ErrInvalidAmount)
		}
		return price, nil
	}
	if l.quotes == nil {
		return Money{}, fmt.Errorf("no price source configured for %q: %w", symbol, ErrPriceUnavailable)
	}
	quote, err := l.quotes.Price(ctx, symbol)
	if err != nil {
		if errors.Is(err, ErrPriceUnavailable) {
			return Money{}, fmt.Errorf("could not resolve price for %q: %w", symbol, err)
		}
		return Money{}, fmt.Errorf("could not resolve price for %q: %w: %v", symbol, ErrPriceUnavailable, err)
	}
	if !quote.IsPositive() {
		return Money{}, fmt.Errorf("quote for %q is not positive (%s): %w", symbol, quote, ErrPriceUnavailable)
	}
	return quote, nil
}
