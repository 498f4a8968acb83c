package tracker

import "errors"

// Every ledger operation reports failure as one of these kinds, wrapped with
// context. Callers discriminate with errors.Is; no operation is retried and
// a failed operation leaves the portfolio untouched.
var (
	// ErrInvalidAmount reports a non-positive amount, share count or price.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientFunds reports a withdrawal or purchase exceeding the
	// cash balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInsufficientShares reports a sale exceeding the held quantity.
	ErrInsufficientShares = errors.New("insufficient shares")

	// ErrNotFound reports a sale of a symbol that is not held.
	ErrNotFound = errors.New("symbol not found in portfolio")

	// ErrPriceUnavailable reports that the price source could not resolve a
	// quote for a symbol.
	ErrPriceUnavailable = errors.New("price unavailable")
)
