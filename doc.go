// Package tracker implements a small personal stock portfolio: a cash
// balance, a set of positions with a weighted-average cost basis, and an
// append-only transaction log, persisted as a single JSON snapshot file.
//
// The package is organized around three pieces:
//
//   - the [Ledger] applies deposit, withdraw, buy and sell operations to a
//     [Portfolio], enforcing the cash and share invariants,
//   - [Valuate] derives a [Report] of current values and gains from live
//     prices obtained through a [PriceSource],
//   - the [Store] loads and atomically rewrites the snapshot file.
//
// All amounts and share quantities are exact decimals.
package tracker
