// Package renderer turns tracker reports into markdown, ready for a terminal
// markdown renderer or any plain pager.
package renderer

import (
	"fmt"
	"strings"

	tracker "github.com/Harshitvit/codealpha-tasks"
)

// Holdings renders a valuation report as a markdown table followed by a
// portfolio summary.
func Holdings(r *tracker.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Stock Holdings\n\n")
	if len(r.Positions) == 0 {
		fmt.Fprintln(&b, "Portfolio is empty. Add some stocks to get started!")
	} else {
		fmt.Fprintln(&b, "| Symbol | Shares | Avg Price | Price | Cost Basis | Value | Gain/Loss | Gain/Loss % |")
		fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|---:|")
		for _, pos := range r.Positions {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
				pos.Symbol,
				pos.Shares,
				pos.AvgPrice,
				pos.Price,
				pos.CostBasis,
				pos.Value,
				pos.GainLoss.SignedString(),
				pos.GainLossPct.SignedString(),
			)
		}
	}

	fmt.Fprintf(&b, "\n## Summary\n\n")
	fmt.Fprintf(&b, "- Total Stock Value: %s\n", r.Value)
	fmt.Fprintf(&b, "- Cash Balance: %s\n", r.Cash)
	fmt.Fprintf(&b, "- Total Portfolio Value: %s\n", r.Total)
	fmt.Fprintf(&b, "- Total Cost Basis: %s\n", r.CostBasis)
	fmt.Fprintf(&b, "- Total Gain/Loss: %s (%s)\n", r.GainLoss.SignedString(), r.GainLossPct.SignedString())

	return b.String()
}

// Transactions renders a transaction list as a markdown table, in the order
// given.
func Transactions(txs []tracker.Transaction) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Transactions\n\n")
	if len(txs) == 0 {
		fmt.Fprintln(&b, "No transactions found.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Date | Type | Symbol | Shares | Price | Total |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|")
	for _, tx := range txs {
		if tx.IsCash() {
			fmt.Fprintf(&b, "| %s | %s | - | - | - | %s |\n", tx.Time, label(tx.Kind), tx.Amount)
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			tx.Time, label(tx.Kind), tx.Symbol, tx.Shares, tx.Price, tx.Total)
	}
	return b.String()
}

func label(kind tracker.TxKind) string {
	switch kind {
	case tracker.TxDeposit:
		return "CASH DEPOSIT"
	case tracker.TxWithdrawal:
		return "CASH WITHDRAWAL"
	case tracker.TxBuy:
		return "BUY"
	case tracker.TxSell:
		return "SELL"
	default:
		return strings.ToUpper(string(kind))
	}
}
