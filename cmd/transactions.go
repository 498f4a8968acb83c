package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	tracker "github.com/Harshitvit/codealpha-tasks"
	"github.com/google/subcommands"
)

// --- Deposit Command ---

type depositCmd struct {
	amount float64
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "record a cash deposit into the portfolio" }
func (*depositCmd) Usage() string {
	return `deposit -a <amount>

  Records a cash deposit into the portfolio's cash balance.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "a", c.amount, "Amount of cash to deposit")
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	store, p, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	tx, err := tracker.NewLedger(p, nil).Deposit(tracker.USD(c.amount))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording deposit: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deposited %s. New cash balance: %s\n", tx.Amount, p.Cash)
	return saveTransaction(store, p, tx)
}

// --- Withdraw Command ---

type withdrawCmd struct {
	amount float64
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "record a cash withdrawal from the portfolio" }
func (*withdrawCmd) Usage() string {
	return `withdraw -a <amount>

  Records a cash withdrawal from the portfolio's cash balance.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "a", c.amount, "Amount of cash to withdraw")
}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	store, p, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	tx, err := tracker.NewLedger(p, nil).Withdraw(tracker.USD(c.amount))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording withdrawal: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Withdrew %s. New cash balance: %s\n", tx.Amount, p.Cash)
	return saveTransaction(store, p, tx)
}

// --- Buy Command ---

type buyCmd struct {
	symbol   string
	quantity float64
	price    float64
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "purchase shares to open or add to a position" }
func (*buyCmd) Usage() string {
	return `buy -s <symbol> -q <quantity> [-p <price>]

  Purchases shares of a stock. The total cost is debited from the cash
  balance. When -p is omitted the current market price is fetched.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", c.symbol, "Stock ticker symbol")
	f.Float64Var(&c.quantity, "q", c.quantity, "Number of shares")
	f.Float64Var(&c.price, "p", c.price, "Price per share. Fetched when omitted")
}

func (c *buyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" || c.quantity <= 0 || c.price < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	store, p, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	ledger := tracker.NewLedger(p, quoter())
	tx, err := ledger.Buy(ctx, c.symbol, tracker.Q(c.quantity), tracker.USD(c.price))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error buying %s: %v\n", c.symbol, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Bought %s shares of %s at %s for %s\n", tx.Shares, tx.Symbol, tx.Price, tx.Total)
	return saveTransaction(store, p, tx)
}

// --- Sell Command ---

type sellCmd struct {
	symbol   string
	quantity float64
	price    float64
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell shares to trim or close a position" }
func (*sellCmd) Usage() string {
	return `sell -s <symbol> -q <quantity> [-p <price>]

  Sells shares of a stock. The proceeds are credited to the cash balance.
  When -p is omitted the current market price is fetched.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", c.symbol, "Stock ticker symbol")
	f.Float64Var(&c.quantity, "q", c.quantity, "Number of shares")
	f.Float64Var(&c.price, "p", c.price, "Price per share. Fetched when omitted")
}

func (c *sellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" || c.quantity <= 0 || c.price < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	store, p, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	ledger := tracker.NewLedger(p, quoter())
	tx, err := ledger.Sell(ctx, c.symbol, tracker.Q(c.quantity), tracker.USD(c.price))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error selling %s: %v\n", c.symbol, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Sold %s shares of %s at %s for %s\n", tx.Shares, tx.Symbol, tx.Price, tx.Total)
	return saveTransaction(store, p, tx)
}
