package tracker

import (
	"context"
	"errors"
	"testing"
)

func TestLedger_BuySellScenario(t *testing.T) {
	// Start cash=1000; buy(AAPL, 2, 100); buy(AAPL, 2, 200); sell(AAPL, 4, 150).
	l := newTestLedger(t, 1000, nil)
	ctx := context.Background()

	if _, err := l.Buy(ctx, "AAPL", Q(2), USD(100)); err != nil {
		t.Fatalf("Buy() failed: %v", err)
	}
	if !l.Portfolio().Cash.Equal(USD(800)) {
		t.Errorf("cash after first buy = %s, want $800.00", l.Portfolio().Cash)
	}
	pos, ok := l.Portfolio().Position("AAPL")
	if !ok {
		t.Fatal("position AAPL not found after buy")
	}
	if !pos.Shares.Equal(Q(2)) || !pos.AvgPrice.Equal(USD(100)) {
		t.Errorf("position = %s @ %s, want 2 @ $100.00", pos.Shares, pos.AvgPrice)
	}

	// Merging buy recomputes the weighted average: (2*100 + 2*200) / 4 = 150.
	if _, err := l.Buy(ctx, "AAPL", Q(2), USD(200)); err != nil {
		t.Fatalf("Buy() failed: %v", err)
	}
	pos, _ = l.Portfolio().Position("AAPL")
	if !pos.Shares.Equal(Q(4)) || !pos.AvgPrice.Equal(USD(150)) {
		t.Errorf("position = %s @ %s, want 4 @ $150.00", pos.Shares, pos.AvgPrice)
	}
	if !l.Portfolio().Cash.Equal(USD(400)) {
		t.Errorf("cash after second buy = %s, want $400.00", l.Portfolio().Cash)
	}

	// Full liquidation removes the position entirely.
	if _, err := l.Sell(ctx, "AAPL", Q(4), USD(150)); err != nil {
		t.Fatalf("Sell() failed: %v", err)
	}
	if !l.Portfolio().Cash.Equal(USD(1000)) {
		t.Errorf("cash after sell = %s, want $1000.00", l.Portfolio().Cash)
	}
	if _, ok := l.Portfolio().Position("AAPL"); ok {
		t.Error("position AAPL still present after selling all shares")
	}
	if got := len(l.Portfolio().Transactions); got != 3 {
		t.Errorf("transaction log has %d entries, want 3", got)
	}
}

func TestLedger_MergeBuyRecordsIncrementalCost(t *testing.T) {
	l := newTestLedger(t, 1000, nil)
	ctx := context.Background()

	if _, err := l.Buy(ctx, "AAPL", Q(2), USD(100)); err != nil {
		t.Fatalf("Buy() failed: %v", err)
	}
	tx, err := l.Buy(ctx, "AAPL", Q(2), USD(200))
	if err != nil {
		t.Fatalf("Buy() failed: %v", err)
	}
	// The recorded total is the cost of this purchase alone, not the merged
	// cost basis.
	if !tx.Total.Equal(USD(400)) {
		t.Errorf("merge-buy total = %s, want $400.00", tx.Total)
	}
}

func TestLedger_PartialSell(t *testing.T) {
	l := newTestLedger(t, 1000, nil)
	ctx := context.Background()

	if _, err := l.Buy(ctx, "GOOG", Q(10), USD(50)); err != nil {
		t.Fatalf("Buy() failed: %v", err)
	}
	if _, err := l.Sell(ctx, "GOOG", Q(3), USD(60)); err != nil {
		t.Fatalf("Sell() failed: %v", err)
	}

	pos, ok := l.Portfolio().Position("GOOG")
	if !ok {
		t.Fatal("position GOOG removed by a partial sale")
	}
	if !pos.Shares.Equal(Q(7)) {
		t.Errorf("shares after partial sale = %s, want 7", pos.Shares)
	}
	if !pos.AvgPrice.Equal(USD(50)) {
		t.Errorf("avg price after partial sale = %s, want $50.00 (unchanged)", pos.AvgPrice)
	}
	// 1000 - 500 + 180
	if !l.Portfolio().Cash.Equal(USD(680)) {
		t.Errorf("cash = %s, want $680.00", l.Portfolio().Cash)
	}
}

func TestLedger_DepositWithdraw(t *testing.T) {
	l := newTestLedger(t, 0, nil)

	tx, err := l.Deposit(USD(250.50))
	if err != nil {
		t.Fatalf("Deposit() failed: %v", err)
	}
	if tx.Kind != TxDeposit || !tx.Amount.Equal(USD(250.50)) {
		t.Errorf("deposit transaction = %v %s, want cash_deposit $250.50", tx.Kind, tx.Amount)
	}
	if !l.Portfolio().Cash.Equal(USD(250.50)) {
		t.Errorf("cash = %s, want $250.50", l.Portfolio().Cash)
	}

	tx, err = l.Withdraw(USD(100))
	if err != nil {
		t.Fatalf("Withdraw() failed: %v", err)
	}
	if tx.Kind != TxWithdrawal {
		t.Errorf("withdrawal transaction kind = %v, want cash_withdrawal", tx.Kind)
	}
	if !l.Portfolio().Cash.Equal(USD(150.50)) {
		t.Errorf("cash = %s, want $150.50", l.Portfolio().Cash)
	}
}

func TestLedger_RejectionsLeaveStateUnchanged(t *testing.T) {
	testCases := []struct {
		name    string
		op      func(l *Ledger) error
		wantErr error
	}{
		{
			name:    "withdraw more than cash",
			op:      func(l *Ledger) error { _, err := l.Withdraw(USD(1500)); return err },
			wantErr: ErrInsufficientFunds,
		},
		{
			name: "buy more than cash",
			op: func(l *Ledger) error {
				_, err := l.Buy(context.Background(), "AAPL", Q(20), USD(100))
				return err
			},
			wantErr: ErrInsufficientFunds,
		},
		{
			name: "sell unheld symbol",
			op: func(l *Ledger) error {
				_, err := l.Sell(context.Background(), "MSFT", Q(1), USD(100))
				return err
			},
			wantErr: ErrNotFound,
		},
		{
			name:    "zero deposit",
			op:      func(l *Ledger) error { _, err := l.Deposit(USD(0)); return err },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative withdrawal",
			op:      func(l *Ledger) error { _, err := l.Withdraw(USD(-10)); return err },
			wantErr: ErrInvalidAmount,
		},
		{
			name: "zero shares buy",
			op: func(l *Ledger) error {
				_, err := l.Buy(context.Background(), "AAPL", Q(0), USD(100))
				return err
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "negative shares sell",
			op: func(l *Ledger) error {
				_, err := l.Sell(context.Background(), "AAPL", Q(-2), USD(100))
				return err
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "negative explicit price",
			op: func(l *Ledger) error {
				_, err := l.Buy(context.Background(), "AAPL", Q(1), USD(-5))
				return err
			},
			wantErr: ErrInvalidAmount,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := newTestLedger(t, 1000, nil)
			err := tc.op(l)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got error %v, want %v", err, tc.wantErr)
			}
			if !l.Portfolio().Cash.Equal(USD(1000)) {
				t.Errorf("cash changed to %s on a rejected operation", l.Portfolio().Cash)
			}
			if got := len(l.Portfolio().Transactions); got != 0 {
				t.Errorf("rejected operation appended %d transactions", got)
			}
			if got := len(l.Portfolio().Positions); got != 0 {
				t.Errorf("rejected operation created %d positions", got)
			}
		})
	}
}

func TestLedger_SellMoreThanHeld(t *testing.T) {
	l := newTestLedger(t, 1000, nil)
	ctx := context.Background()

	if _, err := l.Buy(ctx, "AAPL", Q(5), USD(100)); err != nil {
		t.Fatalf("Buy() failed: %v", err)
	}
	_, err := l.Sell(ctx, "AAPL", Q(6), USD(100))
	if !errors.Is(err, ErrInsufficientShares) {
		t.Fatalf("got error %v, want ErrInsufficientShares", err)
	}
	pos, _ := l.Portfolio().Position("AAPL")
	if !pos.Shares.Equal(Q(5)) {
		t.Errorf("shares = %s after rejected sale, want 5", pos.Shares)
	}
	if !l.Portfolio().Cash.Equal(USD(500)) {
		t.Errorf("cash = %s after rejected sale, want $500.00", l.Portfolio().Cash)
	}
}

func TestLedger_ResolvesPriceFromSource(t *testing.T) {
	l := newTestLedger(t, 1000, quotes(map[string]float64{"AAPL": 125.5}))
	ctx := context.Background()

	tx, err := l.Buy(ctx, "AAPL", Q(2), Money{})
	if err != nil {
		t.Fatalf("Buy() failed: %v", err)
	}
	if !tx.Price.Equal(USD(125.5)) {
		t.Errorf("resolved price = %s, want $125.50", tx.Price)
	}
	if !l.Portfolio().Cash.Equal(USD(749)) {
		t.Errorf("cash = %s, want $749.00", l.Portfolio().Cash)
	}

	// An unknown symbol surfaces the outage instead of inventing a price.
	_, err = l.Buy(ctx, "NOPE", Q(1), Money{})
	if !errors.Is(err, ErrPriceUnavailable) {
		t.Fatalf("got error %v, want ErrPriceUnavailable", err)
	}
	if !l.Portfolio().Cash.Equal(USD(749)) {
		t.Errorf("cash changed to %s on a failed lookup", l.Portfolio().Cash)
	}
}

func TestLedger_FractionalShares(t *testing.T) {
	l := newTestLedger(t, 1000, nil)
	ctx := context.Background()

	if _, err := l.Buy(ctx, "VTI", Q(2.5), USD(100)); err != nil {
		t.Fatalf("Buy() failed: %v", err)
	}
	if _, err := l.Sell(ctx, "VTI", Q(2.5), USD(100)); err != nil {
		t.Fatalf("Sell() failed: %v", err)
	}
	// Exact decimal equality: 2.5 - 2.5 liquidates the position.
	if _, ok := l.Portfolio().Position("VTI"); ok {
		t.Error("position VTI still present after selling exactly all fractional shares")
	}
	if !l.Portfolio().Cash.Equal(USD(1000)) {
		t.Errorf("cash = %s, want $1000.00", l.Portfolio().Cash)
	}
}

func TestLedger_TransactionTimestamps(t *testing.T) {
	l := newTestLedger(t, 100, nil)
	tx, err := l.Deposit(USD(50))
	if err != nil {
		t.Fatalf("Deposit() failed: %v", err)
	}
	if got := tx.Time.Time(); !got.Equal(testClock) {
		t.Errorf("transaction time = %v, want %v", got, testClock)
	}
}
