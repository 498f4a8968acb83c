package tracker

import (
	"encoding/json"
	"fmt"
)

// TxKind is a typed string identifying the kind of a transaction, as it
// appears in the snapshot file.
type TxKind string

const (
	TxDeposit    TxKind = "cash_deposit"
	TxWithdrawal TxKind = "cash_withdrawal"
	TxBuy        TxKind = "buy"
	TxSell       TxKind = "sell"
)

// Transaction is an immutable record of one ledger operation. The log is
// append-only: transactions are never mutated or deleted once recorded.
//
// Symbol, Shares, Price and Total are set for buy and sell transactions;
// Amount is set for cash deposits and withdrawals.
type Transaction struct {
	Kind   TxKind
	Symbol string
	Shares Quantity
	Price  Money // per-share execution price
	Total  Money // Shares x Price at execution
	Amount Money // cash moved for deposit/withdrawal
	Time   Timestamp
}

// NewDeposit creates a cash deposit transaction.
func NewDeposit(amount Money, at Timestamp) Transaction {
	return Transaction{Kind: TxDeposit, Amount: amount, Time: at}
}

// NewWithdrawal creates a cash withdrawal transaction.
func NewWithdrawal(amount Money, at Timestamp) Transaction {
	return Transaction{Kind: TxWithdrawal, Amount: amount, Time: at}
}

// NewBuy creates a buy transaction. Total records the incremental cost of
// this purchase alone, even when the shares merge into an existing position.
func NewBuy(symbol string, shares Quantity, price Money, at Timestamp) Transaction {
	return Transaction{Kind: TxBuy, Symbol: symbol, Shares: shares, Price: price, Total: price.Mul(shares), Time: at}
}

// NewSell creates a sell transaction. Total records the proceeds.
func NewSell(symbol string, shares Quantity, price Money, at Timestamp) Transaction {
	return Transaction{Kind: TxSell, Symbol: symbol, Shares: shares, Price: price, Total: price.Mul(shares), Time: at}
}

// IsCash reports whether the transaction moves cash only.
func (t Transaction) IsCash() bool {
	return t.Kind == TxDeposit || t.Kind == TxWithdrawal
}

func (t Transaction) Equal(o Transaction) bool {
	return t.Kind == o.Kind &&
		t.Symbol == o.Symbol &&
		t.Shares.Equal(o.Shares) &&
		t.Price.Equal(o.Price) &&
		t.Total.Equal(o.Total) &&
		t.Amount.Equal(o.Amount) &&
		t.Time.Equal(o.Time)
}

// MarshalJSON writes only the fields relevant to the transaction kind, in a
// stable order matching the snapshot file format.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("type", t.Kind)
	switch t.Kind {
	case TxBuy, TxSell:
		w.Append("symbol", t.Symbol)
		w.Append("shares", t.Shares)
		w.Append("price", t.Price)
		w.Append("total", t.Total)
	case TxDeposit, TxWithdrawal:
		w.Append("amount", t.Amount)
	default:
		return nil, fmt.Errorf("unknown transaction kind %q", t.Kind)
	}
	w.Append("date", t.Time)
	return w.MarshalJSON()
}

// UnmarshalJSON reads a transaction record from the snapshot file.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	// Use a temporary type that has all possible fields.
	var temp struct {
		Kind   TxKind    `json:"type"`
		Symbol string    `json:"symbol"`
		Shares Quantity  `json:"shares"`
		Price  Money     `json:"price"`
		Total  Money     `json:"total"`
		Amount Money     `json:"amount"`
		Time   Timestamp `json:"date"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	switch temp.Kind {
	case TxBuy, TxSell, TxDeposit, TxWithdrawal:
	default:
		return fmt.Errorf("unknown transaction kind %q", temp.Kind)
	}
	*t = Transaction{
		Kind:   temp.Kind,
		Symbol: temp.Symbol,
		Shares: temp.Shares,
		Price:  temp.Price,
		Total:  temp.Total,
		Amount: temp.Amount,
		Time:   temp.Time,
	}
	return nil
}
