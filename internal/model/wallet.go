package model

import "github.com/shopspring/decimal"

// Wallet represents a cash account.
//
// Balance is the stored authoritative value. It is mutated only by the
// ledger service's reversal-then-reapply sequence, never recomputed from the
// transaction records.
type Wallet struct {
	ID      string
	Name    string
	Balance decimal.Decimal
	Color   string
}
