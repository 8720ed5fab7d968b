package model

import "github.com/shopspring/decimal"

// Transaction represents a single ledger record. Records are append-mostly:
// edits must reverse-then-reapply their wallet-balance effect, which is the
// ledger service's job.
type Transaction struct {
	ID         string
	CategoryID Ref
	Amount     decimal.Decimal // non-negative magnitude; sign carried by Direction
	Name       string
	Direction  Direction
	WalletID   string
	GoalID     Ref
	CreateTime string // TimeLayout
}

// SignedAmount returns the transaction's effect on its wallet balance.
func (t *Transaction) SignedAmount() decimal.Decimal {
	return t.Direction.Signed(t.Amount)
}
