package model

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

// Direction tags a transaction as income or expense.
//
// The store keeps the historical numeric income flag (1.0 = income,
// 0.0 = expense); Value and Scan translate at the boundary so no Go code
// ever compares raw floats.
type Direction string

const (
	// DirectionIncome marks money flowing into a wallet.
	DirectionIncome Direction = "income"
	// DirectionExpense marks money flowing out of a wallet.
	DirectionExpense Direction = "expense"
)

// Valid reports whether the direction is one of the two known variants.
func (d Direction) Valid() bool {
	return d == DirectionIncome || d == DirectionExpense
}

// Signed applies the direction to a non-negative magnitude: income keeps the
// sign, expense negates it.
func (d Direction) Signed(amount decimal.Decimal) decimal.Decimal {
	if d == DirectionIncome {
		return amount
	}
	return amount.Neg()
}

// Value implements driver.Valuer, producing the stored numeric flag.
func (d Direction) Value() (driver.Value, error) {
	switch d {
	case DirectionIncome:
		return 1.0, nil
	case DirectionExpense:
		return 0.0, nil
	}
	return nil, fmt.Errorf("invalid direction %q", string(d))
}

// Scan implements sql.Scanner. Anything other than an exact 1 is an expense,
// matching the original flag semantics.
func (d *Direction) Scan(src any) error {
	switch v := src.(type) {
	case float64:
		if v == 1.0 {
			*d = DirectionIncome
		} else {
			*d = DirectionExpense
		}
	case int64:
		if v == 1 {
			*d = DirectionIncome
		} else {
			*d = DirectionExpense
		}
	case nil:
		*d = DirectionExpense
	default:
		return fmt.Errorf("cannot scan %T into Direction", src)
	}
	return nil
}
