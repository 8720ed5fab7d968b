package model

import "github.com/shopspring/decimal"

// PeriodType classifies the span a budget covers.
type PeriodType string

const (
	// PeriodMonthly is a calendar-month budget.
	PeriodMonthly PeriodType = "MONTHLY"
	// PeriodWeekly is a week-long budget.
	PeriodWeekly PeriodType = "WEEKLY"
	// PeriodYearly is a year-long budget.
	PeriodYearly PeriodType = "YEARLY"
	// PeriodCustom is a budget with arbitrary start and end dates.
	PeriodCustom PeriodType = "CUSTOM"
)

// Budget represents a spending limit over a date range. Spend against the
// limit is always recomputed from the transaction records; Balance is a
// legacy tracked field kept for schema fidelity and never consulted by the
// report engine.
type Budget struct {
	ID          string
	Name        string
	LimitAmount decimal.Decimal
	Balance     decimal.Decimal
	StartDate   string // DateLayout, inclusive
	EndDate     string // DateLayout, inclusive of the whole final day
	PeriodType  PeriodType
	WalletID    Ref // optional wallet scope
}
