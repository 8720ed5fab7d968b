package model

import "github.com/shopspring/decimal"

// GoalStatus is the display state of a savings goal.
type GoalStatus string

const (
	// GoalNotStarted means no money has been put toward the goal.
	GoalNotStarted GoalStatus = "NOT_STARTED"
	// GoalInProgress means the balance is between zero and the target.
	GoalInProgress GoalStatus = "IN_PROGRESS"
	// GoalCompleted means the balance has reached or passed the target.
	// Further contributions are accepted and tracked, never rejected.
	GoalCompleted GoalStatus = "COMPLETED"
)

// Goal represents a savings goal. Its balance is deliberately NOT stored:
// it is always SUM(amount) over transactions whose goalId references it, so
// the ledger is the single source of truth.
type Goal struct {
	ID       string
	Name     string
	Target   decimal.Decimal
	Deadline string // DateLayout, "" when open-ended
	Priority int
	CreateAt string // TimeLayout
	WalletID Ref
}

// StatusFor classifies a goal balance against a target.
func StatusFor(balance, target decimal.Decimal) GoalStatus {
	switch {
	case balance.Sign() <= 0:
		return GoalNotStarted
	case balance.LessThan(target):
		return GoalInProgress
	default:
		return GoalCompleted
	}
}

// ProgressPercent returns balance/target as a percentage. A target of zero
// or less yields 0 rather than dividing by zero. The result is uncapped;
// callers clamp for display.
func ProgressPercent(balance, target decimal.Decimal) float64 {
	if target.Sign() <= 0 {
		return 0
	}
	pct, _ := balance.Div(target).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}
