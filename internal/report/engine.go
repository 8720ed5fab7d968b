// Package report computes every derived financial figure from the ledger.
// No derived figure is ever the source of truth: everything here is a pure
// function over transaction records fetched on demand.
package report

import (
	"context"
	"fmt"

	"github.com/pocketmint/pocketmint/internal/model"
	"github.com/pocketmint/pocketmint/internal/service"
	"github.com/shopspring/decimal"
)

// DefaultMonthlyLimit is the dashboard budget limit used when no budgets
// exist at all.
var DefaultMonthlyLimit = decimal.NewFromInt(2000)

// Engine computes derived aggregates over a storage backend.
type Engine struct {
	store        service.Storage
	defaultLimit decimal.Decimal
}

// NewEngine creates a report engine over the given storage.
func NewEngine(store service.Storage) *Engine {
	return &Engine{store: store, defaultLimit: DefaultMonthlyLimit}
}

// NewEngineWithLimit creates a report engine whose no-budget monthly limit
// comes from configuration instead of DefaultMonthlyLimit.
func NewEngineWithLimit(store service.Storage, defaultLimit decimal.Decimal) *Engine {
	return &Engine{store: store, defaultLimit: defaultLimit}
}

// GoalProgress describes a goal's computed state.
type GoalProgress struct {
	Balance decimal.Decimal
	Percent float64 // uncapped; clamp for progress bars
	Status  model.GoalStatus
}

// BudgetUsage describes a budget's computed state over its period.
type BudgetUsage struct {
	Spend    decimal.Decimal
	Percent  float64 // capped at 100 for display
	Ratio    float64 // uncapped, for exceeded detection
	Exceeded bool
}

// Totals partitions the full ledger by direction.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// GoalBalance sums the amounts of every record linked to the goal. A goal
// with no contributions has a balance of zero, not an error.
func (e *Engine) GoalBalance(ctx context.Context, goalID string) (decimal.Decimal, error) {
	txns, err := e.store.TransactionsForGoal(ctx, goalID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load goal contributions: %w", err)
	}

	balance := decimal.Zero
	for i := range txns {
		balance = balance.Add(txns[i].Amount)
	}
	return balance, nil
}

// GoalProgress computes a goal's balance, percentage and status.
func (e *Engine) GoalProgress(ctx context.Context, goal *model.Goal) (*GoalProgress, error) {
	balance, err := e.GoalBalance(ctx, goal.ID)
	if err != nil {
		return nil, err
	}

	return &GoalProgress{
		Balance: balance,
		Percent: model.ProgressPercent(balance, goal.Target),
		Status:  model.StatusFor(balance, goal.Target),
	}, nil
}

// BudgetSpend computes total expenses against a budget within its period.
// A budget with associated categories sums spend per category; a budget
// with none is account-wide and sums expenses across all categories. The
// account-wide branch is intentional, not a degenerate case.
func (e *Engine) BudgetSpend(ctx context.Context, budget *model.Budget) (decimal.Decimal, error) {
	categories, err := e.store.CategoriesForBudget(ctx, budget.ID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load budget categories: %w", err)
	}

	if len(categories) == 0 {
		txns, err := e.store.ExpensesInRange(ctx, "", budget.StartDate, budget.EndDate)
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to load account-wide expenses: %w", err)
		}
		return sumAmounts(txns), nil
	}

	spend := decimal.Zero
	for _, cat := range categories {
		txns, err := e.store.ExpensesInRange(ctx, model.Ref(cat.ID), budget.StartDate, budget.EndDate)
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to load expenses for category %s: %w", cat.Name, err)
		}
		spend = spend.Add(sumAmounts(txns))
	}
	return spend, nil
}

// BudgetUsage computes spend against the budget's limit. Percent is capped
// at 100 for progress bars; Ratio keeps the uncapped value so exceeded
// budgets stay detectable.
func (e *Engine) BudgetUsage(ctx context.Context, budget *model.Budget) (*BudgetUsage, error) {
	spend, err := e.BudgetSpend(ctx, budget)
	if err != nil {
		return nil, err
	}

	usage := &BudgetUsage{Spend: spend}
	if budget.LimitAmount.Sign() > 0 {
		usage.Ratio, _ = spend.Div(budget.LimitAmount).Mul(decimal.NewFromInt(100)).Float64()
	} else if spend.Sign() > 0 {
		// No meaningful limit: any spend counts as exceeded.
		usage.Exceeded = true
	}
	usage.Percent = usage.Ratio
	if usage.Percent > 100 {
		usage.Percent = 100
	}
	if usage.Ratio > 100 {
		usage.Exceeded = true
	}
	return usage, nil
}

// MonthlyLimit resolves the single "current" budget limit for the
// dashboard: the first MONTHLY-period budget, else the first budget in the
// list, else DefaultMonthlyLimit. The three tiers are deliberate; changing
// them makes budgets appear to vanish from the dashboard.
func (e *Engine) MonthlyLimit(ctx context.Context) (decimal.Decimal, error) {
	budgets, err := e.store.ListBudgets(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list budgets: %w", err)
	}

	for i := range budgets {
		if budgets[i].PeriodType == model.PeriodMonthly {
			return budgets[i].LimitAmount, nil
		}
	}
	if len(budgets) > 0 {
		return budgets[0].LimitAmount, nil
	}
	return e.defaultLimit, nil
}

// Totals sums income and expenses across the full ledger, with no date
// bounding. Callers wanting a window filter first.
func (e *Engine) Totals(ctx context.Context) (*Totals, error) {
	txns, err := e.store.ListTransactions(ctx, service.Query{})
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	totals := &Totals{Income: decimal.Zero, Expense: decimal.Zero}
	for i := range txns {
		if txns[i].Direction == model.DirectionIncome {
			totals.Income = totals.Income.Add(txns[i].Amount)
		} else {
			totals.Expense = totals.Expense.Add(txns[i].Amount)
		}
	}
	return totals, nil
}

// CategorySummary returns expense totals per category id within a date
// range. Uncategorized spend is keyed by the empty string.
func (e *Engine) CategorySummary(ctx context.Context, from, to string) (map[string]decimal.Decimal, error) {
	txns, err := e.store.ExpensesInRange(ctx, "", from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	summary := make(map[string]decimal.Decimal)
	for i := range txns {
		key := string(txns[i].CategoryID)
		summary[key] = summary[key].Add(txns[i].Amount)
	}
	return summary, nil
}

func sumAmounts(txns []model.Transaction) decimal.Decimal {
	total := decimal.Zero
	for i := range txns {
		total = total.Add(txns[i].Amount)
	}
	return total
}
