package storage

import (
	"context"
	"fmt"

	"github.com/pocketmint/pocketmint/internal/model"
	"github.com/pocketmint/pocketmint/internal/service"
)

// CreateBudget inserts a new budget.
func (s *SQLiteStore) CreateBudget(ctx context.Context, budget *model.Budget) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if budget == nil {
		return fmt.Errorf("%w: budget", ErrNilParameter)
	}
	if err := validateString(budget.ID, "budget.ID"); err != nil {
		return err
	}
	if err := validateString(budget.Name, "budget.Name"); err != nil {
		return err
	}
	if _, err := model.ParseDate(budget.StartDate); err != nil {
		return err
	}
	if _, err := model.ParseDate(budget.EndDate); err != nil {
		return err
	}
	if err := validateDateRange(budget.StartDate, budget.EndDate); err != nil {
		return err
	}
	return budgetMapper.Insert(ctx, s.db, budget)
}

// GetBudget retrieves a budget by id.
func (s *SQLiteStore) GetBudget(ctx context.Context, id string) (*model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}
	return budgetMapper.Get(ctx, s.db, id)
}

// ListBudgets returns all budgets in creation order (rowid), which the
// monthly-limit fallback in the report engine relies on.
func (s *SQLiteStore) ListBudgets(ctx context.Context) ([]model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return budgetMapper.Select(ctx, s.db, service.Query{OrderBy: "rowid"})
}

// UpdateBudget sparse-updates a budget.
func (s *SQLiteStore) UpdateBudget(ctx context.Context, budget *model.Budget) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if budget == nil {
		return fmt.Errorf("%w: budget", ErrNilParameter)
	}
	_, err := budgetMapper.Update(ctx, s.db, budget)
	return err
}

// UpdateBudgetColumns updates exactly the named columns.
func (s *SQLiteStore) UpdateBudgetColumns(ctx context.Context, id string, updates map[string]any) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}
	return budgetMapper.UpdateColumns(ctx, s.db, id, updates)
}

// DeleteBudget deletes a budget. Its category associations cascade away;
// the ledger is never touched.
func (s *SQLiteStore) DeleteBudget(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}
	return budgetMapper.Delete(ctx, s.db, id)
}
