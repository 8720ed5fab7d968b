package storage

import (
	"context"
	"fmt"

	"github.com/pocketmint/pocketmint/internal/model"
)

// LinkBudgetCategory adds a category to a budget's tracked set. Linking an
// already-linked pair is a no-op.
func (s *SQLiteStore) LinkBudgetCategory(ctx context.Context, budgetID, categoryID string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(budgetID, "budgetID"); err != nil {
		return err
	}
	if err := validateString(categoryID, "categoryID"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO Budget_Category (budgetID, categoryID)
		VALUES (?, ?)
	`, budgetID, categoryID)
	if err != nil {
		return fmt.Errorf("failed to link budget %s to category %s: %w", budgetID, categoryID, err)
	}
	return nil
}

// UnlinkBudgetCategory removes a category from a budget's tracked set. Only
// membership changes: no transaction is touched, future spend computations
// simply stop including that category.
func (s *SQLiteStore) UnlinkBudgetCategory(ctx context.Context, budgetID, categoryID string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(budgetID, "budgetID"); err != nil {
		return err
	}
	if err := validateString(categoryID, "categoryID"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		DELETE FROM Budget_Category WHERE budgetID = ? AND categoryID = ?
	`, budgetID, categoryID)
	if err != nil {
		return fmt.Errorf("failed to unlink budget %s from category %s: %w", budgetID, categoryID, err)
	}
	return nil
}

// CategoriesForBudget returns the categories a budget tracks. An empty
// result means the budget is account-wide.
func (s *SQLiteStore) CategoriesForBudget(ctx context.Context, budgetID string) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(budgetID, "budgetID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.name, c.description, c.type
		FROM Category c
		JOIN Budget_Category bc ON c.id = bc.categoryID
		WHERE bc.budgetID = ?
		ORDER BY c.name
	`, budgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories for budget: %w", err)
	}
	defer func() { _ = rows.Close() }()

	categories := make([]model.Category, 0)
	for rows.Next() {
		var cat model.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Description, &cat.Type); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

// BudgetsForCategory returns the budgets tracking a category.
func (s *SQLiteStore) BudgetsForCategory(ctx context.Context, categoryID string) ([]model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(categoryID, "categoryID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT b.id, b.name, b.limitAmount, b.balance, b.startDate, b.endDate, b.periodType, b.walletId
		FROM Budget b
		JOIN Budget_Category bc ON b.id = bc.budgetID
		WHERE bc.categoryID = ?
		ORDER BY b.name
	`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets for category: %w", err)
	}
	defer func() { _ = rows.Close() }()

	budgets := make([]model.Budget, 0)
	for rows.Next() {
		var b model.Budget
		if err := rows.Scan(&b.ID, &b.Name, &b.LimitAmount, &b.Balance, &b.StartDate, &b.EndDate, &b.PeriodType, &b.WalletID); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}
