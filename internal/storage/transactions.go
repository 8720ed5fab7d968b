package storage

import (
	"context"
	"fmt"

	"github.com/pocketmint/pocketmint/internal/model"
	"github.com/pocketmint/pocketmint/internal/service"
)

// CreateTransaction inserts a raw ledger record. It does NOT touch wallet
// balances; use the ledger service for anything user-facing.
func (s *SQLiteStore) CreateTransaction(ctx context.Context, txn *model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransaction(txn); err != nil {
		return err
	}
	return transactionMapper.Insert(ctx, s.db, txn)
}

// GetTransaction retrieves a ledger record by id.
func (s *SQLiteStore) GetTransaction(ctx context.Context, id string) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}
	return transactionMapper.Get(ctx, s.db, id)
}

// ListTransactions performs a generic filtered read over the ledger. An
// empty query returns the whole ledger ordered by createTime.
func (s *SQLiteStore) ListTransactions(ctx context.Context, query service.Query) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if query.OrderBy == "" {
		query.OrderBy = "createTime"
	}
	return transactionMapper.Select(ctx, s.db, query)
}

// UpdateTransactionColumns updates exactly the named columns of a record.
func (s *SQLiteStore) UpdateTransactionColumns(ctx context.Context, id string, updates map[string]any) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}
	return transactionMapper.UpdateColumns(ctx, s.db, id, updates)
}

// DeleteTransaction removes a raw ledger record without reversing its wallet
// effect; the ledger service owns the reversal discipline.
func (s *SQLiteStore) DeleteTransaction(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}
	return transactionMapper.Delete(ctx, s.db, id)
}

// TransactionsForGoal returns every record contributing to a goal, oldest
// first. The sum of their amounts IS the goal's balance; nothing else is.
func (s *SQLiteStore) TransactionsForGoal(ctx context.Context, goalID string) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(goalID, "goalID"); err != nil {
		return nil, err
	}
	return transactionMapper.Select(ctx, s.db, service.Query{
		Filters: map[string]any{"goalId": model.Ref(goalID)},
		OrderBy: "createTime",
	})
}

// ExpensesInRange returns expense records with createTime inside
// [from, to], where a bare-date upper bound includes the whole final day.
// An empty categoryID means all categories. Range comparisons are
// lexicographic, which the fixed-width timestamp format guarantees correct.
func (s *SQLiteStore) ExpensesInRange(ctx context.Context, categoryID model.Ref, from, to string) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateDateRange(from, to); err != nil {
		return nil, err
	}

	query := `
		SELECT id, categoryId, amount, name, income, walletId, goalId, createTime
		FROM transaction_records
		WHERE income = 0 AND createTime >= ? AND createTime <= ?
	`
	args := []any{from, model.EndOfDay(to)}
	if categoryID != "" {
		query += " AND categoryId = ?"
		args = append(args, categoryID)
	}
	query += " ORDER BY createTime"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	transactions := make([]model.Transaction, 0)
	for rows.Next() {
		var txn model.Transaction
		if err := rows.Scan(
			&txn.ID,
			&txn.CategoryID,
			&txn.Amount,
			&txn.Name,
			&txn.Direction,
			&txn.WalletID,
			&txn.GoalID,
			&txn.CreateTime,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, txn)
	}

	return transactions, rows.Err()
}
