// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/pocketmint/pocketmint/internal/model"
	"github.com/shopspring/decimal"
)

// Query describes a generic filtered read against an entity table.
// Filters are column→exact-match values combined with AND; range and partial
// matching belong to the filter package, applied over the materialized
// result. Columns defaults to the entity's full declared set.
type Query struct {
	Filters map[string]any
	OrderBy string
	Columns []string
	Limit   int
}

// Storage defines the contract for the persistence layer.
type Storage interface {
	// Wallet operations
	CreateWallet(ctx context.Context, wallet *model.Wallet) error
	GetWallet(ctx context.Context, id string) (*model.Wallet, error)
	ListWallets(ctx context.Context) ([]model.Wallet, error)
	UpdateWallet(ctx context.Context, wallet *model.Wallet) error
	UpdateWalletColumns(ctx context.Context, id string, updates map[string]any) error
	DeleteWallet(ctx context.Context, id string) error

	// Category operations
	CreateCategory(ctx context.Context, category *model.Category) error
	GetCategory(ctx context.Context, id string) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	UpdateCategory(ctx context.Context, category *model.Category) error
	DeleteCategory(ctx context.Context, id string) error

	// Ledger operations. CreateTransaction and DeleteTransaction are raw row
	// operations with no wallet-balance effect; the ledger service wraps them
	// in the reversal-then-reapply sequence.
	CreateTransaction(ctx context.Context, txn *model.Transaction) error
	GetTransaction(ctx context.Context, id string) (*model.Transaction, error)
	ListTransactions(ctx context.Context, query Query) ([]model.Transaction, error)
	UpdateTransactionColumns(ctx context.Context, id string, updates map[string]any) error
	DeleteTransaction(ctx context.Context, id string) error
	TransactionsForGoal(ctx context.Context, goalID string) ([]model.Transaction, error)
	ExpensesInRange(ctx context.Context, categoryID model.Ref, from, to string) ([]model.Transaction, error)

	// Budget operations
	CreateBudget(ctx context.Context, budget *model.Budget) error
	GetBudget(ctx context.Context, id string) (*model.Budget, error)
	ListBudgets(ctx context.Context) ([]model.Budget, error)
	UpdateBudget(ctx context.Context, budget *model.Budget) error
	UpdateBudgetColumns(ctx context.Context, id string, updates map[string]any) error
	DeleteBudget(ctx context.Context, id string) error

	// Goal operations
	CreateGoal(ctx context.Context, goal *model.Goal) error
	GetGoal(ctx context.Context, id string) (*model.Goal, error)
	ListGoals(ctx context.Context) ([]model.Goal, error)
	UpdateGoal(ctx context.Context, goal *model.Goal) error
	DeleteGoal(ctx context.Context, id string) error

	// Budget-category association operations
	LinkBudgetCategory(ctx context.Context, budgetID, categoryID string) error
	UnlinkBudgetCategory(ctx context.Context, budgetID, categoryID string) error
	CategoriesForBudget(ctx context.Context, budgetID string) ([]model.Category, error)
	BudgetsForCategory(ctx context.Context, categoryID string) ([]model.Budget, error)

	// Database management
	Migrate(ctx context.Context) error
	BeginTx(ctx context.Context) (Tx, error)
	Close() error
}

// Tx is the subset of operations available inside one database transaction,
// used by the ledger service so a balance adjustment and its row write
// commit or roll back together.
type Tx interface {
	Commit() error
	Rollback() error

	GetTransaction(ctx context.Context, id string) (*model.Transaction, error)
	CreateTransaction(ctx context.Context, txn *model.Transaction) error
	UpdateTransactionColumns(ctx context.Context, id string, updates map[string]any) error
	DeleteTransaction(ctx context.Context, id string) error
	GetWallet(ctx context.Context, id string) (*model.Wallet, error)
	AdjustWalletBalance(ctx context.Context, walletID string, delta decimal.Decimal) error
}
