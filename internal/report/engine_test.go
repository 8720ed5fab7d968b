package report_test

import (
	"context"
	"testing"

	"github.com/pocketmint/pocketmint/internal/model"
	"github.com/pocketmint/pocketmint/internal/report"
	"github.com/pocketmint/pocketmint/internal/storage"
	"github.com/pocketmint/pocketmint/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTxn(t *testing.T, store *storage.SQLiteStore, txn model.Transaction) {
	t.Helper()
	if txn.Direction == "" {
		txn.Direction = model.DirectionExpense
	}
	if txn.CreateTime == "" {
		txn.CreateTime = "2024-06-15 12:00:00"
	}
	if err := store.CreateTransaction(context.Background(), &txn); err != nil {
		t.Fatalf("failed to seed transaction %s: %v", txn.ID, err)
	}
}

func seedGoal(t *testing.T, store *storage.SQLiteStore, id string, target int64) *model.Goal {
	t.Helper()
	goal := &model.Goal{ID: id, Name: "Goal " + id, Target: decimal.NewFromInt(target)}
	if err := store.CreateGoal(context.Background(), goal); err != nil {
		t.Fatalf("failed to seed goal %s: %v", id, err)
	}
	return goal
}

func monthBudget(id string, limit int64, period model.PeriodType) *model.Budget {
	return &model.Budget{
		ID:          id,
		Name:        "Budget " + id,
		LimitAmount: decimal.NewFromInt(limit),
		StartDate:   "2024-06-01",
		EndDate:     "2024-06-30",
		PeriodType:  period,
	}
}

func TestGoalBalanceAndStatus(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()
	engine := report.NewEngine(store)

	testutil.SeedWallet(t, store, "w1", decimal.Zero)
	goal := seedGoal(t, store, "g1", 1000)

	// No contributions yet.
	progress, err := engine.GoalProgress(ctx, goal)
	require.NoError(t, err)
	assert.True(t, progress.Balance.IsZero())
	assert.Equal(t, model.GoalNotStarted, progress.Status)

	seedTxn(t, store, model.Transaction{ID: "t1", Amount: decimal.NewFromInt(300), Name: "First", WalletID: "w1", GoalID: "g1"})
	seedTxn(t, store, model.Transaction{ID: "t2", Amount: decimal.NewFromInt(450), Name: "Second", WalletID: "w1", GoalID: "g1"})

	progress, err = engine.GoalProgress(ctx, goal)
	require.NoError(t, err)
	assert.True(t, progress.Balance.Equal(decimal.NewFromInt(750)))
	assert.InDelta(t, 75.0, progress.Percent, 0.001)
	assert.Equal(t, model.GoalInProgress, progress.Status)

	// Crossing the target completes the goal; contributions keep counting.
	seedTxn(t, store, model.Transaction{ID: "t3", Amount: decimal.NewFromInt(250), Name: "Final", WalletID: "w1", GoalID: "g1"})

	progress, err = engine.GoalProgress(ctx, goal)
	require.NoError(t, err)
	assert.True(t, progress.Balance.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, model.GoalCompleted, progress.Status)
}

func TestBudgetSpendScopedToCategories(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()
	engine := report.NewEngine(store)

	testutil.SeedWallet(t, store, "w1", decimal.Zero)
	testutil.SeedCategory(t, store, "food", "Food")
	testutil.SeedCategory(t, store, "transport", "Transport")
	testutil.SeedCategory(t, store, "fun", "Fun")

	seedTxn(t, store, model.Transaction{ID: "t1", CategoryID: "food", Amount: decimal.NewFromInt(300), Name: "Groceries", WalletID: "w1"})
	seedTxn(t, store, model.Transaction{ID: "t2", CategoryID: "transport", Amount: decimal.NewFromInt(200), Name: "Fuel", WalletID: "w1"})
	seedTxn(t, store, model.Transaction{ID: "t3", CategoryID: "fun", Amount: decimal.NewFromInt(500), Name: "Concert", WalletID: "w1"})

	budget := monthBudget("b1", 1000, model.PeriodMonthly)
	require.NoError(t, store.CreateBudget(ctx, budget))
	require.NoError(t, store.LinkBudgetCategory(ctx, "b1", "food"))
	require.NoError(t, store.LinkBudgetCategory(ctx, "b1", "transport"))

	spend, err := engine.BudgetSpend(ctx, budget)
	require.NoError(t, err)
	assert.True(t, spend.Equal(decimal.NewFromInt(500)), "only linked categories count, got %s", spend)
}

func TestBudgetSpendAccountWideFallback(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()
	engine := report.NewEngine(store)

	testutil.SeedWallet(t, store, "w1", decimal.Zero)
	testutil.SeedCategory(t, store, "food", "Food")

	seedTxn(t, store, model.Transaction{ID: "t1", CategoryID: "food", Amount: decimal.NewFromInt(300), Name: "Groceries", WalletID: "w1"})
	seedTxn(t, store, model.Transaction{ID: "t2", Amount: decimal.NewFromInt(700), Name: "Uncategorized", WalletID: "w1"})
	// Income never counts as spend.
	seedTxn(t, store, model.Transaction{ID: "t3", Amount: decimal.NewFromInt(9000), Name: "Salary", WalletID: "w1", Direction: model.DirectionIncome})

	budget := monthBudget("b1", 1000, model.PeriodMonthly)
	require.NoError(t, store.CreateBudget(ctx, budget))

	spend, err := engine.BudgetSpend(ctx, budget)
	require.NoError(t, err)
	assert.True(t, spend.Equal(decimal.NewFromInt(1000)), "a budget with no categories is account-wide, got %s", spend)
}

func TestBudgetUsage(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()
	engine := report.NewEngine(store)

	testutil.SeedWallet(t, store, "w1", decimal.Zero)
	seedTxn(t, store, model.Transaction{ID: "t1", Amount: decimal.NewFromInt(750), Name: "Spend", WalletID: "w1"})

	t.Run("under limit", func(t *testing.T) {
		budget := monthBudget("b1", 1000, model.PeriodMonthly)
		require.NoError(t, store.CreateBudget(ctx, budget))

		usage, err := engine.BudgetUsage(ctx, budget)
		require.NoError(t, err)
		assert.InDelta(t, 75.0, usage.Percent, 0.001)
		assert.False(t, usage.Exceeded)
	})

	t.Run("over limit caps percent but not ratio", func(t *testing.T) {
		budget := monthBudget("b2", 500, model.PeriodMonthly)
		require.NoError(t, store.CreateBudget(ctx, budget))

		usage, err := engine.BudgetUsage(ctx, budget)
		require.NoError(t, err)
		assert.InDelta(t, 100.0, usage.Percent, 0.001)
		assert.InDelta(t, 150.0, usage.Ratio, 0.001)
		assert.True(t, usage.Exceeded)
	})

	t.Run("zero limit with spend is exceeded", func(t *testing.T) {
		budget := monthBudget("b3", 0, model.PeriodMonthly)
		require.NoError(t, store.CreateBudget(ctx, budget))

		usage, err := engine.BudgetUsage(ctx, budget)
		require.NoError(t, err)
		assert.True(t, usage.Exceeded)
		assert.Equal(t, 0.0, usage.Ratio)
	})
}

func TestMonthlyLimitFallback(t *testing.T) {
	t.Run("no budgets uses the default", func(t *testing.T) {
		store := testutil.SetupTestDB(t)
		engine := report.NewEngine(store)

		limit, err := engine.MonthlyLimit(context.Background())
		require.NoError(t, err)
		assert.True(t, limit.Equal(report.DefaultMonthlyLimit))
	})

	t.Run("first monthly budget wins", func(t *testing.T) {
		store := testutil.SetupTestDB(t)
		ctx := context.Background()
		engine := report.NewEngine(store)

		require.NoError(t, store.CreateBudget(ctx, monthBudget("b1", 800, model.PeriodWeekly)))
		require.NoError(t, store.CreateBudget(ctx, monthBudget("b2", 1500, model.PeriodMonthly)))
		require.NoError(t, store.CreateBudget(ctx, monthBudget("b3", 2500, model.PeriodMonthly)))

		limit, err := engine.MonthlyLimit(ctx)
		require.NoError(t, err)
		assert.True(t, limit.Equal(decimal.NewFromInt(1500)))
	})

	t.Run("configured default wins over the constant", func(t *testing.T) {
		store := testutil.SetupTestDB(t)
		engine := report.NewEngineWithLimit(store, decimal.NewFromInt(3500))

		limit, err := engine.MonthlyLimit(context.Background())
		require.NoError(t, err)
		assert.True(t, limit.Equal(decimal.NewFromInt(3500)))
	})

	t.Run("budgets still win over the configured default", func(t *testing.T) {
		store := testutil.SetupTestDB(t)
		ctx := context.Background()
		engine := report.NewEngineWithLimit(store, decimal.NewFromInt(3500))

		require.NoError(t, store.CreateBudget(ctx, monthBudget("b1", 1200, model.PeriodMonthly)))

		limit, err := engine.MonthlyLimit(ctx)
		require.NoError(t, err)
		assert.True(t, limit.Equal(decimal.NewFromInt(1200)))
	})

	t.Run("no monthly budget falls back to the first budget", func(t *testing.T) {
		store := testutil.SetupTestDB(t)
		ctx := context.Background()
		engine := report.NewEngine(store)

		require.NoError(t, store.CreateBudget(ctx, monthBudget("b1", 800, model.PeriodWeekly)))
		require.NoError(t, store.CreateBudget(ctx, monthBudget("b2", 900, model.PeriodYearly)))

		limit, err := engine.MonthlyLimit(ctx)
		require.NoError(t, err)
		assert.True(t, limit.Equal(decimal.NewFromInt(800)))
	})
}

func TestTotals(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()
	engine := report.NewEngine(store)

	testutil.SeedWallet(t, store, "w1", decimal.Zero)
	seedTxn(t, store, model.Transaction{ID: "t1", Amount: decimal.NewFromInt(3000), Name: "Salary", WalletID: "w1", Direction: model.DirectionIncome})
	seedTxn(t, store, model.Transaction{ID: "t2", Amount: decimal.NewFromInt(450), Name: "Rent", WalletID: "w1"})
	seedTxn(t, store, model.Transaction{ID: "t3", Amount: decimal.NewFromInt(50), Name: "Food", WalletID: "w1"})

	totals, err := engine.Totals(ctx)
	require.NoError(t, err)
	assert.True(t, totals.Income.Equal(decimal.NewFromInt(3000)))
	assert.True(t, totals.Expense.Equal(decimal.NewFromInt(500)))
}

func TestCategorySummary(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()
	engine := report.NewEngine(store)

	testutil.SeedWallet(t, store, "w1", decimal.Zero)
	testutil.SeedCategory(t, store, "food", "Food")

	seedTxn(t, store, model.Transaction{ID: "t1", CategoryID: "food", Amount: decimal.NewFromInt(30), Name: "Lunch", WalletID: "w1"})
	seedTxn(t, store, model.Transaction{ID: "t2", CategoryID: "food", Amount: decimal.NewFromInt(70), Name: "Dinner", WalletID: "w1"})
	seedTxn(t, store, model.Transaction{ID: "t3", Amount: decimal.NewFromInt(15), Name: "Mystery", WalletID: "w1"})

	summary, err := engine.CategorySummary(ctx, "2024-06-01", "2024-06-30")
	require.NoError(t, err)
	require.Len(t, summary, 2)
	assert.True(t, summary["food"].Equal(decimal.NewFromInt(100)))
	assert.True(t, summary[""].Equal(decimal.NewFromInt(15)), "uncategorized spend keys on the empty string")
}
