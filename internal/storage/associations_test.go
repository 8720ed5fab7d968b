package storage_test

import (
	"context"
	"testing"

	"github.com/pocketmint/pocketmint/internal/model"
	"github.com/pocketmint/pocketmint/internal/storage"
	"github.com/pocketmint/pocketmint/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedBudget(t *testing.T, store *storage.SQLiteStore, id, name string) *model.Budget {
	t.Helper()

	budget := &model.Budget{
		ID:          id,
		Name:        name,
		LimitAmount: decimal.NewFromInt(500),
		StartDate:   "2024-06-01",
		EndDate:     "2024-06-30",
		PeriodType:  model.PeriodMonthly,
	}
	if err := store.CreateBudget(context.Background(), budget); err != nil {
		t.Fatalf("failed to seed budget %s: %v", id, err)
	}
	return budget
}

func TestLinkBudgetCategory(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	seedBudget(t, store, "b1", "Essentials")
	testutil.SeedCategory(t, store, "c1", "Food")
	testutil.SeedCategory(t, store, "c2", "Transport")

	require.NoError(t, store.LinkBudgetCategory(ctx, "b1", "c1"))
	require.NoError(t, store.LinkBudgetCategory(ctx, "b1", "c2"))

	// Relinking an existing pair is a no-op, not an error.
	require.NoError(t, store.LinkBudgetCategory(ctx, "b1", "c1"))

	cats, err := store.CategoriesForBudget(ctx, "b1")
	require.NoError(t, err)
	assert.Len(t, cats, 2)
}

func TestUnlinkBudgetCategory(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	seedBudget(t, store, "b1", "Essentials")
	testutil.SeedCategory(t, store, "c1", "Food")

	require.NoError(t, store.LinkBudgetCategory(ctx, "b1", "c1"))
	require.NoError(t, store.UnlinkBudgetCategory(ctx, "b1", "c1"))

	cats, err := store.CategoriesForBudget(ctx, "b1")
	require.NoError(t, err)
	assert.Empty(t, cats)

	// Unlinking a pair that never existed is a no-op.
	assert.NoError(t, store.UnlinkBudgetCategory(ctx, "b1", "c1"))
}

func TestBudgetsForCategory(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	seedBudget(t, store, "b1", "Essentials")
	seedBudget(t, store, "b2", "Fun money")
	testutil.SeedCategory(t, store, "c1", "Food")

	require.NoError(t, store.LinkBudgetCategory(ctx, "b1", "c1"))
	require.NoError(t, store.LinkBudgetCategory(ctx, "b2", "c1"))

	budgets, err := store.BudgetsForCategory(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, budgets, 2)
}

func TestDeleteBudgetCascadesLinksOnly(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	seedBudget(t, store, "b1", "Essentials")
	testutil.SeedCategory(t, store, "c1", "Food")
	require.NoError(t, store.LinkBudgetCategory(ctx, "b1", "c1"))

	require.NoError(t, store.DeleteBudget(ctx, "b1"))

	// The category survives; only the join rows go.
	_, err := store.GetCategory(ctx, "c1")
	require.NoError(t, err)

	budgets, err := store.BudgetsForCategory(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, budgets)
}

func TestDeleteCategoryCascadesLinks(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	seedBudget(t, store, "b1", "Essentials")
	testutil.SeedCategory(t, store, "c1", "Food")
	require.NoError(t, store.LinkBudgetCategory(ctx, "b1", "c1"))

	require.NoError(t, store.DeleteCategory(ctx, "c1"))

	cats, err := store.CategoriesForBudget(ctx, "b1")
	require.NoError(t, err)
	assert.Empty(t, cats)
}

func TestLinkRequiresExistingRows(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	testutil.SeedCategory(t, store, "c1", "Food")

	assert.Error(t, store.LinkBudgetCategory(ctx, "ghost-budget", "c1"))
}

func TestCreateBudgetValidation(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	base := model.Budget{
		ID:          "b1",
		Name:        "Essentials",
		LimitAmount: decimal.NewFromInt(500),
		StartDate:   "2024-06-01",
		EndDate:     "2024-06-30",
		PeriodType:  model.PeriodMonthly,
	}

	t.Run("inverted date range", func(t *testing.T) {
		budget := base
		budget.StartDate = "2024-07-01"
		budget.EndDate = "2024-06-01"
		assert.ErrorIs(t, store.CreateBudget(ctx, &budget), storage.ErrInvalidDateRange)
	})

	t.Run("malformed start date", func(t *testing.T) {
		budget := base
		budget.StartDate = "June 1st"
		assert.Error(t, store.CreateBudget(ctx, &budget))
	})

	t.Run("single-day period is allowed", func(t *testing.T) {
		budget := base
		budget.StartDate = "2024-06-15"
		budget.EndDate = "2024-06-15"
		assert.NoError(t, store.CreateBudget(ctx, &budget))
	})
}
