// Package testutil provides test helpers shared across packages.
package testutil

import (
	"context"
	"testing"

	"github.com/pocketmint/pocketmint/internal/model"
	"github.com/pocketmint/pocketmint/internal/storage"
	"github.com/shopspring/decimal"
)

// SetupTestDB creates a migrated in-memory database that is closed when the
// test finishes.
func SetupTestDB(t *testing.T) *storage.SQLiteStore {
	t.Helper()

	store, err := storage.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() { _ = store.Close() })
	return store
}

// SeedWallet creates a wallet with the given starting balance.
func SeedWallet(t *testing.T, store *storage.SQLiteStore, id string, balance decimal.Decimal) *model.Wallet {
	t.Helper()

	wallet := &model.Wallet{ID: id, Name: "Wallet " + id, Balance: balance, Color: "#4caf50"}
	if err := store.CreateWallet(context.Background(), wallet); err != nil {
		t.Fatalf("failed to seed wallet %s: %v", id, err)
	}
	return wallet
}

// SeedCategory creates an expense category.
func SeedCategory(t *testing.T, store *storage.SQLiteStore, id, name string) *model.Category {
	t.Helper()

	cat := &model.Category{ID: id, Name: name, Type: model.CategoryTypeExpense}
	if err := store.CreateCategory(context.Background(), cat); err != nil {
		t.Fatalf("failed to seed category %s: %v", name, err)
	}
	return cat
}
