package storage_test

import (
	"context"
	"testing"

	"github.com/pocketmint/pocketmint/internal/common"
	"github.com/pocketmint/pocketmint/internal/model"
	"github.com/pocketmint/pocketmint/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletCRUD(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	wallet := &model.Wallet{
		ID:      "w1",
		Name:    "Checking",
		Balance: decimal.NewFromFloat(1234.56),
		Color:   "#2196f3",
	}
	require.NoError(t, store.CreateWallet(ctx, wallet))

	got, err := store.GetWallet(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, wallet.Name, got.Name)
	assert.True(t, got.Balance.Equal(wallet.Balance))
	assert.Equal(t, wallet.Color, got.Color)

	require.NoError(t, store.DeleteWallet(ctx, "w1"))

	_, err = store.GetWallet(ctx, "w1")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestWalletDuplicateID(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	testutil.SeedWallet(t, store, "w1", decimal.Zero)

	err := store.CreateWallet(ctx, &model.Wallet{ID: "w1", Name: "Clone"})
	assert.ErrorIs(t, err, common.ErrDuplicateEntry)
}

func TestListWalletsOrderedByName(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	for _, w := range []*model.Wallet{
		{ID: "w1", Name: "Zebra"},
		{ID: "w2", Name: "Alpha"},
		{ID: "w3", Name: "Middle"},
	} {
		require.NoError(t, store.CreateWallet(ctx, w))
	}

	wallets, err := store.ListWallets(ctx)
	require.NoError(t, err)
	require.Len(t, wallets, 3)
	assert.Equal(t, "Alpha", wallets[0].Name)
	assert.Equal(t, "Middle", wallets[1].Name)
	assert.Equal(t, "Zebra", wallets[2].Name)
}

func TestUpdateWalletIsSparse(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	testutil.SeedWallet(t, store, "w1", decimal.NewFromInt(500))

	// Only the name is set; balance and color must survive.
	require.NoError(t, store.UpdateWallet(ctx, &model.Wallet{ID: "w1", Name: "Renamed"}))

	got, err := store.GetWallet(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.True(t, got.Balance.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "#4caf50", got.Color)
}

func TestUpdateWalletColumnsCanClear(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	testutil.SeedWallet(t, store, "w1", decimal.NewFromInt(100))

	require.NoError(t, store.UpdateWalletColumns(ctx, "w1", map[string]any{"color": ""}))

	got, err := store.GetWallet(ctx, "w1")
	require.NoError(t, err)
	assert.Empty(t, got.Color)
}

func TestDeleteWalletIsIdempotent(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	assert.NoError(t, store.DeleteWallet(ctx, "never-existed"))
}

func TestWalletValidation(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	assert.Error(t, store.CreateWallet(ctx, nil))
	assert.Error(t, store.CreateWallet(ctx, &model.Wallet{ID: "", Name: "No ID"}))
	assert.Error(t, store.CreateWallet(ctx, &model.Wallet{ID: "w1", Name: ""}))

	var nilCtx context.Context
	assert.Error(t, store.CreateWallet(nilCtx, &model.Wallet{ID: "w1", Name: "X"}))
}
