package storage

import (
	"context"
	"fmt"

	"github.com/pocketmint/pocketmint/internal/model"
	"github.com/pocketmint/pocketmint/internal/service"
	"github.com/shopspring/decimal"
)

// CreateWallet inserts a new wallet.
func (s *SQLiteStore) CreateWallet(ctx context.Context, wallet *model.Wallet) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if wallet == nil {
		return fmt.Errorf("%w: wallet", ErrNilParameter)
	}
	if err := validateString(wallet.ID, "wallet.ID"); err != nil {
		return err
	}
	if err := validateString(wallet.Name, "wallet.Name"); err != nil {
		return err
	}
	return walletMapper.Insert(ctx, s.db, wallet)
}

// GetWallet retrieves a wallet by id, returning common.ErrNotFound for
// absence.
func (s *SQLiteStore) GetWallet(ctx context.Context, id string) (*model.Wallet, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}
	return walletMapper.Get(ctx, s.db, id)
}

// ListWallets returns all wallets ordered by name.
func (s *SQLiteStore) ListWallets(ctx context.Context) ([]model.Wallet, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return walletMapper.Select(ctx, s.db, service.Query{OrderBy: "name"})
}

// UpdateWallet sparse-updates a wallet: only non-zero fields are written.
// Clearing a column requires UpdateWalletColumns.
func (s *SQLiteStore) UpdateWallet(ctx context.Context, wallet *model.Wallet) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if wallet == nil {
		return fmt.Errorf("%w: wallet", ErrNilParameter)
	}
	_, err := walletMapper.Update(ctx, s.db, wallet)
	return err
}

// UpdateWalletColumns updates exactly the named columns.
func (s *SQLiteStore) UpdateWalletColumns(ctx context.Context, id string, updates map[string]any) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}
	return walletMapper.UpdateColumns(ctx, s.db, id, updates)
}

// DeleteWallet deletes a wallet by id. Dependent transaction records cascade
// with it. Deleting a missing id is a no-op.
func (s *SQLiteStore) DeleteWallet(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}
	return walletMapper.Delete(ctx, s.db, id)
}

// adjustWalletBalance applies a signed delta to a wallet's stored balance.
// Runs against the caller's queryable so it can join a larger transaction.
func adjustWalletBalance(ctx context.Context, q queryable, walletID string, delta decimal.Decimal) error {
	wallet, err := walletMapper.Get(ctx, q, walletID)
	if err != nil {
		return fmt.Errorf("failed to load wallet %s: %w", walletID, err)
	}

	updated := wallet.Balance.Add(delta)
	if err := walletMapper.UpdateColumns(ctx, q, walletID, map[string]any{"balance": updated}); err != nil {
		return fmt.Errorf("failed to adjust wallet %s balance: %w", walletID, err)
	}
	return nil
}
