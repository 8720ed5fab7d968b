// Package ledger owns the transaction lifecycle. Wallet balances are
// stored, not computed, so every mutation of a record's amount, wallet or
// direction must reverse the old effect before applying the new one; this
// package is the only place that discipline lives.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/pocketmint/pocketmint/internal/common"
	"github.com/pocketmint/pocketmint/internal/model"
	"github.com/pocketmint/pocketmint/internal/service"
)

// Service records, edits and removes ledger transactions while keeping
// wallet balances consistent. The mutex serializes the
// reversal-then-reapply sequence so edits from multiple windows in the same
// process cannot interleave.
type Service struct {
	store service.Storage
	mu    sync.Mutex
}

// NewService creates a ledger service over the given storage.
func NewService(store service.Storage) *Service {
	return &Service{store: store}
}

// Record validates and writes a new transaction, applying its signed effect
// to the target wallet. A missing id is generated; a missing createTime
// defaults to now (creation is the one boundary where "now" is the right
// answer; malformed non-empty input still fails).
func (s *Service) Record(ctx context.Context, txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("%w: transaction", common.ErrInvalidInput)
	}
	if txn.ID == "" {
		txn.ID = uuid.NewString()
	}
	if txn.CreateTime == "" {
		txn.CreateTime = model.Now()
	}
	if err := s.validate(txn); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := tx.CreateTransaction(ctx, txn); err != nil {
		return err
	}
	if err := tx.AdjustWalletBalance(ctx, txn.WalletID, txn.SignedAmount()); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	slog.Debug("recorded transaction", "id", txn.ID, "wallet", txn.WalletID, "amount", txn.Amount)
	return nil
}

// Edit replaces a stored transaction with the given state. The original's
// signed effect is undone against its original wallet first, then the new
// effect is applied to the (possibly different) target wallet, all in one
// database transaction.
func (s *Service) Edit(ctx context.Context, txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("%w: transaction", common.ErrInvalidInput)
	}
	if txn.ID == "" {
		return fmt.Errorf("%w: edit requires a transaction id", common.ErrInvalidInput)
	}
	if err := s.validate(txn); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	orig, err := tx.GetTransaction(ctx, txn.ID)
	if err != nil {
		return err
	}

	// Reverse, then reapply. Skipping either step silently corrupts the
	// wallet balance.
	if err := tx.AdjustWalletBalance(ctx, orig.WalletID, orig.SignedAmount().Neg()); err != nil {
		return err
	}
	if err := tx.AdjustWalletBalance(ctx, txn.WalletID, txn.SignedAmount()); err != nil {
		return err
	}

	// The explicit column path persists the full new state, including
	// cleared references.
	if err := tx.UpdateTransactionColumns(ctx, txn.ID, map[string]any{
		"categoryId": txn.CategoryID,
		"amount":     txn.Amount,
		"name":       txn.Name,
		"income":     txn.Direction,
		"walletId":   txn.WalletID,
		"goalId":     txn.GoalID,
		"createTime": txn.CreateTime,
	}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit edit: %w", err)
	}
	return nil
}

// Remove deletes a transaction after undoing its wallet effect. Removing an
// id that does not exist is a no-op.
func (s *Service) Remove(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: remove requires a transaction id", common.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	orig, err := tx.GetTransaction(ctx, id)
	if errors.Is(err, common.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := tx.AdjustWalletBalance(ctx, orig.WalletID, orig.SignedAmount().Neg()); err != nil {
		return err
	}
	if err := tx.DeleteTransaction(ctx, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit removal: %w", err)
	}
	return nil
}

func (s *Service) validate(txn *model.Transaction) error {
	if txn.WalletID == "" {
		return fmt.Errorf("%w: missing wallet", common.ErrInvalidInput)
	}
	if txn.Amount.Sign() < 0 {
		return fmt.Errorf("%w: amount must be a non-negative magnitude", common.ErrInvalidInput)
	}
	if !txn.Direction.Valid() {
		return fmt.Errorf("%w: direction must be income or expense", common.ErrInvalidInput)
	}
	if _, err := model.ParseTime(txn.CreateTime); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidInput, err)
	}
	return nil
}
