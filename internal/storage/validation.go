package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pocketmint/pocketmint/internal/model"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrNilParameter       = errors.New("parameter cannot be nil")
	ErrNegativeAmount     = errors.New("amount must be non-negative")
	ErrInvalidDirection   = errors.New("direction must be income or expense")
	ErrInvalidDateRange   = errors.New("start date must be before end date")
	ErrInvalidTransaction = errors.New("invalid transaction")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTransaction validates a single ledger record before it is written.
func validateTransaction(txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("%w: transaction", ErrNilParameter)
	}
	if txn.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidTransaction)
	}
	if txn.WalletID == "" {
		return fmt.Errorf("%w: missing walletId", ErrInvalidTransaction)
	}
	if txn.Amount.Sign() < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeAmount, txn.Amount)
	}
	if !txn.Direction.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDirection, string(txn.Direction))
	}
	if txn.CreateTime == "" {
		return fmt.Errorf("%w: missing createTime", ErrInvalidTransaction)
	}
	if _, err := model.ParseTime(txn.CreateTime); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTransaction, err)
	}
	return nil
}

// validateDateRange ensures from does not sort after to. Comparisons are
// lexicographic, same as every range query against the store.
func validateDateRange(from, to string) error {
	if err := validateString(from, "from"); err != nil {
		return err
	}
	if err := validateString(to, "to"); err != nil {
		return err
	}
	if from > model.EndOfDay(to) {
		return fmt.Errorf("%w: %s > %s", ErrInvalidDateRange, from, to)
	}
	return nil
}
