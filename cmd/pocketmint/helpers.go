package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pocketmint/pocketmint/internal/common"
	"github.com/pocketmint/pocketmint/internal/report"
	"github.com/pocketmint/pocketmint/internal/service"
	"github.com/pocketmint/pocketmint/internal/storage"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// initStorage opens the configured database and brings its schema current.
func initStorage(ctx context.Context) (*storage.SQLiteStore, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".local", "share", "pocketmint", "pocketmint.db")
	}

	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("could not open database at %s", dbPath), err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, common.NewUserError("could not bring the database schema up to date", err)
	}

	return store, nil
}

// newReportEngine builds a report engine carrying the configured fallback
// monthly limit.
func newReportEngine(store service.Storage) *report.Engine {
	limit := decimal.NewFromFloat(viper.GetFloat64("budget.default_monthly_limit"))
	return report.NewEngineWithLimit(store, limit)
}
