package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pocketmint/pocketmint/internal/model"
)

// ExpectedSchemaVersion is the latest schema version that the application
// expects. If the database cannot be migrated to this version, it's a fatal
// error.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS Wallet (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					balance TEXT NOT NULL DEFAULT '0',
					color TEXT
				)`,

				`CREATE TABLE IF NOT EXISTS Category (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					description TEXT,
					type TEXT NOT NULL DEFAULT 'EXPENSE'
				)`,

				`CREATE TABLE IF NOT EXISTS Budget (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					limitAmount TEXT NOT NULL DEFAULT '0',
					balance TEXT NOT NULL DEFAULT '0',
					startDate TEXT NOT NULL,
					endDate TEXT NOT NULL,
					periodType TEXT NOT NULL DEFAULT 'CUSTOM',
					walletId TEXT,
					FOREIGN KEY (walletId) REFERENCES Wallet(id) ON DELETE SET NULL
				)`,

				`CREATE TABLE IF NOT EXISTS Budget_Category (
					budgetID TEXT NOT NULL,
					categoryID TEXT NOT NULL,
					PRIMARY KEY (budgetID, categoryID),
					FOREIGN KEY (budgetID) REFERENCES Budget(id) ON DELETE CASCADE,
					FOREIGN KEY (categoryID) REFERENCES Category(id) ON DELETE CASCADE
				)`,

				`CREATE TABLE IF NOT EXISTS Goal (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					target TEXT NOT NULL DEFAULT '0',
					deadline TEXT,
					priority INTEGER NOT NULL DEFAULT 0,
					createAt TEXT NOT NULL,
					walletId TEXT,
					FOREIGN KEY (walletId) REFERENCES Wallet(id) ON DELETE SET NULL
				)`,

				// Goal deletion unlinks its transactions (SET NULL): the
				// wallet effects of past contributions stand.
				`CREATE TABLE IF NOT EXISTS transaction_records (
					id TEXT PRIMARY KEY,
					categoryId TEXT,
					amount TEXT NOT NULL DEFAULT '0',
					name TEXT,
					income REAL NOT NULL DEFAULT 0,
					walletId TEXT NOT NULL,
					goalId TEXT,
					createTime TEXT NOT NULL,
					FOREIGN KEY (categoryId) REFERENCES Category(id) ON DELETE SET NULL,
					FOREIGN KEY (walletId) REFERENCES Wallet(id) ON DELETE CASCADE,
					FOREIGN KEY (goalId) REFERENCES Goal(id) ON DELETE SET NULL
				)`,
				`CREATE INDEX idx_transaction_records_createTime ON transaction_records(createTime)`,
				`CREATE INDEX idx_transaction_records_categoryId ON transaction_records(categoryId)`,
				`CREATE INDEX idx_transaction_records_goalId ON transaction_records(goalId)`,
				`CREATE INDEX idx_transaction_records_walletId ON transaction_records(walletId)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Seed built-in categories",
		Up: func(tx *sql.Tx) error {
			stmt, err := tx.Prepare(`
				INSERT OR IGNORE INTO Category (id, name, description, type)
				VALUES (?, ?, ?, ?)
			`)
			if err != nil {
				return fmt.Errorf("failed to prepare statement: %w", err)
			}
			defer func() { _ = stmt.Close() }()

			for _, cat := range model.BuiltinCategories() {
				if _, err := stmt.Exec(cat.ID, cat.Name, cat.Description, string(cat.Type)); err != nil {
					return fmt.Errorf("failed to seed category %s: %w", cat.Name, err)
				}
			}
			return nil
		},
	},
}

// Migrate applies all pending schema migrations.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	var finalVersion int
	err = s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
