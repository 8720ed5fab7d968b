package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pocketmint/pocketmint/internal/model"
	"github.com/pocketmint/pocketmint/internal/service"
)

// CreateCategory inserts a new user-defined category.
func (s *SQLiteStore) CreateCategory(ctx context.Context, category *model.Category) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if category == nil {
		return fmt.Errorf("%w: category", ErrNilParameter)
	}
	if err := validateString(category.ID, "category.ID"); err != nil {
		return err
	}
	if err := validateString(category.Name, "category.Name"); err != nil {
		return err
	}
	if category.Type != model.CategoryTypeExpense && category.Type != model.CategoryTypeIncome {
		return fmt.Errorf("invalid category type %q", string(category.Type))
	}

	if err := categoryMapper.Insert(ctx, s.db, category); err != nil {
		return err
	}
	slog.Info("created category", "name", category.Name, "id", category.ID)
	return nil
}

// GetCategory retrieves a category by id.
func (s *SQLiteStore) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}
	return categoryMapper.Get(ctx, s.db, id)
}

// ListCategories returns all categories ordered by name.
func (s *SQLiteStore) ListCategories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return categoryMapper.Select(ctx, s.db, service.Query{OrderBy: "name"})
}

// UpdateCategory sparse-updates a category.
func (s *SQLiteStore) UpdateCategory(ctx context.Context, category *model.Category) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if category == nil {
		return fmt.Errorf("%w: category", ErrNilParameter)
	}
	_, err := categoryMapper.Update(ctx, s.db, category)
	return err
}

// DeleteCategory deletes a category. Transactions referencing it get their
// categoryId cleared; budget associations cascade away.
func (s *SQLiteStore) DeleteCategory(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}
	return categoryMapper.Delete(ctx, s.db, id)
}
