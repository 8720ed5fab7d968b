package storage

import (
	"context"
	"fmt"

	"github.com/pocketmint/pocketmint/internal/model"
	"github.com/pocketmint/pocketmint/internal/service"
)

// CreateGoal inserts a new savings goal. Goals store no balance; it is
// always recomputed from the ledger.
func (s *SQLiteStore) CreateGoal(ctx context.Context, goal *model.Goal) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if goal == nil {
		return fmt.Errorf("%w: goal", ErrNilParameter)
	}
	if err := validateString(goal.ID, "goal.ID"); err != nil {
		return err
	}
	if err := validateString(goal.Name, "goal.Name"); err != nil {
		return err
	}
	if goal.Deadline != "" {
		if _, err := model.ParseDate(goal.Deadline); err != nil {
			return err
		}
	}
	if goal.CreateAt == "" {
		goal.CreateAt = model.Now()
	}
	return goalMapper.Insert(ctx, s.db, goal)
}

// GetGoal retrieves a goal by id.
func (s *SQLiteStore) GetGoal(ctx context.Context, id string) (*model.Goal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}
	return goalMapper.Get(ctx, s.db, id)
}

// ListGoals returns all goals, highest priority first, oldest first within
// a priority.
func (s *SQLiteStore) ListGoals(ctx context.Context) ([]model.Goal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return goalMapper.Select(ctx, s.db, service.Query{OrderBy: "priority, createAt"})
}

// UpdateGoal sparse-updates a goal.
func (s *SQLiteStore) UpdateGoal(ctx context.Context, goal *model.Goal) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if goal == nil {
		return fmt.Errorf("%w: goal", ErrNilParameter)
	}
	_, err := goalMapper.Update(ctx, s.db, goal)
	return err
}

// DeleteGoal deletes a goal. Transactions that referenced it keep their
// wallet effects but lose the link (goalId set to NULL by the schema).
func (s *SQLiteStore) DeleteGoal(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}
	return goalMapper.Delete(ctx, s.db, id)
}
