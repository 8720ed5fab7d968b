package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mattn/go-sqlite3"
	"github.com/pocketmint/pocketmint/internal/common"
	"github.com/pocketmint/pocketmint/internal/model"
	"github.com/pocketmint/pocketmint/internal/service"
	"github.com/shopspring/decimal"
)

// Column binds one store column to one entity field. Value produces the
// bind parameter for writes; Ptr produces the scan destination for reads.
// Declaring the table explicitly makes a field/column mismatch a missing
// entry here rather than a silent runtime no-op.
type Column[T any] struct {
	Value func(*T) any
	Ptr   func(*T) any
	Name  string
}

// Mapper performs create/read/update/delete for one entity shape against
// one table, driven entirely by its declared column table. One mapper
// exists per (entity shape, table, primary key) triple, as a package-level
// value; mappers carry no request-scoped state.
type Mapper[T any] struct {
	Table   string
	PK      string
	Columns []Column[T]
}

func (m *Mapper[T]) column(name string) (Column[T], bool) {
	for _, c := range m.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column[T]{}, false
}

func (m *Mapper[T]) names() []string {
	names := make([]string, len(m.Columns))
	for i, c := range m.Columns {
		names[i] = c.Name
	}
	return names
}

// Insert writes the entity as a new row, naming every declared column and
// binding values positionally. Store rejections (constraint violations,
// type mismatches) are wrapped and propagated, never absorbed.
func (m *Mapper[T]) Insert(ctx context.Context, q queryable, entity *T) error {
	names := m.names()
	marks := strings.Repeat("?, ", len(names)-1) + "?"
	args := make([]any, len(m.Columns))
	for i, c := range m.Columns {
		args[i] = c.Value(entity)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", m.Table, strings.Join(names, ", "), marks)
	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) &&
			(sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
				sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique) {
			return fmt.Errorf("%w: %s", common.ErrDuplicateEntry, m.Table)
		}
		return fmt.Errorf("failed to insert into %s: %w", m.Table, err)
	}
	return nil
}

// Get reads the row with the given primary key into a fresh zero-value
// entity. Absence is reported as common.ErrNotFound, not a hard failure.
func (m *Mapper[T]) Get(ctx context.Context, q queryable, pk any) (*T, error) {
	entity := new(T)
	dests := make([]any, len(m.Columns))
	for i, c := range m.Columns {
		dests[i] = c.Ptr(entity)
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?", strings.Join(m.names(), ", "), m.Table, m.PK)
	err := q.QueryRowContext(ctx, query, pk).Scan(dests...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", m.Table, err)
	}
	return entity, nil
}

// Select builds a parameterized SELECT from the query options. Filters are
// exact-match AND conditions; column and filter names outside the declared
// map are rejected with common.ErrUnknownColumn. The result is a possibly
// empty, never nil, slice.
func (m *Mapper[T]) Select(ctx context.Context, q queryable, query service.Query) ([]T, error) {
	cols := query.Columns
	if len(cols) == 0 {
		cols = m.names()
	}
	bindings := make([]Column[T], len(cols))
	for i, name := range cols {
		c, ok := m.column(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s", common.ErrUnknownColumn, m.Table, name)
		}
		bindings[i] = c
	}

	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s FROM %s", strings.Join(cols, ", "), m.Table)

	var args []any
	if len(query.Filters) > 0 {
		keys := make([]string, 0, len(query.Filters))
		for k := range query.Filters {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		conds := make([]string, 0, len(keys))
		for _, k := range keys {
			if _, ok := m.column(k); !ok {
				return nil, fmt.Errorf("%w: %s.%s", common.ErrUnknownColumn, m.Table, k)
			}
			conds = append(conds, k+" = ?")
			args = append(args, query.Filters[k])
		}
		b.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	if query.OrderBy != "" {
		b.WriteString(" ORDER BY " + query.OrderBy)
	}
	if query.Limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d", query.Limit)
	}

	rows, err := q.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", m.Table, err)
	}
	defer func() { _ = rows.Close() }()

	results := make([]T, 0)
	for rows.Next() {
		entity := new(T)
		dests := make([]any, len(bindings))
		for i, c := range bindings {
			dests[i] = c.Ptr(entity)
		}
		if err := rows.Scan(dests...); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", m.Table, err)
		}
		results = append(results, *entity)
	}
	return results, rows.Err()
}

// Update performs a sparse update: every column whose bound value is
// non-zero is written, keyed by the primary key read from the entity
// itself. Columns for zero-valued fields are left untouched in the store;
// callers that need to clear a column use UpdateColumns. Returns the number
// of rows affected (zero when nothing was set or the key does not exist).
func (m *Mapper[T]) Update(ctx context.Context, q queryable, entity *T) (int64, error) {
	pkCol, ok := m.column(m.PK)
	if !ok {
		return 0, fmt.Errorf("%w: %s.%s", common.ErrUnknownColumn, m.Table, m.PK)
	}
	pk := pkCol.Value(entity)
	if isZeroValue(pk) {
		return 0, fmt.Errorf("%w: %s update requires a primary key", common.ErrInvalidInput, m.Table)
	}

	var sets []string
	var args []any
	for _, c := range m.Columns {
		if c.Name == m.PK {
			continue
		}
		v := c.Value(entity)
		if isZeroValue(v) {
			continue
		}
		sets = append(sets, c.Name+" = ?")
		args = append(args, v)
	}
	if len(sets) == 0 {
		return 0, nil
	}
	args = append(args, pk)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?", m.Table, strings.Join(sets, ", "), m.PK)
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update %s: %w", m.Table, err)
	}
	return res.RowsAffected()
}

// UpdateColumns updates exactly the named columns, bypassing the sparse
// semantics. This is the only generic path that can null a column out.
func (m *Mapper[T]) UpdateColumns(ctx context.Context, q queryable, pk any, updates map[string]any) error {
	if len(updates) == 0 {
		return fmt.Errorf("%w: no columns to update on %s", common.ErrInvalidInput, m.Table)
	}

	keys := make([]string, 0, len(updates))
	for k := range updates {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sets := make([]string, 0, len(keys))
	args := make([]any, 0, len(keys)+1)
	for _, k := range keys {
		if _, ok := m.column(k); !ok {
			return fmt.Errorf("%w: %s.%s", common.ErrUnknownColumn, m.Table, k)
		}
		sets = append(sets, k+" = ?")
		args = append(args, updates[k])
	}
	args = append(args, pk)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?", m.Table, strings.Join(sets, ", "), m.PK)
	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update %s: %w", m.Table, err)
	}
	return nil
}

// Delete removes the row with the given primary key. Deleting a key that
// does not exist is a zero-row no-op, not an error.
func (m *Mapper[T]) Delete(ctx context.Context, q queryable, pk any) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", m.Table, m.PK)
	if _, err := q.ExecContext(ctx, query, pk); err != nil {
		return fmt.Errorf("failed to delete from %s: %w", m.Table, err)
	}
	return nil
}

// isZeroValue reports whether a bound value is the zero value of its field
// type. The switch covers the closed set of field types used by the entity
// column tables, keeping sparse-update decisions explicit.
func isZeroValue(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case model.Ref:
		return x == ""
	case model.Direction:
		return x == ""
	case model.CategoryType:
		return x == ""
	case model.PeriodType:
		return x == ""
	case decimal.Decimal:
		return x.IsZero()
	case int:
		return x == 0
	case int64:
		return x == 0
	case float64:
		return x == 0
	case bool:
		return !x
	default:
		return false
	}
}

// queryable is an interface satisfied by both *sql.DB and *sql.Tx.
type queryable interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
