// Package repository moves data between the API models and the Postgres
// store. One generic CRUD core is shared by all entity kinds; referential
// integrity (unique email, FK validity, cascade delete) is enforced by the
// schema, not re-checked here.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of *pgxpool.Pool the repositories need. Satisfied by the
// pool in production and by pgxmock in tests.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrConnection = errors.New("store unreachable")
)

// translateErr maps store-level failures onto the repository error taxonomy.
// Unique-key and foreign-key violations both surface as ErrConflict; anything
// unclassified passes through for the boundary to report as a 500.
func translateErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505", "23503":
			return fmt.Errorf("%w: %s", ErrConflict, pgErr.ConstraintName)
		}
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return err
}

// table describes how one entity kind maps onto its SQL table.
type table[T any] struct {
	name    string   // table name
	columns string   // select list, id first
	mutable []string // caller-supplied columns, in args order
	stamped bool     // store maintains created_at/updated_at
	scan    func(row pgx.Row) (*T, error)
	args    func(e *T) []any // values for mutable, same order
}

// crud is the generic create/read/update/delete core, instantiated once per
// entity kind.
type crud[T any] struct {
	db DB
	t  table[T]
}

// FindByID returns the entity or nil when nothing matched.
func (c *crud[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	q := fmt.Sprintf(`SELECT %s FROM %s WHERE id=$1`, c.t.columns, c.t.name)
	e, err := c.t.scan(c.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translateErr(err)
	}
	return e, nil
}

func (c *crud[T]) FindAll(ctx context.Context) ([]T, error) {
	q := fmt.Sprintf(`SELECT %s FROM %s ORDER BY id`, c.t.columns, c.t.name)
	rows, err := c.db.Query(ctx, q)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		e, err := c.t.scan(rows)
		if err != nil {
			return nil, translateErr(err)
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, translateErr(err)
	}
	return out, nil
}

// Create inserts the mutable columns and returns the stored row. The id is
// store-assigned and timestamps, where the table has them, are stamped by
// the store.
func (c *crud[T]) Create(ctx context.Context, e *T) (*T, error) {
	placeholders := make([]string, len(c.t.mutable))
	for i := range c.t.mutable {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	cols := strings.Join(c.t.mutable, ", ")
	vals := strings.Join(placeholders, ", ")
	if c.t.stamped {
		cols += ", created_at, updated_at"
		vals += ", now(), now()"
	}
	q := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING %s`,
		c.t.name, cols, vals, c.t.columns)
	created, err := c.t.scan(c.db.QueryRow(ctx, q, c.t.args(e)...))
	if err != nil {
		return nil, translateErr(err)
	}
	return created, nil
}

// Update replaces every mutable column (full replace, not a patch),
// preserves created_at and re-stamps updated_at. Unknown id yields
// ErrNotFound.
func (c *crud[T]) Update(ctx context.Context, id int64, e *T) (*T, error) {
	sets := make([]string, len(c.t.mutable))
	for i, col := range c.t.mutable {
		sets[i] = fmt.Sprintf("%s=$%d", col, i+1)
	}
	if c.t.stamped {
		sets = append(sets, "updated_at=now()")
	}
	q := fmt.Sprintf(`UPDATE %s SET %s WHERE id=$%d RETURNING %s`,
		c.t.name, strings.Join(sets, ", "), len(c.t.mutable)+1, c.t.columns)
	args := append(c.t.args(e), id)
	updated, err := c.t.scan(c.db.QueryRow(ctx, q, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, translateErr(err)
	}
	return updated, nil
}

// Delete removes the row and returns the number of rows affected; 0 means
// nothing matched, which is not an error. Dependents go with the row via the
// schema's ON DELETE CASCADE.
func (c *crud[T]) Delete(ctx context.Context, id int64) (int64, error) {
	q := fmt.Sprintf(`DELETE FROM %s WHERE id=$1`, c.t.name)
	tag, err := c.db.Exec(ctx, q, id)
	if err != nil {
		return 0, translateErr(err)
	}
	return tag.RowsAffected(), nil
}
