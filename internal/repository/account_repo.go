package repository

import (
	"context"
	"errors"

	"UserHubAPI/internal/model"

	"github.com/jackc/pgx/v5"
)

var accountTable = table[model.Account]{
	name:    "accounts",
	columns: "id, email, first_name, last_name, role, created_at, updated_at",
	mutable: []string{"email", "first_name", "last_name", "role"},
	stamped: true,
	scan: func(row pgx.Row) (*model.Account, error) {
		var a model.Account
		var role string
		if err := row.Scan(&a.ID, &a.Email, &a.FirstName, &a.LastName, &role, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		a.Role = model.Role(role)
		return &a, nil
	},
	args: func(a *model.Account) []any {
		return []any{a.Email, a.FirstName, a.LastName, string(a.Role)}
	},
}

type AccountRepository struct {
	crud crud[model.Account]
}

func NewAccountRepository(db DB) *AccountRepository {
	return &AccountRepository{crud: crud[model.Account]{db: db, t: accountTable}}
}

func (r *AccountRepository) FindByID(ctx context.Context, id int64) (*model.Account, error) {
	return r.crud.FindByID(ctx, id)
}

func (r *AccountRepository) FindAll(ctx context.Context) ([]model.Account, error) {
	return r.crud.FindAll(ctx)
}

func (r *AccountRepository) Create(ctx context.Context, a *model.Account) (*model.Account, error) {
	return r.crud.Create(ctx, a)
}

func (r *AccountRepository) Update(ctx context.Context, id int64, a *model.Account) (*model.Account, error) {
	return r.crud.Update(ctx, id, a)
}

func (r *AccountRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return r.crud.Delete(ctx, id)
}

// FindByEmail returns the account or nil when no account has that email.
// The lookup is case-sensitive, matching the unique constraint.
func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	q := `SELECT id, email, first_name, last_name, role, created_at, updated_at FROM accounts WHERE email=$1`
	a, err := accountTable.scan(r.crud.db.QueryRow(ctx, q, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translateErr(err)
	}
	return a, nil
}
