package repository

import (
	"context"

	"UserHubAPI/internal/model"

	"github.com/jackc/pgx/v5"
)

var profileTable = table[model.Profile]{
	name:    "profiles",
	columns: "id, account_id, bio, avatar, phone_number, birth_date",
	mutable: []string{"account_id", "bio", "avatar", "phone_number", "birth_date"},
	scan: func(row pgx.Row) (*model.Profile, error) {
		var p model.Profile
		if err := row.Scan(&p.ID, &p.AccountID, &p.Bio, &p.Avatar, &p.PhoneNumber, &p.BirthDate); err != nil {
			return nil, err
		}
		return &p, nil
	},
	args: func(p *model.Profile) []any {
		return []any{p.AccountID, p.Bio, p.Avatar, p.PhoneNumber, p.BirthDate}
	},
}

type ProfileRepository struct {
	crud crud[model.Profile]
}

func NewProfileRepository(db DB) *ProfileRepository {
	return &ProfileRepository{crud: crud[model.Profile]{db: db, t: profileTable}}
}

func (r *ProfileRepository) FindByID(ctx context.Context, id int64) (*model.Profile, error) {
	return r.crud.FindByID(ctx, id)
}

func (r *ProfileRepository) FindAll(ctx context.Context) ([]model.Profile, error) {
	return r.crud.FindAll(ctx)
}

// Create inserts a profile. A dangling account_id is rejected by the store's
// FK constraint and comes back as ErrConflict.
func (r *ProfileRepository) Create(ctx context.Context, p *model.Profile) (*model.Profile, error) {
	return r.crud.Create(ctx, p)
}

func (r *ProfileRepository) Update(ctx context.Context, id int64, p *model.Profile) (*model.Profile, error) {
	return r.crud.Update(ctx, id, p)
}

func (r *ProfileRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return r.crud.Delete(ctx, id)
}
