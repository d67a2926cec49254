package repository

import (
	"context"

	"UserHubAPI/internal/model"

	"github.com/jackc/pgx/v5"
)

var postTable = table[model.Post]{
	name:    "posts",
	columns: "id, title, content, status, account_id, created_at, updated_at",
	mutable: []string{"title", "content", "status", "account_id"},
	stamped: true,
	scan: func(row pgx.Row) (*model.Post, error) {
		var p model.Post
		var status string
		if err := row.Scan(&p.ID, &p.Title, &p.Content, &status, &p.AccountID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		p.Status = model.PostStatus(status)
		return &p, nil
	},
	args: func(p *model.Post) []any {
		return []any{p.Title, p.Content, string(p.Status), p.AccountID}
	},
}

type PostRepository struct {
	crud crud[model.Post]
}

func NewPostRepository(db DB) *PostRepository {
	return &PostRepository{crud: crud[model.Post]{db: db, t: postTable}}
}

func (r *PostRepository) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	return r.crud.FindByID(ctx, id)
}

func (r *PostRepository) FindAll(ctx context.Context) ([]model.Post, error) {
	return r.crud.FindAll(ctx)
}

func (r *PostRepository) Create(ctx context.Context, p *model.Post) (*model.Post, error) {
	return r.crud.Create(ctx, p)
}

func (r *PostRepository) Update(ctx context.Context, id int64, p *model.Post) (*model.Post, error) {
	return r.crud.Update(ctx, id, p)
}

func (r *PostRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return r.crud.Delete(ctx, id)
}
