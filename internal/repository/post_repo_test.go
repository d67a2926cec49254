package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"UserHubAPI/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

var postCols = []string{"id", "title", "content", "status", "account_id", "created_at", "updated_at"}

func newPostRepoWithMock(t *testing.T) (*PostRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewPostRepository(mock), mock
}

func TestPostCreate(t *testing.T) {
	repo, mock := newPostRepoWithMock(t)
	now := time.Now()

	q := regexp.QuoteMeta(`INSERT INTO posts (title, content, status, account_id, created_at, updated_at) VALUES ($1, $2, $3, $4, now(), now()) RETURNING id, title, content, status, account_id, created_at, updated_at`)
	mock.ExpectQuery(q).
		WithArgs("Hello", "world", "draft", int64(1)).
		WillReturnRows(pgxmock.NewRows(postCols).
			AddRow(int64(10), "Hello", "world", "draft", int64(1), now, now))

	got, err := repo.Create(context.Background(), &model.Post{
		Title: "Hello", Content: "world", Status: model.StatusDraft, AccountID: 1,
	})
	require.NoError(t, err)
	require.Equal(t, int64(10), got.ID)
	require.Equal(t, model.StatusDraft, got.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostCreateDanglingAuthor(t *testing.T) {
	repo, mock := newPostRepoWithMock(t)

	mock.ExpectQuery(`INSERT INTO posts`).
		WithArgs("Hello", "world", "draft", int64(404)).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "posts_account_id_fkey"})

	_, err := repo.Create(context.Background(), &model.Post{
		Title: "Hello", Content: "world", Status: model.StatusDraft, AccountID: 404,
	})
	require.ErrorIs(t, err, ErrConflict)
}

func TestPostUpdateFullReplace(t *testing.T) {
	repo, mock := newPostRepoWithMock(t)
	now := time.Now()

	q := regexp.QuoteMeta(`UPDATE posts SET title=$1, content=$2, status=$3, account_id=$4, updated_at=now() WHERE id=$5 RETURNING id, title, content, status, account_id, created_at, updated_at`)
	mock.ExpectQuery(q).
		WithArgs("Hello", "world", "published", int64(1), int64(10)).
		WillReturnRows(pgxmock.NewRows(postCols).
			AddRow(int64(10), "Hello", "world", "published", int64(1), now.Add(-time.Hour), now))

	got, err := repo.Update(context.Background(), 10, &model.Post{
		Title: "Hello", Content: "world", Status: model.StatusPublished, AccountID: 1,
	})
	require.NoError(t, err)
	require.Equal(t, model.StatusPublished, got.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostFindAll(t *testing.T) {
	repo, mock := newPostRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .* FROM posts ORDER BY id`).
		WillReturnRows(pgxmock.NewRows(postCols).
			AddRow(int64(1), "One", "a", "draft", int64(1), now, now).
			AddRow(int64(2), "Two", "b", "archived", int64(1), now, now))

	got, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, model.StatusArchived, got[1].Status)
}
