package services

import (
	"context"
	"fmt"
	"strings"

	"UserHubAPI/internal/model"
	"UserHubAPI/internal/repository"
)

type PostService struct {
	Repo *repository.PostRepository
}

func NewPostService(r *repository.PostRepository) *PostService {
	return &PostService{Repo: r}
}

// validate enforces the full-replace contract: a payload missing the status
// (or any other field) is rejected rather than patched around.
func (s *PostService) validate(p *model.Post) error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalid)
	}
	if strings.TrimSpace(p.Content) == "" {
		return fmt.Errorf("%w: content is required", ErrInvalid)
	}
	if !p.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalid, p.Status)
	}
	if p.AccountID <= 0 {
		return fmt.Errorf("%w: account_id is required", ErrInvalid)
	}
	return nil
}

func (s *PostService) Create(ctx context.Context, p *model.Post) (*model.Post, error) {
	if err := s.validate(p); err != nil {
		return nil, err
	}
	return s.Repo.Create(ctx, p)
}

func (s *PostService) Get(ctx context.Context, id int64) (*model.Post, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *PostService) List(ctx context.Context) ([]model.Post, error) {
	return s.Repo.FindAll(ctx)
}

func (s *PostService) Update(ctx context.Context, id int64, p *model.Post) (*model.Post, error) {
	if err := s.validate(p); err != nil {
		return nil, err
	}
	return s.Repo.Update(ctx, id, p)
}

func (s *PostService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.Repo.Delete(ctx, id)
}
