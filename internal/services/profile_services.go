package services

import (
	"context"
	"fmt"

	"UserHubAPI/internal/model"
	"UserHubAPI/internal/repository"
)

type ProfileService struct {
	Repo *repository.ProfileRepository
}

func NewProfileService(r *repository.ProfileRepository) *ProfileService {
	return &ProfileService{Repo: r}
}

func (s *ProfileService) validate(p *model.Profile) error {
	if p.AccountID <= 0 {
		return fmt.Errorf("%w: account_id is required", ErrInvalid)
	}
	return nil
}

func (s *ProfileService) Create(ctx context.Context, p *model.Profile) (*model.Profile, error) {
	if err := s.validate(p); err != nil {
		return nil, err
	}
	return s.Repo.Create(ctx, p)
}

func (s *ProfileService) Get(ctx context.Context, id int64) (*model.Profile, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *ProfileService) List(ctx context.Context) ([]model.Profile, error) {
	return s.Repo.FindAll(ctx)
}

func (s *ProfileService) Update(ctx context.Context, id int64, p *model.Profile) (*model.Profile, error) {
	if err := s.validate(p); err != nil {
		return nil, err
	}
	return s.Repo.Update(ctx, id, p)
}

func (s *ProfileService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.Repo.Delete(ctx, id)
}
