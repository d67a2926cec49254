package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"UserHubAPI/internal/model"
	"UserHubAPI/internal/repository"
)

// ErrInvalid marks a validation failure; handlers map it to a 400.
var ErrInvalid = errors.New("invalid input")

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type AccountService struct {
	Repo *repository.AccountRepository
}

func NewAccountService(r *repository.AccountRepository) *AccountService {
	return &AccountService{Repo: r}
}

// validate checks the full payload; Create and Update are both full-replace,
// so every field must be supplied and valid.
func (s *AccountService) validate(a *model.Account) error {
	if strings.TrimSpace(a.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalid)
	}
	if !emailRegex.MatchString(a.Email) {
		return fmt.Errorf("%w: invalid email format", ErrInvalid)
	}
	if strings.TrimSpace(a.FirstName) == "" || strings.TrimSpace(a.LastName) == "" {
		return fmt.Errorf("%w: first and last name are required", ErrInvalid)
	}
	if !a.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrInvalid, a.Role)
	}
	return nil
}

func (s *AccountService) Create(ctx context.Context, a *model.Account) (*model.Account, error) {
	if err := s.validate(a); err != nil {
		return nil, err
	}
	return s.Repo.Create(ctx, a)
}

func (s *AccountService) Get(ctx context.Context, id int64) (*model.Account, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *AccountService) List(ctx context.Context) ([]model.Account, error) {
	return s.Repo.FindAll(ctx)
}

func (s *AccountService) Update(ctx context.Context, id int64, a *model.Account) (*model.Account, error) {
	if err := s.validate(a); err != nil {
		return nil, err
	}
	return s.Repo.Update(ctx, id, a)
}

func (s *AccountService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.Repo.Delete(ctx, id)
}
