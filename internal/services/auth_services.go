package services

import (
	"context"
	"errors"

	"UserHubAPI/internal/model"
	"UserHubAPI/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	Accounts *repository.AccountRepository
}

func NewAuthService(r *repository.AccountRepository) *AuthService {
	return &AuthService{Accounts: r}
}

// Login resolves the account for a login attempt. The supplied password is
// accepted but not checked: accounts carry no credential column and the
// upstream contract issues a token for any existing email. See DESIGN.md.
func (s *AuthService) Login(ctx context.Context, email, _ string) (*model.Account, error) {
	a, err := s.Accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if a == nil {
		// do not reveal whether the email exists
		return nil, ErrInvalidCredentials
	}
	return a, nil
}
