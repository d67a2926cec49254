// Package token issues and verifies the signed bearer credentials used by
// the API. Signing is symmetric (HS256); the secret and validity window are
// injected at construction.
package token

import (
	"errors"
	"fmt"
	"time"

	"UserHubAPI/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken covers signature mismatch, malformed structure and expiry.
// Callers see one error kind; the underlying jwt error stays wrapped in the
// chain.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the signed JWT payload.
type Claims struct {
	AccountID int64  `json:"account_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token for the given account valid for the
// configured window.
func (s *Service) Issue(a *model.Account) (string, error) {
	now := time.Now()
	claims := &Claims{
		AccountID: a.ID,
		Email:     a.Email,
		Role:      string(a.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify decodes and validates a token string. Expiry validation is always
// on. Any failure is reported as ErrInvalidToken.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
