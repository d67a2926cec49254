package middleware

import (
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"UserHubAPI/internal/response"
	"UserHubAPI/internal/token"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

var (
	ErrMissingHeader   = errors.New("missing authorization header")
	ErrMalformedHeader = errors.New("malformed authorization header")
)

// Identity is the authenticated caller resolved from a bearer credential.
type Identity struct {
	AccountID int64
	Email     string
	Role      string
}

type Guard struct {
	Tokens *token.Service
}

func NewGuard(ts *token.Service) *Guard {
	return &Guard{Tokens: ts}
}

// Authenticate resolves an Authorization header value into an Identity.
// The prefix check is case-sensitive: exactly "Bearer " with a single space.
func (g *Guard) Authenticate(header string) (*Identity, error) {
	if header == "" {
		return nil, ErrMissingHeader
	}
	if !utf8.ValidString(header) {
		return nil, ErrMalformedHeader
	}
	if !strings.HasPrefix(header, bearerPrefix) {
		return nil, ErrMalformedHeader
	}
	claims, err := g.Tokens.Verify(strings.TrimPrefix(header, bearerPrefix))
	if err != nil {
		return nil, err
	}
	return &Identity{AccountID: claims.AccountID, Email: claims.Email, Role: claims.Role}, nil
}

// Middleware returns an Echo middleware that authenticates the request and
// stores the Identity on the context for downstream handlers.
func (g *Guard) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, err := g.Authenticate(c.Request().Header.Get("Authorization"))
			if err != nil {
				return c.JSON(http.StatusUnauthorized,
					response.Error(http.StatusUnauthorized, err.Error()))
			}
			c.Set("auth_identity", id)
			return next(c)
		}
	}
}

// RequireRole rejects authenticated callers whose role does not match.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := GetIdentity(c)
			if id == nil || id.Role != role {
				return c.JSON(http.StatusForbidden,
					response.Error(http.StatusForbidden, role+" role required"))
			}
			return next(c)
		}
	}
}

// GetIdentity extracts the Identity set by Middleware, or nil.
func GetIdentity(c echo.Context) *Identity {
	v := c.Get("auth_identity")
	if v == nil {
		return nil
	}
	if id, ok := v.(*Identity); ok {
		return id
	}
	return nil
}
