package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"UserHubAPI/internal/model"
	"UserHubAPI/internal/token"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newTestGuard() (*Guard, *token.Service) {
	ts := token.NewService("test-secret", time.Hour)
	return NewGuard(ts), ts
}

func issueFor(t *testing.T, ts *token.Service, role model.Role) string {
	t.Helper()
	tok, err := ts.Issue(&model.Account{ID: 3, Email: "a@x.com", Role: role})
	require.NoError(t, err)
	return tok
}

func TestAuthenticateHeaderParsing(t *testing.T) {
	guard, ts := newTestGuard()
	valid := issueFor(t, ts, model.RoleUser)

	tests := []struct {
		name    string
		header  string
		wantErr error
	}{
		{"missing header", "", ErrMissingHeader},
		{"non-utf8 header", "Bearer \xff\xfe", ErrMalformedHeader},
		{"wrong scheme", "Token xyz", ErrMalformedHeader},
		{"lowercase scheme", "bearer " + valid, ErrMalformedHeader},
		{"no space", "Bearer" + valid, ErrMalformedHeader},
		{"garbage token", "Bearer garbage", token.ErrInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := guard.Authenticate(tt.header)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthenticateSuccess(t *testing.T) {
	guard, ts := newTestGuard()

	id, err := guard.Authenticate("Bearer " + issueFor(t, ts, model.RoleAdmin))
	require.NoError(t, err)
	require.Equal(t, int64(3), id.AccountID)
	require.Equal(t, "a@x.com", id.Email)
	require.Equal(t, "Admin", id.Role)
}

func TestMiddlewareRejectsWithEnvelope(t *testing.T) {
	guard, _ := newTestGuard()

	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, guard.Middleware())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"error"`)
}

func TestMiddlewareSetsIdentity(t *testing.T) {
	guard, ts := newTestGuard()

	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		id := GetIdentity(c)
		require.NotNil(t, id)
		require.Equal(t, "User", id.Role)
		return c.NoContent(http.StatusOK)
	}, guard.Middleware())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueFor(t, ts, model.RoleUser))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole(t *testing.T) {
	guard, ts := newTestGuard()

	e := echo.New()
	e.GET("/admin", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, guard.Middleware(), RequireRole("Admin"))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+issueFor(t, ts, model.RoleUser))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+issueFor(t, ts, model.RoleAdmin))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}
