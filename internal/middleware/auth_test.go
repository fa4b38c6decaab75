package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcastros/clothing_store/internal/tokens"
)

func newAuthEnv(t *testing.T) (*echo.Echo, *BearerAuth, *tokens.Manager) {
	t.Helper()

	m, err := tokens.NewManager([]byte("test-jwt-secret"), "HS256")
	require.NoError(t, err)

	return echo.New(), NewBearerAuth(m), m
}

func doRequest(e *echo.Echo, header string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/products/fetch_top_10_products_by_category", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	t.Parallel()

	e, auth, m := newAuthEnv(t)

	token, err := m.CreateAccessToken("alice", "admin", time.Now().Add(tokens.AccessTokenTTL))
	require.NoError(t, err)

	called := false
	next := func(c echo.Context) error {
		called = true
		assert.Equal(t, "alice", c.Get("username"))
		assert.Equal(t, "admin", c.Get("role"))
		return nil
	}

	c := doRequest(e, "Bearer "+token)
	require.NoError(t, auth.RequireAuth(next)(c))
	assert.True(t, called)
}

func TestRequireAuth_Rejections(t *testing.T) {
	t.Parallel()

	e, auth, m := newAuthEnv(t)

	expired, err := m.CreateAccessToken("alice", "user", time.Now().Add(-time.Minute))
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "empty token", header: "Bearer "},
		{name: "garbage token", header: "Bearer not.a.token"},
		{name: "expired token", header: "Bearer " + expired},
	}

	next := func(c echo.Context) error { return nil }

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := doRequest(e, tt.header)
			err := auth.RequireAuth(next)(c)
			require.Error(t, err)
			he, ok := err.(*echo.HTTPError)
			require.True(t, ok, "expected HTTPError")
			assert.Equal(t, http.StatusUnauthorized, he.Code)
		})
	}
}
