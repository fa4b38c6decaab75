package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mcastros/clothing_store/internal/tokens"
)

type BearerAuth struct {
	Tokens *tokens.Manager
}

func NewBearerAuth(m *tokens.Manager) *BearerAuth {
	return &BearerAuth{Tokens: m}
}

func (m *BearerAuth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "no token provided")
		}

		claims, err := m.Tokens.AccessClaimsFromToken(token)
		if err != nil || claims == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}

		c.Set("username", claims.Subject)
		c.Set("role", claims.Role)

		return next(c)
	}
}
