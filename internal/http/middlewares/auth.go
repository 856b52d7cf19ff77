package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	model "task-board-system.com/task-board-system/internal/models"
)

const (
	// ContextMember is the echo context key holding the authenticated member.
	ContextMember = "member"
	// ContextToken is the echo context key holding the raw session token.
	ContextToken = "session_token"
)

// MemberResolver turns a session token into the member it belongs to.
type MemberResolver func(ctx context.Context, token string) (*model.Member, error)

// Auth rejects requests without a resolvable bearer token.
func Auth(resolve MemberResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}

			member, err := resolve(c.Request().Context(), token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}

			c.Set(ContextMember, *member)
			c.Set(ContextToken, token)
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.Request().Header.Get("X-Session-Token")
}
