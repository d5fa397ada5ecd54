package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hirehive/hirehive-api/internal/core/domain"
	"github.com/hirehive/hirehive-api/internal/core/ports"
)

// Context keys set by Auth.
const (
	ctxKeyIdentity = "identity"
	ctxKeyRole     = "role"
	ctxKeyUserID   = "user_id"
)

// Auth validates the bearer token and injects the verified identity into context.
func Auth(sessions ports.SessionVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			token, ok := BearerToken(authHeader)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			id, err := sessions.Verify(c.Request().Context(), token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token").SetInternal(err)
			}

			SetIdentity(c, id)
			return next(c)
		}
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" value.
func BearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// SetIdentity stores id in c together with its role and subject.
func SetIdentity(c echo.Context, id *domain.Identity) {
	c.Set(ctxKeyIdentity, id)
	c.Set(ctxKeyRole, id.Role.String())
	c.Set(ctxKeyUserID, id.SubjectID)
}

// IdentityFrom returns the identity injected by Auth, or nil.
func IdentityFrom(c echo.Context) *domain.Identity {
	id, _ := c.Get(ctxKeyIdentity).(*domain.Identity)
	return id
}
