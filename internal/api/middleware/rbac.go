package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hirehive/hirehive-api/internal/api/metrics"
	"github.com/hirehive/hirehive-api/internal/core/domain"
)

// RBAC permits the request only when the caller's role is one of allowedRoles.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := domain.AuthorizeRole(IdentityFrom(c), allowedRoles...); err != nil {
				return deny("role", err)
			}
			return next(c)
		}
	}
}

// OwnerOrAdmin permits the account named by the path parameter param, or any admin.
func OwnerOrAdmin(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := IdentityFrom(c)
			if id == nil {
				return deny("owner_or_admin", domain.ErrUnauthenticated)
			}

			ownerID, err := strconv.ParseUint(c.Param(param), 10, 64)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid "+param).SetInternal(err)
			}

			if err := domain.AuthorizeOwnerOrAdmin(id, ownerID); err != nil {
				return deny("owner_or_admin", err)
			}
			return next(c)
		}
	}
}

func deny(policy string, err error) error {
	if errors.Is(err, domain.ErrUnauthenticated) {
		metrics.AuthorizationDeniedTotal.WithLabelValues(policy, "401").Inc()
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required").SetInternal(err)
	}
	metrics.AuthorizationDeniedTotal.WithLabelValues(policy, "403").Inc()
	return echo.NewHTTPError(http.StatusForbidden, "access forbidden").SetInternal(err)
}
