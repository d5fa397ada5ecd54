package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/hirehive/hirehive-api/internal/api/middleware"
	"github.com/hirehive/hirehive-api/internal/core/domain"
)

// ctxIdentity returns the identity injected by the Auth middleware. A missing
// identity means the route was registered without it.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	id := middleware.IdentityFrom(c)
	if id == nil {
		return nil, domain.ErrUnauthenticated
	}
	return id, nil
}
