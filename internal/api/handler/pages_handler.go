package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hirehive/hirehive-api/internal/api/middleware"
)

// PagesHandler serves the front-end landing documents behind the edge gate.
type PagesHandler struct{}

func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

type pageResponse struct {
	Page string `json:"page"`
	Role string `json:"role,omitempty"`
}

// Login renders the sign-in entry point.
func (h *PagesHandler) Login(c echo.Context) error {
	return c.JSON(http.StatusOK, pageResponse{Page: "login"})
}

// Dashboard renders the landing page or a role section. The edge gate has
// already matched the caller's role to the path.
func (h *PagesHandler) Dashboard(c echo.Context) error {
	page := "dashboard"
	if section := c.Param("*"); section != "" {
		page += "/" + section
	}

	resp := pageResponse{Page: page}
	if id := middleware.IdentityFrom(c); id != nil {
		resp.Role = id.Role.String()
	}
	return c.JSON(http.StatusOK, resp)
}
