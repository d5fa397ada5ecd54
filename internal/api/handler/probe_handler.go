package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ProbeHandler answers the protected probe routes. Access decisions are made
// by the middleware chain in front of each route.
type ProbeHandler struct{}

func NewProbeHandler() *ProbeHandler {
	return &ProbeHandler{}
}

// Welcome handles GET /api/.
//
// @Summary      API welcome
// @Tags         probes
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /api/ [get]
func (h *ProbeHandler) Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "Welcome to HireHive"})
}

// Me handles GET /api/protected/me for any authenticated caller.
//
// @Summary      Authenticated probe
// @Tags         probes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/protected/me [get]
func (h *ProbeHandler) Me(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Authenticated as user %d with role %s", id.SubjectID, id.Role),
	})
}

// Admin handles GET /api/protected/admin.
//
// @Summary      Admin-only probe
// @Tags         probes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/protected/admin [get]
func (h *ProbeHandler) Admin(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "Welcome, admin"})
}

// Vendor handles GET /api/protected/vendor.
//
// @Summary      Vendor-only probe
// @Tags         probes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/protected/vendor [get]
func (h *ProbeHandler) Vendor(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "Welcome, vendor"})
}

// JobSeeker handles GET /api/protected/job-seeker.
//
// @Summary      Job-seeker-only probe
// @Tags         probes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/protected/job-seeker [get]
func (h *ProbeHandler) JobSeeker(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "Welcome, job seeker"})
}
