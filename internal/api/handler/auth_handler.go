package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hirehive/hirehive-api/internal/api/middleware"
	"github.com/hirehive/hirehive-api/internal/core/domain"
	"github.com/hirehive/hirehive-api/internal/core/ports"
)

// AuthHandler handles signup, signin and logout.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup registers a new account with its role profile. No token is returned.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account and profile details"
// @Success      201   {object}  signupResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.NewValidationError(err.Error())
	}

	in := ports.SignupInput{
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		Role:          req.Role,
		CompanyName:   req.CompanyName,
		Website:       req.Website,
		Description:   req.Description,
		Resume:        req.Resume,
		Education:     req.Education,
		Experience:    req.Experience,
		AdminLevel:    req.AdminLevel,
		ContactNumber: req.ContactNumber,
		IPAddress:     c.RealIP(),
	}
	if err := h.authService.Signup(c.Request().Context(), in); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, signupResponse{Message: "User registered successfully", Success: true})
}

// Signin authenticates an account and returns a bearer token.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signinRequest  true  "Login credentials"
// @Success      200   {object}  signinResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/auth/signin [post]
func (h *AuthHandler) Signin(c echo.Context) error {
	var req signinRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.NewValidationError(err.Error())
	}

	res, err := h.authService.Signin(c.Request().Context(), ports.SigninInput{
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: c.RealIP(),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, signinResponse{Message: "Login successful", Token: res.Token, User: res.User})
}

// Logout revokes the presented token, if any, and clears the session cookie.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token, _ := middleware.BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if token == "" {
		if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil {
			token = cookie.Value
		}
	}

	if err := h.authService.Logout(c.Request().Context(), ports.LogoutInput{
		Token:     token,
		IPAddress: c.RealIP(),
	}); err != nil {
		return err
	}

	c.SetCookie(middleware.ExpiredSessionCookie(middleware.SessionCookieName))
	return c.JSON(http.StatusOK, messageResponse{Message: "Logged out successfully"})
}
