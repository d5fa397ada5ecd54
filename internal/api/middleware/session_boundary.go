package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hirehive/hirehive-api/internal/core/domain"
	"github.com/hirehive/hirehive-api/internal/core/ports"
)

// SessionCookieName is the cookie read by the edge gate and cleared on logout.
const SessionCookieName = "token"

// RoleRoute requires Role for every path under Prefix.
type RoleRoute struct {
	Prefix string
	Role   domain.Role
}

// SessionBoundaryConfig describes which paths the edge gate guards.
type SessionBoundaryConfig struct {
	CookieName     string
	LoginPath      string
	LandingPath    string
	PublicPrefixes []string
	RoleRoutes     []RoleRoute
}

// DefaultSessionBoundaryConfig returns the front-end route table.
func DefaultSessionBoundaryConfig() SessionBoundaryConfig {
	return SessionBoundaryConfig{
		CookieName:     SessionCookieName,
		LoginPath:      "/login",
		LandingPath:    "/dashboard",
		PublicPrefixes: []string{"/api", "/health", "/metrics", "/swagger"},
		RoleRoutes: []RoleRoute{
			{Prefix: "/dashboard/vendor", Role: domain.RoleVendor},
			{Prefix: "/dashboard/jobseeker", Role: domain.RoleJobSeeker},
			{Prefix: "/dashboard/admin", Role: domain.RoleAdmin},
		},
	}
}

type edgeOutcome int

const (
	edgeAllow edgeOutcome = iota
	edgeRedirectLogin
	edgeRedirectLanding
)

// edgeDecision is the outcome for one request. ClearCookie is set when the
// presented cookie could not be verified.
type edgeDecision struct {
	Outcome     edgeOutcome
	ClearCookie bool
}

// decide applies the edge decision table. hasToken reports whether a cookie
// was presented; id is nil when it failed verification.
func (cfg SessionBoundaryConfig) decide(path string, hasToken bool, id *domain.Identity) edgeDecision {
	onLogin := path == cfg.LoginPath

	switch {
	case !hasToken && onLogin:
		return edgeDecision{Outcome: edgeAllow}
	case !hasToken:
		return edgeDecision{Outcome: edgeRedirectLogin}
	case id == nil && onLogin:
		// Redirecting to the login page from the login page would loop.
		return edgeDecision{Outcome: edgeAllow, ClearCookie: true}
	case id == nil:
		return edgeDecision{Outcome: edgeRedirectLogin, ClearCookie: true}
	case onLogin:
		return edgeDecision{Outcome: edgeRedirectLanding}
	}

	if required, ok := cfg.requiredRole(path); ok && id.Role != required {
		return edgeDecision{Outcome: edgeRedirectLogin}
	}
	return edgeDecision{Outcome: edgeAllow}
}

func (cfg SessionBoundaryConfig) isPublic(path string) bool {
	for _, p := range cfg.PublicPrefixes {
		if matchPrefix(path, p) {
			return true
		}
	}
	return false
}

// requiredRole returns the role of the longest matching prefix.
func (cfg SessionBoundaryConfig) requiredRole(path string) (domain.Role, bool) {
	var (
		best domain.Role
		size = -1
	)
	for _, r := range cfg.RoleRoutes {
		if matchPrefix(path, r.Prefix) && len(r.Prefix) > size {
			best, size = r.Role, len(r.Prefix)
		}
	}
	return best, size >= 0
}

// matchPrefix reports whether path is prefix or lies beneath it.
func matchPrefix(path, prefix string) bool {
	if prefix == "" {
		return false
	}
	return path == prefix || strings.HasPrefix(path, strings.TrimSuffix(prefix, "/")+"/")
}

// SessionBoundary guards front-end paths with the session cookie. Verification
// goes through the same SessionVerifier as the API gate.
func SessionBoundary(sessions ports.SessionVerifier, cfg SessionBoundaryConfig, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if cfg.isPublic(path) {
				return next(c)
			}

			var (
				hasToken bool
				id       *domain.Identity
			)
			if cookie, err := c.Cookie(cfg.CookieName); err == nil && cookie.Value != "" {
				hasToken = true
				verified, err := sessions.Verify(c.Request().Context(), cookie.Value)
				if err != nil {
					reason, _ := domain.TokenFailureOf(err)
					log.Debug().Str("path", path).Str("reason", string(reason)).Msg("edge gate rejected session cookie")
				} else {
					id = verified
				}
			}

			d := cfg.decide(path, hasToken, id)
			if d.ClearCookie {
				c.SetCookie(ExpiredSessionCookie(cfg.CookieName))
			}

			switch d.Outcome {
			case edgeRedirectLogin:
				return c.Redirect(http.StatusFound, cfg.LoginPath)
			case edgeRedirectLanding:
				return c.Redirect(http.StatusFound, cfg.LandingPath)
			}

			if id != nil {
				SetIdentity(c, id)
			}
			return next(c)
		}
	}
}

// ExpiredSessionCookie returns a cookie that deletes name on the client.
func ExpiredSessionCookie(name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
