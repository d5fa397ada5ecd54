package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/hirehive/hirehive-api/docs"
	"github.com/hirehive/hirehive-api/internal/api/handler"
	"github.com/hirehive/hirehive-api/internal/api/middleware"
	"github.com/hirehive/hirehive-api/internal/core/domain"
	"github.com/hirehive/hirehive-api/internal/core/ports"
)

// Dependencies are the services the HTTP layer is built on.
type Dependencies struct {
	Log            zerolog.Logger
	AuthService    ports.AuthService
	AccountService ports.AccountService
	JobService     ports.JobService
	Sessions       ports.SessionVerifier
	HealthChecks   []handler.DependencyCheck
	// MetricsRegistry receives the HTTP metrics; nil means the default registry.
	MetricsRegistry *prometheus.Registry
	// EdgeGate overrides the front-end route table; nil means the default.
	EdgeGate *middleware.SessionBoundaryConfig
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.MetricsRegistry != nil {
		registerer, gatherer = deps.MetricsRegistry, deps.MetricsRegistry
	}

	edge := middleware.DefaultSessionBoundaryConfig()
	if deps.EdgeGate != nil {
		edge = *deps.EdgeGate
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "hirehive",
		Subsystem:  "http",
		Registerer: registerer,
	}))
	e.Use(middleware.SessionBoundary(deps.Sessions, edge, deps.Log))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	accountHandler := handler.NewAccountHandler(deps.AccountService)
	jobHandler := handler.NewJobHandler(deps.JobService)
	probeHandler := handler.NewProbeHandler()
	pagesHandler := handler.NewPagesHandler()
	authMiddleware := middleware.Auth(deps.Sessions)

	api := e.Group("/api")
	api.GET("/", probeHandler.Welcome)

	// --- Auth routes ---
	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/signin", authHandler.Signin)
	auth.POST("/logout", authHandler.Logout)

	// --- Protected routes ---
	protected := api.Group("/protected", authMiddleware)
	protected.GET("/me", probeHandler.Me)
	protected.GET("/admin", probeHandler.Admin, middleware.RBAC(domain.RoleAdmin))
	protected.GET("/vendor", probeHandler.Vendor, middleware.RBAC(domain.RoleVendor))
	protected.GET("/job-seeker", probeHandler.JobSeeker, middleware.RBAC(domain.RoleJobSeeker))

	api.GET("/users/:id", accountHandler.Get, authMiddleware, middleware.OwnerOrAdmin("id"))

	// --- Job board ---
	jobs := api.Group("/jobs", authMiddleware)
	jobs.GET("", jobHandler.List)
	jobs.POST("", jobHandler.Post, middleware.RBAC(domain.RoleVendor))

	applications := api.Group("/applications", authMiddleware)
	applications.POST("", jobHandler.Apply, middleware.RBAC(domain.RoleJobSeeker))
	applications.GET("/jobseeker/:userId", jobHandler.BySeeker, middleware.OwnerOrAdmin("userId"))
	applications.GET("/job/:jobId", jobHandler.ByJob, middleware.RBAC(domain.RoleVendor, domain.RoleAdmin))

	// --- Front-end pages (edge gate) ---
	e.GET(edge.LoginPath, pagesHandler.Login)
	e.GET(edge.LandingPath, pagesHandler.Dashboard)
	e.GET(edge.LandingPath+"/*", pagesHandler.Dashboard)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.HealthChecks...)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
