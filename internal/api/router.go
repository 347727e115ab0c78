package api

import (
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/bloodconnect/donor-match-api/docs"
	"github.com/bloodconnect/donor-match-api/internal/api/handler"
	"github.com/bloodconnect/donor-match-api/internal/api/middleware"
	"github.com/bloodconnect/donor-match-api/internal/core/domain"
	"github.com/bloodconnect/donor-match-api/internal/core/ports"
)

// Deps holds everything the router needs. Services are built by the caller.
type Deps struct {
	Donors    ports.DonorService
	Hospitals ports.HospitalService
	Matches   ports.MatchService
	Tokens    ports.TokenVerifier
	Health    []handler.Dependency
	Log       zerolog.Logger

	// PublicDir holds the static front end. Empty disables static serving.
	PublicDir string
	// Registry receives the HTTP metrics. Nil means the default registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echomiddleware.Recover())
	e.Use(requestLogger(d.Log))

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if d.Registry != nil {
		registerer, gatherer = d.Registry, d.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "bloodconnect",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Handlers ---
	donors := handler.NewDonorHandler(d.Donors)
	hospitals := handler.NewHospitalHandler(d.Hospitals)
	matches := handler.NewMatchHandler(d.Matches)
	health := handler.NewHealthHandler(d.Health...)

	auth := middleware.Auth(d.Tokens)

	// --- Accounts ---
	e.POST("/api/donors/register", donors.Register)
	e.POST("/login-donor", donors.Login)
	e.POST("/register-hospital", hospitals.Register)
	e.POST("/login-hospital", hospitals.Login)

	// --- Dashboards ---
	e.GET("/donor-dashboard", donors.Dashboard, auth, middleware.RequireRole(domain.RoleDonor))
	e.GET("/hospital-dashboard", hospitals.Dashboard, auth, middleware.RequireRole(domain.RoleHospital))
	e.GET("/hospital-admin-data", hospitals.AdminData, auth, middleware.RequireAdmin())

	// --- Search ---
	e.POST("/find-blood", matches.FindBlood)

	// --- Operations (no auth required) ---
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Front end ---
	if d.PublicDir != "" {
		e.Static("/", d.PublicDir)
		e.File("/", filepath.Join(d.PublicDir, "index.html"))
	}

	return e
}

// requestLogger emits one zerolog line per request.
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
			ev.Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
