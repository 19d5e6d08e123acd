// Package http is the echo adapter of the order API. It implements
// servers.ServerInterface and assembles the router with its middleware and
// operational endpoints.
package http

import (
	"log/slog"
	"net/http"

	"pizzeria/api"
	"pizzeria/internal/generated/servers"
	"pizzeria/internal/pkg/metrics"

	"github.com/google/uuid"
	healthgo "github.com/hellofresh/health-go/v5"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gommonlog "github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	slogecho "github.com/samber/slog-echo"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

// RouterOptions configures NewRouter.
type RouterOptions struct {
	ServiceName string
	Logger      *slog.Logger

	// Health backs GET /health when set.
	Health *healthgo.Health

	// Registry receives the HTTP metrics and is served on /metrics.
	// Defaults to metrics.Registry.
	Registry *prometheus.Registry

	EnablePprof   bool
	EnableSwagger bool
}

// NewRouter builds the echo instance serving the order API.
//
// Example:
//
//	e, err := http.NewRouter(server, http.RouterOptions{ServiceName: "pizzeria", Logger: logger})
//	if err != nil {
//	    return err
//	}
//	go e.Start(":8080")
func NewRouter(server *Server, opts RouterOptions) (*echo.Echo, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	registry := opts.Registry
	if registry == nil {
		registry = metrics.Registry
	}

	doc, err := api.Load()
	if err != nil {
		return nil, err
	}
	if opts.EnableSwagger {
		if err := api.PublishSwagger(doc); err != nil {
			return nil, err
		}
	}
	openAPIValidator, err := OpenAPIValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(gommonlog.WARN)
	e.HTTPErrorHandler = ErrorHandler(logger)
	e.Validator = NewRequestValidator()

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(slogecho.NewWithConfig(logger, slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    true,
	}))
	e.Use(middleware.Recover())
	e.Use(otelecho.Middleware(opts.ServiceName))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  metrics.Namespace,
		Registerer: registry,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health"
		},
	}))
	e.Use(openAPIValidator)

	servers.RegisterHandlers(e, server)

	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: registry}))
	e.GET("/openapi.yaml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", api.OpenAPI)
	})
	if opts.Health != nil {
		e.GET("/health", healthCheck(opts.Health))
	}
	if opts.EnableSwagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}
	if opts.EnablePprof {
		pprof.Register(e)
	}

	return e, nil
}

func healthCheck(health *healthgo.Health) echo.HandlerFunc {
	return func(c echo.Context) error {
		check := health.Measure(c.Request().Context())

		statusCode := http.StatusOK
		if check.Status != healthgo.StatusOK {
			statusCode = http.StatusServiceUnavailable
		}

		return c.JSON(statusCode, check)
	}
}
