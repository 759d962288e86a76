package http

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/hitforum/forum-system/internal/infrastructure/http/handlers"
)

// NewRouter builds the Echo instance serving the operational surface:
// health probes and Prometheus metrics. The forum protocol itself is served
// by the TCP dispatcher, not over HTTP.
func NewRouter(snapshotDir string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	// --- Health probes ---
	healthHandler := handlers.NewHealthHandler()
	readinessHandler := handlers.NewReadinessHandler(snapshotDir)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the snapshot dir usable?

	// --- Metrics (default registry: dispatcher metrics registered via promauto) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
