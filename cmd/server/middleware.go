package main

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/JaimeStill/dockerflow/internal/config"
	"github.com/JaimeStill/dockerflow/pkg/middleware"
)

// buildMiddleware creates the middleware stack. RequestID runs first so the
// request logger can report the ID.
func buildMiddleware(logger *slog.Logger, registry *prometheus.Registry, cfg *config.Config) middleware.System {
	middlewareSys := middleware.New()
	middlewareSys.Use(middleware.RequestID())
	middlewareSys.Use(middleware.Logger(logger))
	if cfg.Metrics.IsEnabled() {
		middlewareSys.Use(middleware.Metrics(middleware.NewHTTPMetrics(registry, cfg.Metrics.Namespace)))
	}
	middlewareSys.Use(middleware.CORS(&cfg.CORS))
	middlewareSys.Use(middleware.TrimSlash())
	return middlewareSys
}
