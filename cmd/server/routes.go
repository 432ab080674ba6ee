package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/JaimeStill/dockerflow/internal/config"
	"github.com/JaimeStill/dockerflow/internal/dockerflow"
	"github.com/JaimeStill/dockerflow/internal/lifecycle"
	"github.com/JaimeStill/dockerflow/internal/routes"
	"github.com/JaimeStill/dockerflow/pkg/handlers"
)

// registerRoutes configures all HTTP routes for the service.
func registerRoutes(
	r routes.System,
	ready lifecycle.ReadinessChecker,
	df *dockerflow.Handler,
	registry *prometheus.Registry,
	cfg *config.Config,
) {
	dockerflow.Register(r, df, cfg.Dockerflow.BasePath)

	r.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/readyz",
		Handler: handleReady(ready),
	})

	if cfg.Metrics.IsEnabled() {
		r.RegisterRoute(routes.Route{
			Method:  "GET",
			Pattern: cfg.Metrics.Path,
			Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}).ServeHTTP,
		})
	}
}

func handleReady(ready lifecycle.ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !ready.Ready() {
			handlers.RespondText(w, http.StatusServiceUnavailable, "NOT READY")
			return
		}
		handlers.RespondText(w, http.StatusOK, "READY")
	}
}
