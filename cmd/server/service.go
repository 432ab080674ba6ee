package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/docker/go-units"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/JaimeStill/dockerflow/internal/config"
	"github.com/JaimeStill/dockerflow/internal/dockerflow"
	"github.com/JaimeStill/dockerflow/internal/lifecycle"
	"github.com/JaimeStill/dockerflow/internal/routes"
	"github.com/JaimeStill/dockerflow/internal/server"
	"github.com/JaimeStill/dockerflow/pkg/logging"
)

// Service coordinates the lifecycle of all subsystems.
type Service struct {
	lifecycle   *lifecycle.Coordinator
	logger      *slog.Logger
	handler     http.Handler
	server      server.System
	versionFile string
}

// NewService creates and initializes the service with all subsystems.
func NewService(cfg *config.Config, logOut io.Writer) (*Service, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging, logOut)

	versionFile, err := dockerflow.VersionPath(cfg.Dockerflow.VersionFile)
	if err != nil {
		return nil, fmt.Errorf("resolve version file: %w", err)
	}
	dockerflowHandler := dockerflow.NewHandler(logger, versionFile)

	registry := prometheus.NewRegistry()
	if cfg.Metrics.IsEnabled() {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	routeSys := routes.New(logger)
	registerRoutes(routeSys, lc, dockerflowHandler, registry, cfg)

	middlewareSys := buildMiddleware(logger, registry, cfg)
	handler := middlewareSys.Apply(routeSys.Build())

	return &Service{
		lifecycle:   lc,
		logger:      logger,
		handler:     handler,
		server:      server.New(&cfg.Server, handler, logger),
		versionFile: versionFile,
	}, nil
}

// Handler returns the fully assembled HTTP handler.
func (s *Service) Handler() http.Handler {
	return s.handler
}

// Addr returns the address the server is listening on.
func (s *Service) Addr() string {
	return s.server.Addr()
}

// Start begins all subsystems. Readiness flips once startup hooks complete.
func (s *Service) Start() error {
	s.logger.Info("starting service")

	if err := s.server.Start(s.lifecycle); err != nil {
		return fmt.Errorf("server start failed: %w", err)
	}

	s.lifecycle.OnStartup(s.inspectVersionFile)

	go func() {
		s.lifecycle.WaitForStartup()
		s.logger.Info("service started")
	}()

	return nil
}

// Shutdown gracefully stops all subsystems within timeout.
func (s *Service) Shutdown(timeout time.Duration) error {
	s.logger.Info("initiating shutdown")

	if err := s.lifecycle.Shutdown(timeout); err != nil {
		return err
	}

	s.logger.Info("all subsystems shut down successfully")
	return nil
}

func (s *Service) inspectVersionFile() {
	path := s.versionFile

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.logger.Warn("version file not found", "path", path)
	case err != nil:
		s.logger.Warn("version file not accessible", "path", path, "error", err)
	default:
		s.logger.Info("version file found", "path", path, "size", units.HumanSize(float64(info.Size())))
	}
}
