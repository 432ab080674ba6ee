package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/dockerflow/internal/config"
	"github.com/JaimeStill/dockerflow/pkg/logging"
)

const baseTOML = `
shutdown_timeout = "20s"

[server]
host = "127.0.0.1"
port = 9000
max_header_size = "64KB"

[logging]
level = "debug"
format = "json"

[dockerflow]
base_path = "/ops/"

[cors]
enabled = true
origins = ["http://example.com"]
allow_credentials = true

[metrics]
enabled = true
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_BaseFile(t *testing.T) {
	t.Setenv(config.EnvServiceEnv, "")
	path := writeFile(t, t.TempDir(), config.BaseConfigFile, baseTOML)

	cfg, err := config.Load(path, "")
	require.NoError(t, err)
	require.NoError(t, cfg.Finalize())

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr())
	assert.Equal(t, 64000, cfg.Server.MaxHeaderBytes())
	assert.Equal(t, logging.LevelDebug, cfg.Logging.Level)
	assert.Equal(t, "/ops", cfg.Dockerflow.BasePath)
	assert.Equal(t, config.DefaultVersionFile, cfg.Dockerflow.VersionFile)
	assert.True(t, cfg.Metrics.IsEnabled())
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 20*time.Second, cfg.ShutdownTimeoutDuration())
}

func TestLoad_Overlay(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, config.BaseConfigFile, baseTOML)
	writeFile(t, dir, "config.prod.toml", `
[server]
port = 443

[dockerflow]
version_file = "/app/dist/version.json"
`)

	cfg, err := config.Load(path, "prod")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 443, cfg.Server.Port)
	assert.Equal(t, "/app/dist/version.json", cfg.Dockerflow.VersionFile)
}

func TestLoad_OverlayKeepsUnsetBooleans(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, config.BaseConfigFile, baseTOML)
	writeFile(t, dir, "config.prod.toml", "[server]\nport = 443\n")

	cfg, err := config.Load(path, "prod")
	require.NoError(t, err)
	require.NoError(t, cfg.Finalize())

	assert.Equal(t, 443, cfg.Server.Port)
	assert.True(t, cfg.Metrics.IsEnabled())
	assert.True(t, cfg.CORS.IsEnabled())
	assert.True(t, cfg.CORS.CredentialsAllowed())
}

func TestLoad_OverlayDisablesFeatures(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, config.BaseConfigFile, baseTOML)
	writeFile(t, dir, "config.test.toml", `
[cors]
enabled = false

[metrics]
enabled = false
`)

	cfg, err := config.Load(path, "test")
	require.NoError(t, err)
	require.NoError(t, cfg.Finalize())

	assert.False(t, cfg.Metrics.IsEnabled())
	assert.False(t, cfg.CORS.IsEnabled())
	assert.True(t, cfg.CORS.CredentialsAllowed())
}

func TestLoad_OverlayFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, config.BaseConfigFile, baseTOML)
	writeFile(t, dir, "config.stage.toml", "[server]\nport = 8443\n")
	t.Setenv(config.EnvServiceEnv, "stage")

	cfg, err := config.Load(path, "")
	require.NoError(t, err)

	assert.Equal(t, 8443, cfg.Server.Port)
}

func TestLoad_MissingOverlayIgnored(t *testing.T) {
	path := writeFile(t, t.TempDir(), config.BaseConfigFile, baseTOML)

	cfg, err := config.Load(path, "missing")
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := config.Load(filepath.Join(dir, "absent.toml"), "")
	assert.Error(t, err)

	bad := writeFile(t, dir, "bad.toml", "[server\nport = ")
	_, err = config.Load(bad, "")
	assert.Error(t, err)
}

func TestFinalize_Defaults(t *testing.T) {
	cfg := &config.Config{}
	require.NoError(t, cfg.Finalize())

	assert.Equal(t, "0.0.0.0:8000", cfg.Server.Addr())
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeoutDuration())
	assert.Equal(t, 120*time.Second, cfg.Server.IdleTimeoutDuration())
	assert.Equal(t, 1000000, cfg.Server.MaxHeaderBytes())
	assert.Equal(t, logging.FormatText, cfg.Logging.Format)
	assert.Equal(t, config.DefaultVersionFile, cfg.Dockerflow.VersionFile)
	assert.Empty(t, cfg.Dockerflow.BasePath)
	assert.False(t, cfg.Metrics.IsEnabled())
}

func TestFinalize_EnvOverrides(t *testing.T) {
	t.Setenv(config.EnvServerPort, "7000")
	t.Setenv(config.EnvDockerflowVersionFile, "/srv/version.json")
	t.Setenv(config.EnvDockerflowBasePath, "/health")
	t.Setenv(config.EnvMetricsEnabled, "true")
	t.Setenv(config.EnvMetricsNamespace, "ops")
	t.Setenv("LOGGING_LEVEL", "warn")

	cfg := &config.Config{}
	require.NoError(t, cfg.Finalize())

	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "/srv/version.json", cfg.Dockerflow.VersionFile)
	assert.Equal(t, "/health", cfg.Dockerflow.BasePath)
	assert.True(t, cfg.Metrics.IsEnabled())
	assert.Equal(t, "ops", cfg.Metrics.Namespace)
	assert.Equal(t, logging.LevelWarn, cfg.Logging.Level)
}

func TestFinalize_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{"shutdown timeout", config.Config{ShutdownTimeout: "soon"}},
		{"server timeout", config.Config{Server: config.ServerConfig{ReadTimeout: "abc"}}},
		{"header size", config.Config{Server: config.ServerConfig{MaxHeaderSize: "lots"}}},
		{"port", config.Config{Server: config.ServerConfig{Port: 70000}}},
		{"log level", config.Config{Logging: logging.Config{Level: "loud"}}},
		{"base path", config.Config{Dockerflow: config.DockerflowConfig{BasePath: "ops"}}},
		{"metrics path", config.Config{Metrics: config.MetricsConfig{Path: "metrics"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.cfg.Finalize())
		})
	}
}

func TestServerConfig_Merge(t *testing.T) {
	base := &config.ServerConfig{Host: "localhost", Port: 8080, ReadTimeout: "30s", WriteTimeout: "30s"}
	base.Merge(&config.ServerConfig{Port: 9090, WriteTimeout: "60s"})

	assert.Equal(t, "localhost", base.Host)
	assert.Equal(t, 9090, base.Port)
	assert.Equal(t, "30s", base.ReadTimeout)
	assert.Equal(t, "60s", base.WriteTimeout)
}
