package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	// EnvMetricsEnabled turns the scrape endpoint and request metrics on or off.
	EnvMetricsEnabled = "METRICS_ENABLED"

	// EnvMetricsPath overrides the scrape endpoint path.
	EnvMetricsPath = "METRICS_PATH"

	// EnvMetricsNamespace overrides the prefix of the request metric names.
	EnvMetricsNamespace = "METRICS_NAMESPACE"
)

// MetricsConfig controls the Prometheus scrape endpoint.
type MetricsConfig struct {
	// Enabled is nil when the file leaves it unset, so an overlay
	// without a [metrics] section keeps the base value.
	Enabled   *bool  `toml:"enabled"`
	Path      string `toml:"path"`
	Namespace string `toml:"namespace"`
}

// IsEnabled reports whether metrics are collected and served.
func (c *MetricsConfig) IsEnabled() bool {
	return c.Enabled != nil && *c.Enabled
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *MetricsConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	if !strings.HasPrefix(c.Path, "/") {
		return fmt.Errorf("path must start with /: %q", c.Path)
	}
	return nil
}

// Merge applies values from overlay configuration that are set.
func (c *MetricsConfig) Merge(overlay *MetricsConfig) {
	if overlay.Enabled != nil {
		enabled := *overlay.Enabled
		c.Enabled = &enabled
	}
	if overlay.Path != "" {
		c.Path = overlay.Path
	}
	if overlay.Namespace != "" {
		c.Namespace = overlay.Namespace
	}
}

func (c *MetricsConfig) loadDefaults() {
	if c.Enabled == nil {
		c.Enabled = new(bool)
	}
	if c.Path == "" {
		c.Path = "/metrics"
	}
	if c.Namespace == "" {
		c.Namespace = "dockerflow"
	}
}

func (c *MetricsConfig) loadEnv() {
	if v := os.Getenv(EnvMetricsEnabled); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Enabled = &enabled
		}
	}
	if v := os.Getenv(EnvMetricsPath); v != "" {
		c.Path = v
	}
	if v := os.Getenv(EnvMetricsNamespace); v != "" {
		c.Namespace = v
	}
}
