package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	// EnvDockerflowBasePath overrides the prefix the operability routes are mounted under.
	EnvDockerflowBasePath = "DOCKERFLOW_BASE_PATH"

	// EnvDockerflowVersionFile overrides the version file location.
	EnvDockerflowVersionFile = "DOCKERFLOW_VERSION_FILE"

	// DefaultVersionFile is the version file location relative to the install directory.
	DefaultVersionFile = "../../dist/version.json"
)

// DockerflowConfig configures the operability endpoints.
type DockerflowConfig struct {
	// BasePath prefixes /__version__, /__heartbeat__ and /__lbheartbeat__.
	// Empty mounts them at the root.
	BasePath string `toml:"base_path"`

	// VersionFile is resolved against the install directory unless absolute.
	VersionFile string `toml:"version_file"`
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *DockerflowConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *DockerflowConfig) Merge(overlay *DockerflowConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.VersionFile != "" {
		c.VersionFile = overlay.VersionFile
	}
}

func (c *DockerflowConfig) loadDefaults() {
	if c.VersionFile == "" {
		c.VersionFile = DefaultVersionFile
	}
}

func (c *DockerflowConfig) loadEnv() {
	if v := os.Getenv(EnvDockerflowBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvDockerflowVersionFile); v != "" {
		c.VersionFile = v
	}
}

func (c *DockerflowConfig) validate() error {
	if c.BasePath != "" {
		if !strings.HasPrefix(c.BasePath, "/") {
			return fmt.Errorf("base_path must start with /: %q", c.BasePath)
		}
		c.BasePath = strings.TrimSuffix(c.BasePath, "/")
	}
	return nil
}
