package dockerflow

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// InstallDir anchors the version file path. It is meant to be set at
// build time:
//
//	go build -ldflags "-X github.com/JaimeStill/dockerflow/internal/dockerflow.InstallDir=/app/internal/dockerflow"
var InstallDir string

// InstallDirectory returns the directory the version file path is resolved
// against. In order: InstallDir, the compile-time directory of this package
// when recorded as an absolute path, then the directory of the running
// executable. The working directory is never consulted.
func InstallDirectory() (string, error) {
	if InstallDir != "" {
		return filepath.Clean(InstallDir), nil
	}

	if _, file, _, ok := runtime.Caller(0); ok && filepath.IsAbs(file) {
		return filepath.Dir(file), nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolve executable: %w", err)
	}
	return filepath.Dir(exe), nil
}

// ResolveVersionPath joins file onto dir. Absolute files are returned cleaned.
func ResolveVersionPath(dir, file string) string {
	if filepath.IsAbs(file) {
		return filepath.Clean(file)
	}
	return filepath.Join(dir, file)
}

// VersionPath resolves file against InstallDirectory.
func VersionPath(file string) (string, error) {
	if filepath.IsAbs(file) {
		return filepath.Clean(file), nil
	}

	dir, err := InstallDirectory()
	if err != nil {
		return "", err
	}
	return ResolveVersionPath(dir, file), nil
}
