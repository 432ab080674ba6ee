// Package dockerflow serves the Dockerflow operability endpoints:
// /__version__, /__heartbeat__ and /__lbheartbeat__.
//
// See https://github.com/mozilla-services/Dockerflow.
package dockerflow

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/JaimeStill/dockerflow/internal/routes"
	"github.com/JaimeStill/dockerflow/pkg/handlers"
)

// Route patterns relative to the mount prefix.
const (
	VersionPattern     = "/__version__"
	HeartbeatPattern   = "/__heartbeat__"
	LBHeartbeatPattern = "/__lbheartbeat__"
)

type Handler struct {
	logger      *slog.Logger
	versionFile string
}

// NewHandler creates a handler serving the version file at versionFile,
// which should already be resolved with VersionPath.
func NewHandler(logger *slog.Logger, versionFile string) *Handler {
	return &Handler{
		logger:      logger.With("system", "dockerflow"),
		versionFile: versionFile,
	}
}

// VersionFile returns the resolved version file path.
func (h *Handler) VersionFile() string {
	return h.versionFile
}

func (h *Handler) Routes(prefix string) routes.Group {
	return routes.Group{
		Prefix:      prefix,
		Tags:        []string{"Dockerflow"},
		Description: "Operability endpoints",
		Routes: []routes.Route{
			{Method: "GET", Pattern: VersionPattern, Handler: h.Version},
			{Method: "GET", Pattern: HeartbeatPattern, Handler: h.Heartbeat},
			{Method: "GET", Pattern: LBHeartbeatPattern, Handler: h.LBHeartbeat},
		},
	}
}

// Register adds the Dockerflow routes under prefix to r and returns r.
func Register(r routes.System, h *Handler, prefix string) routes.System {
	r.RegisterGroup(h.Routes(prefix))
	return r
}

// ReadVersion returns the raw contents of the version file.
// A missing file is reported as ErrVersionNotFound; other errors are
// returned unwrapped so their message can be surfaced as is.
func ReadVersion(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrVersionNotFound
		}
		return nil, err
	}
	return data, nil
}

// Version responds with the version file contents, passed through unparsed.
func (h *Handler) Version(w http.ResponseWriter, r *http.Request) {
	data, err := ReadVersion(h.versionFile)
	if err != nil {
		if errors.Is(err, ErrVersionNotFound) {
			handlers.RespondJSON(w, http.StatusInternalServerError, handlers.ErrorBody{
				Error: versionNotFoundMessage,
			})
			return
		}

		handlers.RespondError(w, h.logger, http.StatusInternalServerError,
			fmt.Errorf("%s%w", unexpectedVersionError, err),
			"path", h.versionFile,
		)
		return
	}

	handlers.RespondRaw(w, http.StatusOK, handlers.ContentTypeJSON, data)
}

// Heartbeat reports overall health.
// TODO: check backing services once the service has any.
func (h *Handler) Heartbeat(w http.ResponseWriter, r *http.Request) {
	handlers.RespondText(w, http.StatusOK, "OK")
}

// LBHeartbeat reports process liveness for load balancers. It must never
// check backing services.
func (h *Handler) LBHeartbeat(w http.ResponseWriter, r *http.Request) {
	handlers.RespondText(w, http.StatusOK, "OK")
}
