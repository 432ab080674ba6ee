package dockerflow

import "errors"

// ErrVersionNotFound indicates the version file does not exist. It is
// expected outside packaged builds and is not logged.
var ErrVersionNotFound = errors.New("dockerflow: version file not found")

// Client-facing messages for /__version__ failures.
const (
	versionNotFoundMessage = "The version file couldn't be found"
	unexpectedVersionError = "Unexpected error while retrieving the version file: "
)
