// Package handlers provides HTTP response utilities for JSON APIs.
// These stateless functions standardize response formatting across handlers.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Content types written by the response helpers.
const (
	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain; charset=utf-8"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
}

// RespondJSON writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json. The body is the
// compact encoding with no trailing newline.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	RespondRaw(w, status, ContentTypeJSON, body)
}

// RespondError logs the error with any extra attributes and writes a JSON
// error response. The response body contains {"error": "<error message>"}.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error, args ...any) {
	logger.Error("handler error", append([]any{"error", err, "status", status}, args...)...)
	RespondJSON(w, status, ErrorBody{Error: err.Error()})
}

// RespondRaw writes pre-encoded bytes unchanged under the given content type.
func RespondRaw(w http.ResponseWriter, status int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	w.Write(body)
}

// RespondText writes a plain text response.
func RespondText(w http.ResponseWriter, status int, body string) {
	RespondRaw(w, status, ContentTypeText, []byte(body))
}
