package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/repository"
	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/service"
	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/pkg/auth"
)

const (
	msgInternal  = "Internal server error"
	msgNotFound  = "Not found"
	msgInvalidID = "Invalid inquiry id"
)

// writeServiceError maps service and repository errors to HTTP responses.
// Unexpected errors are logged with op and never sent to the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error, attrs ...any) {
	var ve *service.ValidationError
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		auth.WriteUnauthorized(w)
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Code)
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, msgNotFound)
	case errors.Is(err, repository.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "invalid_input")
	default:
		args := append([]any{"error", err, "path", r.URL.Path}, attrs...)
		slog.ErrorContext(r.Context(), op+" failed", args...)
		writeError(w, http.StatusInternalServerError, msgInternal)
	}
}

// pathID parses a positive integer path value.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
