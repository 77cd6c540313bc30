package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"churchapi/internal/service"
	"churchapi/internal/validation"
)

// errorResponse is the body of every failed request
type errorResponse struct {
	Error string `json:"error"`
}

func respondWithError(w http.ResponseWriter, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		slog.Error(logMsg, "status", status, "error", err)
	}

	respondJSON(w, status, errorResponse{Error: userMsg})
}

// respondWithServiceError maps the service error taxonomy onto HTTP statuses.
// Only unexpected errors are logged; their details never reach the client.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *validation.Error
	var notFoundErr *service.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		respondWithError(w, http.StatusBadRequest, validationErr.Message, "", nil)
	case errors.Is(err, service.ErrEmailTaken):
		respondWithError(w, http.StatusBadRequest, ErrEmailTaken, "", nil)
	case errors.Is(err, service.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, ErrInvalidCredentials, "", nil)
	case errors.Is(err, service.ErrUnauthenticated):
		respondWithError(w, http.StatusUnauthorized, ErrUnauthorized, "", nil)
	case errors.Is(err, service.ErrForbidden):
		respondWithError(w, http.StatusForbidden, ErrForbidden, "", nil)
	case errors.As(err, &notFoundErr):
		respondWithError(w, http.StatusNotFound, notFoundErr.Error(), "", nil)
	case errors.Is(err, service.ErrNotFound):
		respondWithError(w, http.StatusNotFound, ErrRouteNotFound, "", nil)
	default:
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, r.Method+" "+r.URL.Path+" failed", err)
	}
}
