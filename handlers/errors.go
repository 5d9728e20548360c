package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"filmhay-backend/httpx"
	"filmhay-backend/models"
	"filmhay-backend/services"
)

// writeError maps service errors onto the API's three failure shapes
func writeError(w http.ResponseWriter, r *http.Request, logger zerolog.Logger, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.WriteValidationError(w, verr)
	case errors.Is(err, services.ErrMovieNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Movie not found")
	default:
		logger.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("request failed")
		httpx.WriteError(w, http.StatusInternalServerError, "An unknown error occurred")
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, models.NewValidationError("Invalid movie ID")
	}
	return id, nil
}

func parseYear(raw string) (int, error) {
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, models.NewValidationError("Invalid year")
	}
	return year, nil
}

// notFound and methodNotAllowed keep router-level failures in the JSON shape
func notFound(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteError(w, http.StatusNotFound, "Not found")
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
}
