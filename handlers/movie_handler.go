package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"filmhay-backend/httpx"
	"filmhay-backend/models"
	"filmhay-backend/services"
)

// MovieHandler serves the /api/movies resource
type MovieHandler struct {
	store   *services.MovieStore
	catalog *services.CatalogService
	logger  zerolog.Logger
}

// NewMovieHandler creates a new movie handler
func NewMovieHandler(store *services.MovieStore, catalog *services.CatalogService, logger zerolog.Logger) *MovieHandler {
	return &MovieHandler{
		store:   store,
		catalog: catalog,
		logger:  logger,
	}
}

// List handles GET /api/movies
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.catalog.All())
}

// Get handles GET /api/movies/{id}
func (h *MovieHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	movie, err := h.catalog.Get(id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, movie)
}

// ByType handles GET /api/movies/type/{type}
func (h *MovieHandler) ByType(w http.ResponseWriter, r *http.Request) {
	movies, err := h.catalog.ByType(mux.Vars(r)["type"])
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, movies)
}

// ByGenre handles GET /api/movies/genre/{genre}
func (h *MovieHandler) ByGenre(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.catalog.ByGenre(mux.Vars(r)["genre"]))
}

// ByCountry handles GET /api/movies/country/{country}
func (h *MovieHandler) ByCountry(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.catalog.ByCountry(mux.Vars(r)["country"]))
}

// ByYear handles GET /api/movies/year/{year}
func (h *MovieHandler) ByYear(w http.ResponseWriter, r *http.Request) {
	year, err := parseYear(mux.Vars(r)["year"])
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, h.catalog.ByYear(year))
}

// Search handles GET /api/movies/search?q=
func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if strings.TrimSpace(q) == "" {
		writeError(w, r, h.logger, models.NewValidationError("Search query is required"))
		return
	}
	httpx.WriteJSON(w, http.StatusOK, h.catalog.Search(q))
}

// Create handles POST /api/movies
func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.MovieInput
	if err := httpx.ReadJSON(r, &input); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	draft, err := input.Draft()
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	movie, err := h.store.Insert(draft)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	h.logger.Info().Int64("id", movie.ID).Str("title", movie.Title).Msg("movie created")
	httpx.WriteJSON(w, http.StatusCreated, movie)
}

// Update handles PATCH /api/movies/{id}
func (h *MovieHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var patch models.MovieInput
	if err := httpx.ReadJSON(r, &patch); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	movie, err := h.store.Update(id, patch)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	h.logger.Info().Int64("id", movie.ID).Msg("movie updated")
	httpx.WriteJSON(w, http.StatusOK, movie)
}

// Delete handles DELETE /api/movies/{id}
func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if !h.store.Delete(id) {
		writeError(w, r, h.logger, services.ErrMovieNotFound)
		return
	}

	h.logger.Info().Int64("id", id).Msg("movie deleted")
	w.WriteHeader(http.StatusNoContent)
}
