package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"filmhay-backend/httpx"
	"filmhay-backend/models"
	"filmhay-backend/services"
)

const defaultRelatedLimit = services.RelatedSize

// CatalogHandler serves the derived views: slugs, related picks, the home
// feeds, browsing and facets
type CatalogHandler struct {
	catalog *services.CatalogService
	logger  zerolog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog *services.CatalogService, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// BySlug handles GET /api/movies/slug/{slug}
func (h *CatalogHandler) BySlug(w http.ResponseWriter, r *http.Request) {
	movie, err := h.catalog.BySlug(mux.Vars(r)["slug"])
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, movie)
}

// Related handles GET /api/movies/{id}/related?limit=
func (h *CatalogHandler) Related(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	limit := defaultRelatedLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			writeError(w, r, h.logger, services.ErrInvalidLimit)
			return
		}
	}

	movies, err := h.catalog.Related(id, limit)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, movies)
}

// Home handles GET /api/catalog/home
func (h *CatalogHandler) Home(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.catalog.Home())
}

// Facets handles GET /api/catalog/facets
func (h *CatalogHandler) Facets(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.catalog.Facets())
}

// Browse handles GET /api/catalog/browse
func (h *CatalogHandler) Browse(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	page, err := h.catalog.Browse(q)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, page)
}

func parseQuery(r *http.Request) (services.Query, error) {
	qs := r.URL.Query()
	q := services.Query{
		Type:    models.MovieType(qs.Get("type")),
		Genre:   qs.Get("genre"),
		Country: qs.Get("country"),
		Sort:    qs.Get("sort"),
		Page:    1,
	}

	if raw := qs.Get("year"); raw != "" {
		year, err := parseYear(raw)
		if err != nil {
			return q, err
		}
		q.Year = &year
	}
	if qs.Has("q") {
		text := qs.Get("q")
		q.Text = &text
	}
	if raw := qs.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return q, services.ErrInvalidPage
		}
		q.Page = page
	}
	return q, nil
}

// Health handles GET /healthz
func Health(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
