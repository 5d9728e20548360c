package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter registers every API route. Fixed path segments are registered
// before /api/movies/{id} so they are never read as ids.
func NewRouter(movies *MovieHandler, catalog *CatalogHandler) *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	r.HandleFunc("/healthz", Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// Catalog views
	api.HandleFunc("/catalog/home", catalog.Home).Methods(http.MethodGet)
	api.HandleFunc("/catalog/browse", catalog.Browse).Methods(http.MethodGet)
	api.HandleFunc("/catalog/facets", catalog.Facets).Methods(http.MethodGet)

	// Movie listings
	api.HandleFunc("/movies", movies.List).Methods(http.MethodGet)
	api.HandleFunc("/movies", movies.Create).Methods(http.MethodPost)
	api.HandleFunc("/movies/search", movies.Search).Methods(http.MethodGet)
	api.HandleFunc("/movies/type/{type}", movies.ByType).Methods(http.MethodGet)
	api.HandleFunc("/movies/genre/{genre}", movies.ByGenre).Methods(http.MethodGet)
	api.HandleFunc("/movies/country/{country}", movies.ByCountry).Methods(http.MethodGet)
	api.HandleFunc("/movies/year/{year}", movies.ByYear).Methods(http.MethodGet)
	api.HandleFunc("/movies/slug/{slug}", catalog.BySlug).Methods(http.MethodGet)

	// Single records
	api.HandleFunc("/movies/{id}/related", catalog.Related).Methods(http.MethodGet)
	api.HandleFunc("/movies/{id}", movies.Get).Methods(http.MethodGet)
	api.HandleFunc("/movies/{id}", movies.Update).Methods(http.MethodPatch)
	api.HandleFunc("/movies/{id}", movies.Delete).Methods(http.MethodDelete)

	return r
}
