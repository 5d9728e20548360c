package services

import (
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"filmhay-backend/models"
)

const maxRelatedLimit = 20

// CatalogService answers every read the site makes. Each call works on a
// fresh snapshot of the store, so queries never see a half-applied write.
type CatalogService struct {
	store *MovieStore

	rngMu sync.Mutex
	rng   *rand.Rand

	logger zerolog.Logger
}

// NewCatalogService creates a catalog service. A nil rng gets a randomly
// seeded PCG source.
func NewCatalogService(store *MovieStore, rng *rand.Rand, logger zerolog.Logger) *CatalogService {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &CatalogService{store: store, rng: rng, logger: logger}
}

// All returns the whole catalog in catalog order
func (s *CatalogService) All() []models.MovieRecord {
	return s.store.List()
}

// Get returns one record by id
func (s *CatalogService) Get(id int64) (models.MovieRecord, error) {
	return s.store.Get(id)
}

// ByType returns movies or series; any other type is a validation error
func (s *CatalogService) ByType(t string) ([]models.MovieRecord, error) {
	return FilterByType(s.store.List(), models.MovieType(t))
}

// ByGenre returns records tagged with the genre slug
func (s *CatalogService) ByGenre(slug string) []models.MovieRecord {
	return FilterByGenre(s.store.List(), slug)
}

// ByCountry returns records from the country slug
func (s *CatalogService) ByCountry(slug string) []models.MovieRecord {
	return FilterByCountry(s.store.List(), slug)
}

// ByYear returns records released in year
func (s *CatalogService) ByYear(year int) []models.MovieRecord {
	return FilterByYear(s.store.List(), year)
}

// Search runs a free-text title search
func (s *CatalogService) Search(text string) []models.MovieRecord {
	results := Search(s.store.List(), text)
	s.logger.Debug().Str("query", text).Int("results", len(results)).Msg("search")
	return results
}

// BySlug resolves a title slug; the first match in catalog order wins
func (s *CatalogService) BySlug(slug string) (models.MovieRecord, error) {
	rec, ok := ResolveSlug(slug, s.store.List())
	if !ok {
		return models.MovieRecord{}, ErrMovieNotFound
	}
	return rec, nil
}

// Browse runs a combined, paginated listing query
func (s *CatalogService) Browse(q Query) (Page, error) {
	return Run(s.store.List(), q)
}

// Home builds the landing page feeds
func (s *CatalogService) Home() HomeFeeds {
	return BuildHomeFeeds(s.store.List())
}

// Facets lists the genres, countries and years present in the catalog
func (s *CatalogService) Facets() Facets {
	return BuildFacets(s.store.List())
}

// Related draws up to limit random records sharing a genre with the record id
func (s *CatalogService) Related(id int64, limit int) ([]models.MovieRecord, error) {
	if limit < 1 || limit > maxRelatedLimit {
		return nil, ErrInvalidLimit
	}

	records := s.store.List()
	i := slices.IndexFunc(records, func(m models.MovieRecord) bool { return m.ID == id })
	if i < 0 {
		return nil, ErrMovieNotFound
	}
	subject := records[i]
	pool := RelatedPool(subject, records)

	s.rngMu.Lock()
	picks := RandomSubset(pool, limit, s.rng)
	s.rngMu.Unlock()

	s.logger.Debug().Int64("id", id).Int("pool", len(pool)).Int("picked", len(picks)).Msg("related movies drawn")
	return picks, nil
}
