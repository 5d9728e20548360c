package services

import (
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"filmhay-backend/models"
)

// MovieStore holds the catalog in memory. Ids come from a counter that
// starts at 1 and is never rewound, so deleted ids are never handed out
// again and ascending id order equals insertion order.
type MovieStore struct {
	mu     sync.RWMutex
	movies map[int64]models.MovieRecord
	nextID int64
	closed bool

	now    func() time.Time
	logger zerolog.Logger
}

// StoreOption customises a MovieStore
type StoreOption func(*MovieStore)

// WithClock replaces time.Now for createdAt stamps
func WithClock(now func() time.Time) StoreOption {
	return func(s *MovieStore) { s.now = now }
}

// WithStoreLogger sets the store's logger
func WithStoreLogger(logger zerolog.Logger) StoreOption {
	return func(s *MovieStore) { s.logger = logger }
}

// NewMovieStore creates an empty, open store
func NewMovieStore(opts ...StoreOption) *MovieStore {
	s := &MovieStore{
		movies: make(map[int64]models.MovieRecord),
		nextID: 1,
		now:    time.Now,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Insert assigns the next id and the creation time, then stores the record
func (s *MovieStore) Insert(draft models.MovieDraft) (models.MovieRecord, error) {
	if err := checkDraft(draft); err != nil {
		return models.MovieRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return models.MovieRecord{}, ErrStoreClosed
	}

	id := s.nextID
	s.nextID++
	rec := draft.Record(id, s.now().UTC())
	s.movies[id] = rec

	s.logger.Debug().Int64("id", id).Str("title", rec.Title).Msg("movie inserted")
	return rec.Clone(), nil
}

// Get returns a copy of the record with the given id
func (s *MovieStore) Get(id int64) (models.MovieRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.movies[id]
	if !ok {
		return models.MovieRecord{}, ErrMovieNotFound
	}
	return rec.Clone(), nil
}

// Update merges the supplied fields into an existing record. The id and
// creation time never change.
func (s *MovieStore) Update(id int64, patch models.MovieInput) (models.MovieRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return models.MovieRecord{}, ErrStoreClosed
	}

	existing, ok := s.movies[id]
	if !ok {
		return models.MovieRecord{}, ErrMovieNotFound
	}

	updated, err := patch.Apply(existing)
	if err != nil {
		return models.MovieRecord{}, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	s.movies[id] = updated

	s.logger.Debug().Int64("id", id).Msg("movie updated")
	return updated.Clone(), nil
}

// Delete removes the record and reports whether one was removed
func (s *MovieStore) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	if _, ok := s.movies[id]; !ok {
		return false
	}
	delete(s.movies, id)

	s.logger.Debug().Int64("id", id).Msg("movie deleted")
	return true
}

// List returns every record in catalog order (ascending id)
func (s *MovieStore) List() []models.MovieRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := slices.Sorted(maps.Keys(s.movies))
	out := make([]models.MovieRecord, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.movies[id].Clone())
	}
	return out
}

// Len returns the number of stored records
func (s *MovieStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.movies)
}

// Close releases the records; later writes fail with ErrStoreClosed
func (s *MovieStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.logger.Info().Int("movies", len(s.movies)).Msg("movie store closed")
	clear(s.movies)
	return nil
}

// checkDraft guards against drafts built by hand instead of MovieInput.Draft
func checkDraft(d models.MovieDraft) error {
	v := &models.Validator{}
	v.Check(d.Type.Valid(), "type", "must be either movie or series")
	v.Check(d.Title != "", "title", "must be provided")
	if d.Details != nil {
		v.Check(d.Details.Kind() == d.Type, "type", "does not match the supplied details")
	}
	return v.Err("Invalid movie data")
}
