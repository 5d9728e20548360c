package models

import (
	"encoding/json"
	"slices"
	"time"
)

// MovieType discriminates movies from series
type MovieType string

const (
	MovieTypeMovie  MovieType = "movie"
	MovieTypeSeries MovieType = "series"
)

// Valid reports whether t is one of the known catalog types
func (t MovieType) Valid() bool {
	return t == MovieTypeMovie || t == MovieTypeSeries
}

// Details holds the fields that only make sense for one MovieType
type Details interface {
	Kind() MovieType
}

// MovieDetails carries movie-only fields
type MovieDetails struct {
	Duration *int // minutes
}

// Kind implements Details
func (MovieDetails) Kind() MovieType { return MovieTypeMovie }

// SeriesDetails carries series-only fields
type SeriesDetails struct {
	EpisodeCount   *int
	CurrentEpisode *int
}

// Kind implements Details
func (SeriesDetails) Kind() MovieType { return MovieTypeSeries }

// MovieRecord represents a single catalog entry, movie or series
type MovieRecord struct {
	ID            int64
	Title         string
	OriginalTitle *string
	PosterURL     string
	BackdropURL   *string
	Overview      string
	ReleaseYear   int
	Rating        *int // 0-100, displayed divided by 10
	Type          MovieType
	Genres        []string
	Countries     []string
	TrailerURL    *string
	Details       Details
	CreatedAt     time.Time
}

// movieRecordJSON is the flat wire shape the web client consumes
type movieRecordJSON struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	OriginalTitle  *string   `json:"originalTitle"`
	PosterURL      string    `json:"posterUrl"`
	BackdropURL    *string   `json:"backdropUrl"`
	Overview       string    `json:"overview"`
	ReleaseYear    int       `json:"releaseYear"`
	Rating         *int      `json:"rating"`
	Duration       *int      `json:"duration"`
	Type           MovieType `json:"type"`
	Genres         []string  `json:"genres"`
	Countries      []string  `json:"countries"`
	TrailerURL     *string   `json:"trailerUrl"`
	EpisodeCount   *int      `json:"episodeCount"`
	CurrentEpisode *int      `json:"currentEpisode"`
	CreatedAt      time.Time `json:"createdAt"`
}

// MarshalJSON flattens the type-specific details into the record
func (m MovieRecord) MarshalJSON() ([]byte, error) {
	aux := movieRecordJSON{
		ID:            m.ID,
		Title:         m.Title,
		OriginalTitle: m.OriginalTitle,
		PosterURL:     m.PosterURL,
		BackdropURL:   m.BackdropURL,
		Overview:      m.Overview,
		ReleaseYear:   m.ReleaseYear,
		Rating:        m.Rating,
		Type:          m.Type,
		Genres:        orEmpty(m.Genres),
		Countries:     orEmpty(m.Countries),
		TrailerURL:    m.TrailerURL,
		CreatedAt:     m.CreatedAt,
	}
	aux.Duration = m.Duration()
	aux.EpisodeCount = m.EpisodeCount()
	aux.CurrentEpisode = m.CurrentEpisode()
	return json.Marshal(aux)
}

// UnmarshalJSON rebuilds the details variant from the flat wire shape.
// Fields that do not belong to the record's type are dropped.
func (m *MovieRecord) UnmarshalJSON(data []byte) error {
	var aux movieRecordJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*m = MovieRecord{
		ID:            aux.ID,
		Title:         aux.Title,
		OriginalTitle: aux.OriginalTitle,
		PosterURL:     aux.PosterURL,
		BackdropURL:   aux.BackdropURL,
		Overview:      aux.Overview,
		ReleaseYear:   aux.ReleaseYear,
		Rating:        aux.Rating,
		Type:          aux.Type,
		Genres:        aux.Genres,
		Countries:     aux.Countries,
		TrailerURL:    aux.TrailerURL,
		CreatedAt:     aux.CreatedAt,
	}
	switch aux.Type {
	case MovieTypeMovie:
		m.Details = MovieDetails{Duration: aux.Duration}
	case MovieTypeSeries:
		m.Details = SeriesDetails{EpisodeCount: aux.EpisodeCount, CurrentEpisode: aux.CurrentEpisode}
	}
	return nil
}

// Duration returns the runtime in minutes for movies, nil otherwise
func (m MovieRecord) Duration() *int {
	if d, ok := m.Details.(MovieDetails); ok {
		return d.Duration
	}
	return nil
}

// EpisodeCount returns the episode count for series, nil otherwise
func (m MovieRecord) EpisodeCount() *int {
	if d, ok := m.Details.(SeriesDetails); ok {
		return d.EpisodeCount
	}
	return nil
}

// CurrentEpisode returns the latest released episode for series, nil otherwise
func (m MovieRecord) CurrentEpisode() *int {
	if d, ok := m.Details.(SeriesDetails); ok {
		return d.CurrentEpisode
	}
	return nil
}

// Clone returns a deep copy so callers never share memory with the store
func (m MovieRecord) Clone() MovieRecord {
	c := m
	c.OriginalTitle = clonePtr(m.OriginalTitle)
	c.BackdropURL = clonePtr(m.BackdropURL)
	c.Rating = clonePtr(m.Rating)
	c.TrailerURL = clonePtr(m.TrailerURL)
	c.Genres = slices.Clone(m.Genres)
	c.Countries = slices.Clone(m.Countries)
	switch d := m.Details.(type) {
	case MovieDetails:
		c.Details = MovieDetails{Duration: clonePtr(d.Duration)}
	case SeriesDetails:
		c.Details = SeriesDetails{EpisodeCount: clonePtr(d.EpisodeCount), CurrentEpisode: clonePtr(d.CurrentEpisode)}
	}
	return c
}

// MovieDraft holds everything needed to create a record; the store assigns
// the id and creation time
type MovieDraft struct {
	Title         string
	OriginalTitle *string
	PosterURL     string
	BackdropURL   *string
	Overview      string
	ReleaseYear   int
	Rating        *int
	Type          MovieType
	Genres        []string
	Countries     []string
	TrailerURL    *string
	Details       Details
}

// Record builds the stored form of the draft
func (d MovieDraft) Record(id int64, createdAt time.Time) MovieRecord {
	rec := MovieRecord{
		ID:            id,
		Title:         d.Title,
		OriginalTitle: d.OriginalTitle,
		PosterURL:     d.PosterURL,
		BackdropURL:   d.BackdropURL,
		Overview:      d.Overview,
		ReleaseYear:   d.ReleaseYear,
		Rating:        d.Rating,
		Type:          d.Type,
		Genres:        d.Genres,
		Countries:     d.Countries,
		TrailerURL:    d.TrailerURL,
		Details:       d.Details,
		CreatedAt:     createdAt,
	}
	if rec.Details == nil {
		rec.Details = emptyDetails(rec.Type)
	}
	return rec.Clone()
}

func emptyDetails(t MovieType) Details {
	switch t {
	case MovieTypeMovie:
		return MovieDetails{}
	case MovieTypeSeries:
		return SeriesDetails{}
	}
	return nil
}

// orEmpty keeps list fields as [] rather than null on the wire
func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
