package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"filmhay-backend/models"
)

func intPtr(v int) *int { return &v }

// fixedClock returns a clock that advances one minute per call
func fixedClock() func() time.Time {
	t := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

func movieDraft(title string, genres ...string) models.MovieDraft {
	return models.MovieDraft{
		Title:       title,
		PosterURL:   "https://img.example/" + title + ".jpg",
		Overview:    "overview of " + title,
		ReleaseYear: 2024,
		Type:        models.MovieTypeMovie,
		Genres:      genres,
		Details:     models.MovieDetails{Duration: intPtr(100)},
	}
}

func seriesDraft(title string, genres ...string) models.MovieDraft {
	d := movieDraft(title, genres...)
	d.Type = models.MovieTypeSeries
	d.Details = models.SeriesDetails{EpisodeCount: intPtr(10), CurrentEpisode: intPtr(5)}
	return d
}

func newTestStore(t *testing.T, drafts ...models.MovieDraft) *MovieStore {
	t.Helper()
	s := NewMovieStore(WithClock(fixedClock()))
	for _, d := range drafts {
		_, err := s.Insert(d)
		require.NoError(t, err)
	}
	return s
}

func numberedDrafts(n int) []models.MovieDraft {
	out := make([]models.MovieDraft, n)
	for i := range out {
		out[i] = movieDraft(fmt.Sprintf("Movie %02d", i+1))
	}
	return out
}

func ids(records []models.MovieRecord) []int64 {
	out := make([]int64, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}
