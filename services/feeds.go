package services

import (
	"math/rand/v2"
	"slices"

	"filmhay-backend/models"
)

const (
	// FeedSize caps every landing page feed
	FeedSize = 6
	// RecommendedThreshold is the rating (0-100) a record must exceed to be recommended
	RecommendedThreshold = 80
	// RelatedSize is the default number of related picks
	RelatedSize = 6
)

// HomeFeeds is everything the landing page shows
type HomeFeeds struct {
	Featured     *models.MovieRecord  `json:"featured"`
	Recommended  []models.MovieRecord `json:"recommended"`
	Series       []models.MovieRecord `json:"series"`
	RecentMovies []models.MovieRecord `json:"recentMovies"`
}

// BuildHomeFeeds derives the landing page feeds from the full catalog
func BuildHomeFeeds(records []models.MovieRecord) HomeFeeds {
	feeds := HomeFeeds{
		Recommended:  Recommended(records),
		Series:       NewestOfType(records, models.MovieTypeSeries),
		RecentMovies: NewestOfType(records, models.MovieTypeMovie),
	}
	if len(records) > 0 {
		featured := records[0]
		feeds.Featured = &featured
	}
	return feeds
}

// Recommended returns the first FeedSize records rated above the threshold,
// in catalog order
func Recommended(records []models.MovieRecord) []models.MovieRecord {
	out := filter(records, func(m models.MovieRecord) bool {
		return m.Rating != nil && *m.Rating > RecommendedThreshold
	})
	return truncate(out, FeedSize)
}

// NewestOfType returns up to FeedSize records of type t, most recently
// created first. Records without a creation time sort last.
func NewestOfType(records []models.MovieRecord, t models.MovieType) []models.MovieRecord {
	out := filter(records, func(m models.MovieRecord) bool { return m.Type == t })
	slices.SortStableFunc(out, func(a, b models.MovieRecord) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return truncate(out, FeedSize)
}

// RelatedPool returns the records sharing at least one genre with subject,
// excluding subject itself, in catalog order
func RelatedPool(subject models.MovieRecord, records []models.MovieRecord) []models.MovieRecord {
	if len(subject.Genres) == 0 {
		return []models.MovieRecord{}
	}
	genres := make(map[string]struct{}, len(subject.Genres))
	for _, g := range subject.Genres {
		genres[FacetSlug(g)] = struct{}{}
	}
	return filter(records, func(m models.MovieRecord) bool {
		if m.ID == subject.ID {
			return false
		}
		for _, g := range m.Genres {
			if _, ok := genres[FacetSlug(g)]; ok {
				return true
			}
		}
		return false
	})
}

// RandomSubset draws n elements uniformly at random without replacement.
// A pool no larger than n is returned whole, in its original order.
func RandomSubset[T any](pool []T, n int, rng *rand.Rand) []T {
	if n >= len(pool) {
		return slices.Clone(pool)
	}
	if n <= 0 {
		return []T{}
	}

	out := slices.Clone(pool)
	// partial Fisher-Yates: each prefix position gets a uniform pick of what is left
	for i := range n {
		j := i + rng.IntN(len(out)-i)
		out[i], out[j] = out[j], out[i]
	}
	return out[:n]
}

func truncate(records []models.MovieRecord, n int) []models.MovieRecord {
	if len(records) > n {
		return records[:n]
	}
	return records
}
