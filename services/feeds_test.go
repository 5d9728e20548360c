package services

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmhay-backend/models"
)

func TestBuildHomeFeeds(t *testing.T) {
	var drafts []models.MovieDraft
	for i := range 8 {
		m := movieDraft("Movie", "Drama")
		m.Rating = intPtr(81 + i)
		drafts = append(drafts, m)
	}
	for range 7 {
		drafts = append(drafts, seriesDraft("Series", "Drama"))
	}
	low := movieDraft("Low")
	low.Rating = intPtr(80)
	drafts = append(drafts, low)

	feeds := BuildHomeFeeds(newTestStore(t, drafts...).List())

	require.NotNil(t, feeds.Featured)
	assert.Equal(t, int64(1), feeds.Featured.ID)
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6}, ids(feeds.Recommended))
	assert.Equal(t, []int64{15, 14, 13, 12, 11, 10}, ids(feeds.Series))
	assert.Equal(t, []int64{16, 8, 7, 6, 5, 4}, ids(feeds.RecentMovies))
}

func TestBuildHomeFeeds_Empty(t *testing.T) {
	feeds := BuildHomeFeeds(nil)
	assert.Nil(t, feeds.Featured)
	assert.Empty(t, feeds.Recommended)
	assert.Empty(t, feeds.Series)
	assert.Empty(t, feeds.RecentMovies)
}

func TestRecommended_Threshold(t *testing.T) {
	at := movieDraft("At")
	at.Rating = intPtr(80)
	above := movieDraft("Above")
	above.Rating = intPtr(81)

	got := Recommended(newTestStore(t, at, movieDraft("Unrated"), above).List())
	assert.Equal(t, []int64{3}, ids(got))
}

func TestRelatedPool(t *testing.T) {
	records := newTestStore(t,
		movieDraft("Subject", "Hành Động", "Viễn Tưởng"),
		movieDraft("Shares one", "hành động"),
		movieDraft("Shares none", "Tình Cảm"),
		movieDraft("No genres"),
		seriesDraft("Shares other", "Viễn Tưởng"),
	).List()

	assert.Equal(t, []int64{2, 5}, ids(RelatedPool(records[0], records)))
	assert.Empty(t, RelatedPool(records[3], records), "a record without genres has no related pool")
	assert.Empty(t, RelatedPool(records[2], records))
}

func TestRandomSubset_SmallPool(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	pool := []int{3, 1, 2}

	assert.Equal(t, []int{3, 1, 2}, RandomSubset(pool, 6, rng))
	assert.Equal(t, []int{3, 1, 2}, RandomSubset(pool, 3, rng))
	assert.Empty(t, RandomSubset(pool, 0, rng))
	assert.Empty(t, RandomSubset([]int{}, 6, rng))
}

func TestRandomSubset_Distinct(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	pool := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	for range 100 {
		picks := RandomSubset(pool, 6, rng)
		require.Len(t, picks, 6)
		seen := map[int]bool{}
		for _, p := range picks {
			assert.False(t, seen[p], "duplicate pick %d", p)
			seen[p] = true
		}
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, pool, "pool is not modified")
}

func TestRandomSubset_Uniform(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1024))
	pool := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	const draws = 1000
	counts := make([]int, len(pool))
	for range draws {
		for _, p := range RandomSubset(pool, 6, rng) {
			counts[p]++
		}
	}

	// each element is expected 600 times; sd is about 15.5
	for i, c := range counts {
		assert.InDelta(t, 600, c, 90, "element %d picked %d times", i, c)
	}
}
