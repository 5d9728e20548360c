package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmhay-backend/models"
)

func catalogFixture(t *testing.T) []models.MovieRecord {
	t.Helper()
	noGenres := movieDraft("Silent Film")
	noGenres.ReleaseYear = 1927

	korean := seriesDraft("Queen of Tears", "Tình Cảm", "Hài Hước")
	korean.Countries = []string{"Hàn Quốc"}
	korean.OriginalTitle = func() *string { s := "눈물의 여왕"; return &s }()

	vn := movieDraft("Mai", "Tâm Lý", "Tình Cảm")
	vn.Countries = []string{"Việt Nam"}
	vn.Rating = intPtr(78)

	action := movieDraft("Dune: Part Two", "Hành Động")
	action.Countries = []string{"Mỹ"}
	action.Rating = intPtr(88)

	return newTestStore(t, noGenres, korean, vn, action).List()
}

func TestFilterByType(t *testing.T) {
	records := catalogFixture(t)

	series, err := FilterByType(records, models.MovieTypeSeries)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids(series))

	movies, err := FilterByType(records, models.MovieTypeMovie)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 4}, ids(movies))

	_, err = FilterByType(records, "anime")
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestFilterByGenre(t *testing.T) {
	records := catalogFixture(t)

	assert.Equal(t, []int64{2, 3}, ids(FilterByGenre(records, "tình-cảm")))
	assert.Equal(t, []int64{4}, ids(FilterByGenre(records, "hành-động")))
	// unslugged input is normalised the same way
	assert.Equal(t, []int64{2, 3}, ids(FilterByGenre(records, "Tình Cảm")))
	assert.Empty(t, FilterByGenre(records, "kinh-dị"))
	assert.NotNil(t, FilterByGenre(records, "kinh-dị"))
}

func TestFilterByCountry(t *testing.T) {
	records := catalogFixture(t)
	assert.Equal(t, []int64{3}, ids(FilterByCountry(records, "việt-nam")))
	assert.Equal(t, []int64{2}, ids(FilterByCountry(records, "hàn-quốc")))
	assert.Empty(t, FilterByCountry(records, "nhật-bản"))
}

func TestFilterByYear(t *testing.T) {
	records := catalogFixture(t)
	assert.Equal(t, []int64{1}, ids(FilterByYear(records, 1927)))
	assert.Equal(t, []int64{2, 3, 4}, ids(FilterByYear(records, 2024)))
	assert.Empty(t, FilterByYear(records, 1990))
}

func TestSearch(t *testing.T) {
	records := catalogFixture(t)

	assert.Equal(t, []int64{4}, ids(Search(records, "DUNE")))
	assert.Equal(t, []int64{2}, ids(Search(records, "여왕")))
	assert.Equal(t, []int64{2}, ids(Search(records, "  queen ")))
	assert.Empty(t, Search(records, "   "))
	assert.NotNil(t, Search(records, ""))
}

func TestSortRecords(t *testing.T) {
	records := catalogFixture(t)

	require.NoError(t, SortRecords(records, "-rating"))
	assert.Equal(t, []int64{4, 3, 1, 2}, ids(records))

	require.NoError(t, SortRecords(records, "year"))
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(records))

	require.NoError(t, SortRecords(records, "title"))
	assert.Equal(t, []int64{4, 3, 2, 1}, ids(records))

	require.NoError(t, SortRecords(records, "-created"))
	assert.Equal(t, []int64{4, 3, 2, 1}, ids(records))

	assert.ErrorIs(t, SortRecords(records, "budget"), ErrInvalidSort)
}

func TestRun(t *testing.T) {
	records := catalogFixture(t)
	year := 2024
	text := "a"

	page, err := Run(records, Query{Type: models.MovieTypeMovie, Year: &year, Text: &text, Sort: "-id"})
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 3}, ids(page.Movies))
	assert.Equal(t, PageMetadata{CurrentPage: 1, PageSize: PageSize, TotalPages: 1, TotalRecords: 2}, page.Metadata)

	page, err = Run(records, Query{Genre: "tình-cảm", Country: "việt-nam"})
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, ids(page.Movies))

	page, err = Run(records, Query{Page: math.MaxInt})
	require.NoError(t, err)
	assert.Empty(t, page.Movies)

	// Run never reorders its input
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(records))
}

func TestQuery_Validate(t *testing.T) {
	assert.NoError(t, Query{}.Validate())
	assert.ErrorIs(t, Query{Type: "anime"}.Validate(), ErrInvalidType)
	assert.ErrorIs(t, Query{Sort: "budget"}.Validate(), ErrInvalidSort)
	assert.ErrorIs(t, Query{Page: -1}.Validate(), ErrInvalidPage)
}

func TestPaginate(t *testing.T) {
	records := newTestStore(t, numberedDrafts(45)...).List()

	first, err := Paginate(records, 1)
	require.NoError(t, err)
	require.Len(t, first.Movies, 20)
	assert.Equal(t, int64(1), first.Movies[0].ID)
	assert.Equal(t, int64(20), first.Movies[19].ID)
	assert.Equal(t, PageMetadata{CurrentPage: 1, PageSize: 20, TotalPages: 3, TotalRecords: 45}, first.Metadata)

	third, err := Paginate(records, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{41, 42, 43, 44, 45}, ids(third.Movies))

	fourth, err := Paginate(records, 4)
	require.NoError(t, err)
	assert.NotNil(t, fourth.Movies)
	assert.Empty(t, fourth.Movies)
	assert.Equal(t, 4, fourth.Metadata.CurrentPage)

	huge, err := Paginate(records, math.MaxInt/PageSize+2)
	require.NoError(t, err)
	assert.NotNil(t, huge.Movies)
	assert.Empty(t, huge.Movies)
	assert.Equal(t, 3, huge.Metadata.TotalPages)

	_, err = Paginate(records, 0)
	assert.ErrorIs(t, err, ErrInvalidPage)

	empty, err := Paginate(nil, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Metadata.TotalPages)
	assert.Empty(t, empty.Movies)
}
