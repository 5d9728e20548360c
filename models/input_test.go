package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Invalid movie data", verr.Message)
	out := make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		out[f.Field] = f.Message
	}
	return out
}

func decodeInput(t *testing.T, body string) MovieInput {
	t.Helper()
	var in MovieInput
	require.NoError(t, json.Unmarshal([]byte(body), &in))
	return in
}

func TestMovieInput_DraftMovie(t *testing.T) {
	in := decodeInput(t, `{
		"title": "Mai",
		"posterUrl": "https://img.example/mai.jpg",
		"overview": "A masseuse meets a musician.",
		"releaseYear": 2024,
		"rating": 78,
		"type": "movie",
		"duration": 131,
		"genres": ["Tâm Lý", "Tình Cảm"],
		"countries": ["Việt Nam"],
		"id": 99,
		"createdAt": "2001-01-01T00:00:00Z",
		"unknown": true
	}`)

	draft, err := in.Draft()
	require.NoError(t, err)
	assert.Equal(t, "Mai", draft.Title)
	assert.Equal(t, MovieTypeMovie, draft.Type)
	require.NotNil(t, draft.Rating)
	assert.Equal(t, 78, *draft.Rating)
	assert.Equal(t, []string{"Tâm Lý", "Tình Cảm"}, draft.Genres)
	require.IsType(t, MovieDetails{}, draft.Details)
	require.NotNil(t, draft.Details.(MovieDetails).Duration)
	assert.Equal(t, 131, *draft.Details.(MovieDetails).Duration)
}

func TestMovieInput_DraftSeries(t *testing.T) {
	in := decodeInput(t, `{
		"title": "Squid Game",
		"posterUrl": "p.jpg",
		"overview": "o",
		"releaseYear": 2021,
		"type": "series",
		"episodeCount": 9,
		"currentEpisode": 9
	}`)

	draft, err := in.Draft()
	require.NoError(t, err)
	d, ok := draft.Details.(SeriesDetails)
	require.True(t, ok)
	assert.Equal(t, 9, *d.EpisodeCount)
	assert.Equal(t, 9, *d.CurrentEpisode)
}

func TestMovieInput_DraftMissingRequired(t *testing.T) {
	_, err := MovieInput{}.Draft()
	fields := fieldsOf(t, err)
	for _, key := range []string{"title", "posterUrl", "overview", "releaseYear", "type"} {
		assert.Equal(t, "must be provided", fields[key], key)
	}
}

func TestMovieInput_DraftInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"blank title", `{"title":"  "}`, "title"},
		{"bad type", `{"type":"documentary"}`, "type"},
		{"year too old", `{"releaseYear":1800}`, "releaseYear"},
		{"rating too high", `{"rating":101}`, "rating"},
		{"negative rating", `{"rating":-1}`, "rating"},
		{"zero duration", `{"duration":0}`, "duration"},
		{"negative episodes", `{"episodeCount":-2}`, "episodeCount"},
		{"blank genre", `{"genres":["Hành Động",""]}`, "genres"},
		{"blank country", `{"countries":[" "]}`, "countries"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeInput(t, tt.body).Draft()
			assert.Contains(t, fieldsOf(t, err), tt.field)
		})
	}
}

func TestMovieInput_VariantFields(t *testing.T) {
	base := `"title":"T","posterUrl":"p","overview":"o","releaseYear":2020`

	_, err := decodeInput(t, `{`+base+`,"type":"movie","episodeCount":3}`).Draft()
	assert.Equal(t, "only allowed for series", fieldsOf(t, err)["episodeCount"])

	_, err = decodeInput(t, `{`+base+`,"type":"series","duration":90}`).Draft()
	assert.Equal(t, "only allowed for movies", fieldsOf(t, err)["duration"])

	_, err = decodeInput(t, `{`+base+`,"type":"series","episodeCount":3,"currentEpisode":4}`).Draft()
	assert.Equal(t, "must not exceed episodeCount", fieldsOf(t, err)["currentEpisode"])
}

func seriesRecord() MovieRecord {
	eps, cur, rating := 16, 8, 85
	return MovieRecord{
		ID:          7,
		Title:       "Queen of Tears",
		PosterURL:   "p.jpg",
		Overview:    "o",
		ReleaseYear: 2024,
		Rating:      &rating,
		Type:        MovieTypeSeries,
		Genres:      []string{"Tình Cảm"},
		Details:     SeriesDetails{EpisodeCount: &eps, CurrentEpisode: &cur},
	}
}

func TestMovieInput_ApplyPartial(t *testing.T) {
	rec := seriesRecord()

	updated, err := decodeInput(t, `{"currentEpisode":10,"rating":null}`).Apply(rec)
	require.NoError(t, err)
	assert.Equal(t, rec.Title, updated.Title)
	assert.Nil(t, updated.Rating)
	assert.Equal(t, 10, *updated.CurrentEpisode())
	assert.Equal(t, 16, *updated.EpisodeCount())

	// the input record is untouched
	assert.Equal(t, 8, *rec.CurrentEpisode())
	assert.Equal(t, 85, *rec.Rating)
}

func TestMovieInput_ApplyEmpty(t *testing.T) {
	rec := seriesRecord()
	updated, err := MovieInput{}.Apply(rec)
	require.NoError(t, err)
	assert.Equal(t, rec, updated)
}

func TestMovieInput_ApplyRequiredNull(t *testing.T) {
	_, err := decodeInput(t, `{"title":null}`).Apply(seriesRecord())
	assert.Equal(t, "must be provided", fieldsOf(t, err)["title"])
}

func TestMovieInput_ApplyTypeChange(t *testing.T) {
	updated, err := decodeInput(t, `{"type":"movie","duration":120}`).Apply(seriesRecord())
	require.NoError(t, err)
	assert.Equal(t, MovieTypeMovie, updated.Type)
	assert.Nil(t, updated.EpisodeCount())
	require.NotNil(t, updated.Duration())
	assert.Equal(t, 120, *updated.Duration())
}

func TestMovieInput_ApplyWrongVariant(t *testing.T) {
	_, err := decodeInput(t, `{"duration":45}`).Apply(seriesRecord())
	assert.Equal(t, "only allowed for movies", fieldsOf(t, err)["duration"])
}

func TestOptional_JSON(t *testing.T) {
	var in MovieInput
	require.NoError(t, json.Unmarshal([]byte(`{"rating":null,"title":"x"}`), &in))
	assert.True(t, in.Rating.Set)
	assert.True(t, in.Rating.Null)
	assert.Nil(t, in.Rating.Ptr())
	assert.True(t, in.Title.Present())
	assert.False(t, in.Overview.Set)

	out, err := json.Marshal(MovieInput{Title: Some("x"), Rating: Null[int]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"x","rating":null}`, string(out))
}
