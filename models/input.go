package models

import (
	"slices"
	"strings"
)

const (
	minReleaseYear = 1870
	maxReleaseYear = 2100
	maxRating      = 100
)

// MovieInput is the create/update payload. Fields the client did not send
// stay absent, which is what makes partial updates possible. Unknown keys,
// id and createdAt included, are ignored by the decoder.
type MovieInput struct {
	Title          Optional[string]    `json:"title,omitzero" yaml:"title"`
	OriginalTitle  Optional[string]    `json:"originalTitle,omitzero" yaml:"originalTitle"`
	PosterURL      Optional[string]    `json:"posterUrl,omitzero" yaml:"posterUrl"`
	BackdropURL    Optional[string]    `json:"backdropUrl,omitzero" yaml:"backdropUrl"`
	Overview       Optional[string]    `json:"overview,omitzero" yaml:"overview"`
	ReleaseYear    Optional[int]       `json:"releaseYear,omitzero" yaml:"releaseYear"`
	Rating         Optional[int]       `json:"rating,omitzero" yaml:"rating"`
	Duration       Optional[int]       `json:"duration,omitzero" yaml:"duration"`
	Type           Optional[MovieType] `json:"type,omitzero" yaml:"type"`
	Genres         Optional[[]string]  `json:"genres,omitzero" yaml:"genres"`
	Countries      Optional[[]string]  `json:"countries,omitzero" yaml:"countries"`
	TrailerURL     Optional[string]    `json:"trailerUrl,omitzero" yaml:"trailerUrl"`
	EpisodeCount   Optional[int]       `json:"episodeCount,omitzero" yaml:"episodeCount"`
	CurrentEpisode Optional[int]       `json:"currentEpisode,omitzero" yaml:"currentEpisode"`
}

// Validate checks the supplied fields. With partial set, absent fields are
// skipped; otherwise the required ones must be present.
func (in MovieInput) Validate(v *Validator, partial bool) {
	required := func(set, present bool, key string) {
		if partial && !set {
			return
		}
		v.Check(present, key, "must be provided")
	}
	required(in.Title.Set, in.Title.Present(), "title")
	required(in.PosterURL.Set, in.PosterURL.Present(), "posterUrl")
	required(in.Overview.Set, in.Overview.Present(), "overview")
	required(in.ReleaseYear.Set, in.ReleaseYear.Present(), "releaseYear")
	required(in.Type.Set, in.Type.Present(), "type")

	if in.Title.Present() {
		v.Check(strings.TrimSpace(in.Title.Value) != "", "title", "must not be blank")
	}
	if in.PosterURL.Present() {
		v.Check(strings.TrimSpace(in.PosterURL.Value) != "", "posterUrl", "must not be blank")
	}
	if in.ReleaseYear.Present() {
		y := in.ReleaseYear.Value
		v.Check(y >= minReleaseYear && y <= maxReleaseYear, "releaseYear", "must be between 1870 and 2100")
	}
	if in.Type.Present() {
		v.Check(in.Type.Value.Valid(), "type", "must be either movie or series")
	}
	if in.Rating.Present() {
		v.Check(in.Rating.Value >= 0 && in.Rating.Value <= maxRating, "rating", "must be between 0 and 100")
	}
	if in.Duration.Present() {
		v.Check(in.Duration.Value > 0, "duration", "must be greater than zero")
	}
	if in.EpisodeCount.Present() {
		v.Check(in.EpisodeCount.Value >= 0, "episodeCount", "must not be negative")
	}
	if in.CurrentEpisode.Present() {
		v.Check(in.CurrentEpisode.Value >= 0, "currentEpisode", "must not be negative")
	}
	if in.Genres.Present() {
		v.Check(!slices.ContainsFunc(in.Genres.Value, isBlank), "genres", "must not contain blank entries")
	}
	if in.Countries.Present() {
		v.Check(!slices.ContainsFunc(in.Countries.Value, isBlank), "countries", "must not contain blank entries")
	}
}

// Draft validates a full create payload and converts it
func (in MovieInput) Draft() (MovieDraft, error) {
	v := &Validator{}
	in.Validate(v, false)
	if err := v.Err("Invalid movie data"); err != nil {
		return MovieDraft{}, err
	}

	rec := in.merge(v, MovieRecord{})
	if err := v.Err("Invalid movie data"); err != nil {
		return MovieDraft{}, err
	}

	return MovieDraft{
		Title:         rec.Title,
		OriginalTitle: rec.OriginalTitle,
		PosterURL:     rec.PosterURL,
		BackdropURL:   rec.BackdropURL,
		Overview:      rec.Overview,
		ReleaseYear:   rec.ReleaseYear,
		Rating:        rec.Rating,
		Type:          rec.Type,
		Genres:        rec.Genres,
		Countries:     rec.Countries,
		TrailerURL:    rec.TrailerURL,
		Details:       rec.Details,
	}, nil
}

// Apply merges the supplied fields into rec, leaving ID and CreatedAt alone.
// An empty input returns rec unchanged.
func (in MovieInput) Apply(rec MovieRecord) (MovieRecord, error) {
	v := &Validator{}
	in.Validate(v, true)
	if err := v.Err("Invalid movie data"); err != nil {
		return MovieRecord{}, err
	}

	merged := in.merge(v, rec.Clone())
	if err := v.Err("Invalid movie data"); err != nil {
		return MovieRecord{}, err
	}
	return merged, nil
}

// merge assumes field-level validation passed and records variant errors in v
func (in MovieInput) merge(v *Validator, rec MovieRecord) MovieRecord {
	if in.Title.Present() {
		rec.Title = in.Title.Value
	}
	if in.OriginalTitle.Set {
		rec.OriginalTitle = in.OriginalTitle.Ptr()
	}
	if in.PosterURL.Present() {
		rec.PosterURL = in.PosterURL.Value
	}
	if in.BackdropURL.Set {
		rec.BackdropURL = in.BackdropURL.Ptr()
	}
	if in.Overview.Present() {
		rec.Overview = in.Overview.Value
	}
	if in.ReleaseYear.Present() {
		rec.ReleaseYear = in.ReleaseYear.Value
	}
	if in.Rating.Set {
		rec.Rating = in.Rating.Ptr()
	}
	if in.Genres.Set {
		rec.Genres = slices.Clone(in.Genres.Value)
	}
	if in.Countries.Set {
		rec.Countries = slices.Clone(in.Countries.Value)
	}
	if in.TrailerURL.Set {
		rec.TrailerURL = in.TrailerURL.Ptr()
	}

	if in.Type.Present() && in.Type.Value != rec.Type {
		// switching type drops the fields of the old variant
		rec.Type = in.Type.Value
		rec.Details = emptyDetails(rec.Type)
	}
	if rec.Details == nil {
		rec.Details = emptyDetails(rec.Type)
	}

	switch d := rec.Details.(type) {
	case MovieDetails:
		v.Check(!in.EpisodeCount.Present(), "episodeCount", "only allowed for series")
		v.Check(!in.CurrentEpisode.Present(), "currentEpisode", "only allowed for series")
		if in.Duration.Set {
			d.Duration = in.Duration.Ptr()
		}
		rec.Details = d
	case SeriesDetails:
		v.Check(!in.Duration.Present(), "duration", "only allowed for movies")
		if in.EpisodeCount.Set {
			d.EpisodeCount = in.EpisodeCount.Ptr()
		}
		if in.CurrentEpisode.Set {
			d.CurrentEpisode = in.CurrentEpisode.Ptr()
		}
		if d.EpisodeCount != nil && d.CurrentEpisode != nil {
			v.Check(*d.CurrentEpisode <= *d.EpisodeCount, "currentEpisode", "must not exceed episodeCount")
		}
		rec.Details = d
	}
	return rec
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
