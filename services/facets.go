package services

import (
	"cmp"
	"slices"

	"filmhay-backend/models"
)

// Facet is one browsable genre or country
type Facet struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

// YearFacet is one browsable release year
type YearFacet struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// Facets lists what the navigation menus can link to
type Facets struct {
	Genres    []Facet     `json:"genres"`
	Countries []Facet     `json:"countries"`
	Years     []YearFacet `json:"years"`
}

// BuildFacets counts genres and countries by slug, in first-seen order, and
// years newest first. The first spelling seen names the facet.
func BuildFacets(records []models.MovieRecord) Facets {
	years := make(map[int]int)
	for _, rec := range records {
		years[rec.ReleaseYear]++
	}

	f := Facets{
		Genres:    collectFacets(records, func(m models.MovieRecord) []string { return m.Genres }),
		Countries: collectFacets(records, func(m models.MovieRecord) []string { return m.Countries }),
		Years:     make([]YearFacet, 0, len(years)),
	}
	for y, n := range years {
		f.Years = append(f.Years, YearFacet{Year: y, Count: n})
	}
	slices.SortFunc(f.Years, func(a, b YearFacet) int { return cmp.Compare(b.Year, a.Year) })
	return f
}

func collectFacets(records []models.MovieRecord, names func(models.MovieRecord) []string) []Facet {
	out := []Facet{}
	index := make(map[string]int)
	for _, rec := range records {
		seen := make(map[string]bool)
		for _, name := range names(rec) {
			slug := FacetSlug(name)
			// a record listing the same genre twice counts once
			if seen[slug] {
				continue
			}
			seen[slug] = true

			if i, ok := index[slug]; ok {
				out[i].Count++
				continue
			}
			index[slug] = len(out)
			out = append(out, Facet{Name: name, Slug: slug, Count: 1})
		}
	}
	return out
}
