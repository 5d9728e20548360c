package services

import (
	"cmp"
	"slices"
	"strings"

	"filmhay-backend/models"
)

// SortSafelist holds the accepted sort keys; a leading "-" sorts descending
var SortSafelist = []string{
	"id", "-id",
	"title", "-title",
	"year", "-year",
	"rating", "-rating",
	"created", "-created",
}

// Query describes one catalog listing. Zero fields do not filter.
type Query struct {
	Type    models.MovieType
	Genre   string  // genre slug
	Country string  // country slug
	Year    *int
	Text    *string // when set, a blank text matches nothing
	Sort    string
	Page    int // 1-indexed, 0 means the first page
}

// Validate reports malformed query parameters
func (q Query) Validate() error {
	if q.Type != "" && !q.Type.Valid() {
		return ErrInvalidType
	}
	if q.Sort != "" && !models.In(q.Sort, SortSafelist...) {
		return ErrInvalidSort
	}
	if q.Page < 0 {
		return ErrInvalidPage
	}
	return nil
}

// Run filters, sorts and paginates records
func Run(records []models.MovieRecord, q Query) (Page, error) {
	if err := q.Validate(); err != nil {
		return Page{}, err
	}

	out := records
	if q.Type != "" {
		out, _ = FilterByType(out, q.Type)
	}
	if q.Genre != "" {
		out = FilterByGenre(out, q.Genre)
	}
	if q.Country != "" {
		out = FilterByCountry(out, q.Country)
	}
	if q.Year != nil {
		out = FilterByYear(out, *q.Year)
	}
	if q.Text != nil {
		out = Search(out, *q.Text)
	}

	out = slices.Clone(out)
	if err := SortRecords(out, q.Sort); err != nil {
		return Page{}, err
	}

	page := q.Page
	if page == 0 {
		page = 1
	}
	return Paginate(out, page)
}

// FilterByType keeps records of type t; t must be movie or series
func FilterByType(records []models.MovieRecord, t models.MovieType) ([]models.MovieRecord, error) {
	if !t.Valid() {
		return nil, ErrInvalidType
	}
	return filter(records, func(m models.MovieRecord) bool { return m.Type == t }), nil
}

// FilterByGenre keeps records with at least one genre whose slug equals slug.
// Records without genres never match.
func FilterByGenre(records []models.MovieRecord, slug string) []models.MovieRecord {
	slug = FacetSlug(slug)
	return filter(records, func(m models.MovieRecord) bool { return anySlugMatches(m.Genres, slug) })
}

// FilterByCountry is FilterByGenre over countries
func FilterByCountry(records []models.MovieRecord, slug string) []models.MovieRecord {
	slug = FacetSlug(slug)
	return filter(records, func(m models.MovieRecord) bool { return anySlugMatches(m.Countries, slug) })
}

// FilterByYear keeps records released in year
func FilterByYear(records []models.MovieRecord, year int) []models.MovieRecord {
	return filter(records, func(m models.MovieRecord) bool { return m.ReleaseYear == year })
}

// Search matches text case-insensitively against title and original title.
// Blank text yields an empty result, never the whole catalog.
func Search(records []models.MovieRecord, text string) []models.MovieRecord {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return []models.MovieRecord{}
	}
	return filter(records, func(m models.MovieRecord) bool {
		if strings.Contains(strings.ToLower(m.Title), needle) {
			return true
		}
		return m.OriginalTitle != nil && strings.Contains(strings.ToLower(*m.OriginalTitle), needle)
	})
}

// SortRecords sorts in place. The empty key keeps catalog order; ties are
// broken by ascending id.
func SortRecords(records []models.MovieRecord, sort string) error {
	if sort == "" {
		sort = "id"
	}
	if !models.In(sort, SortSafelist...) {
		return ErrInvalidSort
	}

	desc := strings.HasPrefix(sort, "-")
	var key func(a, b models.MovieRecord) int
	switch strings.TrimPrefix(sort, "-") {
	case "id":
		key = func(a, b models.MovieRecord) int { return cmp.Compare(a.ID, b.ID) }
	case "title":
		key = func(a, b models.MovieRecord) int {
			return cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}
	case "year":
		key = func(a, b models.MovieRecord) int { return cmp.Compare(a.ReleaseYear, b.ReleaseYear) }
	case "rating":
		key = func(a, b models.MovieRecord) int { return cmp.Compare(ratingOf(a), ratingOf(b)) }
	case "created":
		key = func(a, b models.MovieRecord) int { return a.CreatedAt.Compare(b.CreatedAt) }
	}

	slices.SortStableFunc(records, func(a, b models.MovieRecord) int {
		c := key(a, b)
		if desc {
			c = -c
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return nil
}

// ratingOf sorts unrated records below any rating
func ratingOf(m models.MovieRecord) int {
	if m.Rating == nil {
		return -1
	}
	return *m.Rating
}

func anySlugMatches(names []string, slug string) bool {
	for _, n := range names {
		if FacetSlug(n) == slug {
			return true
		}
	}
	return false
}

func filter(records []models.MovieRecord, keep func(models.MovieRecord) bool) []models.MovieRecord {
	out := make([]models.MovieRecord, 0, len(records))
	for _, rec := range records {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}
