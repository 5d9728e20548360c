package services

import "filmhay-backend/models"

// PageSize is the fixed number of records per listing page
const PageSize = 20

// PageMetadata describes where a page sits in the full result
type PageMetadata struct {
	CurrentPage  int `json:"currentPage"`
	PageSize     int `json:"pageSize"`
	TotalPages   int `json:"totalPages"`
	TotalRecords int `json:"totalRecords"`
}

// Page is one slice of a listing
type Page struct {
	Movies   []models.MovieRecord `json:"movies"`
	Metadata PageMetadata         `json:"metadata"`
}

// Paginate returns records [(page-1)*PageSize, page*PageSize). Pages past the
// end are empty, not an error.
func Paginate(records []models.MovieRecord, page int) (Page, error) {
	if page < 1 {
		return Page{}, ErrInvalidPage
	}

	total := len(records)
	meta := PageMetadata{
		CurrentPage:  page,
		PageSize:     PageSize,
		TotalPages:   (total + PageSize - 1) / PageSize,
		TotalRecords: total,
	}

	// page <= TotalPages keeps the offset within len(records)
	if page > meta.TotalPages {
		return Page{Movies: []models.MovieRecord{}, Metadata: meta}, nil
	}
	start := (page - 1) * PageSize
	end := min(start+PageSize, total)

	movies := make([]models.MovieRecord, end-start)
	copy(movies, records[start:end])
	return Page{Movies: movies, Metadata: meta}, nil
}
