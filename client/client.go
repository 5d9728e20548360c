// Package client is a typed HTTP client for the catalog API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"filmhay-backend/httpx"
	"filmhay-backend/models"
	"filmhay-backend/services"
)

const maxResponseBytes = 2 << 20

// Client talks to a running catalog API
type Client struct {
	BaseURL string

	HTTP *http.Client
}

// APIError is a non-2xx response decoded from the API's error body
type APIError struct {
	Status  int
	Message string
	Errors  []models.FieldError
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("http %d: %s", e.Status, e.Message)
	}
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return fmt.Sprintf("http %d: %s (%s)", e.Status, e.Message, strings.Join(parts, "; "))
}

// IsNotFound reports whether err is a 404 from the API
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return &http.Client{Timeout: 10 * time.Second}
}

// NewRequest builds a request against BaseURL, encoding body as JSON
func (c *Client) NewRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	if strings.TrimSpace(c.BaseURL) == "" {
		return nil, errors.New("base url is empty")
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	u := strings.TrimRight(c.BaseURL, "/") + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, r)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// Do sends req and decodes a 2xx body into out. Other statuses come back as
// *APIError.
func (c *Client) Do(req *http.Request, out any) error {
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var er httpx.ErrorResponse
		if err := json.Unmarshal(b, &er); err == nil && er.Message != "" {
			apiErr.Message = er.Message
			apiErr.Errors = er.Errors
		} else {
			apiErr.Message = strings.TrimSpace(string(b))
		}
		return apiErr
	}

	if out == nil || len(b) == 0 {
		return nil
	}
	return json.Unmarshal(b, out)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	req, err := c.NewRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return c.Do(req, out)
}

func (c *Client) list(ctx context.Context, path string, query url.Values) ([]models.MovieRecord, error) {
	var out []models.MovieRecord
	if err := c.get(ctx, path, query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) one(ctx context.Context, method, path string, body any) (models.MovieRecord, error) {
	req, err := c.NewRequest(ctx, method, path, nil, body)
	if err != nil {
		return models.MovieRecord{}, err
	}
	var out models.MovieRecord
	if err := c.Do(req, &out); err != nil {
		return models.MovieRecord{}, err
	}
	return out, nil
}

// ListMovies returns the whole catalog
func (c *Client) ListMovies(ctx context.Context) ([]models.MovieRecord, error) {
	return c.list(ctx, "/api/movies", nil)
}

// GetMovie fetches one record by id
func (c *Client) GetMovie(ctx context.Context, id int64) (models.MovieRecord, error) {
	return c.one(ctx, http.MethodGet, "/api/movies/"+strconv.FormatInt(id, 10), nil)
}

// MoviesByType lists movies or series
func (c *Client) MoviesByType(ctx context.Context, t models.MovieType) ([]models.MovieRecord, error) {
	return c.list(ctx, "/api/movies/type/"+url.PathEscape(string(t)), nil)
}

// MoviesByGenre lists records tagged with a genre slug
func (c *Client) MoviesByGenre(ctx context.Context, slug string) ([]models.MovieRecord, error) {
	return c.list(ctx, "/api/movies/genre/"+url.PathEscape(slug), nil)
}

// MoviesByCountry lists records from a country slug
func (c *Client) MoviesByCountry(ctx context.Context, slug string) ([]models.MovieRecord, error) {
	return c.list(ctx, "/api/movies/country/"+url.PathEscape(slug), nil)
}

// MoviesByYear lists records released in year
func (c *Client) MoviesByYear(ctx context.Context, year int) ([]models.MovieRecord, error) {
	return c.list(ctx, "/api/movies/year/"+strconv.Itoa(year), nil)
}

// Search runs a title search
func (c *Client) Search(ctx context.Context, q string) ([]models.MovieRecord, error) {
	return c.list(ctx, "/api/movies/search", url.Values{"q": {q}})
}

// MovieBySlug resolves a title slug
func (c *Client) MovieBySlug(ctx context.Context, slug string) (models.MovieRecord, error) {
	return c.one(ctx, http.MethodGet, "/api/movies/slug/"+url.PathEscape(slug), nil)
}

// Related draws up to limit records sharing a genre with id
func (c *Client) Related(ctx context.Context, id int64, limit int) ([]models.MovieRecord, error) {
	var query url.Values
	if limit > 0 {
		query = url.Values{"limit": {strconv.Itoa(limit)}}
	}
	return c.list(ctx, "/api/movies/"+strconv.FormatInt(id, 10)+"/related", query)
}

// CreateMovie posts a new record
func (c *Client) CreateMovie(ctx context.Context, input models.MovieInput) (models.MovieRecord, error) {
	return c.one(ctx, http.MethodPost, "/api/movies", input)
}

// UpdateMovie applies a partial update; only set fields are sent
func (c *Client) UpdateMovie(ctx context.Context, id int64, patch models.MovieInput) (models.MovieRecord, error) {
	return c.one(ctx, http.MethodPatch, "/api/movies/"+strconv.FormatInt(id, 10), patch)
}

// DeleteMovie removes a record
func (c *Client) DeleteMovie(ctx context.Context, id int64) error {
	req, err := c.NewRequest(ctx, http.MethodDelete, "/api/movies/"+strconv.FormatInt(id, 10), nil, nil)
	if err != nil {
		return err
	}
	return c.Do(req, nil)
}

// Home fetches the landing page feeds
func (c *Client) Home(ctx context.Context) (services.HomeFeeds, error) {
	var out services.HomeFeeds
	err := c.get(ctx, "/api/catalog/home", nil, &out)
	return out, err
}

// Facets fetches the genres, countries and years in the catalog
func (c *Client) Facets(ctx context.Context) (services.Facets, error) {
	var out services.Facets
	err := c.get(ctx, "/api/catalog/facets", nil, &out)
	return out, err
}

// Browse runs a combined, paginated listing query
func (c *Client) Browse(ctx context.Context, q services.Query) (services.Page, error) {
	var out services.Page
	err := c.get(ctx, "/api/catalog/browse", browseValues(q), &out)
	return out, err
}

func browseValues(q services.Query) url.Values {
	v := url.Values{}
	if q.Type != "" {
		v.Set("type", string(q.Type))
	}
	if q.Genre != "" {
		v.Set("genre", q.Genre)
	}
	if q.Country != "" {
		v.Set("country", q.Country)
	}
	if q.Year != nil {
		v.Set("year", strconv.Itoa(*q.Year))
	}
	if q.Text != nil {
		v.Set("q", *q.Text)
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	return v
}
