package client

import (
	"context"
	"strings"
	"sync"
	"time"

	"filmhay-backend/models"
)

// DefaultSearchDelay is how long input must settle before a search is sent
const DefaultSearchDelay = 300 * time.Millisecond

// SearchResult is the outcome of one settled search input
type SearchResult struct {
	Query  string
	Movies []models.MovieRecord
	Err    error
}

// SearchDebouncer turns a stream of keystroke-level inputs into searches.
// Each new input cancels the pending timer and any in-flight request, and
// only the result for the latest input is ever delivered.
type SearchDebouncer struct {
	client *Client
	delay  time.Duration

	mu      sync.Mutex
	seq     uint64
	timer   *time.Timer
	cancel  context.CancelFunc
	closed  bool
	results chan SearchResult
}

// NewSearchDebouncer creates a debouncer; delay <= 0 uses DefaultSearchDelay
func NewSearchDebouncer(c *Client, delay time.Duration) *SearchDebouncer {
	if delay <= 0 {
		delay = DefaultSearchDelay
	}
	return &SearchDebouncer{
		client:  c,
		delay:   delay,
		results: make(chan SearchResult, 1),
	}
}

// Results delivers settled results. An undelivered result is replaced by a
// newer one, so readers never see a stale query. The channel is closed by
// Close.
func (d *SearchDebouncer) Results() <-chan SearchResult {
	return d.results
}

// Input records the latest search text. Blank text clears the results
// without a request.
func (d *SearchDebouncer) Input(ctx context.Context, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}

	d.seq++
	seq := d.seq
	d.stopLocked()

	if strings.TrimSpace(text) == "" {
		d.publishLocked(SearchResult{Query: text, Movies: []models.MovieRecord{}})
		return
	}

	reqCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.timer = time.AfterFunc(d.delay, func() {
		movies, err := d.client.Search(reqCtx, text)
		if reqCtx.Err() != nil {
			return
		}
		d.deliver(seq, SearchResult{Query: text, Movies: movies, Err: err})
	})
}

// Close cancels pending work and closes the results channel
func (d *SearchDebouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.closed = true
	d.seq++
	d.stopLocked()
	close(d.results)
}

func (d *SearchDebouncer) deliver(seq uint64, res SearchResult) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed || seq != d.seq {
		return
	}
	d.publishLocked(res)
}

// publishLocked replaces any unread result. Only holders of mu send, so the
// send never blocks.
func (d *SearchDebouncer) publishLocked(res SearchResult) {
	select {
	case <-d.results:
	default:
	}
	d.results <- res
}

func (d *SearchDebouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}
