package browse

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sweetbird/sweet-catalog/internal/catalog"
	"github.com/sweetbird/sweet-catalog/internal/model"
)

// FailureNone is the lastFailure value while no failed fetch is on record
const FailureNone = catalog.FailureKind("")

// Session holds the state for one catalog browsing session. It is created
// when the screen comes up and discarded when the screen is torn down;
// nothing in it survives a relaunch.
type Session struct {
	mu      sync.RWMutex
	fetcher catalog.Fetcher

	items       []model.CatalogItem // displayable records, API response order
	searchText  string
	loading     bool
	selected    *url.URL
	lastFailure catalog.FailureKind // FailureNone after a successful fetch

	// currentFetch tags the one fetch whose settlement may touch state.
	// A fetch started later replaces the token, so a slow earlier fetch
	// settles into nothing instead of overwriting newer results.
	currentFetch string

	onUpdate func() // callback for UI updates
}

// NewSession creates a session backed by the given catalog client
func NewSession(fetcher catalog.Fetcher) *Session {
	return &Session{
		fetcher: fetcher,
	}
}

// SetUpdateCallback sets the callback invoked after every state change.
// The callback may run on a background goroutine; the UI layer is expected
// to marshal onto its own thread (fyne.Do).
func (s *Session) SetUpdateCallback(callback func()) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// StartFetch begins a catalog fetch on a background goroutine. Items and the
// loading flag are replaced together when the fetch settles. If a second
// fetch starts while one is outstanding, the earlier one is superseded: its
// settlement is discarded, and the newest fetch alone decides the state.
func (s *Session) StartFetch(ctx context.Context) {
	token := newFetchToken()

	s.mu.Lock()
	s.currentFetch = token
	s.loading = true
	s.mu.Unlock()
	s.notifyUpdate()

	go func() {
		items, err := s.fetcher.FetchItems(ctx)
		s.settleFetch(token, items, err)
	}()
}

// settleFetch applies one fetch result, unless a newer fetch took over
func (s *Session) settleFetch(token string, items []model.CatalogItem, err error) {
	s.mu.Lock()
	if token != s.currentFetch {
		s.mu.Unlock()
		log.Printf("Discarding superseded fetch result (token %s)", token)
		return
	}

	if err != nil {
		kind := catalog.KindOf(err)
		log.Printf("Catalog fetch failed (%s): %v", kind, err)
		s.items = nil
		s.lastFailure = kind
	} else {
		s.items = items
		s.lastFailure = FailureNone
	}
	s.loading = false
	s.mu.Unlock()

	s.notifyUpdate()
}

// SetSearchText replaces the search text verbatim, no trimming
func (s *Session) SetSearchText(text string) {
	s.mu.Lock()
	s.searchText = text
	s.mu.Unlock()
	s.notifyUpdate()
}

// FilteredItems returns the items whose name contains the current search
// text case-insensitively, preserving response order. With empty search text
// it returns all items. Pure read, safe to call at any time.
func (s *Session) FilteredItems() []model.CatalogItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := make([]model.CatalogItem, 0, len(s.items))
	for _, item := range s.items {
		if item.MatchesSearch(s.searchText) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// SelectItem validates the item's detail URL and stores it as the selected
// target. An item with a missing or malformed URL leaves the selection
// unchanged; the caller may ignore the returned error, matching the
// tap-does-nothing behavior the UI wants for broken records.
func (s *Session) SelectItem(item model.CatalogItem) error {
	target, err := parseDetailURL(item.URL)
	if err != nil {
		log.Printf("Ignoring selection of %q: %v", item.GetDisplayTitle(), err)
		return err
	}

	s.mu.Lock()
	s.selected = target
	s.mu.Unlock()
	s.notifyUpdate()
	return nil
}

// ClearSelection resets the selected target, so dismissing the detail viewer
// does not reopen the same page
func (s *Session) ClearSelection() {
	s.mu.Lock()
	s.selected = nil
	s.mu.Unlock()
	s.notifyUpdate()
}

// Items returns a snapshot of all displayable records
func (s *Session) Items() []model.CatalogItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.CatalogItem(nil), s.items...)
}

// SearchText returns the current search text
func (s *Session) SearchText() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchText
}

// Loading returns true while a fetch is outstanding
func (s *Session) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Selected returns the current detail target, or nil if none
func (s *Session) Selected() *url.URL {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// LastFailure returns the failure kind of the most recent settled fetch,
// or FailureNone if it succeeded
func (s *Session) LastFailure() catalog.FailureKind {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastFailure
}

// notifyUpdate calls the update callback if set
func (s *Session) notifyUpdate() {
	s.mu.RLock()
	callback := s.onUpdate
	s.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

// parseDetailURL validates that a record's detail link is an absolute
// http(s) URL
func parseDetailURL(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, fmt.Errorf("record has no detail URL")
	}

	target, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if (target.Scheme != "http" && target.Scheme != "https") || target.Host == "" {
		return nil, fmt.Errorf("detail URL %q is not an absolute http(s) URL", raw)
	}
	return target, nil
}

// newFetchToken generates a unique token for one fetch attempt
func newFetchToken() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails if the entropy source does; fall back to a
		// timestamp token rather than aborting the fetch
		return fmt.Sprintf("fetch-%d", time.Now().UnixNano())
	}
	return id.String()
}
