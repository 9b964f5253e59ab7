package state

import (
	"context"
	"log"

	"github.com/five82/marquee/internal/mdblist"
)

// Session holds everything the search screen renders. The zero value is the
// idle state: empty query, no results, grid hidden.
type Session struct {
	Query   string
	Results []mdblist.Result
	Loading bool
	Visible bool // results grid is shown
}

// SetQuery stores the pending query text.
func (s *Session) SetQuery(text string) {
	s.Query = text
}

// Begin marks the session as searching and returns the query to send. It
// returns false, leaving the session untouched, when the query is empty.
func (s *Session) Begin() (string, bool) {
	if s.Query == "" {
		return "", false
	}
	s.Loading = true
	return s.Query, true
}

// Finish records the outcome of a search started with Begin. A failure is
// logged and otherwise leaves the previous results and visibility in place.
func (s *Session) Finish(query string, results []mdblist.Result, err error) {
	s.Loading = false
	if err != nil {
		log.Printf("search %q failed: %v", query, err)
		return
	}
	s.Results = cloneResults(results)
	s.Visible = true
	log.Printf("search %q returned %d results", query, len(s.Results))
}

// Search runs one blocking search through searcher. Empty queries make no call.
func (s *Session) Search(ctx context.Context, searcher mdblist.Searcher) {
	query, ok := s.Begin()
	if !ok {
		return
	}
	results, err := searcher.Search(ctx, query)
	s.Finish(query, results, err)
}

// Clear returns the session to its initial state.
func (s *Session) Clear() {
	s.Query = ""
	s.Results = []mdblist.Result{}
	s.Visible = false
}

// Snapshot returns a copy that does not share the results slice.
func (s Session) Snapshot() Session {
	snap := s
	if s.Results != nil {
		snap.Results = cloneResults(s.Results)
	}
	return snap
}

func cloneResults(items []mdblist.Result) []mdblist.Result {
	dup := make([]mdblist.Result, len(items))
	copy(dup, items)
	return dup
}
