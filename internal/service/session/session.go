package session

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
	"github.com/MadScie254/Bordaless-SKU-Lab/internal/service/catalog"
)

// Session holds one client's filter state and the query sequence counter.
type Session struct {
	mu       sync.Mutex
	clientID string
	state    model.FilterState
	bounds   model.Bounds
	issued   uint64
	inFlight int
	lastSeen time.Time
}

func newSession(clientID string, bounds model.Bounds) *Session {
	return &Session{
		clientID: clientID,
		state:    model.FullFilter(bounds),
		bounds:   bounds,
		lastSeen: time.Now(),
	}
}

func (s *Session) ClientID() string { return s.clientID }

func (s *Session) State() model.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Busy reports whether an interpreter request is in flight.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight > 0
}

func (s *Session) SetSearchTerm(term string) model.FilterState {
	return s.update(func(st *model.FilterState) { st.SearchTerm = term })
}

func (s *Session) SetPriceRange(r model.Range[float64]) model.FilterState {
	return s.update(func(st *model.FilterState) { st.PriceRange = r })
}

func (s *Session) SetMOQRange(r model.Range[int64]) model.FilterState {
	return s.update(func(st *model.FilterState) { st.MOQRange = r })
}

func (s *Session) SetCountries(countries []string) model.FilterState {
	cleaned := make([]string, 0, len(countries))
	for _, c := range countries {
		if c = strings.TrimSpace(c); c != "" && !slices.Contains(cleaned, c) {
			cleaned = append(cleaned, c)
		}
	}
	return s.update(func(st *model.FilterState) { st.SelectedCountries = cleaned })
}

// ToggleCountry adds or removes a single country from the selection.
func (s *Session) ToggleCountry(country string) model.FilterState {
	return s.update(func(st *model.FilterState) {
		if i := slices.Index(st.SelectedCountries, country); i >= 0 {
			st.SelectedCountries = slices.Delete(slices.Clone(st.SelectedCountries), i, i+1)
			return
		}
		st.SelectedCountries = append(slices.Clone(st.SelectedCountries), country)
	})
}

// SetViewMode does not touch the fields an interpreter result writes, so a
// pending search still applies after it.
func (s *Session) SetViewMode(mode model.ViewMode) model.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ViewMode = mode
	return s.state.Clone()
}

// Reset restores full ranges, clears search and countries, and shows all batches.
// Pending searches are superseded.
func (s *Session) Reset() model.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	s.state = model.FullFilter(s.bounds)
	return s.state.Clone()
}

func (s *Session) Bounds() model.Bounds {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bounds
}

func (s *Session) reclamp(next model.Bounds) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = catalog.Reclamp(s.state, s.bounds, next)
	s.bounds = next
}

// update applies a direct edit. It advances the sequence so that an
// interpreter result still in flight is discarded as stale.
func (s *Session) update(fn func(st *model.FilterState)) model.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	fn(&s.state)
	return s.state.Clone()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) idleSince(now time.Time) (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen), s.inFlight > 0
}

// begin issues the next query sequence number and marks the session busy.
func (s *Session) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	s.inFlight++
	return s.issued
}

// commit applies fn only when seq is still the latest issued sequence.
// It always clears the in-flight mark taken by begin.
func (s *Session) commit(seq uint64, fn func(st *model.FilterState, bounds model.Bounds)) (model.FilterState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight--
	if seq != s.issued {
		return s.state.Clone(), false
	}
	fn(&s.state, s.bounds)
	return s.state.Clone(), true
}
