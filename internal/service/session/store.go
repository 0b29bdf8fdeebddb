package session

import (
	"context"
	"sync"
	"time"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
	"github.com/MadScie254/Bordaless-SKU-Lab/platform/logger"
)

type BoundsSource interface {
	Bounds() (model.Bounds, error)
}

type SessionGauge interface {
	SetSessions(n int)
}

// Expirer drops other per-client state idle for longer than ttl.
type Expirer struct {
	Name  string
	Evict func(ttl time.Duration) int
}

// Store keeps one Session per client id.
type Store struct {
	source   BoundsSource
	gauge    SessionGauge
	expirers []Expirer
	now      func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore(source BoundsSource) *Store {
	return &Store{
		source:   source,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Get returns the client's session, creating it with full ranges on first use.
func (s *Store) Get(clientID string) *Session {
	now := s.now()

	s.mu.RLock()
	sess, ok := s.sessions[clientID]
	s.mu.RUnlock()
	if ok {
		sess.touch(now)
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok = s.sessions[clientID]; ok {
		sess.touch(now)
		return sess
	}

	// ErrEmptyCatalog comes back with the fallback bounds.
	bounds, _ := s.source.Bounds()
	sess = newSession(clientID, bounds)
	sess.lastSeen = now
	s.sessions[clientID] = sess
	return sess
}

// ReportTo makes the janitor publish the live session count to g after every sweep.
func (s *Store) ReportTo(g SessionGauge) *Store {
	s.gauge = g
	return s
}

// ExpireWith makes the janitor evict e on every sweep with the session ttl.
func (s *Store) ExpireWith(e ...Expirer) *Store {
	s.expirers = append(s.expirers, e...)
	return s
}

// Reclamp fits every session's ranges into the new catalog bounds.
func (s *Store) Reclamp(_, next model.Bounds) {
	s.mu.RLock()
	sessions := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	s.mu.RUnlock()

	for _, sess := range sessions {
		sess.reclamp(next)
	}
}

// Evict drops sessions idle for longer than ttl. Busy sessions are kept.
func (s *Store) Evict(ttl time.Duration) int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, sess := range s.sessions {
		idle, busy := sess.idleSince(now)
		if busy || idle <= ttl {
			continue
		}
		delete(s.sessions, id)
		evicted++
	}
	return evicted
}

// RunJanitor evicts idle sessions every interval until ctx is done.
func (s *Store) RunJanitor(ctx context.Context, interval, ttl time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.sweep(ctx, ttl)
			if s.gauge != nil {
				s.gauge.SetSessions(s.Len())
			}
		}
	}
}

func (s *Store) sweep(ctx context.Context, ttl time.Duration) {
	if n := s.Evict(ttl); n > 0 {
		logger.Debug(ctx, "idle sessions evicted", logger.Int("count", n))
	}
	for _, e := range s.expirers {
		if n := e.Evict(ttl); n > 0 {
			logger.Debug(ctx, "idle client state evicted",
				logger.String("kind", e.Name),
				logger.Int("count", n),
			)
		}
	}
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
