package web

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ivf-predictor/webclient/internal/view"
	"github.com/rs/zerolog/log"
)

// Session is one browser's page: its output regions and the controller driving them.
type Session struct {
	ID         string
	View       *View
	Controller *view.Controller

	lastSeen time.Time
}

// ControllerFactory builds the controller for a new session's view.
type ControllerFactory func(display view.Display) *view.Controller

// SessionStore keeps one Session per browser and evicts idle ones. When maxSessions is positive,
// creating a session beyond it evicts the least recently seen one.
type SessionStore struct {
	ttl         time.Duration
	maxSessions int
	factory     ControllerFactory
	now         func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessionStore creates a store; maxSessions <= 0 leaves the session count unbounded.
func NewSessionStore(ttl time.Duration, maxSessions int, factory ControllerFactory) *SessionStore {
	return &SessionStore{
		ttl:         ttl,
		maxSessions: maxSessions,
		factory:     factory,
		now:         time.Now,
		sessions:    make(map[string]*Session),
	}
}

// Get returns the live session for id, creating a new one when id is empty, unknown or expired.
func (s *SessionStore) Get(id string) *Session {
	s.mu.Lock()

	now := s.now()
	if sess, ok := s.sessions[id]; ok && now.Sub(sess.lastSeen) < s.ttl {
		sess.lastSeen = now
		s.mu.Unlock()
		return sess
	}

	var evicted []*Session
	if sess, ok := s.sessions[id]; ok {
		delete(s.sessions, id)
		evicted = append(evicted, sess)
	}
	for s.maxSessions > 0 && len(s.sessions) >= s.maxSessions {
		evicted = append(evicted, s.evictOldest())
	}

	v := NewView()
	sess := &Session{
		ID:         uuid.NewString(),
		View:       v,
		Controller: s.factory(v),
		lastSeen:   now,
	}
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	closeSessions(evicted)
	return sess
}

// evictOldest must be called with s.mu held and at least one session stored.
func (s *SessionStore) evictOldest() *Session {
	var oldest *Session
	for _, sess := range s.sessions {
		if oldest == nil || sess.lastSeen.Before(oldest.lastSeen) {
			oldest = sess
		}
	}
	delete(s.sessions, oldest.ID)
	return oldest
}

// Len returns the number of tracked sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep closes and drops sessions idle for at least the TTL. It returns how many were evicted.
func (s *SessionStore) Sweep() int {
	s.mu.Lock()
	now := s.now()
	var expired []*Session
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) >= s.ttl {
			expired = append(expired, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	closeSessions(expired)
	return len(expired)
}

// Run sweeps every interval until ctx is done, then closes every session.
func (s *SessionStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.closeAll()
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				log.Debug().Int("evicted", n).Msg("Evicted idle sessions")
			}
		}
	}
}

func (s *SessionStore) closeAll() {
	s.mu.Lock()
	all := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		all = append(all, sess)
	}
	s.sessions = make(map[string]*Session)
	s.mu.Unlock()

	closeSessions(all)
}

func closeSessions(sessions []*Session) {
	for _, sess := range sessions {
		if err := sess.Controller.Close(); err != nil {
			log.Warn().Err(err).Str("session_id", sess.ID).Msg("Failed to close session")
		}
	}
}
