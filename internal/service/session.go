package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/bus-ticket/backend/internal/domain"
)

type session struct {
	form     *FormController
	lastSeen time.Time
}

// SessionStore keeps one FormController per browser session, in memory.
// Sessions idle for longer than the TTL are dropped by Prune.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*session
	ttl      time.Duration
	now      func() time.Time
	log      *slog.Logger
}

// NewSessionStore constructs an empty store. A zero ttl disables pruning.
func NewSessionStore(log *slog.Logger, ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[uuid.UUID]*session),
		ttl:      ttl,
		now:      time.Now,
		log:      log,
	}
}

// Create starts a new session with an empty form.
func (s *SessionStore) Create() (uuid.UUID, *FormController) {
	id := uuid.New()
	form := NewFormController()

	log := s.log.With("session_id", id.String())
	form.Observe(func(st State) {
		log.Debug("form state changed", "visible", st.Visible, "title", st.Title)
	})

	s.mu.Lock()
	s.sessions[id] = &session{form: form, lastSeen: s.now()}
	s.mu.Unlock()

	return id, form
}

// Get returns the form for id and marks the session as active.
// Returns domain.ErrNotFound for unknown or pruned sessions.
func (s *SessionStore) Get(id uuid.UUID) (*FormController, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("service.SessionStore.Get: session %s: %w", id, domain.ErrNotFound)
	}
	sess.lastSeen = s.now()
	return sess.form, nil
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Prune drops sessions idle for longer than the TTL and returns how many
// were removed.
func (s *SessionStore) Prune() int {
	if s.ttl <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// RunPruner calls Prune every interval until ctx is cancelled.
func (s *SessionStore) RunPruner(ctx context.Context, interval time.Duration) {
	if s.ttl <= 0 || interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := s.Prune(); n > 0 {
				s.log.Info("pruned idle sessions", "count", n, "remaining", s.Len())
			}
		}
	}
}
