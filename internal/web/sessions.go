package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kayan-consulting/kayan/internal/core"
	"github.com/kayan-consulting/kayan/internal/i18n"
	"github.com/kayan-consulting/kayan/internal/models"
)

const sessionCookie = "kayan_session"

// SessionStore keeps one view state per browser in memory.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*core.SessionState
	ttl      time.Duration
	fallback i18n.Language
}

func NewSessionStore(ttl time.Duration, fallback i18n.Language) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*core.SessionState),
		ttl:      ttl,
		fallback: fallback,
	}
}

// Get returns the caller's session, creating one and setting the cookie if
// the request carries no known id. New sessions start in the language the
// browser prefers.
func (s *SessionStore) Get(w http.ResponseWriter, r *http.Request) *core.SessionState {
	if sess, ok := s.lookup(r); ok {
		return sess
	}

	id := uuid.NewString()
	sess := core.NewSessionState(s.initial(r))

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.ttl.Seconds()),
	})
	return sess
}

// View returns the caller's current view state without creating a session.
// Visitors that only read the page are served a fresh state that is never
// stored.
func (s *SessionStore) View(r *http.Request) models.AppModel {
	if sess, ok := s.lookup(r); ok {
		return sess.Snapshot()
	}
	return s.initial(r)
}

func (s *SessionStore) lookup(r *http.Request) (*core.SessionState, bool) {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return nil, false
	}
	s.mu.Lock()
	sess, ok := s.sessions[c.Value]
	s.mu.Unlock()
	if ok {
		sess.Touch()
	}
	return sess, ok
}

func (s *SessionStore) initial(r *http.Request) models.AppModel {
	return models.NewAppModel(i18n.Match(r.Header.Get("Accept-Language"), s.fallback))
}

// Sweep drops sessions idle for longer than the TTL and reports how many
// were removed.
func (s *SessionStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		if sess.IdleSince(now) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
