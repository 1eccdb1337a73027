package core

import (
	"sync"
	"time"

	"github.com/kayan-consulting/kayan/internal/models"
)

// SessionState guards one visitor's view state when it is shared between
// request handlers and background reply goroutines.
type SessionState struct {
	mu       sync.RWMutex
	model    models.AppModel
	lastSeen time.Time
}

func NewSessionState(model models.AppModel) *SessionState {
	return &SessionState{model: model, lastSeen: time.Now()}
}

// Update applies fn to the view state atomically and marks the session as
// used.
func (s *SessionState) Update(fn func(m *models.AppModel)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.model)
	s.lastSeen = time.Now()
}

// Snapshot returns a copy of the view state that is safe to read without
// holding the lock.
func (s *SessionState) Snapshot() models.AppModel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m := s.model
	m.Messages = make([]models.Message, len(s.model.Messages))
	copy(m.Messages, s.model.Messages)
	return m
}

// Touch marks the session as used without changing it.
func (s *SessionState) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
}

// IdleSince reports how long the session has gone unused as of now.
func (s *SessionState) IdleSince(now time.Time) time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return now.Sub(s.lastSeen)
}
