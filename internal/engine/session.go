// FILE: internal/engine/session.go
package engine

import "sync"

// Session is the per-user conversation state plus accumulated answers.
// Advance serializes on the embedded mutex, so near-simultaneous messages
// for the same user cannot both validate against stale answers.
type Session struct {
	mu      sync.Mutex
	UserID  int64
	State   State
	Answers map[string]string
}

func NewSession(userID int64) *Session {
	return &Session{
		UserID:  userID,
		State:   StateIdle,
		Answers: make(map[string]string),
	}
}

// resetTo discards accumulated answers and jumps to the given state. Entry
// commands use this as the hard-reset policy: restart overrides any
// in-progress flow.
func (s *Session) resetTo(state State) {
	s.State = state
	s.Answers = make(map[string]string)
}

// CurrentState returns the state under the session lock, for callers outside
// an Advance (tests, diagnostics).
func (s *Session) CurrentState() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.State
}

// Answer returns a recorded answer under the session lock.
func (s *Session) Answer(field string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.Answers[field]
	return v, ok
}
