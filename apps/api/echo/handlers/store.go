package handlers

import (
	"sync"

	"github.com/apnapan/pulse/core/session"
	"github.com/apnapan/pulse/core/survey"
)

// SessionState holds everything one school's browsing session carries: the
// navigation state machine, the last uploaded dataset and its computed
// insights. A dataset lives in memory only; it is discarded on logout or
// server restart and never persisted.
type SessionState struct {
	Session   *session.Session
	Dataset   *survey.Dataset
	Insights  survey.Insights
	Dropped   []string
	Converted []string
}

// SessionStore keys session state by school ID. A school account is operated
// by one person at a time; the store serializes map access but individual
// states are not shared across concurrent requests.
type SessionStore struct {
	mu     sync.Mutex
	states map[string]*SessionState
}

func NewSessionStore() *SessionStore {
	return &SessionStore{states: make(map[string]*SessionState)}
}

// Get returns the state for schoolID, creating a fresh one on the login page
// when none exists.
func (s *SessionStore) Get(schoolID string) *SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[schoolID]
	if !ok {
		st = &SessionState{Session: session.New()}
		s.states[schoolID] = st
	}
	return st
}

// Reset discards any existing state for schoolID and starts over from the
// login page.
func (s *SessionStore) Reset(schoolID string) *SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := &SessionState{Session: session.New()}
	s.states[schoolID] = st
	return st
}
