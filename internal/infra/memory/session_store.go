package memory

import (
	"sync"

	"exam-review-service/internal/game"
)

// SessionStore is an in-memory implementation of app.SessionRepository.
// One active session per player; Put replaces any previous one.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*game.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*game.Session),
	}
}

func (s *SessionStore) Put(playerID string, session *game.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[playerID] = session
}

func (s *SessionStore) Get(playerID string) (*game.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[playerID]
	return session, ok
}

func (s *SessionStore) Delete(playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, playerID)
}
