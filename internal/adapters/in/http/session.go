package http

import (
	"sync"

	"teashop/internal/core/application/usecases/commands"

	"github.com/google/uuid"
)

// Identity is the resolved user attached to a session.
type Identity struct {
	ID   string
	Name string
	Role commands.Role
}

// SessionStore keeps login sessions in process memory. Sessions do not
// survive a restart; users simply log in again.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Identity
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]Identity)}
}

// Create registers a new session for the identity and returns its token.
func (s *SessionStore) Create(identity Identity) string {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = identity

	return token
}

// Get resolves a session token to its identity.
func (s *SessionStore) Get(token string) (Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	identity, ok := s.sessions[token]
	return identity, ok
}

// Delete removes a session. Deleting an unknown token is a no-op.
func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}
