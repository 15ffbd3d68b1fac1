package session

import (
	"sync"

	"github.com/dmitrijs2005/volunteam/internal/client/models"
)

// State is the process-wide, in-memory authentication state. It is created
// once at startup and passed by handle to every consumer; SetUser is the
// single mutation entry point.
//
// IsAuthenticated is derived solely from user presence. Consumers must not
// infer authentication status any other way (e.g. from token presence alone).
type State struct {
	mu   sync.RWMutex
	user *models.User
}

func NewState() *State {
	return &State{}
}

// SetUser replaces the current user wholesale. Pass nil to clear it.
func (s *State) SetUser(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

func (s *State) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *State) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}
