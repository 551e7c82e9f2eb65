// Package session holds runtime state for the active controller.
package session

import (
	"sync"

	"github.com/frudas24/winsim/internal/simulate"
)

// Snapshot represents a read-only view of the current session state.
type Snapshot struct {
	Authenticated bool
	InputEnabled  bool
	MoveSpace     simulate.Space
	Actions       uint64
}

// Session holds runtime state for the active controller.
type Session struct {
	mu            sync.RWMutex
	password      string
	authenticated bool
	inputEnabled  bool
	moveSpace     simulate.Space
	actions       uint64
}

// New returns an initialized session with the given password.
func New(password string, space simulate.Space) *Session {
	if space == "" {
		space = simulate.VirtualDesk
	}
	return &Session{
		password:     password,
		inputEnabled: true,
		moveSpace:    space,
	}
}

// Authenticate validates the password and marks the session as authenticated.
func (s *Session) Authenticate(pass string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pass != "" && pass == s.password {
		s.authenticated = true
		return true
	}
	s.authenticated = false
	return false
}

// Logout clears authentication state.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = false
}

// IsAuthenticated reports whether the session is authenticated.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// SetInputEnabled toggles whether inputs are forwarded to the host.
func (s *Session) SetInputEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputEnabled = enabled
}

// InputEnabled reports whether inputs are forwarded to the host.
func (s *Session) InputEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inputEnabled
}

// SetMoveSpace selects the coordinate space used for cursor moves.
func (s *Session) SetMoveSpace(space simulate.Space) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.moveSpace = space
}

// MoveSpace returns the coordinate space used for cursor moves.
func (s *Session) MoveSpace() simulate.Space {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.moveSpace
}

// RecordAction counts an action delivered to the host.
func (s *Session) RecordAction() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actions++
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Authenticated: s.authenticated,
		InputEnabled:  s.inputEnabled,
		MoveSpace:     s.moveSpace,
		Actions:       s.actions,
	}
}
