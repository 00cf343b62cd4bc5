package scene

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Session couples a World with its evolving State. Every event of a session must run while
// holding its lock, which gives each session a single logical thread.
type Session struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	World     *World

	mu         sync.Mutex
	state      State
	lastAccess atomic.Int64
}

// NewSession creates a session in its initial state.
func NewSession(id uuid.UUID, name string, world *World, state State, now time.Time) *Session {
	s := &Session{
		ID:        id,
		Name:      name,
		CreatedAt: now,
		World:     world,
		state:     state,
	}
	s.Touch(now)

	return s
}

// Lock acquires exclusive access to the session state.
func (s *Session) Lock() {
	s.mu.Lock()
}

// Unlock releases the session state.
func (s *Session) Unlock() {
	s.mu.Unlock()
}

// State returns the current state. The caller must hold the lock.
func (s *Session) State() State {
	return s.state
}

// SetState replaces the current state. The caller must hold the lock.
func (s *Session) SetState(state State) {
	s.state = state
}

// Touch records an access at now.
func (s *Session) Touch(now time.Time) {
	s.lastAccess.Store(now.UnixNano())
}

// LastAccess returns the time of the latest access.
func (s *Session) LastAccess() time.Time {
	return time.Unix(0, s.lastAccess.Load())
}
