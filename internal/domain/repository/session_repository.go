// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"glpmap/internal/mapview/scene"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for session storage.
var (
	// ErrSessionNotFound is returned when a session is not found.
	ErrSessionNotFound = errors.New("session not found")
	// ErrDuplicateSession is returned when trying to store a session id twice.
	ErrDuplicateSession = errors.New("session already exists")
)

// SessionRepository stores live map sessions.
type SessionRepository interface {
	// Create stores a new session.
	Create(ctx context.Context, session *scene.Session) error

	// Get retrieves a session by its id.
	Get(ctx context.Context, id uuid.UUID) (*scene.Session, error)

	// Delete removes a session.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns every session ordered by creation time.
	List(ctx context.Context) ([]*scene.Session, error)

	// Count returns the number of stored sessions.
	Count(ctx context.Context) (int, error)

	// Touch records an access to the session.
	Touch(ctx context.Context, id uuid.UUID, at time.Time) error

	// EvictIdle removes the sessions last accessed before cutoff and returns their ids.
	EvictIdle(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error)
}
