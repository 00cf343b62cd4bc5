// Package memory keeps map sessions and the map event journal in process memory.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"glpmap/internal/domain/repository"
	"glpmap/internal/mapview/scene"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*scene.Session
}

// NewSessionRepository creates an empty in-memory session store.
func NewSessionRepository() repository.SessionRepository {
	return &sessionRepository{
		sessions: make(map[uuid.UUID]*scene.Session),
	}
}

func (r *sessionRepository) Create(_ context.Context, session *scene.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; exists {
		return errors.WithStack(repository.ErrDuplicateSession)
	}
	r.sessions[session.ID] = session

	return nil
}

func (r *sessionRepository) Get(_ context.Context, id uuid.UUID) (*scene.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, errors.WithStack(repository.ErrSessionNotFound)
	}

	return session, nil
}

func (r *sessionRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return errors.WithStack(repository.ErrSessionNotFound)
	}
	delete(r.sessions, id)

	return nil
}

func (r *sessionRepository) List(_ context.Context) ([]*scene.Session, error) {
	r.mu.RLock()
	sessions := make([]*scene.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}
	r.mu.RUnlock()

	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].CreatedAt.Equal(sessions[j].CreatedAt) {
			return sessions[i].ID.String() < sessions[j].ID.String()
		}

		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})

	return sessions, nil
}

func (r *sessionRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions), nil
}

func (r *sessionRepository) Touch(_ context.Context, id uuid.UUID, at time.Time) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return errors.WithStack(repository.ErrSessionNotFound)
	}
	session.Touch(at)

	return nil
}

func (r *sessionRepository) EvictIdle(_ context.Context, cutoff time.Time) ([]uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var evicted []uuid.UUID
	for id, s := range r.sessions {
		if s.LastAccess().Before(cutoff) {
			delete(r.sessions, id)
			evicted = append(evicted, id)
		}
	}
	sort.Slice(evicted, func(i, j int) bool { return evicted[i].String() < evicted[j].String() })

	return evicted, nil
}
