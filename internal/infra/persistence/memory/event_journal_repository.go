package memory

import (
	"context"
	"sync"

	"glpmap/internal/domain/repository"
)

// eventJournalRepository is a fixed-size ring of journal entries.
type eventJournalRepository struct {
	mu      sync.RWMutex
	entries []*repository.JournalEntry
	next    int
	full    bool
	seen    map[string]struct{}
}

// NewEventJournalRepository creates a journal keeping at most capacity entries.
func NewEventJournalRepository(capacity int) repository.EventJournalRepository {
	if capacity <= 0 {
		capacity = 1
	}

	return &eventJournalRepository{
		entries: make([]*repository.JournalEntry, capacity),
		seen:    make(map[string]struct{}, capacity),
	}
}

func (r *eventJournalRepository) Append(_ context.Context, entry *repository.JournalEntry) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.MessageID != "" {
		if _, dup := r.seen[entry.MessageID]; dup {
			return false, nil
		}
	}

	if old := r.entries[r.next]; old != nil && old.MessageID != "" {
		delete(r.seen, old.MessageID)
	}
	r.entries[r.next] = entry
	if entry.MessageID != "" {
		r.seen[entry.MessageID] = struct{}{}
	}

	r.next++
	if r.next == len(r.entries) {
		r.next = 0
		r.full = true
	}

	return true, nil
}

func (r *eventJournalRepository) List(_ context.Context, filter repository.JournalFilter) ([]*repository.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	size := r.next
	if r.full {
		size = len(r.entries)
	}

	var out []*repository.JournalEntry
	for i := 1; i <= size; i++ {
		entry := r.entries[(r.next-i+len(r.entries))%len(r.entries)]
		if filter.SessionID != "" && entry.Event.SessionID != filter.SessionID {
			continue
		}
		if filter.Type != "" && entry.Event.Type != filter.Type {
			continue
		}
		out = append(out, entry)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}

	return out, nil
}
