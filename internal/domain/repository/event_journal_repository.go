package repository

import (
	"context"
	"time"

	"glpmap/internal/domain/service"
)

// JournalEntry is one map event received by the worker.
type JournalEntry struct {
	MessageID  string            `json:"message_id"`
	ReceivedAt time.Time         `json:"received_at"`
	Event      *service.MapEvent `json:"event"`
}

// JournalFilter narrows a journal query. Zero values match everything.
type JournalFilter struct {
	SessionID string
	Type      string
	Limit     int
}

// EventJournalRepository keeps the most recent map events.
type EventJournalRepository interface {
	// Append stores an entry. It reports false when the message id was already stored, which
	// happens when the broker redelivers a push.
	Append(ctx context.Context, entry *JournalEntry) (bool, error)

	// List returns matching entries, newest first.
	List(ctx context.Context, filter JournalFilter) ([]*JournalEntry, error)
}
