package usecase

import (
	"context"

	"glpmap/internal/domain/repository"
	"glpmap/internal/domain/service"
)

// RecordResult tells the push endpoint how a received event was handled
type RecordResult struct {
	Stored    bool `json:"stored"`
	Duplicate bool `json:"duplicate"`
}

// MapEventUsecase consumes map events pushed by the broker
type MapEventUsecase interface {
	// Record validates an event and appends it to the journal. A redelivered message id is
	// reported as a duplicate and not stored twice.
	Record(ctx context.Context, messageID string, event *service.MapEvent) (*RecordResult, error)

	// Recent lists journal entries, newest first
	Recent(ctx context.Context, filter repository.JournalFilter) ([]*repository.JournalEntry, error)
}
