package service

import (
	"context"

	"glpmap/internal/domain/entity"
)

// SnapshotSource supplies the snapshot used to seed new map sessions
type SnapshotSource interface {
	// LoadSnapshot reads and validates a snapshot
	LoadSnapshot(ctx context.Context) (*entity.Snapshot, error)

	// Describe names the source for logs and error details
	Describe() string
}
