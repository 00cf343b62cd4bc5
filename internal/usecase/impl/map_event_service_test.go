package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"glpmap/internal/domain/constants"
	"glpmap/internal/domain/repository"
	"glpmap/internal/domain/service"
	"glpmap/internal/infra/persistence/memory"
	mockRepo "glpmap/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func delivered(session, order string) *service.MapEvent {
	return &service.MapEvent{
		SessionID: session,
		Type:      constants.MapEventOrderDelivered,
		EntityID:  order,
		Minute:    20,
		Clock:     "D0 00:20",
	}
}

func TestMapEventService_Record(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewMapEventService(memory.NewEventJournalRepository(10), logger)

	res, err := svc.Record(ctx, "m-1", delivered("s-1", "O-1"))
	require.NoError(t, err)
	assert.True(t, res.Stored)

	res, err = svc.Record(ctx, "m-1", delivered("s-1", "O-1"))
	require.NoError(t, err)
	assert.False(t, res.Stored)
	assert.True(t, res.Duplicate)

	_, err = svc.Record(ctx, "m-2", delivered("s-2", "O-7"))
	require.NoError(t, err)

	entries, err := svc.Recent(ctx, repository.JournalFilter{SessionID: "s-1"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "O-1", entries[0].Event.EntityID)
	assert.False(t, entries[0].ReceivedAt.IsZero())

	entries, err = svc.Recent(ctx, repository.JournalFilter{})
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestMapEventService_RecordRejectsInvalidEvents(t *testing.T) {
	ctx := context.Background()
	svc := NewMapEventService(memory.NewEventJournalRepository(10), slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name  string
		event *service.MapEvent
	}{
		{name: "nil event", event: nil},
		{name: "missing session", event: &service.MapEvent{Type: constants.MapEventSessionCreated}},
		{name: "unknown type", event: &service.MapEvent{SessionID: "s", Type: "vehicle.exploded"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Record(ctx, "m", tt.event)
			assertErrorCode(t, err, "VALIDATION_FAILED")
		})
	}

	_, err := svc.Recent(ctx, repository.JournalFilter{Limit: -1})
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestMapEventService_JournalFailure(t *testing.T) {
	ctx := context.Background()
	journal := mockRepo.NewMockEventJournalRepository(t)
	journal.EXPECT().Append(mock.Anything, mock.Anything).Return(false, errors.New("disk full"))
	journal.EXPECT().List(mock.Anything, repository.JournalFilter{Limit: maxRecentEvents}).Return(nil, errors.New("disk full"))

	svc := NewMapEventService(journal, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := svc.Record(ctx, "m-1", delivered("s", "O-1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	_, err = svc.Recent(ctx, repository.JournalFilter{})
	require.Error(t, err)
}
