package memory

import (
	"context"
	"fmt"
	"testing"

	"glpmap/internal/domain/repository"
	"glpmap/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func journalEntry(i int, session string) *repository.JournalEntry {
	return &repository.JournalEntry{
		MessageID: fmt.Sprintf("m-%d", i),
		Event:     &service.MapEvent{SessionID: session, Type: "order.delivered", EntityID: fmt.Sprintf("O-%d", i)},
	}
}

func TestEventJournalRepository_RingAndOrder(t *testing.T) {
	repo := NewEventJournalRepository(3)
	ctx := context.Background()

	for i := 1; i <= 4; i++ {
		ok, err := repo.Append(ctx, journalEntry(i, "s"))
		require.NoError(t, err)
		assert.True(t, ok)
	}

	entries, err := repo.List(ctx, repository.JournalFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "m-4", entries[0].MessageID)
	assert.Equal(t, "m-2", entries[2].MessageID, "oldest entry was dropped")

	ok, err := repo.Append(ctx, journalEntry(1, "s"))
	require.NoError(t, err)
	assert.True(t, ok, "an evicted message id may be stored again")
}

func TestEventJournalRepository_DeduplicatesAndFilters(t *testing.T) {
	repo := NewEventJournalRepository(10)
	ctx := context.Background()

	_, err := repo.Append(ctx, journalEntry(1, "a"))
	require.NoError(t, err)
	_, err = repo.Append(ctx, journalEntry(2, "b"))
	require.NoError(t, err)
	_, err = repo.Append(ctx, journalEntry(3, "a"))
	require.NoError(t, err)

	ok, err := repo.Append(ctx, journalEntry(2, "b"))
	require.NoError(t, err)
	assert.False(t, ok)

	entries, err := repo.List(ctx, repository.JournalFilter{SessionID: "a"})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "O-3", entries[0].Event.EntityID)

	entries, err = repo.List(ctx, repository.JournalFilter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entries, err = repo.List(ctx, repository.JournalFilter{Type: "session.closed"})
	require.NoError(t, err)
	assert.Empty(t, entries)
}
