package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"glpmap/internal/infra/persistence/memory"
	mockService "glpmap/internal/mocks/service"
	"glpmap/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestSessionJanitor_SweepEvictsIdleSessions(t *testing.T) {
	f := newServiceFixture(t)
	id := f.create(t)
	f.now = f.now.Add(time.Hour)

	j := &SessionJanitor{usecase: f.svc, logger: f.svc.logger}
	j.Sweep(context.Background())

	_, err := f.repo.Get(context.Background(), id)
	assert.Error(t, err)
}

func TestSessionJanitor_Lifecycle(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().PublishMapEvent(mock.Anything, mock.Anything).Return(nil).Maybe()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := testConfig()
	cfg.Session.JanitorInterval = 10 * time.Millisecond
	cfg.Session.IdleTTL = time.Nanosecond

	repo := memory.NewSessionRepository()
	svc := NewMapSessionService(repo, publisher, mockService.NewMockSnapshotSource(t), cfg, logger)

	lc := fxtest.NewLifecycle(t)
	NewSessionJanitor(JanitorParams{Lifecycle: lc, Config: cfg, Usecase: svc, Logger: logger})
	lc.RequireStart()

	view, err := svc.CreateSession(context.Background(), &usecase.CreateSessionInput{Snapshot: testSnapshot()})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		count, _ := repo.Count(context.Background())

		return count == 0
	}, time.Second, 10*time.Millisecond, "session %s should be evicted", view.ID)

	lc.RequireStop()
}

func TestSessionJanitor_DisabledWithoutInterval(t *testing.T) {
	j := &SessionJanitor{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	j.Start()

	assert.Nil(t, j.cancel)
	assert.NoError(t, j.Stop(context.Background()))
}
