package impl

import (
	"context"
	"log/slog"
	"time"

	"glpmap/config"
	"glpmap/internal/usecase"

	"go.uber.org/fx"
)

// JanitorParams holds the dependencies of the idle session janitor.
type JanitorParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Usecase   usecase.MapSessionUsecase
	Logger    *slog.Logger
}

// SessionJanitor periodically closes idle map sessions.
type SessionJanitor struct {
	usecase  usecase.MapSessionUsecase
	interval time.Duration
	logger   *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewSessionJanitor creates the janitor and ties it to the application lifecycle.
func NewSessionJanitor(params JanitorParams) *SessionJanitor {
	j := &SessionJanitor{
		usecase:  params.Usecase,
		interval: params.Config.Session.JanitorInterval,
		logger:   params.Logger,
	}

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			j.Start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return j.Stop(ctx)
		},
	})

	return j
}

// Start launches the sweep loop. A non-positive interval disables the janitor.
func (j *SessionJanitor) Start() {
	if j.interval <= 0 || j.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	j.cancel = cancel
	j.done = make(chan struct{})

	go j.loop(ctx)

	j.logger.Info("Session janitor started", slog.Duration("interval", j.interval))
}

// Stop halts the sweep loop and waits for it to exit.
func (j *SessionJanitor) Stop(ctx context.Context) error {
	if j.cancel == nil {
		return nil
	}
	j.cancel()

	select {
	case <-j.done:
		j.logger.Info("Session janitor stopped")

		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (j *SessionJanitor) loop(ctx context.Context) {
	defer close(j.done)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.Sweep(ctx)
		}
	}
}

// Sweep runs one eviction pass.
func (j *SessionJanitor) Sweep(ctx context.Context) {
	evicted, err := j.usecase.EvictIdle(ctx)
	if err != nil {
		j.logger.Error("Failed to evict idle sessions", slog.Any("error", err))

		return
	}
	if evicted > 0 {
		j.logger.Info("Evicted idle sessions", slog.Int("count", evicted))
	}
}
