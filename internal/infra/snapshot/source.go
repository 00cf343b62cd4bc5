package snapshot

import (
	"context"
	"log/slog"

	"glpmap/config"
	"glpmap/internal/domain/entity"
	domainerrors "glpmap/internal/domain/errors"
	"glpmap/internal/domain/service"

	"go.uber.org/fx"
)

// dirSource loads seed snapshots from the configured CSV directory on every call, so an updated
// export is picked up without restarting the service.
type dirSource struct {
	loader *CSVLoader
	logger *slog.Logger
}

// unavailableSource is used when no data directory is configured
type unavailableSource struct{}

func (unavailableSource) LoadSnapshot(context.Context) (*entity.Snapshot, error) {
	return nil, domainerrors.ErrSnapshotSourceUnavailable
}

func (unavailableSource) Describe() string {
	return "unconfigured"
}

// SourceParams holds dependencies for the SnapshotSource, injected by Fx
type SourceParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewSource creates the SnapshotSource described by the snapshot configuration
func NewSource(params SourceParams) service.SnapshotSource {
	cfg := params.Config.Snapshot
	if cfg == nil || cfg.DataDir == "" {
		params.Logger.Info("Snapshot data directory not configured, seeding disabled")

		return unavailableSource{}
	}

	params.Logger.Info("Snapshot seeding enabled", slog.String("data_dir", cfg.DataDir))

	return NewDirSource(cfg.DataDir, cfg.VerifyChecksums, params.Logger)
}

// NewDirSource creates a SnapshotSource reading dataDir
func NewDirSource(dataDir string, verifyChecksums bool, logger *slog.Logger) service.SnapshotSource {
	return &dirSource{
		loader: NewCSVLoader(dataDir, verifyChecksums),
		logger: logger,
	}
}

func (s *dirSource) LoadSnapshot(ctx context.Context) (*entity.Snapshot, error) {
	snapshot, err := s.loader.Load()
	if err != nil {
		return nil, domainerrors.NewSnapshotLoadError(err, s.loader.DataDir())
	}

	s.logger.DebugContext(ctx, "Snapshot loaded",
		slog.String("name", snapshot.Name),
		slog.Int("orders", len(snapshot.Orders)),
		slog.Int("vehicles", len(snapshot.Vehicles)),
	)

	return snapshot, nil
}

func (s *dirSource) Describe() string {
	return s.loader.DataDir()
}
