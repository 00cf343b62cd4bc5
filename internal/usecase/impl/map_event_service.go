package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	deliverycontext "glpmap/internal/delivery/context"
	"glpmap/internal/domain/constants"
	domainerrors "glpmap/internal/domain/errors"
	"glpmap/internal/domain/repository"
	"glpmap/internal/domain/service"
	"glpmap/internal/usecase"

	"github.com/pkg/errors"
)

const maxRecentEvents = 500

var knownMapEvents = []string{
	constants.MapEventOrderDelivered,
	constants.MapEventVehicleCompleted,
	constants.MapEventSelectionInvalidated,
	constants.MapEventSessionCreated,
	constants.MapEventSessionClosed,
}

type mapEventService struct {
	journal repository.EventJournalRepository
	logger  *slog.Logger
	now     func() time.Time
}

// NewMapEventService is the constructor for mapEventService.
func NewMapEventService(journal repository.EventJournalRepository, logger *slog.Logger) usecase.MapEventUsecase {
	return &mapEventService{
		journal: journal,
		logger:  logger,
		now:     time.Now,
	}
}

func (srv *mapEventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *mapEventService) Record(ctx context.Context, messageID string, event *service.MapEvent) (*usecase.RecordResult, error) {
	if event == nil || event.SessionID == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("map event has no session id"))
	}
	if !slices.Contains(knownMapEvents, event.Type) {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown map event type: " + event.Type))
	}

	stored, err := srv.journal.Append(ctx, &repository.JournalEntry{
		MessageID:  messageID,
		ReceivedAt: srv.now(),
		Event:      event,
	})
	if err != nil {
		return nil, errors.Wrap(err, "append map event")
	}

	if !stored {
		srv.log(ctx).Info("Skipping redelivered map event", slog.String("message_id", messageID))

		return &usecase.RecordResult{Duplicate: true}, nil
	}

	srv.log(ctx).Debug("Map event recorded",
		slog.String("session_id", event.SessionID),
		slog.String("type", event.Type),
		slog.String("entity_id", event.EntityID),
	)

	return &usecase.RecordResult{Stored: true}, nil
}

func (srv *mapEventService) Recent(ctx context.Context, filter repository.JournalFilter) ([]*repository.JournalEntry, error) {
	if filter.Limit < 0 {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("limit must not be negative"))
	}
	if filter.Limit == 0 || filter.Limit > maxRecentEvents {
		filter.Limit = maxRecentEvents
	}

	entries, err := srv.journal.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "list map events")
	}

	return entries, nil
}
