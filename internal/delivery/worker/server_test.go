package worker

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"glpmap/config"
	"glpmap/internal/delivery/worker/handler"
	"glpmap/internal/domain/constants"
	"glpmap/internal/domain/service"
	"glpmap/internal/infra/persistence/memory"
	"glpmap/internal/usecase/impl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerRoutes(t *testing.T) {
	cfg := &config.Config{
		PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal},
		Worker: &config.WorkerConfig{JournalCapacity: 10},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{
		Config:  cfg,
		Logger:  logger,
		EventUC: impl.NewMapEventService(memory.NewEventJournalRepository(cfg.Worker.JournalCapacity), logger),
	})
	e := NewEcho(logger, cfg, pushHandler)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	data, err := json.Marshal(service.MapEvent{SessionID: "s-1", Type: constants.MapEventOrderDelivered, EntityID: "O-1", Minute: 20})
	require.NoError(t, err)
	push := `{"message":{"data":"` + base64.StdEncoding.EncodeToString(data) + `","messageId":"m-1"}}`

	for range 2 {
		req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(push))
		req.Header.Set("Content-Type", "application/json")
		rec = httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events?session_id=s-1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []struct {
			MessageID string           `json:"message_id"`
			Event     service.MapEvent `json:"event"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1, "redelivered message is stored once")
	assert.Equal(t, "O-1", body.Data[0].Event.EntityID)
}
