package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"glpmap/config"
	"glpmap/internal/domain/constants"
	"glpmap/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestLocalHTTPPublisher_PublishMapEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))
	event := &service.MapEvent{
		RequestID: "req-1",
		SessionID: "session-1",
		Type:      constants.MapEventOrderDelivered,
		EntityID:  "O-1",
		Minute:    1980,
	}

	require.NoError(t, publisher.PublishMapEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, constants.MapEventOrderDelivered, received.Message.Attributes["type"])
	assert.Equal(t, "session-1", received.Message.Attributes["session_id"])
	assert.Equal(t, "1980", received.Message.Attributes["minute"])
	assert.Equal(t, "O-1", received.Message.Attributes["entity_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.MapEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "O-1", decoded.EntityID)
	assert.Equal(t, 1980, decoded.Minute)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))
	err := publisher.PublishMapEvent(context.Background(), &service.MapEvent{SessionID: "s", Type: constants.MapEventSessionCreated})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestNewEventPublisher(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		wantErr string
	}{
		{name: "unconfigured uses noop"},
		{name: "local", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:9/push"}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "local endpoint is required"},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}, wantErr: "project ID is required"},
		{name: "unknown provider", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: logger,
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, publisher)
			if tt.pubsub == nil {
				require.NoError(t, publisher.PublishMapEvent(context.Background(), &service.MapEvent{SessionID: "s"}))
			}
		})
	}
}
