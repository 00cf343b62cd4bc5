package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"glpmap/config"
	deliverycontext "glpmap/internal/delivery/context"
	"glpmap/internal/domain/constants"
	domainerrors "glpmap/internal/domain/errors"
	"glpmap/internal/domain/repository"
	"glpmap/internal/domain/service"
	mockUsecase "glpmap/internal/mocks/usecase"
	"glpmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, provider string) (*PushHandler, *mockUsecase.MockMapEventUsecase) {
	t.Helper()

	cfg := &config.Config{
		PubSub: &config.PubSubConfig{Provider: provider},
		Worker: &config.WorkerConfig{JournalCapacity: 10},
	}
	cfg.Env.Env = "production"
	uc := mockUsecase.NewMockMapEventUsecase(t)

	return NewPushHandler(PushHandlerParams{
		Config:  cfg,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		EventUC: uc,
	}), uc
}

func pushBody(t *testing.T, messageID string, event any, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = messageID
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/p/subscriptions/map-events"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func doPush(h *PushHandler, body string, header map[string]string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_RecordsEvent(t *testing.T) {
	h, uc := newTestPushHandler(t, constants.PubSubProviderLocal)
	event := service.MapEvent{SessionID: "s-1", Type: constants.MapEventOrderDelivered, EntityID: "O-1", RequestID: "from-event"}

	uc.EXPECT().Record(mock.Anything, "m-1", mock.MatchedBy(func(e *service.MapEvent) bool {
		return e.SessionID == "s-1" && e.EntityID == "O-1"
	})).RunAndReturn(func(ctx context.Context, _ string, _ *service.MapEvent) (*usecase.RecordResult, error) {
		assert.Equal(t, "from-attributes", deliverycontext.GetRequestIDFromContext(ctx))

		return &usecase.RecordResult{Stored: true}, nil
	})

	rec := doPush(h, pushBody(t, "m-1", event, map[string]string{"request_id": "from-attributes"}), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	h, _ := newTestPushHandler(t, constants.PubSubProviderLocal)

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "bad base64", body: `{"message":{"data":"%%%","messageId":"m"}}`},
		{name: "bad event", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[1,2]")) + `","messageId":"m"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doPush(h, tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_RecordFailures(t *testing.T) {
	event := service.MapEvent{SessionID: "s-1", Type: "unknown"}

	t.Run("rejected events are acknowledged", func(t *testing.T) {
		h, uc := newTestPushHandler(t, constants.PubSubProviderLocal)
		uc.EXPECT().Record(mock.Anything, "m-1", mock.Anything).
			Return(nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown map event type")))

		rec := doPush(h, pushBody(t, "m-1", event, nil), nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("journal failures are retried", func(t *testing.T) {
		h, uc := newTestPushHandler(t, constants.PubSubProviderLocal)
		uc.EXPECT().Record(mock.Anything, "m-1", mock.Anything).Return(nil, errors.New("journal down"))

		rec := doPush(h, pushBody(t, "m-1", event, nil), nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestPushHandler_VerifiesGoogleTokens(t *testing.T) {
	event := service.MapEvent{SessionID: "s-1", Type: constants.MapEventSessionCreated}

	t.Run("missing header", func(t *testing.T) {
		h, _ := newTestPushHandler(t, constants.PubSubProviderGoogle)

		rec := doPush(h, pushBody(t, "m-1", event, nil), nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		h, _ := newTestPushHandler(t, constants.PubSubProviderGoogle)
		h.validate = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "evil.example.com"}, nil
		}

		rec := doPush(h, pushBody(t, "m-1", event, nil), map[string]string{"Authorization": "Bearer t"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		h, uc := newTestPushHandler(t, constants.PubSubProviderGoogle)
		h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "t", token)
			assert.Equal(t, "http://example.com/push", audience)

			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}
		uc.EXPECT().Record(mock.Anything, "m-1", mock.Anything).Return(&usecase.RecordResult{Stored: true}, nil)

		rec := doPush(h, pushBody(t, "m-1", event, nil), map[string]string{"Authorization": "Bearer t"})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("configured audience", func(t *testing.T) {
		h, uc := newTestPushHandler(t, constants.PubSubProviderGoogle)
		h.audience = "https://worker.example.com/push"
		h.validate = func(_ context.Context, _, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "https://worker.example.com/push", audience)

			return &idtoken.Payload{Issuer: "accounts.google.com"}, nil
		}
		uc.EXPECT().Record(mock.Anything, "m-1", mock.Anything).Return(&usecase.RecordResult{Duplicate: true}, nil)

		rec := doPush(h, pushBody(t, "m-1", event, nil), map[string]string{"Authorization": "Bearer t"})
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestPushHandler_ListEvents(t *testing.T) {
	h, uc := newTestPushHandler(t, constants.PubSubProviderLocal)
	e := echo.New()

	entries := []*repository.JournalEntry{{
		MessageID: "m-2",
		Event:     &service.MapEvent{SessionID: "s-1", Type: constants.MapEventVehicleCompleted, EntityID: "TA01"},
	}}
	uc.EXPECT().Recent(mock.Anything, repository.JournalFilter{SessionID: "s-1", Limit: 5}).Return(entries, nil)

	req := httptest.NewRequest(http.MethodGet, "/events?session_id=s-1&limit=5", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.ListEvents(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []repository.JournalEntry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "TA01", body.Data[0].Event.EntityID)

	req = httptest.NewRequest(http.MethodGet, "/events?limit=many", nil)
	rec = httptest.NewRecorder()
	require.NoError(t, h.ListEvents(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	uc.EXPECT().Recent(mock.Anything, repository.JournalFilter{Limit: -1}).
		Return(nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("limit must not be negative")))
	req = httptest.NewRequest(http.MethodGet, "/events?limit=-1", nil)
	rec = httptest.NewRecorder()
	require.NoError(t, h.ListEvents(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
