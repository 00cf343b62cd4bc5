package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"glpmap/internal/delivery/api/validator"
	"glpmap/internal/mapview/scene"
	"glpmap/internal/mapview/viewport"
	mockUsecase "glpmap/internal/mocks/usecase"
	"glpmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerFixture struct {
	e       *echo.Echo
	uc      *mockUsecase.MockMapSessionUsecase
	handler *SessionHandler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	uc := mockUsecase.NewMockMapSessionUsecase(t)

	return &handlerFixture{
		e:  e,
		uc: uc,
		handler: NewSessionHandler(SessionHandlerParams{
			SessionUC: uc,
			Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		}),
	}
}

func (f *handlerFixture) context(method, body string, id string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/", reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := f.e.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}

	return c, rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Data
}

func decodeErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code
}

const snapshotBody = `{
	"name": "demo",
	"snapshot": {
		"name": "inline",
		"grid": {"columns": 70, "rows": 50, "cell_size_x": 10, "cell_size_y": 10},
		"orders": [{"id": "O-1", "position": {"x": 13, "y": 9}}]
	},
	"container": {"width": 800, "height": 600}
}`

func TestSessionHandler_CreateSession(t *testing.T) {
	f := newHandlerFixture(t)
	id := uuid.New()
	c, rec := f.context(http.MethodPost, snapshotBody, "")

	f.uc.EXPECT().
		CreateSession(mock.Anything, mock.AnythingOfType("*usecase.CreateSessionInput")).
		Run(func(_ context.Context, input *usecase.CreateSessionInput) {
			assert.Equal(t, "demo", input.Name)
			assert.Equal(t, viewport.Size{Width: 800, Height: 600}, input.Container)
			require.Len(t, input.Snapshot.Orders, 1)
			assert.Equal(t, "O-1", input.Snapshot.Orders[0].ID)
		}).
		Return(&usecase.SessionView{ID: id, Name: "demo"}, nil)

	require.NoError(t, f.handler.CreateSession(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, id.String(), decodeData(t, rec)["id"])
}

func TestSessionHandler_CreateSession_MissingSnapshot(t *testing.T) {
	f := newHandlerFixture(t)
	c, rec := f.context(http.MethodPost, `{"name": "demo"}`, "")

	require.NoError(t, f.handler.CreateSession(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeErrorCode(t, rec))
}

func TestSessionHandler_InvalidSessionID(t *testing.T) {
	f := newHandlerFixture(t)
	c, rec := f.context(http.MethodGet, "", "not-a-uuid")

	require.NoError(t, f.handler.GetSession(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_SESSION_ID", decodeErrorCode(t, rec))
}

func TestSessionHandler_GetFrame(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		format   string
		setup    func(uc *mockUsecase.MockMapSessionUsecase)
		wantCode int
	}{
		{
			name:   "json frame",
			format: "",
			setup: func(uc *mockUsecase.MockMapSessionUsecase) {
				uc.EXPECT().Frame(mock.Anything, id).Return(&scene.Frame{Minute: 5, Clock: "D0 00:05"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "geojson frame",
			format: "geojson",
			setup: func(uc *mockUsecase.MockMapSessionUsecase) {
				uc.EXPECT().FeatureCollection(mock.Anything, id).Return(geojson.NewFeatureCollection(), nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "unknown format",
			format:   "svg",
			setup:    func(*mockUsecase.MockMapSessionUsecase) {},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			tt.setup(f.uc)
			c, rec := f.context(http.MethodGet, "", id.String())
			if tt.format != "" {
				c.QueryParams().Set("format", tt.format)
			}

			require.NoError(t, f.handler.GetFrame(c))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestSessionHandler_Zoom(t *testing.T) {
	f := newHandlerFixture(t)
	id := uuid.New()
	c, rec := f.context(http.MethodPost, `{"pointer": {"x": 100, "y": 50}, "direction": -1}`, id.String())

	f.uc.EXPECT().
		Zoom(mock.Anything, id, &orb.Point{100, 50}, -1).
		Return(&scene.Frame{}, nil)

	require.NoError(t, f.handler.Zoom(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionHandler_Zoom_RequiresDirection(t *testing.T) {
	f := newHandlerFixture(t)
	c, rec := f.context(http.MethodPost, `{}`, uuid.NewString())

	require.NoError(t, f.handler.Zoom(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionHandler_Tick(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		body       string
		wantMinute int
		wantCode   int
	}{
		{name: "absolute minute", body: `{"minute": 1980}`, wantMinute: 1980, wantCode: http.StatusOK},
		{name: "clock stamp", body: `{"clock": "D1 09:00"}`, wantMinute: 1980, wantCode: http.StatusOK},
		{name: "negative minute", body: `{"minute": -3}`, wantCode: http.StatusBadRequest},
		{name: "bad clock", body: `{"clock": "noon"}`, wantCode: http.StatusBadRequest},
		{name: "empty", body: `{}`, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			if tt.wantCode == http.StatusOK {
				f.uc.EXPECT().Tick(mock.Anything, id, tt.wantMinute).Return(&scene.Frame{Minute: tt.wantMinute}, nil)
			}
			c, rec := f.context(http.MethodPost, tt.body, id.String())

			require.NoError(t, f.handler.Tick(c))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestSessionHandler_HoverWithoutPointer(t *testing.T) {
	f := newHandlerFixture(t)
	id := uuid.New()
	c, rec := f.context(http.MethodPost, `{}`, id.String())

	f.uc.EXPECT().Hover(mock.Anything, id, (*orb.Point)(nil)).Return(&scene.Frame{}, nil)

	require.NoError(t, f.handler.Hover(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionHandler_DeleteSession(t *testing.T) {
	f := newHandlerFixture(t)
	id := uuid.New()
	c, rec := f.context(http.MethodDelete, "", id.String())

	f.uc.EXPECT().DeleteSession(mock.Anything, id).Return(nil)

	require.NoError(t, f.handler.DeleteSession(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
