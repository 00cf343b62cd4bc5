package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"glpmap/config"
	"glpmap/internal/delivery/api/response"
	deliverycontext "glpmap/internal/delivery/context"
	"glpmap/internal/domain/constants"
	domainerrors "glpmap/internal/domain/errors"
	"glpmap/internal/domain/repository"
	"glpmap/internal/domain/service"
	"glpmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler consumes map events pushed by the broker
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	validate       tokenValidator
	logger         *slog.Logger
	eventUC        usecase.MapEventUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	EventUC usecase.MapEventUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google signs push requests; the local publisher does not
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var audience string
	if params.Config.Worker != nil {
		audience = params.Config.Worker.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		validate:       idtoken.Validate,
		logger:         params.Logger,
		eventUC:        params.EventUC,
	}
}

// HandlePush records one pushed map event. Malformed messages are acknowledged so the broker
// stops redelivering them; journal failures answer 503 to trigger a retry.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.MapEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse map event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID), slog.String("session_id", event.SessionID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithSessionID(ctx, event.SessionID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing map event",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("type", event.Type),
	)

	if _, err := h.eventUC.Record(ctx, pushMsg.Message.MessageID, &event); err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			reqLogger.Warn("[Worker] Dropping map event", slog.Any("error", err))

			return c.NoContent(http.StatusOK)
		}

		reqLogger.Error("[Worker] Failed to record map event", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}

// ListEvents serves the journal, newest first
func (h *PushHandler) ListEvents(c echo.Context) error {
	filter := repository.JournalFilter{
		SessionID: c.QueryParam("session_id"),
		Type:      c.QueryParam("type"),
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_LIMIT", "limit must be an integer")
		}
		filter.Limit = limit
	}

	entries, err := h.eventUC.Recent(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries)
}

// extractRequestID prefers message attributes, then the event, then the request context
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.MapEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT Google attaches to authenticated push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
