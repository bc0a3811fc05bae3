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
	"time"

	"blog/config"
	deliverycontext "blog/internal/delivery/context"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/service"
	"blog/internal/errors"
	mockUsecase "blog/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockActivityUsecase) {
	activityUC := mockUsecase.NewMockActivityUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		ActivityUC: activityUC,
	})

	return h, activityUC
}

func pushBody(t *testing.T, messageID string, attrs map[string]string, event *service.ContentEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = messageID
	msg.Message.Attributes = attrs
	msg.Subscription = "projects/local/subscriptions/content-events"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func doPush(h *PushHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	_ = h.HandlePush(c)

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &service.ContentEvent{
		RequestID:  "req-event",
		Type:       service.EventPostCreated,
		EntityID:   12,
		ActorID:    1,
		OccurredAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	t.Run("records the event", func(t *testing.T) {
		h, activityUC := newTestPushHandler(t, &config.Config{})

		activityUC.EXPECT().
			RecordContentEvent(mock.Anything, "m-1", event).
			Run(func(ctx context.Context, _ string, _ *service.ContentEvent) {
				assert.Equal(t, "req-attr", deliverycontext.GetRequestIDFromContext(ctx))
			}).
			Return(nil)

		rec := doPush(h, pushBody(t, "m-1", map[string]string{"request_id": "req-attr"}, event))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("store failure asks for redelivery", func(t *testing.T) {
		h, activityUC := newTestPushHandler(t, &config.Config{})

		dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to record activity")
		activityUC.EXPECT().RecordContentEvent(mock.Anything, "m-1", mock.Anything).Return(errors.Wrap(dbErr, "failed to record activity"))

		rec := doPush(h, pushBody(t, "m-1", nil, event))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("unknown event type is acknowledged", func(t *testing.T) {
		h, activityUC := newTestPushHandler(t, &config.Config{})

		activityUC.EXPECT().RecordContentEvent(mock.Anything, "m-2", mock.Anything).Return(domainerrors.ErrUnknownEventType)

		rec := doPush(h, pushBody(t, "m-2", nil, &service.ContentEvent{Type: "post.archived"}))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("data is not base64", func(t *testing.T) {
		h, _ := newTestPushHandler(t, &config.Config{})

		rec := doPush(h, `{"message":{"data":"%%%","messageId":"m-3"}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("data is not an event", func(t *testing.T) {
		h, _ := newTestPushHandler(t, &config.Config{})

		data := base64.StdEncoding.EncodeToString([]byte("not json"))
		rec := doPush(h, `{"message":{"data":"`+data+`","messageId":"m-4"}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("body is not json", func(t *testing.T) {
		h, _ := newTestPushHandler(t, &config.Config{})

		rec := doPush(h, `{`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPushHandler_VerifyPushAuth(t *testing.T) {
	googleCfg := func(env string) *config.Config {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: config.PubSubProviderGoogle}}
		cfg.Env.Env = env

		return cfg
	}

	t.Run("enabled for google outside develop", func(t *testing.T) {
		h, _ := newTestPushHandler(t, googleCfg("production"))
		assert.True(t, h.verifyPushAuth)

		h, _ = newTestPushHandler(t, googleCfg(config.EnvDevelop))
		assert.False(t, h.verifyPushAuth)

		h, _ = newTestPushHandler(t, &config.Config{PubSub: &config.PubSubConfig{Provider: config.PubSubProviderLocal}})
		assert.False(t, h.verifyPushAuth)
	})

	t.Run("rejected token", func(t *testing.T) {
		h, _ := newTestPushHandler(t, googleCfg("production"))
		h.verifyToken = func(*http.Request) error { return errors.New("bad token") }

		rec := doPush(h, `{}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("accepted token", func(t *testing.T) {
		h, activityUC := newTestPushHandler(t, googleCfg("production"))
		h.verifyToken = func(*http.Request) error { return nil }
		activityUC.EXPECT().RecordContentEvent(mock.Anything, "m-5", mock.Anything).Return(nil)

		rec := doPush(h, pushBody(t, "m-5", nil, &service.ContentEvent{Type: service.EventAuthorCreated, EntityID: 2}))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestVerifyPubSubToken_Header(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	assert.ErrorContains(t, verifyPubSubToken(req), "missing authorization header")

	req.Header.Set("Authorization", "Basic abc")
	assert.ErrorContains(t, verifyPubSubToken(req), "invalid authorization header format")
}

func TestExtractRequestID(t *testing.T) {
	h, _ := newTestPushHandler(t, &config.Config{})
	ctx := deliverycontext.WithRequestID(context.Background(), "req-ctx")

	var msg PubSubMessage
	assert.Equal(t, "req-ctx", h.extractRequestID(ctx, &msg, &service.ContentEvent{}))
	assert.Equal(t, "req-event", h.extractRequestID(ctx, &msg, &service.ContentEvent{RequestID: "req-event"}))

	msg.Message.Attributes = map[string]string{"request_id": "req-attr"}
	assert.Equal(t, "req-attr", h.extractRequestID(ctx, &msg, &service.ContentEvent{RequestID: "req-event"}))

	generated := h.extractRequestID(context.Background(), &PubSubMessage{}, &service.ContentEvent{})
	assert.Len(t, generated, 36)
}

func TestIsRetryableError(t *testing.T) {
	assert.False(t, isRetryableError(domainerrors.ErrUnknownEventType))
	assert.False(t, isRetryableError(domainerrors.ErrValidationFailed.WrapMessage("message id is required")))
	assert.True(t, isRetryableError(domainerrors.NewDatabaseExecuteError(errors.New("down"), "")))
	assert.True(t, isRetryableError(errors.New("unexpected")))
}
