package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blog/config"
	"blog/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.ContentEvent {
	return &service.ContentEvent{
		RequestID:  "req-42",
		Type:       service.EventPostCreated,
		EntityID:   7,
		ActorID:    1,
		OccurredAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishContentEvent(t *testing.T) {
	var (
		gotMsg       PushMessage
		gotRequestID string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotMsg))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	defer publisher.Close()

	require.NoError(t, publisher.PublishContentEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-42", gotRequestID)
	assert.Equal(t, localSubscriptionName, gotMsg.Subscription)
	assert.NotEmpty(t, gotMsg.Message.MessageID)
	assert.Equal(t, map[string]string{
		"event_type": "post.created",
		"entity_id":  "7",
		"request_id": "req-42",
	}, gotMsg.Message.Attributes)

	raw, err := base64.StdEncoding.DecodeString(gotMsg.Message.Data)
	require.NoError(t, err)

	var event service.ContentEvent
	require.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, *testEvent(), event)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())

	err := publisher.PublishContentEvent(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNewEventPublisher(t *testing.T) {
	newParams := func(t *testing.T, pubsubCfg *config.PubSubConfig) PublisherParams {
		return PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: pubsubCfg},
			Logger: discardLogger(),
		}
	}

	t.Run("not configured", func(t *testing.T) {
		publisher, err := NewEventPublisher(newParams(t, nil))
		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, publisher)
		assert.NoError(t, publisher.PublishContentEvent(context.Background(), testEvent()))
	})

	t.Run("local", func(t *testing.T) {
		publisher, err := NewEventPublisher(newParams(t, &config.PubSubConfig{
			Provider:      config.PubSubProviderLocal,
			LocalEndpoint: "http://127.0.0.1:1/push",
		}))
		require.NoError(t, err)
		assert.IsType(t, &localHTTPPublisher{}, publisher)
	})

	t.Run("local without endpoint", func(t *testing.T) {
		_, err := NewEventPublisher(newParams(t, &config.PubSubConfig{Provider: config.PubSubProviderLocal}))
		assert.Error(t, err)
	})

	t.Run("google without topic", func(t *testing.T) {
		_, err := NewEventPublisher(newParams(t, &config.PubSubConfig{
			Provider:  config.PubSubProviderGoogle,
			ProjectID: "blog",
		}))
		assert.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewEventPublisher(newParams(t, &config.PubSubConfig{Provider: "kafka"}))
		assert.Error(t, err)
	})
}
