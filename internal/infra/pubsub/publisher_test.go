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

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.CatalogEvent {
	return &service.CatalogEvent{
		ID:         "evt-1",
		Type:       service.EventProductTagged,
		RequestID:  "req-1",
		MerchantID: "m-1",
		ProductID:  "p-1",
		TagCodes:   []string{"vegan"},
		OccurredAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishCatalogEvent(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishCatalogEvent(context.Background(), sampleEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "product.tags_changed", received.Message.Attributes["event_type"])
	assert.Equal(t, "p-1", received.Message.Attributes["product_id"])
	assert.NotContains(t, received.Message.Attributes, "tag_id")
	assert.Equal(t, "m-1", received.Message.OrderingKey)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.CatalogEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, []string{"vegan"}, event.TagCodes)
	assert.Equal(t, "m-1", event.MerchantID)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	err := NewLocalHTTPPublisher(server.URL, discardLogger()).PublishCatalogEvent(context.Background(), sampleEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
		wantNop bool
	}{
		{name: "not configured", cfg: nil, wantNop: true},
		{name: "none provider", cfg: &config.PubSubConfig{Provider: "none"}, wantNop: true},
		{name: "local provider", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:1"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: "local endpoint is required"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "t"}, wantErr: "project ID is required"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: "google", ProjectID: "p"}, wantErr: "topic ID is required"},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			_, isNop := publisher.(*noopPublisher)
			assert.Equal(t, tt.wantNop, isNop)
			if isNop {
				assert.NoError(t, publisher.PublishCatalogEvent(context.Background(), &service.CatalogEvent{Type: service.EventTagCreated}))
			}
		})
	}
}

func TestNewMessage(t *testing.T) {
	msg, err := newMessage(&service.CatalogEvent{ID: "evt-2", Type: service.EventTagCreated, TagID: "t-1"})
	require.NoError(t, err)

	assert.Equal(t, "evt-2", msg.id)
	assert.Empty(t, msg.orderingKey)
	assert.Equal(t, map[string]string{
		"event_id":   "evt-2",
		"event_type": "tag.created",
		"tag_id":     "t-1",
	}, msg.attributes)
	assert.JSONEq(t, `{"id":"evt-2","type":"tag.created","tag_id":"t-1","occurred_at":"0001-01-01T00:00:00Z"}`, string(msg.data))
}
