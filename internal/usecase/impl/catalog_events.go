package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"

	"github.com/google/uuid"
)

// catalogEvents emits committed catalog changes. It must only be called after
// the transaction that made the change has committed.
type catalogEvents struct {
	publisher service.EventPublisher
	metrics   service.MetricsRecorder
	logger    *slog.Logger
}

func (e *catalogEvents) emit(ctx context.Context, event *service.CatalogEvent) {
	event.ID = uuid.New().String()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = time.Now().UTC()

	if e.metrics != nil {
		e.metrics.RecordCatalogMutation(event.Type)
	}
	if e.publisher == nil {
		return
	}

	if err := e.publisher.PublishCatalogEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, e.logger).Warn("Failed to publish catalog event",
			slog.String("event_type", string(event.Type)),
			slog.String("event_id", event.ID),
			slog.Any("error", err),
		)
	}
}

func productEvent(eventType service.CatalogEventType, product *entity.Product) *service.CatalogEvent {
	return &service.CatalogEvent{
		Type:       eventType,
		MerchantID: product.MerchantID.String(),
		ProductID:  product.ID.String(),
		TagCodes:   tagCodes(product.Tags),
	}
}

func tagEvent(eventType service.CatalogEventType, tag *entity.DietaryTag) *service.CatalogEvent {
	return &service.CatalogEvent{
		Type:     eventType,
		TagID:    tag.ID.String(),
		TagCodes: []string{tag.Code},
	}
}

func tagCodes(tags []*entity.DietaryTag) []string {
	codes := make([]string, 0, len(tags))
	for _, tag := range tags {
		codes = append(codes, tag.Code)
	}

	return codes
}
