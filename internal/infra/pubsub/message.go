package pubsub

import (
	"encoding/json"

	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
)

// message is a catalog event ready for any transport.
type message struct {
	id         string
	data       []byte
	attributes map[string]string
	// orderingKey keeps one merchant's events in publish order.
	orderingKey string
}

func newMessage(event *service.CatalogEvent) (*message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s event", event.Type)
	}

	attrs := map[string]string{
		"event_id":   event.ID,
		"event_type": string(event.Type),
	}
	for key, value := range map[string]string{
		"merchant_id": event.MerchantID,
		"product_id":  event.ProductID,
		"tag_id":      event.TagID,
		"request_id":  event.RequestID,
	} {
		if value != "" {
			attrs[key] = value
		}
	}

	return &message{
		id:          event.ID,
		data:        data,
		attributes:  attrs,
		orderingKey: event.MerchantID,
	}, nil
}
