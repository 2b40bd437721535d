package service

import (
	"context"
	"time"
)

// CatalogEventType names a committed catalog change.
type CatalogEventType string

const (
	EventMerchantCreated CatalogEventType = "merchant.created"
	EventProductCreated  CatalogEventType = "product.created"
	EventProductUpdated  CatalogEventType = "product.updated"
	EventProductDeleted  CatalogEventType = "product.deleted"
	EventProductTagged   CatalogEventType = "product.tags_changed"
	EventTagCreated      CatalogEventType = "tag.created"
	EventTagUpdated      CatalogEventType = "tag.updated"
	EventTagDeleted      CatalogEventType = "tag.deleted"
)

// CatalogEvent describes a change after its transaction committed.
type CatalogEvent struct {
	ID         string           `json:"id"`
	Type       CatalogEventType `json:"type"`
	RequestID  string           `json:"request_id,omitempty"` // For distributed tracing
	MerchantID string           `json:"merchant_id,omitempty"`
	ProductID  string           `json:"product_id,omitempty"`
	TagID      string           `json:"tag_id,omitempty"`
	TagCodes   []string         `json:"tag_codes,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCatalogEvent publishes a single catalog event
	PublishCatalogEvent(ctx context.Context, event *CatalogEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
