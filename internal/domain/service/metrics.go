package service

// MetricsRecorder receives business counters from the use cases.
type MetricsRecorder interface {
	// RecordCatalogMutation counts a committed catalog change by event type.
	RecordCatalogMutation(eventType CatalogEventType)
	// RecordAuthFailure counts a rejected login or token by reason.
	RecordAuthFailure(reason string)
}
