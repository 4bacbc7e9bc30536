package service

import (
	"context"
)

// RunRequestEvent asks the worker to perform a scheduled alert run.
type RunRequestEvent struct {
	RequestID     string `json:"request_id,omitempty"`     // For distributed tracing
	ReferenceDate string `json:"reference_date,omitempty"` // YYYY-MM-DD; empty means "today" at the worker
	RequestedBy   string `json:"requested_by,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishRunRequest publishes a run request for async processing
	PublishRunRequest(ctx context.Context, event *RunRequestEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
