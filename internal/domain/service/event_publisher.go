package service

import (
	"context"
)

// MapEvent is an irreversible change observed on a map session, published for downstream consumers
// such as dashboards or the dispatch planner.
type MapEvent struct {
	RequestID string         `json:"request_id,omitempty"` // For distributed tracing
	SessionID string         `json:"session_id"`
	Type      string         `json:"type"` // One of the constants.MapEvent* values
	EntityID  string         `json:"entity_id,omitempty"`
	Kind      string         `json:"kind,omitempty"` // Entity kind for selection events
	Minute    int            `json:"minute"`
	Clock     string         `json:"clock"`
	Extra     map[string]any `json:"extra,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMapEvent publishes a map session event
	PublishMapEvent(ctx context.Context, event *MapEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
