package events

//go:generate mockgen -package=mocks -destination=mocks/mock_publisher.go github.com/KirkDiggler/scrimbot/internal/events Publisher

import "context"

// Publisher sends domain events to interested consumers
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NoopPublisher drops every event. Used when no message bus is configured.
type NoopPublisher struct{}

// NewNoopPublisher creates a new no-op publisher
func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

// Publish does nothing with the event
func (n *NoopPublisher) Publish(ctx context.Context, event Event) error {
	return nil
}
