package messaging

import (
	"context"

	"github.com/trackforge/bottrack/internal/domain"
)

// Publisher defines the interface for publishing events to message queue
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishDiscoveryEvent publishes a new-entity discovery to the message broker
	PublishDiscoveryEvent(ctx context.Context, event *domain.DiscoveryEvent) error
	// PublishCycleEvent publishes a finished-cycle notification to the message broker
	PublishCycleEvent(ctx context.Context, event *domain.CycleEvent) error
	// Close closes the connection
	Close()
}
