package ports

import (
	"context"

	"github.com/vivekmohanraj/EventSphere/internal/domain"
)

// StreamPublisher emits domain events for downstream consumers. Publishing
// is fire-and-forget; errors are logged by implementations.
type StreamPublisher interface {
	PublishEventPublished(ctx context.Context, event *domain.Event) error
	PublishRegistrationConfirmed(ctx context.Context, reg *domain.Registration) error
}
