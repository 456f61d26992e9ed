package ports

import (
	"context"

	"github.com/vivekmohanraj/EventSphere/internal/domain"
)

type RegistrationRepo interface {
	// Create inserts the registration while holding a row lock on the event,
	// guaranteeing the capacity check and the insert are atomic.
	Create(ctx context.Context, r *domain.Registration) error
	GetByID(ctx context.Context, id string) (*domain.Registration, error)
	// Cancel reports whether the row changed; canceling an already-canceled
	// registration is a no-op.
	Cancel(ctx context.Context, id string) (bool, error)
	MarkAttended(ctx context.Context, id string) (bool, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Registration, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Registration, error)
}
