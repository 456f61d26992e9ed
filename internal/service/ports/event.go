package ports

import (
	"context"
	"time"

	"github.com/vivekmohanraj/EventSphere/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	// List is scoped by the caller's role: admins see everything,
	// coordinators their own events, everyone else published ones.
	List(ctx context.Context, role domain.Role, userID string) ([]*domain.Event, error)
	// UpdateStatus performs a conditional write and reports whether the row
	// actually moved from -> to.
	UpdateStatus(ctx context.Context, id string, from, to domain.EventStatus) (bool, error)
	// SweepExpired advances at most limit expired upcoming events to
	// completed and returns the affected rows.
	SweepExpired(ctx context.Context, now time.Time, limit int) ([]*domain.Event, error)
	CapacitySnapshot(ctx context.Context, id string) (*domain.CapacitySnapshot, error)
}
