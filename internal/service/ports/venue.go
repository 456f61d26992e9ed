package ports

import (
	"context"

	"github.com/vivekmohanraj/EventSphere/internal/domain"
)

type VenueRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
	List(ctx context.Context) ([]*domain.Venue, error)
}
