package service

import (
	"context"

	"github.com/vivekmohanraj/EventSphere/internal/domain"
	"github.com/vivekmohanraj/EventSphere/internal/service/ports"
)

type VenueService struct {
	repo ports.VenueRepo
}

func NewVenueService(repo ports.VenueRepo) *VenueService {
	return &VenueService{repo: repo}
}

func (s *VenueService) List(ctx context.Context) ([]*domain.Venue, error) {
	return s.repo.List(ctx)
}

// Quote prices a venue booking for the given duration.
func (s *VenueService) Quote(ctx context.Context, venueID string, hours int) (float64, error) {
	venue, err := s.repo.GetByID(ctx, venueID)
	if err != nil {
		return 0, err
	}
	return venue.Quote(hours), nil
}
