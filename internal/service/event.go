package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vivekmohanraj/EventSphere/internal/cache"
	"github.com/vivekmohanraj/EventSphere/internal/domain"
	"github.com/vivekmohanraj/EventSphere/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// publicEventsCacheKey caches the listing served to unauthenticated and
// normal users. Writers invalidate it; payment-driven publications rely on
// the short TTL instead (stale listings are acceptable for display).
const publicEventsCacheKey = "events:public"

const defaultSweepBatch = 100

type EventService struct {
	repo            ports.EventRepo
	regRepo         ports.RegistrationRepo
	publisher       ports.StreamPublisher
	cache           *cache.Cache
	paymentRequired bool
	sweepBatch      int
	logger          logger.Logger
}

func NewEventService(
	repo ports.EventRepo,
	regRepo ports.RegistrationRepo,
	publisher ports.StreamPublisher,
	c *cache.Cache,
	paymentRequired bool,
	sweepBatch int,
	logger logger.Logger,
) *EventService {
	if sweepBatch <= 0 {
		sweepBatch = defaultSweepBatch
	}
	return &EventService{
		repo:            repo,
		regRepo:         regRepo,
		publisher:       publisher,
		cache:           c,
		paymentRequired: paymentRequired,
		sweepBatch:      sweepBatch,
		logger:          logger,
	}
}

// Create validates the input and persists a new event. Admin events are
// published immediately; coordinator events start as draft while the
// payment-required policy is on and stay unpublished until a payment
// settles.
func (s *EventService) Create(ctx context.Context, creatorID string, role domain.Role, input domain.CreateEventInput) (*domain.Event, error) {
	if role != domain.RoleAdmin && role != domain.RoleCoordinator {
		return nil, fmt.Errorf("%w: only admins and coordinators create events", domain.ErrForbidden)
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Type == "" {
		return nil, fmt.Errorf("%w: type is required", domain.ErrValidation)
	}
	if input.EventTime.IsZero() {
		return nil, fmt.Errorf("%w: event_time is required", domain.ErrValidation)
	}
	if input.IsPaid && (input.Price == nil || *input.Price <= 0) {
		return nil, fmt.Errorf("%w: paid events require a positive price", domain.ErrValidation)
	}
	if !input.IsPaid && input.Price != nil {
		return nil, fmt.Errorf("%w: free events must not carry a price", domain.ErrValidation)
	}
	if input.Capacity != nil && *input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}

	status := domain.EventStatusUpcoming
	if role == domain.RoleCoordinator && s.paymentRequired {
		status = domain.EventStatusDraft
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Type:        input.Type,
		Description: input.Description,
		Audience:    input.Audience,
		IsPaid:      input.IsPaid,
		Price:       input.Price,
		EventTime:   input.EventTime,
		Capacity:    input.Capacity,
		VenueID:     input.VenueID,
		Status:      status,
		CreatedBy:   creatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("status", string(event.Status)),
		logger.String("created_by", creatorID),
	)

	s.cache.Invalidate(ctx, publicEventsCacheKey)

	if event.Status == domain.EventStatusUpcoming {
		go s.publisher.PublishEventPublished(context.WithoutCancel(ctx), event)
	}

	return event, nil
}

// Get returns the event, lazily repairing expired upcoming events that the
// sweeper has not reached yet.
func (s *EventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if event.Status == domain.EventStatusUpcoming && event.EventTime.Before(time.Now().UTC()) {
		moved, err := s.repo.UpdateStatus(ctx, event.ID, domain.EventStatusUpcoming, domain.EventStatusCompleted)
		if err != nil {
			return nil, fmt.Errorf("lazy complete event: %w", err)
		}
		if moved {
			event.Status = domain.EventStatusCompleted
			s.logger.Info("event lazily completed", logger.String("event_id", event.ID))
		}
	}

	return event, nil
}

func (s *EventService) Details(ctx context.Context, id string) (*domain.EventDetails, error) {
	event, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	participants, err := s.regRepo.ListByEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}

	snap, err := s.repo.CapacitySnapshot(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &domain.EventDetails{
		Event:       *event,
		ActiveCount: snap.Active,
	}
	details.Participants = make([]domain.Registration, len(participants))
	for i, p := range participants {
		details.Participants[i] = *p
	}

	return details, nil
}

func (s *EventService) List(ctx context.Context, role domain.Role, userID string) ([]*domain.Event, error) {
	cacheable := role != domain.RoleAdmin && role != domain.RoleCoordinator

	if cacheable {
		var cached []*domain.Event
		if s.cache.GetJSON(ctx, publicEventsCacheKey, &cached) {
			return cached, nil
		}
	}

	events, err := s.repo.List(ctx, role, userID)
	if err != nil {
		return nil, err
	}

	if cacheable {
		s.cache.SetJSON(ctx, publicEventsCacheKey, events)
	}

	return events, nil
}

// Transition applies an explicit lifecycle action (cancel, postpone, reopen,
// complete). Publication of draft events is reserved for the payment
// workflow and admin creation; it never goes through here.
func (s *EventService) Transition(ctx context.Context, actorID string, role domain.Role, eventID string, target domain.EventStatus) (*domain.Event, error) {
	if !target.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, target)
	}

	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	switch role {
	case domain.RoleAdmin:
	case domain.RoleCoordinator:
		if event.CreatedBy != actorID {
			return nil, fmt.Errorf("%w: not the event owner", domain.ErrForbidden)
		}
	default:
		return nil, fmt.Errorf("%w: only admins and coordinators manage events", domain.ErrForbidden)
	}

	if event.Status == domain.EventStatusDraft {
		return nil, fmt.Errorf("%w: draft events are published through payment", domain.ErrInvalidState)
	}
	if !event.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, event.Status, target)
	}

	moved, err := s.repo.UpdateStatus(ctx, eventID, event.Status, target)
	if err != nil {
		return nil, fmt.Errorf("transition event: %w", err)
	}
	if !moved {
		// someone else changed the row between the read and the write
		current, err := s.repo.GetByID(ctx, eventID)
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, current.Status, target)
	}

	event.Status = target
	s.logger.Info("event status changed",
		logger.String("event_id", eventID),
		logger.String("status", string(target)),
		logger.String("actor", actorID),
	)

	s.cache.Invalidate(ctx, publicEventsCacheKey)

	return event, nil
}

// SweepExpired advances expired upcoming events to completed in one bounded
// batch. Safe to run repeatedly: a second pass over the same data finds
// nothing to move.
func (s *EventService) SweepExpired(ctx context.Context) ([]*domain.Event, error) {
	swept, err := s.repo.SweepExpired(ctx, time.Now().UTC(), s.sweepBatch)
	if err != nil {
		return nil, fmt.Errorf("sweep expired: %w", err)
	}

	if len(swept) > 0 {
		s.cache.Invalidate(ctx, publicEventsCacheKey)
	}

	return swept, nil
}
