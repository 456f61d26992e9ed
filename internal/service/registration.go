package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vivekmohanraj/EventSphere/internal/domain"
	"github.com/vivekmohanraj/EventSphere/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type RegistrationService struct {
	repo      ports.RegistrationRepo
	eventRepo ports.EventRepo
	userRepo  ports.UserRepo
	notifier  ports.Notifier
	publisher ports.StreamPublisher
	logger    logger.Logger
}

func NewRegistrationService(
	repo ports.RegistrationRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	notifier ports.Notifier,
	publisher ports.StreamPublisher,
	logger logger.Logger,
) *RegistrationService {
	return &RegistrationService{
		repo:      repo,
		eventRepo: eventRepo,
		userRepo:  userRepo,
		notifier:  notifier,
		publisher: publisher,
		logger:    logger,
	}
}

// Register claims a slot on the event for the user. The capacity check and
// the insert run atomically in the repository under the event row lock, so
// concurrent calls racing for the last slot resolve to exactly one winner.
func (s *RegistrationService) Register(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	now := time.Now().UTC()
	reg := &domain.Registration{
		ID:           uuid.New().String(),
		EventID:      eventID,
		UserID:       userID,
		Status:       domain.RegistrationStatusRegistered,
		RegisteredAt: now,
		UpdatedAt:    now,
	}
	if err = s.repo.Create(ctx, reg); err != nil {
		return nil, err
	}

	s.logger.Info("registration created",
		logger.String("registration_id", reg.ID),
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
	)

	go s.notifier.NotifyRegistrationConfirmed(context.WithoutCancel(ctx), user, event)
	go s.publisher.PublishRegistrationConfirmed(context.WithoutCancel(ctx), reg)

	return reg, nil
}

// Cancel releases the slot. Canceling an already-canceled registration is a
// no-op, not an error.
func (s *RegistrationService) Cancel(ctx context.Context, regID, actorID string, role domain.Role) error {
	reg, err := s.repo.GetByID(ctx, regID)
	if err != nil {
		return err
	}

	if reg.UserID != actorID && role != domain.RoleAdmin {
		return fmt.Errorf("%w: not your registration", domain.ErrForbidden)
	}

	changed, err := s.repo.Cancel(ctx, regID)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	s.logger.Info("registration canceled",
		logger.String("registration_id", regID),
		logger.String("event_id", reg.EventID),
	)

	user, err := s.userRepo.GetByID(ctx, reg.UserID)
	if err != nil {
		s.logger.Error("failed to get user for cancel notification",
			logger.String("user_id", reg.UserID),
			logger.String("error", err.Error()),
		)
		return nil
	}
	event, err := s.eventRepo.GetByID(ctx, reg.EventID)
	if err != nil {
		s.logger.Error("failed to get event for cancel notification",
			logger.String("event_id", reg.EventID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	go s.notifier.NotifyRegistrationCanceled(context.WithoutCancel(ctx), user, event)

	return nil
}

// MarkAttended records attendance. Allowed only while the event is upcoming
// or after it completed; a canceled registration cannot be marked.
func (s *RegistrationService) MarkAttended(ctx context.Context, regID string, role domain.Role) error {
	if role != domain.RoleAdmin && role != domain.RoleCoordinator {
		return fmt.Errorf("%w: only admins and coordinators mark attendance", domain.ErrForbidden)
	}

	reg, err := s.repo.GetByID(ctx, regID)
	if err != nil {
		return err
	}

	event, err := s.eventRepo.GetByID(ctx, reg.EventID)
	if err != nil {
		return err
	}
	if event.Status != domain.EventStatusUpcoming && event.Status != domain.EventStatusCompleted {
		return fmt.Errorf("%w: event is %s", domain.ErrInvalidState, event.Status)
	}

	changed, err := s.repo.MarkAttended(ctx, regID)
	if err != nil {
		return err
	}
	if !changed {
		if reg.Status == domain.RegistrationStatusAttended {
			return nil
		}
		return fmt.Errorf("%w: registration is %s", domain.ErrInvalidState, reg.Status)
	}

	s.logger.Info("registration marked attended",
		logger.String("registration_id", regID),
		logger.String("event_id", reg.EventID),
	)

	return nil
}

// Snapshot returns a consistent point-in-time occupancy view for display.
// The register path never consults it; admission control happens under the
// row lock in Register.
func (s *RegistrationService) Snapshot(ctx context.Context, eventID string) (*domain.CapacitySnapshot, error) {
	return s.eventRepo.CapacitySnapshot(ctx, eventID)
}

func (s *RegistrationService) ListByUser(ctx context.Context, userID string) ([]*domain.Registration, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *RegistrationService) ListByEvent(ctx context.Context, eventID string, role domain.Role) ([]*domain.Registration, error) {
	if role != domain.RoleAdmin && role != domain.RoleCoordinator {
		return nil, fmt.Errorf("%w: participant list is restricted", domain.ErrForbidden)
	}
	return s.repo.ListByEvent(ctx, eventID)
}
