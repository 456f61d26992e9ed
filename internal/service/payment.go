package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vivekmohanraj/EventSphere/internal/domain"
	"github.com/vivekmohanraj/EventSphere/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const defaultBookingHours = 3

type PaymentService struct {
	repo           ports.PaymentRepo
	eventRepo      ports.EventRepo
	venueRepo      ports.VenueRepo
	userRepo       ports.UserRepo
	gateway        ports.PaymentGateway
	notifier       ports.Notifier
	publisher      ports.StreamPublisher
	currency       string
	gatewayTimeout time.Duration
	logger         logger.Logger
}

func NewPaymentService(
	repo ports.PaymentRepo,
	eventRepo ports.EventRepo,
	venueRepo ports.VenueRepo,
	userRepo ports.UserRepo,
	gateway ports.PaymentGateway,
	notifier ports.Notifier,
	publisher ports.StreamPublisher,
	currency string,
	gatewayTimeout time.Duration,
	logger logger.Logger,
) *PaymentService {
	return &PaymentService{
		repo:           repo,
		eventRepo:      eventRepo,
		venueRepo:      venueRepo,
		userRepo:       userRepo,
		gateway:        gateway,
		notifier:       notifier,
		publisher:      publisher,
		currency:       currency,
		gatewayTimeout: gatewayTimeout,
		logger:         logger,
	}
}

// Initiate opens a payment for an unpublished event. For coordinators it
// creates a pending payment and a gateway order; for admins it settles
// immediately with a synthetic transaction id and publishes the event.
// A gateway timeout leaves the payment pending so the caller can retry or
// fail it explicitly.
func (s *PaymentService) Initiate(ctx context.Context, payerID string, role domain.Role, input domain.InitiatePaymentInput) (*domain.Payment, error) {
	event, err := s.eventRepo.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, err
	}
	if event.Status != domain.EventStatusDraft {
		return nil, fmt.Errorf("%w: event is %s", domain.ErrAlreadyPublished, event.Status)
	}
	if role != domain.RoleAdmin && event.CreatedBy != payerID {
		return nil, fmt.Errorf("%w: not the event owner", domain.ErrForbidden)
	}

	amount, err := s.resolveAmount(ctx, input)
	if err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	now := time.Now().UTC()
	payment := &domain.Payment{
		ID:        uuid.New().String(),
		EventID:   event.ID,
		PayerID:   payerID,
		VenueID:   input.VenueID,
		Amount:    amount,
		Currency:  s.currency,
		Status:    domain.PaymentStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = s.repo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	if role == domain.RoleAdmin {
		// admins are never charged
		txn := "ADMIN_FREE_" + event.ID
		if _, err = s.repo.Confirm(ctx, payment.ID, txn); err != nil {
			return nil, fmt.Errorf("settle admin payment: %w", err)
		}
		payment.Status = domain.PaymentStatusCompleted
		payment.TransactionID = &txn

		s.logger.Info("admin payment auto-completed",
			logger.String("payment_id", payment.ID),
			logger.String("event_id", event.ID),
		)
		s.afterPublication(ctx, event.ID)

		return payment, nil
	}

	orderCtx, cancel := context.WithTimeout(ctx, s.gatewayTimeout)
	defer cancel()

	orderRef, err := s.gateway.CreateOrder(orderCtx, amount, s.currency, map[string]string{
		"event_id":   event.ID,
		"payment_id": payment.ID,
		"payer_id":   payerID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrGatewayTimeout) {
			// payment stays pending and can be retried
			s.logger.Error("gateway order timed out",
				logger.String("payment_id", payment.ID),
			)
			return nil, err
		}
		if failErr := s.repo.Fail(ctx, payment.ID); failErr != nil {
			s.logger.Error("failed to mark payment failed",
				logger.String("payment_id", payment.ID),
				logger.String("error", failErr.Error()),
			)
		}
		return nil, fmt.Errorf("create gateway order: %w", err)
	}

	if err = s.repo.SetOrderRef(ctx, payment.ID, orderRef); err != nil {
		return nil, err
	}
	payment.OrderRef = &orderRef

	s.logger.Info("payment initiated",
		logger.String("payment_id", payment.ID),
		logger.String("event_id", event.ID),
		logger.String("order_ref", orderRef),
	)

	return payment, nil
}

// Confirm settles a pending payment after verifying the gateway signature
// and publishes the owning event exactly once. Re-confirming a completed
// payment is a no-op that still reports success.
func (s *PaymentService) Confirm(ctx context.Context, paymentID string, input domain.ConfirmPaymentInput) (*domain.Payment, error) {
	payment, err := s.repo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status == domain.PaymentStatusCompleted {
		return payment, nil
	}

	if !s.gateway.VerifySignature(input.PaymentRef, input.OrderRef, input.Signature) {
		if failErr := s.repo.Fail(ctx, paymentID); failErr != nil {
			s.logger.Error("failed to mark payment failed",
				logger.String("payment_id", paymentID),
				logger.String("error", failErr.Error()),
			)
		}
		return nil, domain.ErrPaymentVerification
	}

	already, err := s.repo.Confirm(ctx, paymentID, input.PaymentRef)
	if err != nil {
		return nil, err
	}

	if !already {
		s.logger.Info("payment confirmed",
			logger.String("payment_id", paymentID),
			logger.String("event_id", payment.EventID),
		)
		s.afterPublication(ctx, payment.EventID)
	}

	return s.repo.GetByID(ctx, paymentID)
}

// Fail marks a pending payment failed; the event stays draft and a new
// payment can be initiated.
func (s *PaymentService) Fail(ctx context.Context, paymentID string) error {
	if err := s.repo.Fail(ctx, paymentID); err != nil {
		return err
	}

	s.logger.Info("payment failed", logger.String("payment_id", paymentID))
	return nil
}

func (s *PaymentService) List(ctx context.Context, role domain.Role, userID string) ([]*domain.Payment, error) {
	return s.repo.List(ctx, role, userID)
}

func (s *PaymentService) resolveAmount(ctx context.Context, input domain.InitiatePaymentInput) (float64, error) {
	if input.Amount != nil {
		return *input.Amount, nil
	}
	if input.VenueID == nil {
		return 0, fmt.Errorf("%w: amount or venue is required", domain.ErrValidation)
	}

	venue, err := s.venueRepo.GetByID(ctx, *input.VenueID)
	if err != nil {
		return 0, err
	}

	hours := input.BookingHours
	if hours <= 0 {
		hours = defaultBookingHours
	}

	return venue.Quote(hours), nil
}

// afterPublication runs the fire-and-forget side effects of an event going
// upcoming: notifying the creator and emitting a stream message. Failures
// here never roll back the publication.
func (s *PaymentService) afterPublication(ctx context.Context, eventID string) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		s.logger.Error("failed to get event after publication",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
		return
	}

	go s.publisher.PublishEventPublished(context.WithoutCancel(ctx), event)

	creator, err := s.userRepo.GetByID(ctx, event.CreatedBy)
	if err != nil {
		s.logger.Error("failed to get creator for publication notification",
			logger.String("user_id", event.CreatedBy),
			logger.String("error", err.Error()),
		)
		return
	}

	go s.notifier.NotifyEventPublished(context.WithoutCancel(ctx), creator, event)
}
