package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vivekmohanraj/EventSphere/internal/domain"
	"github.com/vivekmohanraj/EventSphere/internal/service/ports/mocks"
)

type paymentMocks struct {
	repo      *mocks.MockPaymentRepo
	eventRepo *mocks.MockEventRepo
	venueRepo *mocks.MockVenueRepo
	userRepo  *mocks.MockUserRepo
	gateway   *mocks.MockPaymentGateway
	notifier  *mocks.MockNotifier
	publisher *mocks.MockStreamPublisher
}

func newPaymentService(t *testing.T) (*PaymentService, *paymentMocks) {
	t.Helper()
	m := &paymentMocks{
		repo:      mocks.NewMockPaymentRepo(t),
		eventRepo: mocks.NewMockEventRepo(t),
		venueRepo: mocks.NewMockVenueRepo(t),
		userRepo:  mocks.NewMockUserRepo(t),
		gateway:   mocks.NewMockPaymentGateway(t),
		notifier:  mocks.NewMockNotifier(t),
		publisher: mocks.NewMockStreamPublisher(t),
	}

	svc := NewPaymentService(
		m.repo, m.eventRepo, m.venueRepo, m.userRepo,
		m.gateway, m.notifier, m.publisher,
		"INR", 5*time.Second, newTestLogger(t),
	)
	return svc, m
}

func draftEvent() *domain.Event {
	return &domain.Event{ID: "e1", Name: "Meetup", Status: domain.EventStatusDraft, CreatedBy: "coord-1"}
}

func TestPaymentService_Initiate_CoordinatorCreatesOrder(t *testing.T) {
	svc, m := newPaymentService(t)

	amount := 1500.0

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(draftEvent(), nil)
	m.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.gateway.EXPECT().CreateOrder(mock.Anything, 1500.0, "INR", mock.Anything).Return("order_abc", nil)
	m.repo.EXPECT().SetOrderRef(mock.Anything, mock.Anything, "order_abc").Return(nil)

	payment, err := svc.Initiate(context.Background(), "coord-1", domain.RoleCoordinator, domain.InitiatePaymentInput{
		EventID: "e1",
		Amount:  &amount,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, payment.Status)
	require.NotNil(t, payment.OrderRef)
	assert.Equal(t, "order_abc", *payment.OrderRef)
	assert.Equal(t, 1500.0, payment.Amount)
}

func TestPaymentService_Initiate_AdminAutoCompletes(t *testing.T) {
	svc, m := newPaymentService(t)

	amount := 100.0
	event := draftEvent()
	creator := &domain.User{ID: "coord-1"}

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.repo.EXPECT().Confirm(mock.Anything, mock.Anything, "ADMIN_FREE_e1").Return(false, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "coord-1").Return(creator, nil)
	m.publisher.EXPECT().PublishEventPublished(mock.Anything, event).Return(nil)
	m.notifier.EXPECT().NotifyEventPublished(mock.Anything, creator, event).Return()

	payment, err := svc.Initiate(context.Background(), "admin-1", domain.RoleAdmin, domain.InitiatePaymentInput{
		EventID: "e1",
		Amount:  &amount,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, payment.Status)
	require.NotNil(t, payment.TransactionID)
	assert.Equal(t, "ADMIN_FREE_e1", *payment.TransactionID)

	time.Sleep(50 * time.Millisecond) // goroutine publish + notify
}

func TestPaymentService_Initiate_AlreadyPublished(t *testing.T) {
	svc, m := newPaymentService(t)

	amount := 100.0
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", Status: domain.EventStatusUpcoming}, nil)

	_, err := svc.Initiate(context.Background(), "coord-1", domain.RoleCoordinator, domain.InitiatePaymentInput{
		EventID: "e1",
		Amount:  &amount,
	})

	assert.ErrorIs(t, err, domain.ErrAlreadyPublished)
}

func TestPaymentService_Initiate_NotOwnerForbidden(t *testing.T) {
	svc, m := newPaymentService(t)

	amount := 100.0
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(draftEvent(), nil)

	_, err := svc.Initiate(context.Background(), "coord-2", domain.RoleCoordinator, domain.InitiatePaymentInput{
		EventID: "e1",
		Amount:  &amount,
	})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPaymentService_Initiate_InvalidAmount(t *testing.T) {
	svc, m := newPaymentService(t)

	amount := -10.0
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(draftEvent(), nil)

	_, err := svc.Initiate(context.Background(), "coord-1", domain.RoleCoordinator, domain.InitiatePaymentInput{
		EventID: "e1",
		Amount:  &amount,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestPaymentService_Initiate_VenueQuote(t *testing.T) {
	svc, m := newPaymentService(t)

	venueID := "v1"
	venue := &domain.Venue{ID: venueID, PricePerHour: 100, Capacity: 300}

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(draftEvent(), nil)
	m.venueRepo.EXPECT().GetByID(mock.Anything, venueID).Return(venue, nil)
	m.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.gateway.EXPECT().CreateOrder(mock.Anything, 800.0, "INR", mock.Anything).Return("order_v", nil)
	m.repo.EXPECT().SetOrderRef(mock.Anything, mock.Anything, "order_v").Return(nil)

	payment, err := svc.Initiate(context.Background(), "coord-1", domain.RoleCoordinator, domain.InitiatePaymentInput{
		EventID: "e1",
		VenueID: &venueID,
	})

	require.NoError(t, err)
	// 3 default hours at 100/hr plus the large-venue surcharge
	assert.Equal(t, 800.0, payment.Amount)
}

func TestPaymentService_Initiate_GatewayTimeoutLeavesPending(t *testing.T) {
	svc, m := newPaymentService(t)

	amount := 500.0
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(draftEvent(), nil)
	m.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.gateway.EXPECT().CreateOrder(mock.Anything, 500.0, "INR", mock.Anything).Return("", domain.ErrGatewayTimeout)

	_, err := svc.Initiate(context.Background(), "coord-1", domain.RoleCoordinator, domain.InitiatePaymentInput{
		EventID: "e1",
		Amount:  &amount,
	})

	// the payment must stay pending, so repo.Fail is never called
	assert.ErrorIs(t, err, domain.ErrGatewayTimeout)
}

func TestPaymentService_Initiate_GatewayErrorFailsPayment(t *testing.T) {
	svc, m := newPaymentService(t)

	amount := 500.0
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(draftEvent(), nil)
	m.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.gateway.EXPECT().CreateOrder(mock.Anything, 500.0, "INR", mock.Anything).Return("", errors.New("provider rejected"))
	m.repo.EXPECT().Fail(mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Initiate(context.Background(), "coord-1", domain.RoleCoordinator, domain.InitiatePaymentInput{
		EventID: "e1",
		Amount:  &amount,
	})

	require.Error(t, err)
}

func TestPaymentService_Confirm_Success(t *testing.T) {
	svc, m := newPaymentService(t)

	pending := &domain.Payment{ID: "p1", EventID: "e1", Status: domain.PaymentStatusPending}
	txn := "pay_xyz"
	completed := &domain.Payment{ID: "p1", EventID: "e1", Status: domain.PaymentStatusCompleted, TransactionID: &txn}
	event := &domain.Event{ID: "e1", Status: domain.EventStatusUpcoming, CreatedBy: "coord-1"}
	creator := &domain.User{ID: "coord-1"}

	m.repo.EXPECT().GetByID(mock.Anything, "p1").Return(pending, nil).Once()
	m.gateway.EXPECT().VerifySignature("pay_xyz", "order_abc", "sig").Return(true)
	m.repo.EXPECT().Confirm(mock.Anything, "p1", "pay_xyz").Return(false, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "coord-1").Return(creator, nil)
	m.publisher.EXPECT().PublishEventPublished(mock.Anything, event).Return(nil)
	m.notifier.EXPECT().NotifyEventPublished(mock.Anything, creator, event).Return()
	m.repo.EXPECT().GetByID(mock.Anything, "p1").Return(completed, nil).Once()

	payment, err := svc.Confirm(context.Background(), "p1", domain.ConfirmPaymentInput{
		PaymentRef: "pay_xyz",
		OrderRef:   "order_abc",
		Signature:  "sig",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, payment.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestPaymentService_Confirm_Idempotent(t *testing.T) {
	svc, m := newPaymentService(t)

	completed := &domain.Payment{ID: "p1", EventID: "e1", Status: domain.PaymentStatusCompleted}

	m.repo.EXPECT().GetByID(mock.Anything, "p1").Return(completed, nil)

	payment, err := svc.Confirm(context.Background(), "p1", domain.ConfirmPaymentInput{
		PaymentRef: "pay_xyz",
		OrderRef:   "order_abc",
		Signature:  "sig",
	})

	// no signature check, no second settle, no second publish
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, payment.Status)
}

func TestPaymentService_Confirm_BadSignature(t *testing.T) {
	svc, m := newPaymentService(t)

	pending := &domain.Payment{ID: "p1", EventID: "e1", Status: domain.PaymentStatusPending}

	m.repo.EXPECT().GetByID(mock.Anything, "p1").Return(pending, nil)
	m.gateway.EXPECT().VerifySignature("pay_xyz", "order_abc", "bad").Return(false)
	m.repo.EXPECT().Fail(mock.Anything, "p1").Return(nil)

	_, err := svc.Confirm(context.Background(), "p1", domain.ConfirmPaymentInput{
		PaymentRef: "pay_xyz",
		OrderRef:   "order_abc",
		Signature:  "bad",
	})

	assert.ErrorIs(t, err, domain.ErrPaymentVerification)
}

func TestPaymentService_Confirm_NotFound(t *testing.T) {
	svc, m := newPaymentService(t)

	m.repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrPaymentNotFound)

	_, err := svc.Confirm(context.Background(), "missing", domain.ConfirmPaymentInput{
		PaymentRef: "pay_xyz",
		OrderRef:   "order_abc",
		Signature:  "sig",
	})

	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
}
