package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vivekmohanraj/EventSphere/internal/cache"
	"github.com/vivekmohanraj/EventSphere/internal/domain"
	"github.com/vivekmohanraj/EventSphere/internal/service/ports/mocks"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestCache(t *testing.T) *cache.Cache {
	t.Helper()
	// empty addr disables redis, calls become no-ops
	return cache.New("", "", 0, time.Minute, newTestLogger(t))
}

func newEventService(t *testing.T, paymentRequired bool) (*EventService, *mocks.MockEventRepo, *mocks.MockRegistrationRepo, *mocks.MockStreamPublisher) {
	t.Helper()
	repo := mocks.NewMockEventRepo(t)
	regRepo := mocks.NewMockRegistrationRepo(t)
	publisher := mocks.NewMockStreamPublisher(t)

	svc := NewEventService(repo, regRepo, publisher, newTestCache(t), paymentRequired, 100, newTestLogger(t))
	return svc, repo, regRepo, publisher
}

func TestEventService_Create_AdminPublishesImmediately(t *testing.T) {
	svc, repo, _, publisher := newEventService(t, true)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	publisher.EXPECT().PublishEventPublished(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Create(context.Background(), "admin-1", domain.RoleAdmin, domain.CreateEventInput{
		Name:      "GopherCon",
		Type:      "conference",
		EventTime: time.Now().Add(48 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusUpcoming, event.Status)
	assert.Equal(t, "admin-1", event.CreatedBy)
	assert.NotEmpty(t, event.ID)

	time.Sleep(50 * time.Millisecond) // goroutine publish
}

func TestEventService_Create_CoordinatorStartsDraft(t *testing.T) {
	svc, repo, _, _ := newEventService(t, true)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Create(context.Background(), "coord-1", domain.RoleCoordinator, domain.CreateEventInput{
		Name:      "Meetup",
		Type:      "meetup",
		EventTime: time.Now().Add(24 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusDraft, event.Status)
}

func TestEventService_Create_CoordinatorPublishesWhenPaymentOff(t *testing.T) {
	svc, repo, _, publisher := newEventService(t, false)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	publisher.EXPECT().PublishEventPublished(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Create(context.Background(), "coord-1", domain.RoleCoordinator, domain.CreateEventInput{
		Name:      "Meetup",
		Type:      "meetup",
		EventTime: time.Now().Add(24 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusUpcoming, event.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestEventService_Create_NormalUserForbidden(t *testing.T) {
	svc, _, _, _ := newEventService(t, true)

	_, err := svc.Create(context.Background(), "u1", domain.RoleNormal, domain.CreateEventInput{
		Name:      "Party",
		Type:      "social",
		EventTime: time.Now().Add(time.Hour),
	})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEventService_Create_Validation(t *testing.T) {
	svc, _, _, _ := newEventService(t, true)

	price := 50.0
	badPrice := -5.0
	zeroCap := 0
	future := time.Now().Add(time.Hour)

	cases := []struct {
		name  string
		input domain.CreateEventInput
	}{
		{"missing name", domain.CreateEventInput{Type: "x", EventTime: future}},
		{"missing type", domain.CreateEventInput{Name: "x", EventTime: future}},
		{"missing time", domain.CreateEventInput{Name: "x", Type: "y"}},
		{"paid without price", domain.CreateEventInput{Name: "x", Type: "y", EventTime: future, IsPaid: true}},
		{"paid with negative price", domain.CreateEventInput{Name: "x", Type: "y", EventTime: future, IsPaid: true, Price: &badPrice}},
		{"free with price", domain.CreateEventInput{Name: "x", Type: "y", EventTime: future, Price: &price}},
		{"zero capacity", domain.CreateEventInput{Name: "x", Type: "y", EventTime: future, Capacity: &zeroCap}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), "admin-1", domain.RoleAdmin, tc.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventService_Get_LazilyCompletesExpired(t *testing.T) {
	svc, repo, _, _ := newEventService(t, true)

	event := &domain.Event{
		ID:        "e1",
		Status:    domain.EventStatusUpcoming,
		EventTime: time.Now().Add(-time.Hour),
	}

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	repo.EXPECT().UpdateStatus(mock.Anything, "e1", domain.EventStatusUpcoming, domain.EventStatusCompleted).Return(true, nil)

	got, err := svc.Get(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusCompleted, got.Status)
}

func TestEventService_Get_LazyCompleteLostRace(t *testing.T) {
	svc, repo, _, _ := newEventService(t, true)

	event := &domain.Event{
		ID:        "e1",
		Status:    domain.EventStatusUpcoming,
		EventTime: time.Now().Add(-time.Hour),
	}

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	// sweeper got there first
	repo.EXPECT().UpdateStatus(mock.Anything, "e1", domain.EventStatusUpcoming, domain.EventStatusCompleted).Return(false, nil)

	got, err := svc.Get(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusUpcoming, got.Status)
}

func TestEventService_Transition_CancelUpcoming(t *testing.T) {
	svc, repo, _, _ := newEventService(t, true)

	event := &domain.Event{ID: "e1", Status: domain.EventStatusUpcoming, CreatedBy: "coord-1"}

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	repo.EXPECT().UpdateStatus(mock.Anything, "e1", domain.EventStatusUpcoming, domain.EventStatusCanceled).Return(true, nil)

	got, err := svc.Transition(context.Background(), "coord-1", domain.RoleCoordinator, "e1", domain.EventStatusCanceled)

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusCanceled, got.Status)
}

func TestEventService_Transition_ReopenPostponed(t *testing.T) {
	svc, repo, _, _ := newEventService(t, true)

	event := &domain.Event{ID: "e1", Status: domain.EventStatusPostponed, CreatedBy: "coord-1"}

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	repo.EXPECT().UpdateStatus(mock.Anything, "e1", domain.EventStatusPostponed, domain.EventStatusUpcoming).Return(true, nil)

	got, err := svc.Transition(context.Background(), "admin-1", domain.RoleAdmin, "e1", domain.EventStatusUpcoming)

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusUpcoming, got.Status)
}

func TestEventService_Transition_DraftBlocked(t *testing.T) {
	svc, repo, _, _ := newEventService(t, true)

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", Status: domain.EventStatusDraft, CreatedBy: "coord-1"}, nil)

	_, err := svc.Transition(context.Background(), "coord-1", domain.RoleCoordinator, "e1", domain.EventStatusUpcoming)

	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestEventService_Transition_TerminalBlocked(t *testing.T) {
	svc, repo, _, _ := newEventService(t, true)

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", Status: domain.EventStatusCompleted, CreatedBy: "coord-1"}, nil)

	_, err := svc.Transition(context.Background(), "admin-1", domain.RoleAdmin, "e1", domain.EventStatusCanceled)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestEventService_Transition_NotOwnerForbidden(t *testing.T) {
	svc, repo, _, _ := newEventService(t, true)

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", Status: domain.EventStatusUpcoming, CreatedBy: "coord-1"}, nil)

	_, err := svc.Transition(context.Background(), "coord-2", domain.RoleCoordinator, "e1", domain.EventStatusCanceled)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEventService_Transition_ConcurrentConflict(t *testing.T) {
	svc, repo, _, _ := newEventService(t, true)

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", Status: domain.EventStatusUpcoming, CreatedBy: "coord-1"}, nil).Once()
	repo.EXPECT().UpdateStatus(mock.Anything, "e1", domain.EventStatusUpcoming, domain.EventStatusCanceled).Return(false, nil)
	// the re-read reveals what won the race
	repo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", Status: domain.EventStatusCompleted, CreatedBy: "coord-1"}, nil).Once()

	_, err := svc.Transition(context.Background(), "admin-1", domain.RoleAdmin, "e1", domain.EventStatusCanceled)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestEventService_SweepExpired(t *testing.T) {
	svc, repo, _, _ := newEventService(t, true)

	swept := []*domain.Event{
		{ID: "e1", Status: domain.EventStatusCompleted},
		{ID: "e2", Status: domain.EventStatusCompleted},
	}
	repo.EXPECT().SweepExpired(mock.Anything, mock.Anything, 100).Return(swept, nil)

	got, err := svc.SweepExpired(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestEventService_SweepExpired_Error(t *testing.T) {
	svc, repo, _, _ := newEventService(t, true)

	repo.EXPECT().SweepExpired(mock.Anything, mock.Anything, 100).Return(nil, errors.New("db down"))

	_, err := svc.SweepExpired(context.Background())

	require.Error(t, err)
}
