package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vivekmohanraj/EventSphere/internal/domain"
	"github.com/vivekmohanraj/EventSphere/internal/service/ports/mocks"
)

func newRegistrationService(t *testing.T) (*RegistrationService, *mocks.MockRegistrationRepo, *mocks.MockEventRepo, *mocks.MockUserRepo, *mocks.MockNotifier, *mocks.MockStreamPublisher) {
	t.Helper()
	repo := mocks.NewMockRegistrationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockNotifier(t)
	publisher := mocks.NewMockStreamPublisher(t)

	svc := NewRegistrationService(repo, eventRepo, userRepo, notifier, publisher, newTestLogger(t))
	return svc, repo, eventRepo, userRepo, notifier, publisher
}

func TestRegistrationService_Register_Success(t *testing.T) {
	svc, repo, eventRepo, userRepo, notifier, publisher := newRegistrationService(t)

	event := &domain.Event{ID: "e1", Name: "GopherCon", Status: domain.EventStatusUpcoming}
	user := &domain.User{ID: "u1", Username: "alice"}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyRegistrationConfirmed(mock.Anything, user, event).Return()
	publisher.EXPECT().PublishRegistrationConfirmed(mock.Anything, mock.Anything).Return(nil)

	reg, err := svc.Register(context.Background(), "e1", "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationStatusRegistered, reg.Status)
	assert.Equal(t, "e1", reg.EventID)
	assert.Equal(t, "u1", reg.UserID)
	assert.NotEmpty(t, reg.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify + publish
}

func TestRegistrationService_Register_EventNotFound(t *testing.T) {
	svc, _, eventRepo, _, _, _ := newRegistrationService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Register(context.Background(), "missing", "u1")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestRegistrationService_Register_CapacityExceeded(t *testing.T) {
	svc, repo, eventRepo, userRepo, _, _ := newRegistrationService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrCapacityExceeded)

	_, err := svc.Register(context.Background(), "e1", "u1")

	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestRegistrationService_Register_Duplicate(t *testing.T) {
	svc, repo, eventRepo, userRepo, _, _ := newRegistrationService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrAlreadyRegistered)

	_, err := svc.Register(context.Background(), "e1", "u1")

	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
}

func TestRegistrationService_Cancel_ByOwner(t *testing.T) {
	svc, repo, eventRepo, userRepo, notifier, _ := newRegistrationService(t)

	reg := &domain.Registration{ID: "r1", EventID: "e1", UserID: "u1", Status: domain.RegistrationStatusRegistered}
	user := &domain.User{ID: "u1"}
	event := &domain.Event{ID: "e1"}

	repo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)
	repo.EXPECT().Cancel(mock.Anything, "r1").Return(true, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	notifier.EXPECT().NotifyRegistrationCanceled(mock.Anything, user, event).Return()

	err := svc.Cancel(context.Background(), "r1", "u1", domain.RoleNormal)

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestRegistrationService_Cancel_AlreadyCanceledIsNoop(t *testing.T) {
	svc, repo, _, _, _, _ := newRegistrationService(t)

	reg := &domain.Registration{ID: "r1", EventID: "e1", UserID: "u1", Status: domain.RegistrationStatusCanceled}

	repo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)
	repo.EXPECT().Cancel(mock.Anything, "r1").Return(false, nil)

	err := svc.Cancel(context.Background(), "r1", "u1", domain.RoleNormal)

	require.NoError(t, err)
}

func TestRegistrationService_Cancel_OtherUserForbidden(t *testing.T) {
	svc, repo, _, _, _, _ := newRegistrationService(t)

	reg := &domain.Registration{ID: "r1", EventID: "e1", UserID: "u1"}

	repo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)

	err := svc.Cancel(context.Background(), "r1", "u2", domain.RoleNormal)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRegistrationService_Cancel_AdminOverride(t *testing.T) {
	svc, repo, eventRepo, userRepo, notifier, _ := newRegistrationService(t)

	reg := &domain.Registration{ID: "r1", EventID: "e1", UserID: "u1", Status: domain.RegistrationStatusRegistered}
	user := &domain.User{ID: "u1"}
	event := &domain.Event{ID: "e1"}

	repo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)
	repo.EXPECT().Cancel(mock.Anything, "r1").Return(true, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	notifier.EXPECT().NotifyRegistrationCanceled(mock.Anything, user, event).Return()

	err := svc.Cancel(context.Background(), "r1", "admin-1", domain.RoleAdmin)

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestRegistrationService_MarkAttended_Success(t *testing.T) {
	svc, repo, eventRepo, _, _, _ := newRegistrationService(t)

	reg := &domain.Registration{ID: "r1", EventID: "e1", UserID: "u1", Status: domain.RegistrationStatusRegistered}

	repo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", Status: domain.EventStatusCompleted}, nil)
	repo.EXPECT().MarkAttended(mock.Anything, "r1").Return(true, nil)

	err := svc.MarkAttended(context.Background(), "r1", domain.RoleCoordinator)

	require.NoError(t, err)
}

func TestRegistrationService_MarkAttended_NormalRoleForbidden(t *testing.T) {
	svc, _, _, _, _, _ := newRegistrationService(t)

	err := svc.MarkAttended(context.Background(), "r1", domain.RoleNormal)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRegistrationService_MarkAttended_CanceledEvent(t *testing.T) {
	svc, repo, eventRepo, _, _, _ := newRegistrationService(t)

	reg := &domain.Registration{ID: "r1", EventID: "e1", Status: domain.RegistrationStatusRegistered}

	repo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", Status: domain.EventStatusCanceled}, nil)

	err := svc.MarkAttended(context.Background(), "r1", domain.RoleAdmin)

	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestRegistrationService_MarkAttended_CanceledRegistration(t *testing.T) {
	svc, repo, eventRepo, _, _, _ := newRegistrationService(t)

	reg := &domain.Registration{ID: "r1", EventID: "e1", Status: domain.RegistrationStatusCanceled}

	repo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", Status: domain.EventStatusUpcoming}, nil)
	repo.EXPECT().MarkAttended(mock.Anything, "r1").Return(false, nil)

	err := svc.MarkAttended(context.Background(), "r1", domain.RoleAdmin)

	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestRegistrationService_MarkAttended_Idempotent(t *testing.T) {
	svc, repo, eventRepo, _, _, _ := newRegistrationService(t)

	reg := &domain.Registration{ID: "r1", EventID: "e1", Status: domain.RegistrationStatusAttended}

	repo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", Status: domain.EventStatusCompleted}, nil)
	repo.EXPECT().MarkAttended(mock.Anything, "r1").Return(false, nil)

	err := svc.MarkAttended(context.Background(), "r1", domain.RoleAdmin)

	require.NoError(t, err)
}

func TestRegistrationService_ListByEvent_Restricted(t *testing.T) {
	svc, _, _, _, _, _ := newRegistrationService(t)

	_, err := svc.ListByEvent(context.Background(), "e1", domain.RoleNormal)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}
