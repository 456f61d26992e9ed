package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/vivekmohanraj/EventSphere/internal/domain"
	"github.com/vivekmohanraj/EventSphere/internal/handler/dto"
	"github.com/vivekmohanraj/EventSphere/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	Create(ctx context.Context, creatorID string, role domain.Role, input domain.CreateEventInput) (*domain.Event, error)
	Get(ctx context.Context, id string) (*domain.Event, error)
	Details(ctx context.Context, id string) (*domain.EventDetails, error)
	List(ctx context.Context, role domain.Role, userID string) ([]*domain.Event, error)
	Transition(ctx context.Context, actorID string, role domain.Role, eventID string, target domain.EventStatus) (*domain.Event, error)
}

type RegistrationSvc interface {
	Register(ctx context.Context, eventID, userID string) (*domain.Registration, error)
	Cancel(ctx context.Context, regID, actorID string, role domain.Role) error
	MarkAttended(ctx context.Context, regID string, role domain.Role) error
	Snapshot(ctx context.Context, eventID string) (*domain.CapacitySnapshot, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Registration, error)
	ListByEvent(ctx context.Context, eventID string, role domain.Role) ([]*domain.Registration, error)
}

type PaymentSvc interface {
	Initiate(ctx context.Context, payerID string, role domain.Role, input domain.InitiatePaymentInput) (*domain.Payment, error)
	Confirm(ctx context.Context, paymentID string, input domain.ConfirmPaymentInput) (*domain.Payment, error)
	Fail(ctx context.Context, paymentID string) error
	List(ctx context.Context, role domain.Role, userID string) ([]*domain.Payment, error)
}

type UserSvc interface {
	Register(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}

type VenueSvc interface {
	List(ctx context.Context) ([]*domain.Venue, error)
	Quote(ctx context.Context, venueID string, hours int) (float64, error)
}

type Handler struct {
	events        EventSvc
	registrations RegistrationSvc
	payments      PaymentSvc
	users         UserSvc
	venues        VenueSvc
}

func New(events EventSvc, registrations RegistrationSvc, payments PaymentSvc, users UserSvc, venues VenueSvc) *Handler {
	return &Handler{
		events:        events,
		registrations: registrations,
		payments:      payments,
		users:         users,
		venues:        venues,
	}
}

func (h *Handler) Health(c *ginext.Context) {
	c.JSON(http.StatusOK, ginext.H{"status": "ok"})
}

// handleError maps domain errors to HTTP statuses. Every handler funnels
// service errors through here so the mapping lives in one place.
func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrPaymentVerification):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRegistrationNotFound),
		errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrVenueNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrAlreadyRegistered),
		errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrAlreadyPublished),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrInvalidState):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrGatewayTimeout):
		c.JSON(http.StatusGatewayTimeout, dto.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
	}
}

func callerID(c *ginext.Context) string {
	v, _ := c.Get(middleware.CtxUserID)
	id, _ := v.(string)
	return id
}

func callerRole(c *ginext.Context) domain.Role {
	v, ok := c.Get(middleware.CtxRole)
	if !ok {
		return domain.RoleNormal
	}
	s, _ := v.(string)
	role := domain.Role(s)
	if !role.Valid() {
		return domain.RoleNormal
	}
	return role
}
