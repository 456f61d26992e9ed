package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vivekmohanraj/EventSphere/internal/domain"
	"github.com/vivekmohanraj/EventSphere/internal/handler/dto"
	hmocks "github.com/vivekmohanraj/EventSphere/internal/handler/mocks"
	"github.com/vivekmohanraj/EventSphere/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type testMocks struct {
	events        *hmocks.MockEventSvc
	registrations *hmocks.MockRegistrationSvc
	payments      *hmocks.MockPaymentSvc
	users         *hmocks.MockUserSvc
	venues        *hmocks.MockVenueSvc
}

// asCaller injects an authenticated identity the way the auth middleware
// would.
func asCaller(id string, role domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		c.Set(middleware.CtxUserID, id)
		c.Set(middleware.CtxRole, string(role))
		c.Next()
	}
}

func setupRouter(t *testing.T, callerID string, role domain.Role) (*testMocks, http.Handler) {
	t.Helper()
	m := &testMocks{
		events:        hmocks.NewMockEventSvc(t),
		registrations: hmocks.NewMockRegistrationSvc(t),
		payments:      hmocks.NewMockPaymentSvc(t),
		users:         hmocks.NewMockUserSvc(t),
		venues:        hmocks.NewMockVenueSvc(t),
	}

	h := New(m.events, m.registrations, m.payments, m.users, m.venues)

	r := ginext.New("test")
	api := r.Group("/api")
	api.Use(asCaller(callerID, role))
	{
		api.POST("/auth/register", h.RegisterUser)
		api.POST("/auth/login", h.Login)

		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.GET("/events/:id/capacity", h.EventCapacity)
		api.POST("/events", h.CreateEvent)
		api.POST("/events/:id/cancel", h.CancelEvent)
		api.POST("/events/:id/postpone", h.PostponeEvent)
		api.POST("/events/:id/reopen", h.ReopenEvent)

		api.POST("/events/:id/register", h.RegisterForEvent)
		api.POST("/registrations/:id/cancel", h.CancelRegistration)
		api.POST("/registrations/:id/attended", h.MarkAttended)

		api.POST("/events/:id/payments", h.InitiatePayment)
		api.POST("/payments/:id/confirm", h.ConfirmPayment)

		api.GET("/venues/:id/quote", h.QuoteVenue)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	m, r := setupRouter(t, "coord-1", domain.RoleCoordinator)

	event := &domain.Event{
		ID:        "e1",
		Name:      "GopherCon",
		Type:      "conference",
		EventTime: time.Now().Add(48 * time.Hour),
		Status:    domain.EventStatusDraft,
		CreatedBy: "coord-1",
		CreatedAt: time.Now(),
	}
	m.events.EXPECT().Create(mock.Anything, "coord-1", domain.RoleCoordinator, mock.Anything).Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Name:      "GopherCon",
		Type:      "conference",
		EventTime: time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "GopherCon", resp.Name)
	assert.Equal(t, "draft", resp.Status)
}

func TestHandler_CreateEvent_BadRequest(t *testing.T) {
	_, r := setupRouter(t, "coord-1", domain.RoleCoordinator)

	w := doJSON(t, r, http.MethodPost, "/api/events", map[string]string{"name": ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, r := setupRouter(t, "coord-1", domain.RoleCoordinator)

	w := doJSON(t, r, http.MethodPost, "/api/events", map[string]string{
		"name":       "X",
		"type":       "meetup",
		"event_time": "tomorrowish",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	m, r := setupRouter(t, "", domain.RoleNormal)

	m.events.EXPECT().Get(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/events/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CancelEvent_Success(t *testing.T) {
	m, r := setupRouter(t, "coord-1", domain.RoleCoordinator)

	canceled := &domain.Event{ID: "e1", Status: domain.EventStatusCanceled}
	m.events.EXPECT().Transition(mock.Anything, "coord-1", domain.RoleCoordinator, "e1", domain.EventStatusCanceled).Return(canceled, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/e1/cancel", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "canceled", resp.Status)
}

func TestHandler_CancelEvent_InvalidTransition(t *testing.T) {
	m, r := setupRouter(t, "admin-1", domain.RoleAdmin)

	m.events.EXPECT().Transition(mock.Anything, "admin-1", domain.RoleAdmin, "e1", domain.EventStatusCanceled).Return(nil, domain.ErrInvalidTransition)

	w := doJSON(t, r, http.MethodPost, "/api/events/e1/cancel", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Registrations ---

func TestHandler_RegisterForEvent_Success(t *testing.T) {
	m, r := setupRouter(t, "u1", domain.RoleNormal)

	reg := &domain.Registration{ID: "r1", EventID: "e1", UserID: "u1", Status: domain.RegistrationStatusRegistered}
	m.registrations.EXPECT().Register(mock.Anything, "e1", "u1").Return(reg, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/e1/register", nil)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_RegisterForEvent_Full(t *testing.T) {
	m, r := setupRouter(t, "u1", domain.RoleNormal)

	m.registrations.EXPECT().Register(mock.Anything, "e1", "u1").Return(nil, domain.ErrCapacityExceeded)

	w := doJSON(t, r, http.MethodPost, "/api/events/e1/register", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_RegisterForEvent_Duplicate(t *testing.T) {
	m, r := setupRouter(t, "u1", domain.RoleNormal)

	m.registrations.EXPECT().Register(mock.Anything, "e1", "u1").Return(nil, domain.ErrAlreadyRegistered)

	w := doJSON(t, r, http.MethodPost, "/api/events/e1/register", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_MarkAttended_Forbidden(t *testing.T) {
	m, r := setupRouter(t, "u1", domain.RoleNormal)

	m.registrations.EXPECT().MarkAttended(mock.Anything, "r1", domain.RoleNormal).Return(domain.ErrForbidden)

	w := doJSON(t, r, http.MethodPost, "/api/registrations/r1/attended", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_EventCapacity(t *testing.T) {
	m, r := setupRouter(t, "", domain.RoleNormal)

	capVal := 100
	remaining := 40
	m.registrations.EXPECT().Snapshot(mock.Anything, "e1").Return(&domain.CapacitySnapshot{
		Capacity:  &capVal,
		Active:    60,
		Remaining: &remaining,
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events/e1/capacity", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CapacityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 60, resp.Active)
	require.NotNil(t, resp.Remaining)
	assert.Equal(t, 40, *resp.Remaining)
}

// --- Payments ---

func TestHandler_InitiatePayment_AlreadyPublished(t *testing.T) {
	m, r := setupRouter(t, "coord-1", domain.RoleCoordinator)

	m.payments.EXPECT().Initiate(mock.Anything, "coord-1", domain.RoleCoordinator, mock.Anything).Return(nil, domain.ErrAlreadyPublished)

	w := doJSON(t, r, http.MethodPost, "/api/events/e1/payments", dto.InitiatePaymentRequest{})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_InitiatePayment_GatewayTimeout(t *testing.T) {
	m, r := setupRouter(t, "coord-1", domain.RoleCoordinator)

	m.payments.EXPECT().Initiate(mock.Anything, "coord-1", domain.RoleCoordinator, mock.Anything).Return(nil, domain.ErrGatewayTimeout)

	w := doJSON(t, r, http.MethodPost, "/api/events/e1/payments", dto.InitiatePaymentRequest{})

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
}

func TestHandler_ConfirmPayment_Success(t *testing.T) {
	m, r := setupRouter(t, "coord-1", domain.RoleCoordinator)

	txn := "pay_xyz"
	completed := &domain.Payment{ID: "p1", EventID: "e1", Status: domain.PaymentStatusCompleted, TransactionID: &txn, Amount: 500}
	m.payments.EXPECT().Confirm(mock.Anything, "p1", domain.ConfirmPaymentInput{
		PaymentRef: "pay_xyz",
		OrderRef:   "order_abc",
		Signature:  "sig",
	}).Return(completed, nil)

	w := doJSON(t, r, http.MethodPost, "/api/payments/p1/confirm", dto.ConfirmPaymentRequest{
		RazorpayPaymentID: "pay_xyz",
		RazorpayOrderID:   "order_abc",
		RazorpaySignature: "sig",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.PaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Status)
}

func TestHandler_ConfirmPayment_BadSignature(t *testing.T) {
	m, r := setupRouter(t, "coord-1", domain.RoleCoordinator)

	m.payments.EXPECT().Confirm(mock.Anything, "p1", mock.Anything).Return(nil, domain.ErrPaymentVerification)

	w := doJSON(t, r, http.MethodPost, "/api/payments/p1/confirm", dto.ConfirmPaymentRequest{
		RazorpayPaymentID: "pay_xyz",
		RazorpayOrderID:   "order_abc",
		RazorpaySignature: "bad",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ConfirmPayment_MissingFields(t *testing.T) {
	_, r := setupRouter(t, "coord-1", domain.RoleCoordinator)

	w := doJSON(t, r, http.MethodPost, "/api/payments/p1/confirm", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Auth ---

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	m, r := setupRouter(t, "", domain.RoleNormal)

	m.users.EXPECT().Login(mock.Anything, "alice@example.com", "wrong").Return(nil, "", domain.ErrInvalidCredentials)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_RegisterUser_EmailTaken(t *testing.T) {
	m, r := setupRouter(t, "", domain.RoleNormal)

	m.users.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", dto.RegisterUserRequest{
		FirstName: "Alice",
		LastName:  "Smith",
		Username:  "alice",
		Email:     "alice@example.com",
		Phone:     "+10000000000",
		Password:  "supersecret",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Venues ---

func TestHandler_QuoteVenue(t *testing.T) {
	m, r := setupRouter(t, "", domain.RoleNormal)

	m.venues.EXPECT().Quote(mock.Anything, "v1", 4).Return(900.0, nil)

	w := doJSON(t, r, http.MethodGet, "/api/venues/v1/quote?hours=4", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.QuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 900.0, resp.Amount)
	assert.Equal(t, 4, resp.Hours)
}

func TestHandler_QuoteVenue_BadHours(t *testing.T) {
	_, r := setupRouter(t, "", domain.RoleNormal)

	w := doJSON(t, r, http.MethodGet, "/api/venues/v1/quote?hours=zero", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
