package dto

import (
	"time"

	"github.com/vivekmohanraj/EventSphere/internal/domain"
)

type EventResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Audience    string   `json:"audience,omitempty"`
	IsPaid      bool     `json:"is_paid"`
	Price       *float64 `json:"price,omitempty"`
	EventTime   string   `json:"event_time"`
	Capacity    *int     `json:"capacity,omitempty"`
	VenueID     *string  `json:"venue_id,omitempty"`
	Status      string   `json:"status"`
	CreatedBy   string   `json:"created_by"`
	CreatedAt   string   `json:"created_at"`
}

type EventDetailsResponse struct {
	Event        EventResponse          `json:"event"`
	ActiveCount  int                    `json:"active_count"`
	Participants []RegistrationResponse `json:"participants"`
}

type RegistrationResponse struct {
	ID           string `json:"id"`
	EventID      string `json:"event_id"`
	UserID       string `json:"user_id"`
	Status       string `json:"status"`
	RegisteredAt string `json:"registered_at"`
}

type CapacityResponse struct {
	Capacity  *int `json:"capacity"`
	Active    int  `json:"active"`
	Remaining *int `json:"remaining"`
	IsFull    bool `json:"is_full"`
}

type PaymentResponse struct {
	ID            string  `json:"id"`
	EventID       string  `json:"event_id"`
	VenueID       *string `json:"venue_id,omitempty"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Status        string  `json:"status"`
	OrderRef      *string `json:"order_ref,omitempty"`
	TransactionID *string `json:"transaction_id,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

type UserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type VenueResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Capacity     int     `json:"capacity"`
	PricePerHour float64 `json:"price_per_hour"`
	Description  string  `json:"description,omitempty"`
}

type QuoteResponse struct {
	VenueID string  `json:"venue_id"`
	Hours   int     `json:"hours"`
	Amount  float64 `json:"amount"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Name:        e.Name,
		Type:        e.Type,
		Description: e.Description,
		Audience:    e.Audience,
		IsPaid:      e.IsPaid,
		Price:       e.Price,
		EventTime:   e.EventTime.Format(time.RFC3339),
		Capacity:    e.Capacity,
		VenueID:     e.VenueID,
		Status:      string(e.Status),
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	participants := make([]RegistrationResponse, 0, len(d.Participants))
	for _, p := range d.Participants {
		participants = append(participants, ToRegistrationResponse(&p))
	}

	return EventDetailsResponse{
		Event:        ToEventResponse(&d.Event),
		ActiveCount:  d.ActiveCount,
		Participants: participants,
	}
}

func ToRegistrationResponse(r *domain.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:           r.ID,
		EventID:      r.EventID,
		UserID:       r.UserID,
		Status:       string(r.Status),
		RegisteredAt: r.RegisteredAt.Format(time.RFC3339),
	}
}

func ToCapacityResponse(s *domain.CapacitySnapshot) CapacityResponse {
	return CapacityResponse{
		Capacity:  s.Capacity,
		Active:    s.Active,
		Remaining: s.Remaining,
		IsFull:    s.IsFull,
	}
}

func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		EventID:       p.EventID,
		VenueID:       p.VenueID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		Status:        string(p.Status),
		OrderRef:      p.OrderRef,
		TransactionID: p.TransactionID,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func ToVenueResponse(v *domain.Venue) VenueResponse {
	return VenueResponse{
		ID:           v.ID,
		Name:         v.Name,
		Address:      v.Address,
		Capacity:     v.Capacity,
		PricePerHour: v.PricePerHour,
		Description:  v.Description,
	}
}
