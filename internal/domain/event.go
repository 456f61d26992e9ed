package domain

import "time"

type Event struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Description string      `json:"description"`
	Audience    string      `json:"audience"`
	IsPaid      bool        `json:"is_paid"`
	Price       *float64    `json:"price,omitempty"`
	EventTime   time.Time   `json:"event_time"`
	Capacity    *int        `json:"capacity,omitempty"`
	VenueID     *string     `json:"venue_id,omitempty"`
	Status      EventStatus `json:"status"`
	CreatedBy   string      `json:"created_by"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type EventDetails struct {
	Event         Event          `json:"event"`
	Participants  []Registration `json:"participants"`
	ActiveCount   int            `json:"active_count"`
}

type CreateEventInput struct {
	Name        string
	Type        string
	Description string
	Audience    string
	IsPaid      bool
	Price       *float64
	EventTime   time.Time
	Capacity    *int
	VenueID     *string
}

// CapacitySnapshot is a point-in-time view of an event's occupancy.
// Capacity and Remaining are nil for unlimited events.
type CapacitySnapshot struct {
	Capacity  *int `json:"capacity"`
	Active    int  `json:"active"`
	Remaining *int `json:"remaining"`
	IsFull    bool `json:"is_full"`
}
