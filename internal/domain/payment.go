package domain

import "time"

type Payment struct {
	ID            string        `json:"id"`
	EventID       string        `json:"event_id"`
	PayerID       string        `json:"payer_id"`
	VenueID       *string       `json:"venue_id,omitempty"`
	Amount        float64       `json:"amount"`
	Currency      string        `json:"currency"`
	Status        PaymentStatus `json:"status"`
	OrderRef      *string       `json:"order_ref,omitempty"`
	TransactionID *string       `json:"transaction_id,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type InitiatePaymentInput struct {
	EventID      string
	Amount       *float64 // derived from the venue quote when nil
	VenueID      *string
	BookingHours int
}

// ConfirmPaymentInput carries the gateway callback parameters forwarded by
// the frontend after checkout.
type ConfirmPaymentInput struct {
	PaymentRef string
	OrderRef   string
	Signature  string
}
