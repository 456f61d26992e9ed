package dto

type RegisterUserRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	Password  string `json:"password" binding:"required,min=8"`
	Role      string `json:"role" binding:"omitempty,oneof=normal coordinator"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateEventRequest struct {
	Name        string   `json:"name" binding:"required"`
	Type        string   `json:"type" binding:"required"`
	Description string   `json:"description"`
	Audience    string   `json:"audience"`
	IsPaid      bool     `json:"is_paid"`
	Price       *float64 `json:"price"`
	EventTime   string   `json:"event_time" binding:"required"`
	Capacity    *int     `json:"capacity"`
	VenueID     *string  `json:"venue_id" binding:"omitempty,uuid"`
}

type InitiatePaymentRequest struct {
	Amount       *float64 `json:"amount"`
	VenueID      *string  `json:"venue_id" binding:"omitempty,uuid"`
	BookingHours int      `json:"booking_hours"`
}

// ConfirmPaymentRequest carries the checkout callback fields, named the way
// the gateway posts them.
type ConfirmPaymentRequest struct {
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}
