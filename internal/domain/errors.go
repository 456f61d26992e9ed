package domain

import "errors"

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrVenueNotFound        = errors.New("venue not found")
)

var (
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrInvalidState        = errors.New("operation not allowed in current status")
	ErrAlreadyRegistered   = errors.New("user already registered for this event")
	ErrCapacityExceeded    = errors.New("event is at full capacity")
	ErrAlreadyPublished    = errors.New("event is already published")
	ErrInvalidAmount       = errors.New("payment amount must be positive")
	ErrGatewayTimeout      = errors.New("payment gateway timed out")
	ErrPaymentVerification = errors.New("payment signature verification failed")
)

var (
	ErrEmailTaken         = errors.New("email is already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("insufficient permissions")
)

var (
	ErrValidation = errors.New("validation error")
)
