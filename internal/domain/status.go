package domain

// EventStatus follows a fixed lifecycle. Draft events become upcoming once
// their coordinator's venue payment completes (admins publish directly);
// upcoming events either run to completion, get canceled, or get postponed;
// postponed events may be reopened. Completed and canceled are terminal.
type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCanceled  EventStatus = "canceled"
	EventStatusPostponed EventStatus = "postponed"
)

var transitions = map[EventStatus][]EventStatus{
	EventStatusDraft:     {EventStatusUpcoming},
	EventStatusUpcoming:  {EventStatusCompleted, EventStatusCanceled, EventStatusPostponed},
	EventStatusPostponed: {EventStatusUpcoming},
	EventStatusCompleted: {},
	EventStatusCanceled:  {},
}

func (s EventStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

func (s EventStatus) Terminal() bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

func (s EventStatus) CanTransitionTo(target EventStatus) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

type RegistrationStatus string

const (
	RegistrationStatusRegistered RegistrationStatus = "registered"
	RegistrationStatusAttended   RegistrationStatus = "attended"
	RegistrationStatusCanceled   RegistrationStatus = "canceled"
)

// ActiveRegistrationStatuses are the statuses that hold a capacity slot.
var ActiveRegistrationStatuses = []string{
	string(RegistrationStatusRegistered),
	string(RegistrationStatusAttended),
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleCoordinator Role = "coordinator"
	RoleNormal      Role = "normal"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCoordinator, RoleNormal:
		return true
	}
	return false
}
