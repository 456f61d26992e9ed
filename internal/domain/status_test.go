package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    EventStatus
		to      EventStatus
		allowed bool
	}{
		{EventStatusDraft, EventStatusUpcoming, true},
		{EventStatusDraft, EventStatusCompleted, false},
		{EventStatusDraft, EventStatusCanceled, false},
		{EventStatusUpcoming, EventStatusCompleted, true},
		{EventStatusUpcoming, EventStatusCanceled, true},
		{EventStatusUpcoming, EventStatusPostponed, true},
		{EventStatusUpcoming, EventStatusDraft, false},
		{EventStatusPostponed, EventStatusUpcoming, true},
		{EventStatusPostponed, EventStatusCompleted, false},
		{EventStatusCompleted, EventStatusCanceled, false},
		{EventStatusCompleted, EventStatusUpcoming, false},
		{EventStatusCanceled, EventStatusUpcoming, false},
		{EventStatusCanceled, EventStatusPostponed, false},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestEventStatus_Terminal(t *testing.T) {
	assert.True(t, EventStatusCompleted.Terminal())
	assert.True(t, EventStatusCanceled.Terminal())
	assert.False(t, EventStatusDraft.Terminal())
	assert.False(t, EventStatusUpcoming.Terminal())
	assert.False(t, EventStatusPostponed.Terminal())
}

func TestEventStatus_Valid(t *testing.T) {
	assert.True(t, EventStatusUpcoming.Valid())
	assert.False(t, EventStatus("archived").Valid())
	assert.False(t, EventStatus("").Valid())
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleCoordinator.Valid())
	assert.True(t, RoleNormal.Valid())
	assert.False(t, Role("superuser").Valid())
	assert.False(t, Role("").Valid())
}

func TestVenue_Quote(t *testing.T) {
	small := &Venue{PricePerHour: 100, Capacity: 50}
	large := &Venue{PricePerHour: 100, Capacity: 300}

	assert.Equal(t, 400.0, small.Quote(4))
	assert.Equal(t, 300.0, small.Quote(0)) // default booking block
	assert.Equal(t, 900.0, large.Quote(4))
	assert.Equal(t, 800.0, large.Quote(-1))
}
