package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBookingState(t *testing.T) {
	for _, valid := range []string{"ALL", "CURRENT", "PAST", "FUTURE", "WAITING", "REJECTED"} {
		state, err := ParseBookingState(valid)
		assert.NoError(t, err)
		assert.Equal(t, BookingState(valid), state)
	}

	for _, invalid := range []string{"", "all", "UNSUPPORTED_STATUS", "APPROVED2"} {
		_, err := ParseBookingState(invalid)
		assert.Error(t, err)
		assert.Equal(t, "Unknown state: "+invalid, err.Error())
	}
}

func TestBookingPredicates(t *testing.T) {
	b := &Booking{ID: 1, BookerID: 2, Item: &Item{ID: 3, OwnerID: 1}, Status: StatusWaiting}

	assert.True(t, b.IsOwner(1))
	assert.False(t, b.IsOwner(2))
	assert.True(t, b.IsOwnerOrBooker(1))
	assert.True(t, b.IsOwnerOrBooker(2))
	assert.False(t, b.IsOwnerOrBooker(3))
	assert.False(t, b.IsDecided())

	b.Status = StatusApproved
	assert.True(t, b.IsDecided())

	// Item not loaded: ownership cannot be claimed.
	b.Item = nil
	assert.False(t, b.IsOwner(1))
	assert.True(t, b.IsOwnerOrBooker(2))
}
