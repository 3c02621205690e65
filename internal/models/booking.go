package models

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
)

// BookingState is the temporal/status bucket a booking collection is
// filtered by. It is distinct from BookingStatus: CURRENT/PAST/FUTURE are
// computed against "now", WAITING/REJECTED match the status column.
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateRejected BookingState = "REJECTED"
)

// ParseBookingState maps a raw query-string value onto the closed set of
// states. Anything else is an error, not a fallback.
func ParseBookingState(s string) (BookingState, error) {
	switch BookingState(s) {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return BookingState(s), nil
	default:
		return "", fmt.Errorf("Unknown state: %s", s)
	}
}

type Booking struct {
	ID       int64         `gorm:"primaryKey" json:"id"`
	Start    time.Time     `gorm:"column:start_date;not null" json:"start"`
	End      time.Time     `gorm:"column:end_date;not null" json:"end"`
	ItemID   int64         `gorm:"not null" json:"item_id"`
	BookerID int64         `gorm:"not null" json:"booker_id"`
	Status   BookingStatus `gorm:"type:varchar(16);not null;default:'WAITING'" json:"status"`

	Item   *Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	Booker *User `gorm:"foreignKey:BookerID" json:"booker,omitempty"`
}

// IsOwner reports whether userID owns the booked item. Item must be loaded.
func (b *Booking) IsOwner(userID int64) bool {
	return b.Item != nil && b.Item.OwnerID == userID
}

// IsOwnerOrBooker is the visibility predicate for single-booking reads.
func (b *Booking) IsOwnerOrBooker(userID int64) bool {
	return b.BookerID == userID || b.IsOwner(userID)
}

// IsDecided reports whether the owner has already approved or rejected.
func (b *Booking) IsDecided() bool {
	return b.Status != StatusWaiting
}
