package entity

import (
	"github.com/google/uuid"
)

type BookingEventType string

const (
	EventCheckIn       BookingEventType = "CHECKIN"
	EventCheckOut      BookingEventType = "CHECKOUT"
	EventExtension     BookingEventType = "EXTENSION"
	EventNoShow        BookingEventType = "NO_SHOW"
	EventEarlyCheckout BookingEventType = "EARLY_CHECKOUT"
	EventOther         BookingEventType = "OTHER"
)

func (t BookingEventType) Valid() bool {
	switch t {
	case EventCheckIn, EventCheckOut, EventExtension, EventNoShow, EventEarlyCheckout, EventOther:
		return true
	}
	return false
}

// BookingEvent is an append-only operational audit record for a booking.
type BookingEvent struct {
	BaseSimple
	BookingID uuid.UUID        `db:"booking_id"`
	Type      BookingEventType `db:"type"`
	Notes     *string          `db:"notes"`
	UserID    *uuid.UUID       `db:"user_id"`
}
