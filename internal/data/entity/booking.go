package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusCheckedIn  BookingStatus = "checked_in"
	BookingStatusCheckedOut BookingStatus = "checked_out"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// Booking covers the half-open stay interval [CheckInDate, CheckOutDate).
type Booking struct {
	Base
	BookingCode    string          `db:"booking_code"`
	GuestID        uuid.UUID       `db:"guest_id"`
	CheckInDate    time.Time       `db:"check_in_date"`
	CheckOutDate   time.Time       `db:"check_out_date"`
	NumberOfGuests int             `db:"number_of_guests"`
	TotalPrice     decimal.Decimal `db:"total_price"`
	Status         BookingStatus   `db:"status"`
	Notes          *string         `db:"notes"`
}

// ActiveOn reports whether the stay covers the given date. Checkout day
// itself is excluded.
func (b *Booking) ActiveOn(date time.Time) bool {
	return !date.Before(b.CheckInDate) && date.Before(b.CheckOutDate)
}

// BookingWithRooms carries a booking together with its assigned room ids,
// as fetched for status derivation.
type BookingWithRooms struct {
	Booking
	RoomIDs []uuid.UUID
}

// HasRoom reports whether the booking has an assignment for the room.
func (b *BookingWithRooms) HasRoom(roomID uuid.UUID) bool {
	for _, id := range b.RoomIDs {
		if id == roomID {
			return true
		}
	}
	return false
}
