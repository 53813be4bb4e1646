package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingRoom joins a booking to a room with the nightly price snapshotted
// at assignment time.
type BookingRoom struct {
	BaseSimple
	BookingID   uuid.UUID       `db:"booking_id"`
	RoomID      uuid.UUID       `db:"room_id"`
	PriceAtTime decimal.Decimal `db:"price_at_time"`
}
