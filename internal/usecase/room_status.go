package usecase

import (
	"time"

	"hotel-pms/internal/data/entity"
)

// ResolveRoomStatus derives the status a room presents for a date, given the
// bookings active on that date. Precedence, first match wins:
//
//  1. stored EN_MANTENIMIENTO always wins
//  2. an active booking assigned to this room makes it RESERVADA
//  3. stored SUCIA
//  4. stored LIBRE
//  5. anything else passes through unchanged
//
// Only bookings whose stay interval covers the date count; the checkout day
// itself does not.
func ResolveRoomStatus(room *entity.Room, bookings []*entity.BookingWithRooms, date time.Time) entity.RoomStatus {
	if room.Status == entity.RoomStatusMantenimiento {
		return entity.RoomStatusMantenimiento
	}

	for _, booking := range bookings {
		if booking.HasRoom(room.ID) && booking.ActiveOn(date) {
			return entity.RoomStatusReservada
		}
	}

	switch room.Status {
	case entity.RoomStatusSucia:
		return entity.RoomStatusSucia
	case entity.RoomStatusLibre:
		return entity.RoomStatusLibre
	}

	return room.Status
}
