package repository

import (
	"hotel-pms/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Session      SessionRepository
	Guest        GuestRepository
	Room         RoomRepository
	Booking      BookingRepository
	BookingRoom  BookingRoomRepository
	BookingEvent BookingEventRepository
	Rate         RateRepository
	Movement     MovementRepository
	Payment      PaymentRepository
	Turno        TurnoRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Session:      NewSessionRepository(db, log),
		Guest:        NewGuestRepository(db, log),
		Room:         NewRoomRepository(db, log),
		Booking:      NewBookingRepository(db, log),
		BookingRoom:  NewBookingRoomRepository(db, log),
		BookingEvent: NewBookingEventRepository(db, log),
		Rate:         NewRateRepository(db, log),
		Movement:     NewMovementRepository(db, log),
		Payment:      NewPaymentRepository(db, log),
		Turno:        NewTurnoRepository(db, log),
	}
}
