package adaptor

import (
	"hotel-pms/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Room    *RoomHandler
	Booking *BookingHandler
	Guest   *GuestHandler
	Rate    *RateHandler
	Staff   *StaffHandler
	Report  *ReportHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Room:    NewRoomHandler(service.Room, log),
		Booking: NewBookingHandler(service.Booking, log),
		Guest:   NewGuestHandler(service.Guest, log),
		Rate:    NewRateHandler(service.Rate, log),
		Staff:   NewStaffHandler(service.Staff, log),
		Report:  NewReportHandler(service.Report, log),
	}
}
