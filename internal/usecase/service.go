package usecase

import (
	"hotel-pms/internal/data/repository"
	"hotel-pms/internal/email"
	"hotel-pms/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Room    RoomService
	Booking BookingService
	Guest   GuestService
	Rate    RateService
	Staff   StaffService
	Report  ReportService
}

func NewService(repo *repository.Repository, config *utils.Config, mailer email.Sender, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Room:    NewRoomService(repo, log),
		Booking: NewBookingService(repo, mailer, log),
		Guest:   NewGuestService(repo, log),
		Rate:    NewRateService(repo, log),
		Staff:   NewStaffService(repo, config, log),
		Report:  NewReportService(repo, log),
	}
}
