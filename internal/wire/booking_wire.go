package wire

import (
	"hotel-pms/internal/adaptor"
	"hotel-pms/internal/data/repository"
	"hotel-pms/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/api/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// GET /api/bookings?startDate&endDate - list by date overlap
		r.Get("/", bookingHandler.ListBookings)

		// POST /api/bookings - create booking, one or many room types,
		// all rooms assigned transactionally
		r.Post("/", bookingHandler.CreateBooking)

		// multi-room alias kept for front-end compatibility
		r.Post("/multi-room", bookingHandler.CreateBooking)

		r.Get("/{id}", bookingHandler.GetBookingByID)
		r.Patch("/{id}/status", bookingHandler.UpdateStatus)
		r.Patch("/{id}/notes", bookingHandler.UpdateNotes)
		r.Put("/{id}/cancel", bookingHandler.CancelBooking)

		r.Post("/{id}/event", bookingHandler.AddEvent)
		r.Get("/{id}/events", bookingHandler.ListEvents)
	})
}
