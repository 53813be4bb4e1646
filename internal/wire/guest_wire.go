package wire

import (
	"hotel-pms/internal/adaptor"
	"hotel-pms/internal/data/repository"
	"hotel-pms/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireGuest(
	r chi.Router,
	guestHandler *adaptor.GuestHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/api/guests", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Get("/", guestHandler.ListGuests)
		r.Post("/", guestHandler.CreateGuest)
		r.Get("/{id}", guestHandler.GetGuestByID)
	})
}
