package wire

import (
	"hotel-pms/internal/adaptor"
	"hotel-pms/internal/data/repository"
	"hotel-pms/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRoom(
	r chi.Router,
	roomHandler *adaptor.RoomHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/api/rooms", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Get("/", roomHandler.ListRooms)
		r.Post("/", roomHandler.CreateRoom)

		// GET /api/rooms/status?date=YYYY-MM-DD - per-room derived status
		r.Get("/status", roomHandler.RoomStatuses)

		r.Get("/{id}", roomHandler.GetRoomByID)
		r.Patch("/{id}", roomHandler.UpdateRoom)
		r.Delete("/{id}", roomHandler.DeleteRoom)
	})
}
