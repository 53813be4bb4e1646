package wire

import (
	"hotel-pms/internal/adaptor"
	"hotel-pms/internal/data/repository"
	"hotel-pms/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// POST /api/login - staff login (public)
	r.Post("/api/login", authHandler.Login)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/logout - revoke the presented session
		r.Post("/api/logout", authHandler.Logout)
	})
}
