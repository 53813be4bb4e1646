package wire

import (
	"hotel-pms/internal/adaptor"
	"hotel-pms/internal/data/entity"
	"hotel-pms/internal/data/repository"
	"hotel-pms/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRate(
	r chi.Router,
	rateHandler *adaptor.RateHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Rate management is admin-only
	r.Route("/api/rates", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole(log, string(entity.RoleAdmin), string(entity.RoleSuperAdmin)))

		r.Get("/", rateHandler.ListRates)
		r.Post("/", rateHandler.CreateRate)
		r.Get("/{id}", rateHandler.GetRateByID)
		r.Put("/{id}", rateHandler.UpdateRate)
		r.Delete("/{id}", rateHandler.DeleteRate)
	})
}
