package wire

import (
	"hotel-pms/internal/adaptor"
	"hotel-pms/internal/data/entity"
	"hotel-pms/internal/data/repository"
	"hotel-pms/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireStaff(
	r chi.Router,
	staffHandler *adaptor.StaffHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Staff administration is gated to managers and up
	r.Route("/api/staff", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole(log,
			string(entity.RoleAdmin),
			string(entity.RoleSuperAdmin),
			string(entity.RoleManager),
		))

		r.Get("/", staffHandler.ListStaff)
		r.Post("/", staffHandler.CreateStaff)

		// GET /api/staff/stats - counts by role, department and status
		r.Get("/stats", staffHandler.Stats)

		r.Get("/{id}", staffHandler.GetStaffByID)
		r.Put("/{id}", staffHandler.UpdateStaff)
		r.Delete("/{id}", staffHandler.DeleteStaff)
		r.Post("/{id}/reset-password", staffHandler.ResetPassword)
	})
}
