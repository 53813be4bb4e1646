package wire

import (
	"hotel-pms/internal/adaptor"
	"hotel-pms/internal/data/repository"
	"hotel-pms/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReport(
	r chi.Router,
	reportHandler *adaptor.ReportHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/api/reports/turn-concepts", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST generates the report; GET ?action=config|turnos serves metadata
		r.Post("/", reportHandler.GenerateTurnConcepts)
		r.Get("/", reportHandler.Metadata)
	})
}
