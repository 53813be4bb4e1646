package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"hotel-pms/internal/dto/request"
	"hotel-pms/internal/usecase"
	"hotel-pms/pkg/utils"

	"go.uber.org/zap"
)

type ReportHandler struct {
	service usecase.ReportService
	log     *zap.Logger
}

func NewReportHandler(service usecase.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log.With(zap.String("handler", "report")),
	}
}

// GenerateTurnConcepts handles POST /api/reports/turn-concepts (protected)
func (h *ReportHandler) GenerateTurnConcepts(w http.ResponseWriter, r *http.Request) {
	var req request.TurnConceptsReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	report, err := h.service.GenerateTurnConcepts(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "generate turn-concepts report")
		return
	}

	utils.ResponseSuccess(w, "success", report)
}

// Metadata handles GET /api/reports/turn-concepts?action=config|turnos (protected)
func (h *ReportHandler) Metadata(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("action") {
	case "config":
		config, err := h.service.Config(r.Context())
		if err != nil {
			h.handleServiceError(w, err, "report config")
			return
		}
		utils.ResponseSuccess(w, "success", config)

	case "turnos":
		turnos, err := h.service.Turnos(r.Context())
		if err != nil {
			h.handleServiceError(w, err, "list turnos")
			return
		}
		utils.ResponseSuccess(w, "success", turnos)

	default:
		utils.ResponseBadRequest(w, "action must be config or turnos", nil)
	}
}

// handleServiceError maps report service errors to HTTP statuses
func (h *ReportHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, usecase.ErrPDFNotSupported):
		h.log.Warn(operation+" rejected - PDF requested", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "validation failed"), strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" failed - bad request", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, errMsg)
	}
}
