package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"hotel-pms/internal/dto/request"
	"hotel-pms/internal/usecase"
	"hotel-pms/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RateHandler struct {
	service usecase.RateService
	log     *zap.Logger
}

func NewRateHandler(service usecase.RateService, log *zap.Logger) *RateHandler {
	return &RateHandler{
		service: service,
		log:     log.With(zap.String("handler", "rate")),
	}
}

// CreateRate handles POST /api/rates (admin only)
func (h *RateHandler) CreateRate(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	rate, err := h.service.CreateRate(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create rate")
		return
	}

	utils.ResponseCreated(w, "success", rate)
}

// ListRates handles GET /api/rates?room_id= (admin only)
func (h *RateHandler) ListRates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.service.ListRates(r.Context(), r.URL.Query().Get("room_id"))
	if err != nil {
		h.handleServiceError(w, err, "list rates")
		return
	}

	utils.ResponseSuccess(w, "success", rates)
}

// GetRateByID handles GET /api/rates/{id} (admin only)
func (h *RateHandler) GetRateByID(w http.ResponseWriter, r *http.Request) {
	rateID := chi.URLParam(r, "id")
	if rateID == "" {
		utils.ResponseBadRequest(w, "Rate ID is required", nil)
		return
	}

	rate, err := h.service.GetRateByID(r.Context(), rateID)
	if err != nil {
		h.handleServiceError(w, err, "get rate by ID")
		return
	}

	utils.ResponseSuccess(w, "success", rate)
}

// UpdateRate handles PUT /api/rates/{id} (admin only)
func (h *RateHandler) UpdateRate(w http.ResponseWriter, r *http.Request) {
	rateID := chi.URLParam(r, "id")
	if rateID == "" {
		utils.ResponseBadRequest(w, "Rate ID is required", nil)
		return
	}

	var req request.UpdateRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	rate, err := h.service.UpdateRate(r.Context(), rateID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update rate")
		return
	}

	utils.ResponseSuccess(w, "success", rate)
}

// DeleteRate handles DELETE /api/rates/{id} (admin only)
func (h *RateHandler) DeleteRate(w http.ResponseWriter, r *http.Request) {
	rateID := chi.URLParam(r, "id")
	if rateID == "" {
		utils.ResponseBadRequest(w, "Rate ID is required", nil)
		return
	}

	if err := h.service.DeleteRate(r.Context(), rateID); err != nil {
		h.handleServiceError(w, err, "delete rate")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// handleServiceError maps rate service errors to HTTP statuses
func (h *RateHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"), strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" failed - bad request", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
