package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"hotel-pms/internal/data/repository"
	"hotel-pms/internal/dto/request"
	"hotel-pms/internal/usecase"
	"hotel-pms/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type StaffHandler struct {
	service usecase.StaffService
	log     *zap.Logger
}

func NewStaffHandler(service usecase.StaffService, log *zap.Logger) *StaffHandler {
	return &StaffHandler{
		service: service,
		log:     log.With(zap.String("handler", "staff")),
	}
}

// CreateStaff handles POST /api/staff (admin only)
func (h *StaffHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req request.CreateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	staff, err := h.service.CreateStaff(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create staff")
		return
	}

	utils.ResponseCreated(w, "success", staff)
}

// ListStaff handles GET /api/staff (admin only)
func (h *StaffHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filters := usecase.StaffListFilters{
		Search:     query.Get("search"),
		Department: query.Get("department"),
		Status:     query.Get("status"),
	}

	staff, err := h.service.ListStaff(r.Context(), filters)
	if err != nil {
		h.handleServiceError(w, err, "list staff")
		return
	}

	utils.ResponseSuccess(w, "success", staff)
}

// GetStaffByID handles GET /api/staff/{id} (admin only)
func (h *StaffHandler) GetStaffByID(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "id")
	if staffID == "" {
		utils.ResponseBadRequest(w, "Staff ID is required", nil)
		return
	}

	staff, err := h.service.GetStaffByID(r.Context(), staffID)
	if err != nil {
		h.handleServiceError(w, err, "get staff by ID")
		return
	}

	utils.ResponseSuccess(w, "success", staff)
}

// UpdateStaff handles PUT /api/staff/{id} (admin only)
func (h *StaffHandler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "id")
	if staffID == "" {
		utils.ResponseBadRequest(w, "Staff ID is required", nil)
		return
	}

	var req request.UpdateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	staff, err := h.service.UpdateStaff(r.Context(), staffID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update staff")
		return
	}

	utils.ResponseSuccess(w, "success", staff)
}

// DeleteStaff handles DELETE /api/staff/{id} (admin only)
func (h *StaffHandler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "id")
	if staffID == "" {
		utils.ResponseBadRequest(w, "Staff ID is required", nil)
		return
	}

	if err := h.service.DeleteStaff(r.Context(), staffID); err != nil {
		h.handleServiceError(w, err, "delete staff")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ResetPassword handles POST /api/staff/{id}/reset-password (admin only)
func (h *StaffHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "id")
	if staffID == "" {
		utils.ResponseBadRequest(w, "Staff ID is required", nil)
		return
	}

	if err := h.service.ResetPassword(r.Context(), staffID); err != nil {
		h.handleServiceError(w, err, "reset staff password")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// Stats handles GET /api/staff/stats (admin only)
func (h *StaffHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "staff stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}

// handleServiceError maps staff service errors to HTTP statuses
func (h *StaffHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, repository.ErrDuplicate):
		h.log.Warn(operation+" failed - duplicate", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

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
