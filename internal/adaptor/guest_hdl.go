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

type GuestHandler struct {
	service usecase.GuestService
	log     *zap.Logger
}

func NewGuestHandler(service usecase.GuestService, log *zap.Logger) *GuestHandler {
	return &GuestHandler{
		service: service,
		log:     log.With(zap.String("handler", "guest")),
	}
}

// CreateGuest handles POST /api/guests (protected)
func (h *GuestHandler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	guest, err := h.service.CreateGuest(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create guest")
		return
	}

	utils.ResponseCreated(w, "success", guest)
}

// ListGuests handles GET /api/guests?search=&page=&per_page= (protected)
func (h *GuestHandler) ListGuests(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	guests, err := h.service.ListGuests(r.Context(), query.Get("search"), page)
	if err != nil {
		h.handleServiceError(w, err, "list guests")
		return
	}

	utils.ResponseSuccess(w, "success", guests)
}

// GetGuestByID handles GET /api/guests/{id} (protected)
func (h *GuestHandler) GetGuestByID(w http.ResponseWriter, r *http.Request) {
	guestID := chi.URLParam(r, "id")
	if guestID == "" {
		utils.ResponseBadRequest(w, "Guest ID is required", nil)
		return
	}

	guest, err := h.service.GetGuestByID(r.Context(), guestID)
	if err != nil {
		h.handleServiceError(w, err, "get guest by ID")
		return
	}

	utils.ResponseSuccess(w, "success", guest)
}

// handleServiceError maps guest service errors to HTTP statuses
func (h *GuestHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, repository.ErrDuplicate):
		h.log.Warn(operation+" failed - duplicate email", zap.Error(err))
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
