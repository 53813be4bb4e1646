package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"hotel-pms/internal/dto/request"
	"hotel-pms/internal/usecase"
	"hotel-pms/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RoomHandler struct {
	service usecase.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log.With(zap.String("handler", "room")),
	}
}

// CreateRoom handles POST /api/rooms (protected)
func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	room, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create room")
		return
	}

	utils.ResponseCreated(w, "success", room)
}

// ListRooms handles GET /api/rooms?startDate=&endDate= (protected).
// Both window params together narrow the listing to rooms free in that range.
func (h *RoomHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filters := usecase.RoomListFilters{
		Search: query.Get("search"),
		Status: query.Get("status"),
		Type:   query.Get("type"),
		Sort:   query.Get("sort"),
	}
	if floorStr := query.Get("floor"); floorStr != "" {
		if floor, err := strconv.Atoi(floorStr); err == nil {
			filters.Floor = &floor
		}
	}

	startStr, endStr := query.Get("startDate"), query.Get("endDate")
	if (startStr == "") != (endStr == "") {
		utils.ResponseBadRequest(w, "startDate and endDate must be provided together", nil)
		return
	}
	if startStr != "" {
		start, err := utils.ParseDateStrict(startStr)
		if err != nil {
			utils.ResponseBadRequest(w, err.Error(), nil)
			return
		}
		end, err := utils.ParseDateStrict(endStr)
		if err != nil {
			utils.ResponseBadRequest(w, err.Error(), nil)
			return
		}
		if end.Before(start) {
			utils.ResponseBadRequest(w, "endDate must not be before startDate", nil)
			return
		}
		filters.AvailableFrom = &start
		filters.AvailableTo = &end
	}

	rooms, err := h.service.ListRooms(r.Context(), filters)
	if err != nil {
		h.handleServiceError(w, err, "list rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// GetRoomByID handles GET /api/rooms/{id} (protected)
func (h *RoomHandler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		utils.ResponseBadRequest(w, "Room ID is required", nil)
		return
	}

	room, err := h.service.GetRoomByID(r.Context(), roomID)
	if err != nil {
		h.handleServiceError(w, err, "get room by ID")
		return
	}

	utils.ResponseSuccess(w, "success", room)
}

// UpdateRoom handles PATCH /api/rooms/{id} (protected)
func (h *RoomHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		utils.ResponseBadRequest(w, "Room ID is required", nil)
		return
	}

	var req request.UpdateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	room, err := h.service.UpdateRoom(r.Context(), roomID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update room")
		return
	}

	utils.ResponseSuccess(w, "success", room)
}

// DeleteRoom handles DELETE /api/rooms/{id} (protected)
func (h *RoomHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		utils.ResponseBadRequest(w, "Room ID is required", nil)
		return
	}

	if err := h.service.DeleteRoom(r.Context(), roomID); err != nil {
		h.handleServiceError(w, err, "delete room")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// RoomStatuses handles GET /api/rooms/status?date=YYYY-MM-DD (protected).
// A malformed date silently falls back to today.
func (h *RoomHandler) RoomStatuses(w http.ResponseWriter, r *http.Request) {
	date := utils.ParseDate(r.URL.Query().Get("date"))

	statuses, err := h.service.RoomStatuses(r.Context(), date)
	if err != nil {
		h.handleServiceError(w, err, "room statuses")
		return
	}

	utils.ResponseSuccess(w, "success", statuses)
}

// handleServiceError maps room service errors to HTTP statuses
func (h *RoomHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "cannot be deleted"):
		h.log.Warn(operation+" failed - bad request", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "already exists"):
		h.log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	default:
		h.log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
