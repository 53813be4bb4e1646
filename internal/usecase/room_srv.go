package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-pms/internal/data/entity"
	"hotel-pms/internal/data/repository"
	"hotel-pms/internal/dto/request"
	"hotel-pms/internal/dto/response"
	"hotel-pms/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RoomListFilters narrows the room listing. Zero values mean "no filter".
// AvailableFrom and AvailableTo are set together and drop rooms tied to a
// live booking overlapping that window.
type RoomListFilters struct {
	Search        string
	Status        string
	Type          string
	Floor         *int
	Sort          string // asc | desc by room number
	AvailableFrom *time.Time
	AvailableTo   *time.Time
}

type RoomService interface {
	CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error)
	GetRoomByID(ctx context.Context, roomID string) (*response.RoomResponse, error)
	ListRooms(ctx context.Context, filters RoomListFilters) ([]response.RoomResponse, error)
	UpdateRoom(ctx context.Context, roomID string, req *request.UpdateRoomRequest) (*response.RoomResponse, error)
	DeleteRoom(ctx context.Context, roomID string) error

	// RoomStatuses derives the per-room status presented for a date,
	// with the occupancy headline for the whole house.
	RoomStatuses(ctx context.Context, date time.Time) (*response.RoomStatusBoardResponse, error)
}

type roomService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomService(repo *repository.Repository, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
	}
}

func (s *roomService) CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create room validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	price, err := decimal.NewFromString(req.PricePerNight)
	if err != nil || price.IsNegative() {
		return nil, fmt.Errorf("validation failed: price_per_night must be a non-negative decimal")
	}

	existing, err := s.repo.Room.FindByNumber(ctx, req.RoomNumber)
	if err != nil {
		s.log.Error("Failed to check room number", zap.Error(err), zap.String("room_number", req.RoomNumber))
		return nil, fmt.Errorf("failed to check room number")
	}
	if existing != nil {
		return nil, fmt.Errorf("room number %s already exists", req.RoomNumber)
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	now := time.Now()
	room := &entity.Room{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RoomNumber:    req.RoomNumber,
		Type:          entity.RoomType(req.Type),
		Capacity:      req.Capacity,
		PricePerNight: price,
		Status:        entity.RoomStatusLibre,
		Floor:         req.Floor,
		Amenities:     req.Amenities,
		IsAvailable:   isAvailable,
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		s.log.Error("Failed to create room", zap.Error(err), zap.String("room_number", req.RoomNumber))
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.log.Info("Room created",
		zap.String("room_id", room.ID.String()),
		zap.String("room_number", room.RoomNumber))

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) GetRoomByID(ctx context.Context, roomID string) (*response.RoomResponse, error) {
	roomUUID, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, roomUUID)
	if err != nil {
		s.log.Error("Failed to get room", zap.Error(err), zap.String("room_id", roomID))
		return nil, fmt.Errorf("get room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %s not found", roomID)
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) ListRooms(ctx context.Context, filters RoomListFilters) ([]response.RoomResponse, error) {
	rooms, err := s.repo.Room.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list rooms", zap.Error(err))
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	if filters.AvailableFrom != nil && filters.AvailableTo != nil {
		bookedIDs, err := s.repo.BookingRoom.FindBookedRoomIDs(ctx, *filters.AvailableFrom, *filters.AvailableTo)
		if err != nil {
			s.log.Error("Failed to load booked rooms", zap.Error(err))
			return nil, fmt.Errorf("load booked rooms: %w", err)
		}
		booked := make(map[uuid.UUID]bool, len(bookedIDs))
		for _, id := range bookedIDs {
			booked[id] = true
		}
		free := make([]*entity.Room, 0, len(rooms))
		for _, room := range rooms {
			if !booked[room.ID] {
				free = append(free, room)
			}
		}
		rooms = free
	}

	rooms = SearchRooms(rooms, filters.Search)
	if filters.Status != "" {
		rooms = FilterRoomsByStatus(rooms, entity.RoomStatus(filters.Status))
	}
	if filters.Type != "" {
		rooms = FilterRoomsByType(rooms, entity.RoomType(filters.Type))
	}
	if filters.Floor != nil {
		rooms = FilterRoomsByFloor(rooms, *filters.Floor)
	}
	if filters.Sort != "" {
		rooms = SortRoomsByNumber(rooms, filters.Sort)
	}

	out := make([]response.RoomResponse, len(rooms))
	for i, room := range rooms {
		out[i] = response.RoomToResponse(room)
	}
	return out, nil
}

func (s *roomService) UpdateRoom(ctx context.Context, roomID string, req *request.UpdateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update room validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	roomUUID, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, roomUUID)
	if err != nil {
		s.log.Error("Failed to get room", zap.Error(err), zap.String("room_id", roomID))
		return nil, fmt.Errorf("get room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %s not found", roomID)
	}

	if req.RoomNumber != nil {
		room.RoomNumber = *req.RoomNumber
	}
	if req.Type != nil {
		room.Type = entity.RoomType(*req.Type)
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if req.PricePerNight != nil {
		price, err := decimal.NewFromString(*req.PricePerNight)
		if err != nil || price.IsNegative() {
			return nil, fmt.Errorf("validation failed: price_per_night must be a non-negative decimal")
		}
		room.PricePerNight = price
	}
	if req.Status != nil {
		room.Status = entity.RoomStatus(*req.Status)
	}
	if req.Floor != nil {
		room.Floor = *req.Floor
	}
	if req.Amenities != nil {
		room.Amenities = req.Amenities
	}
	if req.IsAvailable != nil {
		room.IsAvailable = *req.IsAvailable
	}
	room.UpdatedAt = time.Now()

	if err := s.repo.Room.Update(ctx, room); err != nil {
		s.log.Error("Failed to update room", zap.Error(err), zap.String("room_id", roomID))
		return nil, fmt.Errorf("update room: %w", err)
	}

	s.log.Info("Room updated", zap.String("room_id", roomID))

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) DeleteRoom(ctx context.Context, roomID string) error {
	roomUUID, err := uuid.Parse(roomID)
	if err != nil {
		return fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, roomUUID)
	if err != nil {
		s.log.Error("Failed to get room", zap.Error(err), zap.String("room_id", roomID))
		return fmt.Errorf("get room: %w", err)
	}
	if room == nil {
		return fmt.Errorf("room %s not found", roomID)
	}

	// Rooms with active or future bookings cannot be removed
	active, err := s.repo.Room.CountActiveBookings(ctx, roomUUID)
	if err != nil {
		s.log.Error("Failed to count active bookings", zap.Error(err), zap.String("room_id", roomID))
		return fmt.Errorf("check room bookings: %w", err)
	}
	if active > 0 {
		return fmt.Errorf("room %s has %d active or future bookings and cannot be deleted", room.RoomNumber, active)
	}

	if err := s.repo.Room.Delete(ctx, roomUUID); err != nil {
		s.log.Error("Failed to delete room", zap.Error(err), zap.String("room_id", roomID))
		return fmt.Errorf("delete room: %w", err)
	}

	s.log.Info("Room deleted", zap.String("room_id", roomID))
	return nil
}

func (s *roomService) RoomStatuses(ctx context.Context, date time.Time) (*response.RoomStatusBoardResponse, error) {
	rooms, err := s.repo.Room.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list rooms", zap.Error(err))
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	bookings, err := s.repo.Booking.FindActiveWithRoomsOn(ctx, date)
	if err != nil {
		s.log.Error("Failed to load active bookings", zap.Error(err), zap.Time("date", date))
		return nil, fmt.Errorf("load active bookings: %w", err)
	}

	occupied := 0
	statuses := make([]response.RoomStatusResponse, len(rooms))
	for i, room := range rooms {
		effective := ResolveRoomStatus(room, bookings, date)
		if effective == entity.RoomStatusOcupada || effective == entity.RoomStatusReservada {
			occupied++
		}
		statuses[i] = response.RoomToStatusResponse(room, effective, date)
	}

	return &response.RoomStatusBoardResponse{
		Date:          date.Format("2006-01-02"),
		TotalRooms:    len(rooms),
		OccupiedRooms: occupied,
		OccupancyRate: CalculateOccupancyRate(len(rooms), occupied),
		Rooms:         statuses,
	}, nil
}
