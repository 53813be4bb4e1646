package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel-pms/internal/data/entity"
	"hotel-pms/internal/data/repository"
	"hotel-pms/internal/dto/request"
	"hotel-pms/internal/dto/response"
	"hotel-pms/internal/email"
	"hotel-pms/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrBookingNotFound carries the message the API contract promises for
// missing booking ids.
var ErrBookingNotFound = errors.New("Booking no encontrado")

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	ListBookings(ctx context.Context, from, to *time.Time, status, sort string) ([]response.BookingResponse, error)
	UpdateStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) error
	UpdateNotes(ctx context.Context, bookingID string, req *request.UpdateBookingNotesRequest) error
	CancelBooking(ctx context.Context, bookingID string, userID *uuid.UUID) error

	AddEvent(ctx context.Context, bookingID string, userID *uuid.UUID, req *request.CreateBookingEventRequest) (*response.BookingEventResponse, error)
	ListEvents(ctx context.Context, bookingID string) ([]response.BookingEventResponse, error)
}

type bookingService struct {
	repo   *repository.Repository
	mailer email.Sender
	log    *zap.Logger
}

func NewBookingService(repo *repository.Repository, mailer email.Sender, log *zap.Logger) BookingService {
	return &bookingService{
		repo:   repo,
		mailer: mailer,
		log:    log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	checkIn, err := utils.ParseDateStrict(req.CheckInDate)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	checkOut, err := utils.ParseDateStrict(req.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("validation failed: check_out_date must be after check_in_date")
	}
	nights := int(checkOut.Sub(checkIn).Hours() / 24)

	// Resolve guest: existing by id, existing by email, or new inline
	guest, newGuest, err := s.resolveGuest(ctx, &req.Guest)
	if err != nil {
		return nil, err
	}

	// Greedily take the first N free rooms per requested type, skipping
	// rooms already taken by an earlier entry for the same type. Any
	// shortfall fails the whole request before anything is written.
	var assignedRooms []*entity.Room
	taken := make(map[uuid.UUID]bool)
	for _, roomReq := range req.Rooms {
		available, err := s.repo.Room.FindAvailableByType(ctx, entity.RoomType(roomReq.RoomType), checkIn, checkOut)
		if err != nil {
			s.log.Error("Failed to check room availability",
				zap.Error(err),
				zap.String("room_type", roomReq.RoomType))
			return nil, fmt.Errorf("check room availability: %w", err)
		}

		free := make([]*entity.Room, 0, len(available))
		for _, room := range available {
			if !taken[room.ID] {
				free = append(free, room)
			}
		}
		if len(free) < roomReq.Quantity {
			return nil, fmt.Errorf("insufficient rooms of type %s: requested %d, available %d",
				roomReq.RoomType, roomReq.Quantity, len(free))
		}
		for _, room := range free[:roomReq.Quantity] {
			taken[room.ID] = true
			assignedRooms = append(assignedRooms, room)
		}
	}

	now := time.Now()
	totalPrice := decimal.Zero
	for _, room := range assignedRooms {
		totalPrice = totalPrice.Add(room.PricePerNight.Mul(decimal.NewFromInt(int64(nights))))
	}

	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingCode:    utils.GenerateBookingCode(),
		GuestID:        guest.ID,
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		NumberOfGuests: req.NumberOfGuests,
		TotalPrice:     totalPrice,
		Status:         entity.BookingStatusConfirmed,
		Notes:          req.Notes,
	}

	assignments := make([]*entity.BookingRoom, len(assignedRooms))
	for i, room := range assignedRooms {
		assignments[i] = &entity.BookingRoom{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			BookingID:   booking.ID,
			RoomID:      room.ID,
			PriceAtTime: room.PricePerNight,
		}
	}

	// One transaction: guest (when new), booking and every assignment,
	// or nothing at all.
	var guestToCreate *entity.Guest
	if newGuest {
		guestToCreate = guest
	}
	if err := s.repo.Booking.CreateWithAssignments(ctx, guestToCreate, booking, assignments); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_code", booking.BookingCode),
			zap.Int("room_count", len(assignments)),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("booking_code", booking.BookingCode),
		zap.String("guest_id", guest.ID.String()),
		zap.Int("room_count", len(assignments)),
		zap.String("total_price", totalPrice.StringFixed(2)),
	)

	// Best-effort notifications, never block or fail the response
	if s.mailer != nil {
		go s.mailer.SendBookingConfirmation(guest, booking, assignedRooms)
		go s.mailer.SendStaffNotification(guest, booking)
	}

	resp := response.BookingToDetailResponse(booking, guest, assignedRooms, assignments)
	return &resp, nil
}

// resolveGuest returns the guest for a booking request and whether it is a
// new record that still has to be persisted.
func (s *bookingService) resolveGuest(ctx context.Context, req *request.GuestRequest) (*entity.Guest, bool, error) {
	if req.GuestID != nil {
		guestUUID, err := uuid.Parse(*req.GuestID)
		if err != nil {
			return nil, false, fmt.Errorf("invalid guest ID format %s: %w", *req.GuestID, err)
		}
		guest, err := s.repo.Guest.FindByID(ctx, guestUUID)
		if err != nil {
			s.log.Error("Failed to find guest", zap.Error(err), zap.String("guest_id", *req.GuestID))
			return nil, false, fmt.Errorf("find guest: %w", err)
		}
		if guest == nil {
			return nil, false, fmt.Errorf("guest %s not found: %w", *req.GuestID, repository.ErrForeignKey)
		}
		return guest, false, nil
	}

	// Returning guests are matched by email instead of duplicated
	existing, err := s.repo.Guest.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check guest email", zap.Error(err), zap.String("email", req.Email))
		return nil, false, fmt.Errorf("check guest email: %w", err)
	}
	if existing != nil {
		return existing, false, nil
	}

	now := time.Now()
	guest := &entity.Guest{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	}
	return guest, true, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	guest, err := s.repo.Guest.FindByID(ctx, booking.GuestID)
	if err != nil {
		s.log.Error("Failed to load booking guest", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("load booking guest: %w", err)
	}

	assignments, err := s.repo.BookingRoom.FindByBookingID(ctx, booking.ID)
	if err != nil {
		s.log.Error("Failed to load booking rooms", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("load booking rooms: %w", err)
	}

	rooms := make([]*entity.Room, 0, len(assignments))
	for _, br := range assignments {
		room, err := s.repo.Room.FindByID(ctx, br.RoomID)
		if err == nil && room != nil {
			rooms = append(rooms, room)
		}
	}

	resp := response.BookingToDetailResponse(booking, guest, rooms, assignments)
	return &resp, nil
}

func (s *bookingService) ListBookings(ctx context.Context, from, to *time.Time, status, sort string) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx, from, to)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	if status != "" {
		bookings = FilterBookingsByStatus(bookings, entity.BookingStatus(status))
	}
	bookings = SortBookingsByCheckIn(bookings, sort)

	out := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		out[i] = response.BookingToResponse(booking)
	}
	return out, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatus(req.Status)); err != nil {
		s.log.Error("Failed to update booking status", zap.Error(err), zap.String("booking_id", bookingID))
		return fmt.Errorf("update booking status: %w", err)
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("status", req.Status))
	return nil
}

func (s *bookingService) UpdateNotes(ctx context.Context, bookingID string, req *request.UpdateBookingNotesRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if err := s.repo.Booking.UpdateNotes(ctx, booking.ID, req.Notes); err != nil {
		s.log.Error("Failed to update booking notes", zap.Error(err), zap.String("booking_id", bookingID))
		return fmt.Errorf("update booking notes: %w", err)
	}

	s.log.Info("Booking notes updated", zap.String("booking_id", bookingID))
	return nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID string, userID *uuid.UUID) error {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if booking.Status == entity.BookingStatusCancelled {
		return fmt.Errorf("booking %s is already cancelled", booking.BookingCode)
	}
	if booking.Status == entity.BookingStatusCheckedOut {
		return fmt.Errorf("booking %s is already checked out", booking.BookingCode)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled); err != nil {
		s.log.Error("Failed to cancel booking", zap.Error(err), zap.String("booking_id", bookingID))
		return fmt.Errorf("cancel booking: %w", err)
	}

	event := &entity.BookingEvent{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		BookingID: booking.ID,
		Type:      entity.EventOther,
		UserID:    userID,
	}
	if err := s.repo.BookingEvent.Create(ctx, event); err != nil {
		// audit trail miss is logged, the cancellation itself stands
		s.log.Warn("Failed to record cancellation event", zap.Error(err), zap.String("booking_id", bookingID))
	}

	s.log.Info("Booking cancelled", zap.String("booking_id", bookingID))
	return nil
}

func (s *bookingService) AddEvent(ctx context.Context, bookingID string, userID *uuid.UUID, req *request.CreateBookingEventRequest) (*response.BookingEventResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	eventType := entity.BookingEventType(req.Type)
	if !eventType.Valid() {
		return nil, fmt.Errorf("validation failed: invalid event type %s", req.Type)
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	event := &entity.BookingEvent{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		BookingID: booking.ID,
		Type:      eventType,
		Notes:     req.Notes,
		UserID:    userID,
	}

	if err := s.repo.BookingEvent.Create(ctx, event); err != nil {
		s.log.Error("Failed to create booking event", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("create booking event: %w", err)
	}

	s.log.Info("Booking event recorded",
		zap.String("booking_id", bookingID),
		zap.String("type", req.Type))

	resp := response.BookingEventToResponse(event)
	return &resp, nil
}

func (s *bookingService) ListEvents(ctx context.Context, bookingID string) ([]response.BookingEventResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	events, err := s.repo.BookingEvent.FindByBookingID(ctx, booking.ID)
	if err != nil {
		s.log.Error("Failed to list booking events", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("list booking events: %w", err)
	}

	out := make([]response.BookingEventResponse, len(events))
	for i, event := range events {
		out[i] = response.BookingEventToResponse(event)
	}
	return out, nil
}

func (s *bookingService) findBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	bookingUUID, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingUUID)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}
