package repository

import (
	"context"
	"fmt"
	"time"

	"hotel-pms/internal/data/entity"
	"hotel-pms/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingRoomRepository interface {
	Create(ctx context.Context, bookingRoom *entity.BookingRoom) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingRoom, error)
	FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.BookingRoom, error)
	FindBookedRoomIDs(ctx context.Context, from, to time.Time) ([]uuid.UUID, error)
	DeleteByBookingID(ctx context.Context, bookingID uuid.UUID) error
}

type bookingRoomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRoomRepository(db database.PgxIface, log *zap.Logger) BookingRoomRepository {
	return &bookingRoomRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking_room")),
	}
}

func (r *bookingRoomRepository) Create(ctx context.Context, bookingRoom *entity.BookingRoom) error {
	query := `
		INSERT INTO booking_rooms (id, booking_id, room_id, price_at_time, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		bookingRoom.ID,
		bookingRoom.BookingID,
		bookingRoom.RoomID,
		bookingRoom.PriceAtTime,
		bookingRoom.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking room",
			zap.Error(err),
			zap.String("booking_id", bookingRoom.BookingID.String()),
			zap.String("room_id", bookingRoom.RoomID.String()),
		)
		return fmt.Errorf("create booking room for booking %s room %s: %w",
			bookingRoom.BookingID.String(), bookingRoom.RoomID.String(), mapPgError(err))
	}

	return nil
}

func (r *bookingRoomRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingRoom, error) {
	query := `
		SELECT id, booking_id, room_id, price_at_time, created_at
		FROM booking_rooms
		WHERE booking_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find booking rooms by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find booking rooms by booking ID %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var bookingRooms []*entity.BookingRoom
	for rows.Next() {
		var br entity.BookingRoom
		err := rows.Scan(
			&br.ID,
			&br.BookingID,
			&br.RoomID,
			&br.PriceAtTime,
			&br.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking room row", zap.Error(err))
			return nil, fmt.Errorf("scan booking room row: %w", err)
		}
		bookingRooms = append(bookingRooms, &br)
	}

	return bookingRooms, nil
}

func (r *bookingRoomRepository) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.BookingRoom, error) {
	query := `
		SELECT id, booking_id, room_id, price_at_time, created_at
		FROM booking_rooms
		WHERE room_id = $1
	`

	rows, err := r.db.Query(ctx, query, roomID)
	if err != nil {
		r.log.Error("Failed to find booking rooms by room ID",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return nil, fmt.Errorf("find booking rooms by room ID %s: %w", roomID.String(), err)
	}
	defer rows.Close()

	var bookingRooms []*entity.BookingRoom
	for rows.Next() {
		var br entity.BookingRoom
		err := rows.Scan(
			&br.ID,
			&br.BookingID,
			&br.RoomID,
			&br.PriceAtTime,
			&br.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking room row", zap.Error(err))
			return nil, fmt.Errorf("scan booking room row: %w", err)
		}
		bookingRooms = append(bookingRooms, &br)
	}

	return bookingRooms, nil
}

// FindBookedRoomIDs returns the rooms tied to a live booking that overlaps
// the half-open window [from, to).
func (r *bookingRoomRepository) FindBookedRoomIDs(ctx context.Context, from, to time.Time) ([]uuid.UUID, error) {
	query := `
		SELECT DISTINCT br.room_id
		FROM booking_rooms br
		JOIN bookings b ON b.id = br.booking_id
		WHERE b.status IN ('confirmed', 'checked_in')
		  AND b.check_in_date < $2
		  AND b.check_out_date > $1
	`

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		r.log.Error("Failed to find booked room IDs",
			zap.Error(err),
			zap.Time("from", from),
			zap.Time("to", to),
		)
		return nil, fmt.Errorf("find booked room IDs: %w", err)
	}
	defer rows.Close()

	var roomIDs []uuid.UUID
	for rows.Next() {
		var roomID uuid.UUID
		if err := rows.Scan(&roomID); err != nil {
			r.log.Error("Failed to scan booked room ID", zap.Error(err))
			return nil, fmt.Errorf("scan booked room ID: %w", err)
		}
		roomIDs = append(roomIDs, roomID)
	}

	return roomIDs, nil
}

func (r *bookingRoomRepository) DeleteByBookingID(ctx context.Context, bookingID uuid.UUID) error {
	query := `DELETE FROM booking_rooms WHERE booking_id = $1`

	_, err := r.db.Exec(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to delete booking rooms by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("delete booking rooms by booking ID %s: %w", bookingID.String(), err)
	}

	return nil
}
