package repository

import (
	"context"
	"fmt"
	"time"

	"hotel-pms/internal/data/entity"
	"hotel-pms/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	FindByNumber(ctx context.Context, roomNumber string) (*entity.Room, error)
	FindAll(ctx context.Context) ([]*entity.Room, error)
	Update(ctx context.Context, room *entity.Room) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RoomStatus) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	FindAvailableByType(ctx context.Context, roomType entity.RoomType, checkIn, checkOut time.Time) ([]*entity.Room, error)
	CountActiveBookings(ctx context.Context, roomID uuid.UUID) (int64, error)
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

const roomColumns = `id, room_number, type, capacity, price_per_night, status, floor, amenities, is_available, created_at, updated_at`

func scanRoom(row pgx.Row) (*entity.Room, error) {
	var room entity.Room
	err := row.Scan(
		&room.ID,
		&room.RoomNumber,
		&room.Type,
		&room.Capacity,
		&room.PricePerNight,
		&room.Status,
		&room.Floor,
		&room.Amenities,
		&room.IsAvailable,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (id, room_number, type, capacity, price_per_night, status, floor, amenities, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		room.ID,
		room.RoomNumber,
		room.Type,
		room.Capacity,
		room.PricePerNight,
		room.Status,
		room.Floor,
		room.Amenities,
		room.IsAvailable,
		room.CreatedAt,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("room_number", room.RoomNumber),
		)
		return fmt.Errorf("create room %s: %w", room.RoomNumber, mapPgError(err))
	}

	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	room, err := scanRoom(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return nil, fmt.Errorf("find room by ID %s: %w", id.String(), err)
	}

	return room, nil
}

func (r *roomRepository) FindByNumber(ctx context.Context, roomNumber string) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE room_number = $1`

	room, err := scanRoom(r.db.QueryRow(ctx, query, roomNumber))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by number",
			zap.Error(err),
			zap.String("room_number", roomNumber),
		)
		return nil, fmt.Errorf("find room by number %s: %w", roomNumber, err)
	}

	return room, nil
}

func (r *roomRepository) FindAll(ctx context.Context) ([]*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms ORDER BY room_number`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find rooms", zap.Error(err))
		return nil, fmt.Errorf("find rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, room)
	}

	return rooms, nil
}

func (r *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	query := `
		UPDATE rooms
		SET room_number = $2, type = $3, capacity = $4, price_per_night = $5,
		    status = $6, floor = $7, amenities = $8, is_available = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		room.ID,
		room.RoomNumber,
		room.Type,
		room.Capacity,
		room.PricePerNight,
		room.Status,
		room.Floor,
		room.Amenities,
		room.IsAvailable,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update room",
			zap.Error(err),
			zap.String("room_id", room.ID.String()),
		)
		return fmt.Errorf("update room %s: %w", room.ID.String(), mapPgError(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", room.ID.String())
	}

	return nil
}

func (r *roomRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RoomStatus) error {
	query := `UPDATE rooms SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update room status",
			zap.Error(err),
			zap.String("room_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update room %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", id.String())
	}

	return nil
}

func (r *roomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM rooms WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete room",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return fmt.Errorf("delete room %s: %w", id.String(), mapPgError(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", id.String())
	}

	r.log.Info("Room deleted", zap.String("room_id", id.String()))
	return nil
}

// FindAvailableByType returns bookable rooms of a type with no booking
// overlapping [checkIn, checkOut). Order is by room number, which also
// fixes the greedy assignment order.
func (r *roomRepository) FindAvailableByType(ctx context.Context, roomType entity.RoomType, checkIn, checkOut time.Time) ([]*entity.Room, error) {
	query := `
		SELECT ` + roomColumns + `
		FROM rooms rm
		WHERE rm.type = $1
		  AND rm.is_available = TRUE
		  AND NOT EXISTS (
		      SELECT 1
		      FROM booking_rooms br
		      INNER JOIN bookings b ON br.booking_id = b.id
		      WHERE br.room_id = rm.id
		        AND b.status IN ('confirmed', 'checked_in')
		        AND b.check_in_date < $3
		        AND b.check_out_date > $2
		  )
		ORDER BY rm.room_number
	`

	rows, err := r.db.Query(ctx, query, roomType, checkIn, checkOut)
	if err != nil {
		r.log.Error("Failed to find available rooms",
			zap.Error(err),
			zap.String("type", string(roomType)),
			zap.Time("check_in", checkIn),
			zap.Time("check_out", checkOut),
		)
		return nil, fmt.Errorf("find available rooms of type %s: %w", string(roomType), err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, room)
	}

	return rooms, nil
}

// CountActiveBookings counts non-cancelled bookings that are still running
// or in the future for the room. Used to block room deletion.
func (r *roomRepository) CountActiveBookings(ctx context.Context, roomID uuid.UUID) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM booking_rooms br
		INNER JOIN bookings b ON br.booking_id = b.id
		WHERE br.room_id = $1
		  AND b.status IN ('confirmed', 'checked_in')
		  AND b.check_out_date > NOW()
	`

	var count int64
	err := r.db.QueryRow(ctx, query, roomID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count active bookings for room",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return 0, fmt.Errorf("count active bookings for room %s: %w", roomID.String(), err)
	}

	return count, nil
}
