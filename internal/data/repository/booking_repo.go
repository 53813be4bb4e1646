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

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	CreateWithAssignments(ctx context.Context, guest *entity.Guest, booking *entity.Booking, assignments []*entity.BookingRoom) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByCode(ctx context.Context, bookingCode string) (*entity.Booking, error)
	FindAll(ctx context.Context, from, to *time.Time) ([]*entity.Booking, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error
	UpdateNotes(ctx context.Context, bookingID uuid.UUID, notes string) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	FindActiveWithRoomsOn(ctx context.Context, date time.Time) ([]*entity.BookingWithRooms, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, booking_code, guest_id, check_in_date, check_out_date, number_of_guests, total_price, status, notes, created_at, updated_at`

const insertBookingQuery = `
	INSERT INTO bookings (id, booking_code, guest_id, check_in_date, check_out_date, number_of_guests, total_price, status, notes, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.BookingCode,
		&booking.GuestID,
		&booking.CheckInDate,
		&booking.CheckOutDate,
		&booking.NumberOfGuests,
		&booking.TotalPrice,
		&booking.Status,
		&booking.Notes,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	_, err := r.db.Exec(ctx, insertBookingQuery,
		booking.ID,
		booking.BookingCode,
		booking.GuestID,
		booking.CheckInDate,
		booking.CheckOutDate,
		booking.NumberOfGuests,
		booking.TotalPrice,
		booking.Status,
		booking.Notes,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_code", booking.BookingCode),
			zap.String("guest_id", booking.GuestID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.BookingCode, mapPgError(err))
	}

	return nil
}

// CreateWithAssignments persists the booking and all its room assignments in
// one transaction, optionally creating the guest first. Either everything is
// written or nothing is.
func (r *bookingRepository) CreateWithAssignments(ctx context.Context, guest *entity.Guest, booking *entity.Booking, assignments []*entity.BookingRoom) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin booking transaction", zap.Error(err))
		return fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if guest != nil {
		_, err = tx.Exec(ctx, `
			INSERT INTO guests (id, first_name, last_name, email, phone, address, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`,
			guest.ID,
			guest.FirstName,
			guest.LastName,
			guest.Email,
			guest.Phone,
			guest.Address,
			guest.CreatedAt,
			guest.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to create guest in booking transaction",
				zap.Error(err),
				zap.String("email", guest.Email),
			)
			return fmt.Errorf("create guest %s: %w", guest.Email, mapPgError(err))
		}
	}

	_, err = tx.Exec(ctx, insertBookingQuery,
		booking.ID,
		booking.BookingCode,
		booking.GuestID,
		booking.CheckInDate,
		booking.CheckOutDate,
		booking.NumberOfGuests,
		booking.TotalPrice,
		booking.Status,
		booking.Notes,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create booking in transaction",
			zap.Error(err),
			zap.String("booking_code", booking.BookingCode),
		)
		return fmt.Errorf("create booking %s: %w", booking.BookingCode, mapPgError(err))
	}

	for _, assignment := range assignments {
		_, err = tx.Exec(ctx, `
			INSERT INTO booking_rooms (id, booking_id, room_id, price_at_time, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`,
			assignment.ID,
			assignment.BookingID,
			assignment.RoomID,
			assignment.PriceAtTime,
			assignment.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to create booking room in transaction",
				zap.Error(err),
				zap.String("booking_id", assignment.BookingID.String()),
				zap.String("room_id", assignment.RoomID.String()),
			)
			return fmt.Errorf("create booking room for room %s: %w", assignment.RoomID.String(), mapPgError(err))
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit booking transaction",
			zap.Error(err),
			zap.String("booking_code", booking.BookingCode),
		)
		return fmt.Errorf("commit booking %s: %w", booking.BookingCode, mapPgError(err))
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByCode(ctx context.Context, bookingCode string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_code = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, bookingCode))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by code",
			zap.Error(err),
			zap.String("booking_code", bookingCode),
		)
		return nil, fmt.Errorf("find booking by code %s: %w", bookingCode, err)
	}

	return booking, nil
}

// FindAll lists bookings, optionally restricted to stays overlapping the
// half-open range [from, to).
func (r *bookingRepository) FindAll(ctx context.Context, from, to *time.Time) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings`
	args := []any{}

	if from != nil && to != nil {
		query += ` WHERE check_in_date < $2 AND check_out_date > $1`
		args = append(args, *from, *to)
	}
	query += ` ORDER BY check_in_date, created_at`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find bookings", zap.Error(err))
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

func (r *bookingRepository) UpdateNotes(ctx context.Context, bookingID uuid.UUID, notes string) error {
	query := `UPDATE bookings SET notes = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, notes)
	if err != nil {
		r.log.Error("Failed to update booking notes",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("update booking %s notes: %w", bookingID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}

// FindActiveWithRoomsOn fetches bookings whose stay covers the date, each
// with its assigned room ids. Input for per-room status derivation.
func (r *bookingRepository) FindActiveWithRoomsOn(ctx context.Context, date time.Time) ([]*entity.BookingWithRooms, error) {
	query := `
		SELECT b.id, b.booking_code, b.guest_id, b.check_in_date, b.check_out_date,
		       b.number_of_guests, b.total_price, b.status, b.notes, b.created_at, b.updated_at,
		       ARRAY_AGG(br.room_id)
		FROM bookings b
		INNER JOIN booking_rooms br ON br.booking_id = b.id
		WHERE b.status IN ('confirmed', 'checked_in')
		  AND b.check_in_date <= $1
		  AND b.check_out_date > $1
		GROUP BY b.id
		ORDER BY b.check_in_date
	`

	rows, err := r.db.Query(ctx, query, date)
	if err != nil {
		r.log.Error("Failed to find active bookings with rooms",
			zap.Error(err),
			zap.Time("date", date),
		)
		return nil, fmt.Errorf("find active bookings on %s: %w", date.Format("2006-01-02"), err)
	}
	defer rows.Close()

	var bookings []*entity.BookingWithRooms
	for rows.Next() {
		var bwr entity.BookingWithRooms
		err := rows.Scan(
			&bwr.ID,
			&bwr.BookingCode,
			&bwr.GuestID,
			&bwr.CheckInDate,
			&bwr.CheckOutDate,
			&bwr.NumberOfGuests,
			&bwr.TotalPrice,
			&bwr.Status,
			&bwr.Notes,
			&bwr.CreatedAt,
			&bwr.UpdatedAt,
			&bwr.RoomIDs,
		)
		if err != nil {
			r.log.Error("Failed to scan booking with rooms row", zap.Error(err))
			return nil, fmt.Errorf("scan booking with rooms row: %w", err)
		}
		bookings = append(bookings, &bwr)
	}

	return bookings, nil
}
