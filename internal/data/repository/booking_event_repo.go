package repository

import (
	"context"
	"fmt"

	"hotel-pms/internal/data/entity"
	"hotel-pms/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingEventRepository interface {
	Create(ctx context.Context, event *entity.BookingEvent) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingEvent, error)
}

type bookingEventRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingEventRepository(db database.PgxIface, log *zap.Logger) BookingEventRepository {
	return &bookingEventRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking_event")),
	}
}

func (r *bookingEventRepository) Create(ctx context.Context, event *entity.BookingEvent) error {
	query := `
		INSERT INTO booking_events (id, booking_id, type, notes, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		event.ID,
		event.BookingID,
		event.Type,
		event.Notes,
		event.UserID,
		event.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking event",
			zap.Error(err),
			zap.String("booking_id", event.BookingID.String()),
			zap.String("type", string(event.Type)),
		)
		return fmt.Errorf("create booking event %s for booking %s: %w",
			string(event.Type), event.BookingID.String(), mapPgError(err))
	}

	return nil
}

func (r *bookingEventRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingEvent, error) {
	query := `
		SELECT id, booking_id, type, notes, user_id, created_at
		FROM booking_events
		WHERE booking_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find booking events",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find booking events for booking %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var events []*entity.BookingEvent
	for rows.Next() {
		var event entity.BookingEvent
		err := rows.Scan(
			&event.ID,
			&event.BookingID,
			&event.Type,
			&event.Notes,
			&event.UserID,
			&event.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking event row", zap.Error(err))
			return nil, fmt.Errorf("scan booking event row: %w", err)
		}
		events = append(events, &event)
	}

	return events, nil
}
