package repository

import (
	"context"
	"fmt"
	"time"

	"hotel-pms/internal/data/entity"
	"hotel-pms/pkg/database"

	"go.uber.org/zap"
)

type MovementRepository interface {
	Create(ctx context.Context, movement *entity.BookingMovement) error
	FindForReport(ctx context.Context, from, to time.Time, turnoNumbers []int, types []entity.MovementType) ([]*entity.MovementRecord, error)
}

type movementRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovementRepository(db database.PgxIface, log *zap.Logger) MovementRepository {
	return &movementRepository{
		db:  db,
		log: log.With(zap.String("repository", "movement")),
	}
}

func (r *movementRepository) Create(ctx context.Context, movement *entity.BookingMovement) error {
	query := `
		INSERT INTO booking_movements (id, booking_id, turno_id, user_id, type, concept, amount, currency, payment_method, subtotal, tax, service_fee, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.Exec(ctx, query,
		movement.ID,
		movement.BookingID,
		movement.TurnoID,
		movement.UserID,
		movement.Type,
		movement.Concept,
		movement.Amount,
		movement.Currency,
		movement.PaymentMethod,
		movement.Subtotal,
		movement.Tax,
		movement.ServiceFee,
		movement.Date,
		movement.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking movement",
			zap.Error(err),
			zap.String("type", string(movement.Type)),
			zap.String("concept", movement.Concept),
		)
		return fmt.Errorf("create booking movement %s: %w", string(movement.Type), mapPgError(err))
	}

	return nil
}

// FindForReport fetches movements in [from, to] (dates inclusive) with
// turno, user, booking and guest joins resolved. Optional turno-number and
// movement-type filters are applied in SQL.
func (r *movementRepository) FindForReport(ctx context.Context, from, to time.Time, turnoNumbers []int, types []entity.MovementType) ([]*entity.MovementRecord, error) {
	query := `
		SELECT m.id, m.booking_id, m.turno_id, m.user_id, m.type, m.concept, m.amount,
		       m.currency, m.payment_method, m.subtotal, m.tax, m.service_fee, m.date, m.created_at,
		       t.numero, t.nombre,
		       u.first_name || ' ' || u.last_name,
		       b.booking_code,
		       g.first_name || ' ' || g.last_name
		FROM booking_movements m
		LEFT JOIN turnos t ON m.turno_id = t.id
		LEFT JOIN users u ON m.user_id = u.id
		LEFT JOIN bookings b ON m.booking_id = b.id
		LEFT JOIN guests g ON b.guest_id = g.id
		WHERE m.date >= $1 AND m.date <= $2
	`
	args := []any{from, to}

	if len(turnoNumbers) > 0 {
		args = append(args, turnoNumbers)
		query += fmt.Sprintf(" AND t.numero = ANY($%d)", len(args))
	}
	if len(types) > 0 {
		typeStrings := make([]string, len(types))
		for i, t := range types {
			typeStrings[i] = string(t)
		}
		args = append(args, typeStrings)
		query += fmt.Sprintf(" AND m.type = ANY($%d)", len(args))
	}
	query += " ORDER BY m.date, m.created_at"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find movements for report",
			zap.Error(err),
			zap.Time("from", from),
			zap.Time("to", to),
		)
		return nil, fmt.Errorf("find movements between %s and %s: %w",
			from.Format("2006-01-02"), to.Format("2006-01-02"), err)
	}
	defer rows.Close()

	var records []*entity.MovementRecord
	for rows.Next() {
		var rec entity.MovementRecord
		err := rows.Scan(
			&rec.ID,
			&rec.BookingID,
			&rec.TurnoID,
			&rec.UserID,
			&rec.Type,
			&rec.Concept,
			&rec.Amount,
			&rec.Currency,
			&rec.PaymentMethod,
			&rec.Subtotal,
			&rec.Tax,
			&rec.ServiceFee,
			&rec.Date,
			&rec.CreatedAt,
			&rec.TurnoNumero,
			&rec.TurnoNombre,
			&rec.UserName,
			&rec.BookingCode,
			&rec.GuestName,
		)
		if err != nil {
			r.log.Error("Failed to scan movement record row", zap.Error(err))
			return nil, fmt.Errorf("scan movement record row: %w", err)
		}
		records = append(records, &rec)
	}

	return records, nil
}
