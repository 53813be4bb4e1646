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

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Payment, error)
	FindForReport(ctx context.Context, from, to time.Time, turnoNumbers []int) ([]*entity.PaymentRecord, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, booking_id, turno_id, user_id, amount, currency, method, concept, status, paid_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.BookingID,
		payment.TurnoID,
		payment.UserID,
		payment.Amount,
		payment.Currency,
		payment.Method,
		payment.Concept,
		payment.Status,
		payment.PaidAt,
		payment.CreatedAt,
		payment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("concept", payment.Concept),
		)
		return fmt.Errorf("create payment: %w", mapPgError(err))
	}

	return nil
}

func (r *paymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Payment, error) {
	query := `
		SELECT id, booking_id, turno_id, user_id, amount, currency, method, concept, status, paid_at, created_at, updated_at
		FROM payments
		WHERE booking_id = $1
		ORDER BY paid_at
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find payments by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find payments by booking ID %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var payments []*entity.Payment
	for rows.Next() {
		var payment entity.Payment
		err := rows.Scan(
			&payment.ID,
			&payment.BookingID,
			&payment.TurnoID,
			&payment.UserID,
			&payment.Amount,
			&payment.Currency,
			&payment.Method,
			&payment.Concept,
			&payment.Status,
			&payment.PaidAt,
			&payment.CreatedAt,
			&payment.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, &payment)
	}

	return payments, nil
}

// FindForReport fetches completed payments in [from, to] with turno, user,
// booking and guest joins resolved.
func (r *paymentRepository) FindForReport(ctx context.Context, from, to time.Time, turnoNumbers []int) ([]*entity.PaymentRecord, error) {
	query := `
		SELECT p.id, p.booking_id, p.turno_id, p.user_id, p.amount, p.currency, p.method,
		       p.concept, p.status, p.paid_at, p.created_at, p.updated_at,
		       t.numero, t.nombre,
		       u.first_name || ' ' || u.last_name,
		       b.booking_code,
		       g.first_name || ' ' || g.last_name
		FROM payments p
		LEFT JOIN turnos t ON p.turno_id = t.id
		LEFT JOIN users u ON p.user_id = u.id
		LEFT JOIN bookings b ON p.booking_id = b.id
		LEFT JOIN guests g ON b.guest_id = g.id
		WHERE p.status = 'completed'
		  AND p.paid_at >= $1 AND p.paid_at <= $2
	`
	args := []any{from, to}

	if len(turnoNumbers) > 0 {
		args = append(args, turnoNumbers)
		query += fmt.Sprintf(" AND t.numero = ANY($%d)", len(args))
	}
	query += " ORDER BY p.paid_at, p.created_at"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find payments for report",
			zap.Error(err),
			zap.Time("from", from),
			zap.Time("to", to),
		)
		return nil, fmt.Errorf("find payments between %s and %s: %w",
			from.Format("2006-01-02"), to.Format("2006-01-02"), err)
	}
	defer rows.Close()

	var records []*entity.PaymentRecord
	for rows.Next() {
		var rec entity.PaymentRecord
		err := rows.Scan(
			&rec.ID,
			&rec.BookingID,
			&rec.TurnoID,
			&rec.UserID,
			&rec.Amount,
			&rec.Currency,
			&rec.Method,
			&rec.Concept,
			&rec.Status,
			&rec.PaidAt,
			&rec.CreatedAt,
			&rec.UpdatedAt,
			&rec.TurnoNumero,
			&rec.TurnoNombre,
			&rec.UserName,
			&rec.BookingCode,
			&rec.GuestName,
		)
		if err != nil {
			r.log.Error("Failed to scan payment record row", zap.Error(err))
			return nil, fmt.Errorf("scan payment record row: %w", err)
		}
		records = append(records, &rec)
	}

	return records, nil
}
