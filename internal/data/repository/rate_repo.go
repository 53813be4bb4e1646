package repository

import (
	"context"
	"fmt"

	"hotel-pms/internal/data/entity"
	"hotel-pms/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RateRepository interface {
	Create(ctx context.Context, rate *entity.RoomRate) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RoomRate, error)
	FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.RoomRate, error)
	FindAll(ctx context.Context) ([]*entity.RoomRate, error)
	Update(ctx context.Context, rate *entity.RoomRate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type rateRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRateRepository(db database.PgxIface, log *zap.Logger) RateRepository {
	return &rateRepository{
		db:  db,
		log: log.With(zap.String("repository", "rate")),
	}
}

const rateColumns = `id, room_id, name, type, subtotal, tax, service_fee, total, valid_from, valid_to, valid_days, min_nights, max_nights, is_active, is_default, created_at, updated_at`

func scanRate(row pgx.Row) (*entity.RoomRate, error) {
	var rate entity.RoomRate
	err := row.Scan(
		&rate.ID,
		&rate.RoomID,
		&rate.Name,
		&rate.Type,
		&rate.Subtotal,
		&rate.Tax,
		&rate.ServiceFee,
		&rate.Total,
		&rate.ValidFrom,
		&rate.ValidTo,
		&rate.ValidDays,
		&rate.MinNights,
		&rate.MaxNights,
		&rate.IsActive,
		&rate.IsDefault,
		&rate.CreatedAt,
		&rate.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

// Create inserts the rate. A default rate unsets any other default for the
// same room inside the same transaction so at most one active default
// remains.
func (r *rateRepository) Create(ctx context.Context, rate *entity.RoomRate) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin rate transaction", zap.Error(err))
		return fmt.Errorf("begin rate transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if rate.IsDefault {
		_, err = tx.Exec(ctx, `UPDATE room_rates SET is_default = FALSE, updated_at = NOW() WHERE room_id = $1 AND is_default = TRUE`, rate.RoomID)
		if err != nil {
			r.log.Error("Failed to unset default rates",
				zap.Error(err),
				zap.String("room_id", rate.RoomID.String()),
			)
			return fmt.Errorf("unset default rates for room %s: %w", rate.RoomID.String(), err)
		}
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO room_rates (id, room_id, name, type, subtotal, tax, service_fee, total, valid_from, valid_to, valid_days, min_nights, max_nights, is_active, is_default, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`,
		rate.ID,
		rate.RoomID,
		rate.Name,
		rate.Type,
		rate.Subtotal,
		rate.Tax,
		rate.ServiceFee,
		rate.Total,
		rate.ValidFrom,
		rate.ValidTo,
		rate.ValidDays,
		rate.MinNights,
		rate.MaxNights,
		rate.IsActive,
		rate.IsDefault,
		rate.CreatedAt,
		rate.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create rate",
			zap.Error(err),
			zap.String("room_id", rate.RoomID.String()),
			zap.String("name", rate.Name),
		)
		return fmt.Errorf("create rate %s: %w", rate.Name, mapPgError(err))
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit rate transaction", zap.Error(err))
		return fmt.Errorf("commit rate %s: %w", rate.Name, err)
	}

	return nil
}

func (r *rateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RoomRate, error) {
	query := `SELECT ` + rateColumns + ` FROM room_rates WHERE id = $1`

	rate, err := scanRate(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find rate by ID",
			zap.Error(err),
			zap.String("rate_id", id.String()),
		)
		return nil, fmt.Errorf("find rate by ID %s: %w", id.String(), err)
	}

	return rate, nil
}

func (r *rateRepository) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.RoomRate, error) {
	query := `SELECT ` + rateColumns + ` FROM room_rates WHERE room_id = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, roomID)
	if err != nil {
		r.log.Error("Failed to find rates by room ID",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return nil, fmt.Errorf("find rates by room ID %s: %w", roomID.String(), err)
	}
	defer rows.Close()

	var rates []*entity.RoomRate
	for rows.Next() {
		rate, err := scanRate(rows)
		if err != nil {
			r.log.Error("Failed to scan rate row", zap.Error(err))
			return nil, fmt.Errorf("scan rate row: %w", err)
		}
		rates = append(rates, rate)
	}

	return rates, nil
}

func (r *rateRepository) FindAll(ctx context.Context) ([]*entity.RoomRate, error) {
	query := `SELECT ` + rateColumns + ` FROM room_rates ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find rates", zap.Error(err))
		return nil, fmt.Errorf("find rates: %w", err)
	}
	defer rows.Close()

	var rates []*entity.RoomRate
	for rows.Next() {
		rate, err := scanRate(rows)
		if err != nil {
			r.log.Error("Failed to scan rate row", zap.Error(err))
			return nil, fmt.Errorf("scan rate row: %w", err)
		}
		rates = append(rates, rate)
	}

	return rates, nil
}

// Update follows the same default-flag rule as Create.
func (r *rateRepository) Update(ctx context.Context, rate *entity.RoomRate) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin rate transaction", zap.Error(err))
		return fmt.Errorf("begin rate transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if rate.IsDefault {
		_, err = tx.Exec(ctx, `UPDATE room_rates SET is_default = FALSE, updated_at = NOW() WHERE room_id = $1 AND is_default = TRUE AND id <> $2`, rate.RoomID, rate.ID)
		if err != nil {
			r.log.Error("Failed to unset default rates",
				zap.Error(err),
				zap.String("room_id", rate.RoomID.String()),
			)
			return fmt.Errorf("unset default rates for room %s: %w", rate.RoomID.String(), err)
		}
	}

	result, err := tx.Exec(ctx, `
		UPDATE room_rates
		SET name = $2, type = $3, subtotal = $4, tax = $5, service_fee = $6, total = $7,
		    valid_from = $8, valid_to = $9, valid_days = $10, min_nights = $11, max_nights = $12,
		    is_active = $13, is_default = $14, updated_at = $15
		WHERE id = $1
	`,
		rate.ID,
		rate.Name,
		rate.Type,
		rate.Subtotal,
		rate.Tax,
		rate.ServiceFee,
		rate.Total,
		rate.ValidFrom,
		rate.ValidTo,
		rate.ValidDays,
		rate.MinNights,
		rate.MaxNights,
		rate.IsActive,
		rate.IsDefault,
		rate.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update rate",
			zap.Error(err),
			zap.String("rate_id", rate.ID.String()),
		)
		return fmt.Errorf("update rate %s: %w", rate.ID.String(), mapPgError(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("rate %s not found", rate.ID.String())
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit rate transaction", zap.Error(err))
		return fmt.Errorf("commit rate %s: %w", rate.ID.String(), err)
	}

	return nil
}

func (r *rateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM room_rates WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete rate",
			zap.Error(err),
			zap.String("rate_id", id.String()),
		)
		return fmt.Errorf("delete rate %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("rate %s not found", id.String())
	}

	r.log.Info("Rate deleted", zap.String("rate_id", id.String()))
	return nil
}
