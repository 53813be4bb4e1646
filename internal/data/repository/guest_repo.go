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

type GuestRepository interface {
	Create(ctx context.Context, guest *entity.Guest) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error)
	FindByEmail(ctx context.Context, email string) (*entity.Guest, error)
	FindAll(ctx context.Context) ([]*entity.Guest, error)
	FindPage(ctx context.Context, limit, offset int) ([]*entity.Guest, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, guest *entity.Guest) error
}

type guestRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGuestRepository(db database.PgxIface, log *zap.Logger) GuestRepository {
	return &guestRepository{
		db:  db,
		log: log.With(zap.String("repository", "guest")),
	}
}

const guestColumns = `id, first_name, last_name, email, phone, address, created_at, updated_at`

func scanGuest(row pgx.Row) (*entity.Guest, error) {
	var guest entity.Guest
	err := row.Scan(
		&guest.ID,
		&guest.FirstName,
		&guest.LastName,
		&guest.Email,
		&guest.Phone,
		&guest.Address,
		&guest.CreatedAt,
		&guest.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

func (r *guestRepository) Create(ctx context.Context, guest *entity.Guest) error {
	query := `
		INSERT INTO guests (id, first_name, last_name, email, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
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
		r.log.Error("Failed to create guest",
			zap.Error(err),
			zap.String("email", guest.Email),
		)
		return fmt.Errorf("create guest %s: %w", guest.Email, mapPgError(err))
	}

	return nil
}

func (r *guestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE id = $1`

	guest, err := scanGuest(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find guest by ID",
			zap.Error(err),
			zap.String("guest_id", id.String()),
		)
		return nil, fmt.Errorf("find guest by ID %s: %w", id.String(), err)
	}

	return guest, nil
}

func (r *guestRepository) FindByEmail(ctx context.Context, email string) (*entity.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE email = $1`

	guest, err := scanGuest(r.db.QueryRow(ctx, query, email))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find guest by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find guest by email %s: %w", email, err)
	}

	return guest, nil
}

func (r *guestRepository) FindAll(ctx context.Context) ([]*entity.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests ORDER BY last_name, first_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find guests", zap.Error(err))
		return nil, fmt.Errorf("find guests: %w", err)
	}
	defer rows.Close()

	var guests []*entity.Guest
	for rows.Next() {
		guest, err := scanGuest(rows)
		if err != nil {
			r.log.Error("Failed to scan guest row", zap.Error(err))
			return nil, fmt.Errorf("scan guest row: %w", err)
		}
		guests = append(guests, guest)
	}

	return guests, nil
}

func (r *guestRepository) FindPage(ctx context.Context, limit, offset int) ([]*entity.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests ORDER BY last_name, first_name LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find guest page", zap.Error(err))
		return nil, fmt.Errorf("find guest page: %w", err)
	}
	defer rows.Close()

	var guests []*entity.Guest
	for rows.Next() {
		guest, err := scanGuest(rows)
		if err != nil {
			r.log.Error("Failed to scan guest row", zap.Error(err))
			return nil, fmt.Errorf("scan guest row: %w", err)
		}
		guests = append(guests, guest)
	}

	return guests, nil
}

func (r *guestRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM guests`).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count guests", zap.Error(err))
		return 0, fmt.Errorf("count guests: %w", err)
	}
	return total, nil
}

func (r *guestRepository) Update(ctx context.Context, guest *entity.Guest) error {
	query := `
		UPDATE guests
		SET first_name = $2, last_name = $3, email = $4, phone = $5, address = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		guest.ID,
		guest.FirstName,
		guest.LastName,
		guest.Email,
		guest.Phone,
		guest.Address,
		guest.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update guest",
			zap.Error(err),
			zap.String("guest_id", guest.ID.String()),
		)
		return fmt.Errorf("update guest %s: %w", guest.ID.String(), mapPgError(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("guest %s not found", guest.ID.String())
	}

	return nil
}
