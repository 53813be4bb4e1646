package repository

import (
	"context"
	"fmt"

	"hotel-pms/internal/data/entity"
	"hotel-pms/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TurnoRepository interface {
	Create(ctx context.Context, turno *entity.Turno) error
	FindByNumero(ctx context.Context, numero int) (*entity.Turno, error)
	FindAll(ctx context.Context) ([]*entity.Turno, error)
}

type turnoRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTurnoRepository(db database.PgxIface, log *zap.Logger) TurnoRepository {
	return &turnoRepository{
		db:  db,
		log: log.With(zap.String("repository", "turno")),
	}
}

func (r *turnoRepository) Create(ctx context.Context, turno *entity.Turno) error {
	query := `
		INSERT INTO turnos (id, numero, nombre, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		turno.ID,
		turno.Numero,
		turno.Nombre,
		turno.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create turno",
			zap.Error(err),
			zap.Int("numero", turno.Numero),
		)
		return fmt.Errorf("create turno %d: %w", turno.Numero, mapPgError(err))
	}

	return nil
}

func (r *turnoRepository) FindByNumero(ctx context.Context, numero int) (*entity.Turno, error) {
	query := `SELECT id, numero, nombre, created_at FROM turnos WHERE numero = $1`

	var turno entity.Turno
	err := r.db.QueryRow(ctx, query, numero).Scan(
		&turno.ID,
		&turno.Numero,
		&turno.Nombre,
		&turno.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find turno by numero",
			zap.Error(err),
			zap.Int("numero", numero),
		)
		return nil, fmt.Errorf("find turno by numero %d: %w", numero, err)
	}

	return &turno, nil
}

func (r *turnoRepository) FindAll(ctx context.Context) ([]*entity.Turno, error) {
	query := `SELECT id, numero, nombre, created_at FROM turnos ORDER BY numero`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find turnos", zap.Error(err))
		return nil, fmt.Errorf("find turnos: %w", err)
	}
	defer rows.Close()

	var turnos []*entity.Turno
	for rows.Next() {
		var turno entity.Turno
		err := rows.Scan(
			&turno.ID,
			&turno.Numero,
			&turno.Nombre,
			&turno.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan turno row", zap.Error(err))
			return nil, fmt.Errorf("scan turno row: %w", err)
		}
		turnos = append(turnos, &turno)
	}

	return turnos, nil
}
