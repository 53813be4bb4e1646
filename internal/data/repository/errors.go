package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors so services and handlers can map data-layer conflicts to
// HTTP statuses without sniffing postgres error strings.
var (
	ErrDuplicate  = errors.New("duplicate record")
	ErrForeignKey = errors.New("related record does not exist")
)

// mapPgError translates unique and foreign key violations into sentinels.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%w (%s)", ErrDuplicate, pgErr.ConstraintName)
		case "23503":
			return fmt.Errorf("%w (%s)", ErrForeignKey, pgErr.ConstraintName)
		}
	}
	return err
}
