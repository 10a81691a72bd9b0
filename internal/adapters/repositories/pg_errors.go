package repositories

import (
	"errors"
	"flight-analytics-service/internal/ports"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// classify tags integrity violations (SQLSTATE class 23) with
// ports.ErrConstraintViolation and leaves other errors as they are.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 && pgErr.Code[:2] == "23" {
		return fmt.Errorf("%w: %s (%s): %w", ports.ErrConstraintViolation, pgErr.ConstraintName, pgErr.Code, err)
	}
	return err
}
