package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lawbridge/lawbridge-backend/pkg/apperrors"
)

const uniqueViolationCode = "23505"

// conflictOnUnique translates a unique-constraint violation into the same
// conflict kind the domain-service pre-check raises, so callers cannot
// distinguish losing the race from failing the check. The constraint is the
// source of truth; the pre-check is a UX optimization.
func conflictOnUnique(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return apperrors.Conflict(msg)
	}
	return err
}
