package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const CheckViolationCode = "23514"

// AsPgError unwraps err into a *pgconn.PgError when possible.
func AsPgError(err error) (*pgconn.PgError, bool) {
	var pe *pgconn.PgError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
