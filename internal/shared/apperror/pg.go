package apperror

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// IsUniqueViolation melaporkan apakah err berasal dari unique constraint
// Postgres. Dipakai repo untuk memetakan insert ganda ke DUPLICATE_KEY.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
