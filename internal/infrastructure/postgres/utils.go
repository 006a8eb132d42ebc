package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
// Los índices únicos parciales sobre name (WHERE NOT is_deleted) convierten la
// carrera de creates concurrentes en un ErrDuplicate detectable al escribir.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
