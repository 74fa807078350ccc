package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeStringTooLong       = "22001"
	codeNumericOutOfRange   = "22003"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return hasCode(err, codeUniqueViolation)
}

// isConstraintViolation detecta FK o CHECK rotos, o un valor que no cabe en la columna:
// el libro rechazó el movimiento.
func isConstraintViolation(err error) bool {
	for _, code := range []string{codeForeignKeyViolation, codeCheckViolation, codeStringTooLong, codeNumericOutOfRange} {
		if hasCode(err, code) {
			return true
		}
	}
	return false
}

func hasCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return strings.Contains(err.Error(), "SQLSTATE "+code)
}
