package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolationCode — класс 23, нарушение unique constraint в PostgreSQL
const uniqueViolationCode = "23505"

// isUniqueViolation проверяет, является ли ошибка драйвера нарушением
// ограничения уникальности
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
