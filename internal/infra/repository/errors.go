package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation = "23505"

	clientsEmailConstraint = "clients_email_key"
)

// isUniqueViolation recognises a unique constraint failure either from the
// raw Postgres error (optionally on a given constraint) or from a dialect
// that translates errors into gorm.ErrDuplicatedKey.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation &&
			(constraint == "" || pgErr.ConstraintName == constraint)
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func notFound(err error, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
