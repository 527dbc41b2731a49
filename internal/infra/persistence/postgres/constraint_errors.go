package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"net"
	"strings"

	domainerrors "delicious/internal/domain/errors"
	"delicious/internal/errors"

	"gorm.io/gorm"
)

// Helper functions for driver error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// pgx reports SQLSTATE 23505, sqlite reports "UNIQUE constraint failed".
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "23505") ||
		strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "23503") ||
		strings.Contains(errMsg, "foreign key constraint")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "23514") ||
		strings.Contains(errMsg, "check constraint")
}

// isUnavailable reports whether err means the store could not be reached in time.
func isUnavailable(err error) bool {
	if errors.IsAny(err, context.DeadlineExceeded, driver.ErrBadConn, sql.ErrConnDone) {
		return true
	}

	var netErr net.Error

	return errors.As(err, &netErr)
}

// translateError maps a driver error that has no domain meaning of its own.
func translateError(err error, details string) error {
	if isUnavailable(err) {
		return errors.Wrap(domainerrors.ErrUnavailable, details+": "+err.Error())
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
