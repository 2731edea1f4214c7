package repository

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgErrUniqueViolation      = "23505"
	PgErrSerializationFailure = "40001"
	PgErrDeadlockDetected     = "40P01"
	PgErrAdminShutdown        = "57P01"
	PgErrCannotConnectNow     = "57P03"
)

func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// IsTransient сообщает, что операцию можно безопасно повторить.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case PgErrSerializationFailure, PgErrDeadlockDetected, PgErrAdminShutdown, PgErrCannotConnectNow:
			return true
		default:
			return false
		}
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	return pgconn.SafeToRetry(err) || pgconn.Timeout(err)
}

// TranslateError оборачивает транзиентные ошибки в entities.ErrStoreUnavailable,
// остальные возвращает как есть.
func TranslateError(err error) error {
	if err == nil || errors.Is(err, entities.ErrStoreUnavailable) {
		return err
	}
	if IsTransient(err) {
		return fmt.Errorf("%w: %w", entities.ErrStoreUnavailable, err)
	}
	return err
}
