package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/fundstracker/funds-tracker/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Коды ошибок PostgreSQL
const (
	uniqueViolation = "23505"
	checkViolation  = "23514"
	fkViolation     = "23503"
)

// DBTX общий интерфейс pgxpool.Pool и pgxmock
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type scanner interface {
	Scan(dest ...any) error
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUnavailable определяет ошибки подключения к базе
func isUnavailable(err error) bool {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Класс 08 - Connection Exception
		return len(pgErr.Code) == 5 && pgErr.Code[:2] == "08"
	}
	return pgconn.SafeToRetry(err)
}

// wrapError оборачивает ошибку хранилища, ошибки подключения дополнительно
// помечаются domain.ErrStorageUnavailable
func wrapError(err error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if isUnavailable(err) {
		return fmt.Errorf("repository: %s: %w: %w", msg, domain.ErrStorageUnavailable, err)
	}
	return fmt.Errorf("repository: %s: %w", msg, err)
}

// lockKey формирует ключ advisory lock для операций над данными пользователя
func lockKey(scope string, userID domain.UserID) string {
	return scope + ":" + userID.String()
}

const advisoryLockQuery = `SELECT pg_advisory_xact_lock(hashtext($1))`
