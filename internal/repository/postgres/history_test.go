package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fundstracker/funds-tracker/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var historyRowColumns = []string{"id", "account_id", "user_id", "balance", "delta", "is_monthly_closing", "created_at"}

func newTestHistory(t *testing.T) *domain.History {
	t.Helper()
	history, err := domain.NewHistory(uuid.New(), uuid.New(), 1200, -300, false, time.Now())
	require.NoError(t, err)
	return &history
}

func TestHistoryRepository_Save(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewHistoryRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		history := newTestHistory(t)

		mock.ExpectExec(`INSERT INTO accounts_history`).
			WithArgs(history.ID, history.AccountID, history.UserID, 1200.0, -300.0, false, history.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, repo.Save(ctx, history))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Account deleted", func(t *testing.T) {
		history := newTestHistory(t)

		mock.ExpectExec(`INSERT INTO accounts_history`).
			WithArgs(history.ID, history.AccountID, history.UserID, 1200.0, -300.0, false, history.CreatedAt).
			WillReturnError(&pgconn.PgError{Code: "23503"})

		assert.ErrorIs(t, repo.Save(ctx, history), domain.ErrAccountNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestHistoryRepository_Update(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewHistoryRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		history := newTestHistory(t)

		mock.ExpectExec(`UPDATE accounts_history`).
			WithArgs(1200.0, -300.0, false, history.CreatedAt, history.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.Update(ctx, history))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("History not found", func(t *testing.T) {
		history := newTestHistory(t)

		mock.ExpectExec(`UPDATE accounts_history`).
			WithArgs(1200.0, -300.0, false, history.CreatedAt, history.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		assert.ErrorIs(t, repo.Update(ctx, history), domain.ErrHistoryNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestHistoryRepository_GetLatestSince(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewHistoryRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		accountID, userID := uuid.New(), uuid.New()
		since := time.Now().Add(-10 * time.Minute)
		createdAt := time.Now().Add(-time.Minute)
		historyID := uuid.New()

		rows := pgxmock.NewRows(historyRowColumns).
			AddRow(historyID, accountID, userID, 900.0, 100.0, true, createdAt)

		mock.ExpectQuery(`SELECT (.+) FROM accounts_history`).
			WithArgs(accountID, since).
			WillReturnRows(rows)

		history, err := repo.GetLatestSince(ctx, accountID, since)
		require.NoError(t, err)
		assert.Equal(t, historyID, history.ID)
		assert.Equal(t, 900.0, history.Balance.Float64())
		assert.Equal(t, 100.0, history.Delta)
		assert.True(t, history.IsMonthlyClosing)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No recent snapshot", func(t *testing.T) {
		accountID := uuid.New()
		since := time.Now().Add(-10 * time.Minute)

		mock.ExpectQuery(`SELECT (.+) FROM accounts_history`).
			WithArgs(accountID, since).
			WillReturnError(pgx.ErrNoRows)

		history, err := repo.GetLatestSince(ctx, accountID, since)
		assert.ErrorIs(t, err, domain.ErrHistoryNotFound)
		assert.Nil(t, history)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestHistoryRepository_GetBucketed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewHistoryRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		accountID, userID := uuid.New(), uuid.New()
		since := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

		rows := pgxmock.NewRows(historyRowColumns).
			AddRow(uuid.New(), accountID, userID, 300.0, 100.0, false, since.Add(48*time.Hour)).
			AddRow(uuid.New(), accountID, userID, 200.0, 200.0, false, since.Add(time.Hour))

		mock.ExpectQuery(`SELECT DISTINCT ON \(date_trunc`).
			WithArgs(accountID, "day", since).
			WillReturnRows(rows)

		snapshots, err := repo.GetBucketed(ctx, accountID, domain.PeriodDays, since)
		require.NoError(t, err)
		require.Len(t, snapshots, 2)
		assert.Equal(t, 300.0, snapshots[0].Balance.Float64())
		assert.Equal(t, 200.0, snapshots[1].Balance.Float64())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		accountID := uuid.New()
		since := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(`SELECT DISTINCT ON \(date_trunc`).
			WithArgs(accountID, "month", since).
			WillReturnError(errors.New("database error"))

		snapshots, err := repo.GetBucketed(ctx, accountID, domain.PeriodMonths, since)
		assert.Error(t, err)
		assert.Nil(t, snapshots)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestHistoryRepository_SumDeltas(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewHistoryRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userID := uuid.New()
		since := time.Now().Add(-24 * time.Hour)

		mock.ExpectQuery(`SELECT(.+)FILTER`).
			WithArgs(userID, since).
			WillReturnRows(pgxmock.NewRows([]string{"incomes", "expenses"}).AddRow(1500.0, 400.0))

		incomes, expenses, err := repo.SumDeltas(ctx, userID, since)
		require.NoError(t, err)
		assert.Equal(t, 1500.0, incomes)
		assert.Equal(t, 400.0, expenses)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Connection error", func(t *testing.T) {
		userID := uuid.New()
		since := time.Now().Add(-24 * time.Hour)

		mock.ExpectQuery(`SELECT(.+)FILTER`).
			WithArgs(userID, since).
			WillReturnError(&pgconn.PgError{Code: "08001"})

		_, _, err := repo.SumDeltas(ctx, userID, since)
		assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
