package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fundstracker/funds-tracker/internal/domain"
	"github.com/jackc/pgx/v5"
)

const historyColumns = `id, account_id, user_id, balance, delta, is_monthly_closing, created_at`

// HistoryRepository реализует domain.HistoryRepository
type HistoryRepository struct {
	db DBTX
}

// NewHistoryRepository создает новый HistoryRepository
func NewHistoryRepository(db DBTX) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Save добавляет снимок баланса
func (r *HistoryRepository) Save(ctx context.Context, history *domain.History) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO accounts_history (id, account_id, user_id, balance, delta, is_monthly_closing, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		history.ID, history.AccountID, history.UserID, history.Balance.Float64(), history.Delta,
		history.IsMonthlyClosing, history.CreatedAt,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case fkViolation:
			return domain.ErrAccountNotFound
		case checkViolation:
			return domain.ErrInvalidBalance
		}
		return wrapError(err, "failed to save history for account %s", history.AccountID)
	}
	return nil
}

// Update заменяет баланс, дельту и время существующего снимка
func (r *HistoryRepository) Update(ctx context.Context, history *domain.History) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE accounts_history
		 SET balance = $1, delta = $2, is_monthly_closing = $3, created_at = $4
		 WHERE id = $5`,
		history.Balance.Float64(), history.Delta, history.IsMonthlyClosing, history.CreatedAt, history.ID,
	)
	if err != nil {
		return wrapError(err, "failed to update history %s", history.ID)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrHistoryNotFound
	}

	return nil
}

// GetLatestSince возвращает последний снимок счёта не старше since
func (r *HistoryRepository) GetLatestSince(ctx context.Context, accountID domain.AccountID, since time.Time) (*domain.History, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+historyColumns+`
		 FROM accounts_history
		 WHERE account_id = $1 AND created_at >= $2
		 ORDER BY created_at DESC
		 LIMIT 1`,
		accountID, since,
	)

	history, err := scanHistory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrHistoryNotFound
		}
		return nil, wrapError(err, "failed to get latest history for account %s", accountID)
	}

	return history, nil
}

// GetBucketed возвращает по одному последнему снимку на каждый период, от новых к старым
func (r *HistoryRepository) GetBucketed(ctx context.Context, accountID domain.AccountID, period domain.HistoryPeriod, since time.Time) ([]*domain.History, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT ON (date_trunc($2, created_at)) `+historyColumns+`
		 FROM accounts_history
		 WHERE account_id = $1 AND created_at >= $3
		 ORDER BY date_trunc($2, created_at) DESC, created_at DESC`,
		accountID, period.TruncUnit(), since,
	)
	if err != nil {
		return nil, wrapError(err, "failed to get history for account %s", accountID)
	}
	defer rows.Close()

	var snapshots []*domain.History
	for rows.Next() {
		history, err := scanHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan history: %w", err)
		}
		snapshots = append(snapshots, history)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapError(err, "error iterating history")
	}

	return snapshots, nil
}

// SumDeltas суммирует положительные и отрицательные изменения балансов пользователя.
// Расходы возвращаются положительным числом
func (r *HistoryRepository) SumDeltas(ctx context.Context, userID domain.UserID, since time.Time) (float64, float64, error) {
	var incomes, expenses float64
	err := r.db.QueryRow(ctx,
		`SELECT
			COALESCE(SUM(delta) FILTER (WHERE delta > 0), 0) AS incomes,
			COALESCE(-SUM(delta) FILTER (WHERE delta < 0), 0) AS expenses
		 FROM accounts_history
		 WHERE user_id = $1 AND created_at >= $2`,
		userID, since,
	).Scan(&incomes, &expenses)
	if err != nil {
		return 0, 0, wrapError(err, "failed to sum deltas for user %s", userID)
	}
	return incomes, expenses, nil
}

func scanHistory(row scanner) (*domain.History, error) {
	var (
		history domain.History
		balance float64
	)

	err := row.Scan(&history.ID, &history.AccountID, &history.UserID, &balance, &history.Delta, &history.IsMonthlyClosing, &history.CreatedAt)
	if err != nil {
		return nil, err
	}

	if history.Balance, err = domain.NewMoney(balance); err != nil {
		return nil, fmt.Errorf("stored balance of history %s: %w", history.ID, err)
	}

	return &history, nil
}
