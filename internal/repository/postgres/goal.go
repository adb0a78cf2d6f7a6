package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fundstracker/funds-tracker/internal/domain"
	"github.com/jackc/pgx/v5"
)

const goalColumns = `id, user_id, account_id, title, target_amount, current_amount, status, savings_percentage, deadline, created_at`

// GoalRepository реализует domain.GoalRepository
type GoalRepository struct {
	db DBTX
}

// NewGoalRepository создает новый GoalRepository
func NewGoalRepository(db DBTX) *GoalRepository {
	return &GoalRepository{db: db}
}

// Create сохраняет цель. Сумма процентов активных целей проверяется
// под advisory lock пользователя в той же транзакции, что и вставка
func (r *GoalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	return r.withBudgetLock(ctx, goal, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO goals (id, user_id, account_id, title, target_amount, current_amount, status, savings_percentage, deadline, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			goal.ID, goal.UserID, goal.AccountID, goal.Title.String(), goal.TargetAmount.Float64(), goal.CurrentAmount.Float64(),
			string(goal.Status), goal.SavingsPercentage.Float64(), goal.Deadline, goal.CreatedAt,
		)
		if err != nil {
			return mapGoalWriteError(err, "failed to insert goal %s", goal.ID)
		}
		return nil
	})
}

// Update сохраняет все изменяемые поля цели
func (r *GoalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	return r.withBudgetLock(ctx, goal, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE goals
			 SET account_id = $1, title = $2, target_amount = $3, current_amount = $4,
			     status = $5, savings_percentage = $6, deadline = $7
			 WHERE id = $8 AND user_id = $9`,
			goal.AccountID, goal.Title.String(), goal.TargetAmount.Float64(), goal.CurrentAmount.Float64(),
			string(goal.Status), goal.SavingsPercentage.Float64(), goal.Deadline, goal.ID, goal.UserID,
		)
		if err != nil {
			return mapGoalWriteError(err, "failed to update goal %s", goal.ID)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrGoalNotFound
		}
		return nil
	})
}

// withBudgetLock выполняет запись под блокировкой пользователя, предварительно
// проверяя, что процент активной цели вместе с остальными не превышает 1
func (r *GoalRepository) withBudgetLock(ctx context.Context, goal *domain.Goal, write func(tx pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return wrapError(err, "failed to begin transaction for user %s", goal.UserID)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	if _, err := tx.Exec(ctx, advisoryLockQuery, lockKey("goals", goal.UserID)); err != nil {
		return wrapError(err, "failed to acquire lock for user %s", goal.UserID)
	}

	if goal.IsActive() {
		var others float64
		err = tx.QueryRow(ctx, `
			SELECT COALESCE(SUM(savings_percentage), 0)
			FROM goals
			WHERE user_id = $1 AND status = 'ACTIVE' AND id <> $2`,
			goal.UserID, goal.ID).Scan(&others)
		if err != nil {
			return wrapError(err, "failed to sum goal percentages for user %s", goal.UserID)
		}

		if !domain.PercentageFitsBudget(goal.SavingsPercentage, []domain.Percentage{domain.RestorePercentage(others)}) {
			return domain.ErrGoalsPercentageOutOfBounds
		}
	}

	if err := write(tx); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return wrapError(err, "failed to commit goal %s", goal.ID)
	}

	return nil
}

func mapGoalWriteError(err error, format string, args ...any) error {
	switch pgErrorCode(err) {
	case uniqueViolation:
		return domain.ErrGoalTitleAlreadyTaken
	case checkViolation:
		return domain.ErrInvalidGoalAmount
	case fkViolation:
		return domain.ErrAccountNotFound
	}
	return wrapError(err, format, args...)
}

// GetByID получает цель пользователя
func (r *GoalRepository) GetByID(ctx context.Context, userID domain.UserID, goalID domain.GoalID) (*domain.Goal, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+goalColumns+`
		 FROM goals
		 WHERE id = $1 AND user_id = $2`,
		goalID, userID,
	)

	goal, err := scanGoal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGoalNotFound
		}
		return nil, wrapError(err, "failed to get goal %s", goalID)
	}

	return goal, nil
}

// GetByUserID получает все цели пользователя
func (r *GoalRepository) GetByUserID(ctx context.Context, userID domain.UserID) ([]*domain.Goal, error) {
	return r.queryGoals(ctx,
		`SELECT `+goalColumns+`
		 FROM goals
		 WHERE user_id = $1
		 ORDER BY created_at`,
		userID,
	)
}

// GetByAccountID получает цели пользователя, привязанные к счёту
func (r *GoalRepository) GetByAccountID(ctx context.Context, userID domain.UserID, accountID domain.AccountID) ([]*domain.Goal, error) {
	return r.queryGoals(ctx,
		`SELECT `+goalColumns+`
		 FROM goals
		 WHERE user_id = $1 AND account_id = $2
		 ORDER BY created_at`,
		userID, accountID,
	)
}

func (r *GoalRepository) queryGoals(ctx context.Context, query string, args ...any) ([]*domain.Goal, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapError(err, "failed to query goals")
	}
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan goal: %w", err)
		}
		goals = append(goals, goal)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapError(err, "error iterating goals")
	}

	return goals, nil
}

// IsTitleTaken проверяет, есть ли у пользователя цель с таким названием
func (r *GoalRepository) IsTitleTaken(ctx context.Context, userID domain.UserID, title domain.Title) (bool, error) {
	var taken bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM goals WHERE user_id = $1 AND title = $2)`,
		userID, title.String(),
	).Scan(&taken)
	if err != nil {
		return false, wrapError(err, "failed to check goal title for user %s", userID)
	}
	return taken, nil
}

// Delete удаляет цель пользователя
func (r *GoalRepository) Delete(ctx context.Context, userID domain.UserID, goalID domain.GoalID) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM goals WHERE id = $1 AND user_id = $2`,
		goalID, userID,
	)
	if err != nil {
		return wrapError(err, "failed to delete goal %s", goalID)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrGoalNotFound
	}

	return nil
}

func scanGoal(row scanner) (*domain.Goal, error) {
	var (
		goal       domain.Goal
		accountID  *domain.AccountID
		title      string
		target     float64
		current    float64
		status     string
		percentage float64
		deadline   *time.Time
	)

	err := row.Scan(&goal.ID, &goal.UserID, &accountID, &title, &target, &current, &status, &percentage, &deadline, &goal.CreatedAt)
	if err != nil {
		return nil, err
	}

	if goal.TargetAmount, err = domain.NewMoney(target); err != nil {
		return nil, fmt.Errorf("stored target amount of goal %s: %w", goal.ID, err)
	}
	if goal.CurrentAmount, err = domain.NewMoney(current); err != nil {
		return nil, fmt.Errorf("stored current amount of goal %s: %w", goal.ID, err)
	}

	goal.AccountID = accountID
	goal.Title = domain.RestoreTitle(title)
	goal.Status = domain.GoalStatus(status)
	goal.SavingsPercentage = domain.RestorePercentage(percentage)
	goal.Deadline = deadline

	return &goal, nil
}
