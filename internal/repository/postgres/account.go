package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/fundstracker/funds-tracker/internal/domain"
	"github.com/jackc/pgx/v5"
)

const accountColumns = `id, user_id, name, type, currency, balance, created_at, updated_at`

// AccountRepository реализует domain.AccountRepository
type AccountRepository struct {
	db DBTX
}

// NewAccountRepository создает новый AccountRepository
func NewAccountRepository(db DBTX) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create сохраняет счёт. Лимит счетов проверяется под advisory lock пользователя,
// уникальность названия обеспечивает ограничение accounts_user_name_key
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account, limit int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return wrapError(err, "failed to begin transaction for user %s", account.UserID)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	// Параллельные создания счетов одного пользователя выполняются последовательно
	if _, err := tx.Exec(ctx, advisoryLockQuery, lockKey("accounts", account.UserID)); err != nil {
		return wrapError(err, "failed to acquire lock for user %s", account.UserID)
	}

	var count int
	err = tx.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM accounts
		WHERE user_id = $1`, account.UserID).Scan(&count)
	if err != nil {
		return wrapError(err, "failed to count accounts for user %s", account.UserID)
	}

	if count >= limit {
		return domain.ErrTooManyAccounts
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO accounts (id, user_id, name, type, currency, balance, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		account.ID, account.UserID, account.Name.String(), string(account.Type), string(account.Currency),
		account.Balance.Float64(), account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case uniqueViolation:
			return domain.ErrAccountAlreadyCreated
		case checkViolation:
			return domain.ErrInvalidBalance
		case fkViolation:
			return domain.ErrUserNotFound
		}
		return wrapError(err, "failed to insert account %s", account.ID)
	}

	if err = tx.Commit(ctx); err != nil {
		return wrapError(err, "failed to commit account %s", account.ID)
	}

	return nil
}

// GetByID получает счёт пользователя. Счёт другого пользователя не находится
func (r *AccountRepository) GetByID(ctx context.Context, userID domain.UserID, accountID domain.AccountID) (*domain.Account, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+accountColumns+`
		 FROM accounts
		 WHERE id = $1 AND user_id = $2`,
		accountID, userID,
	)

	account, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, wrapError(err, "failed to get account %s", accountID)
	}

	return account, nil
}

// GetByUserID получает все счета пользователя
func (r *AccountRepository) GetByUserID(ctx context.Context, userID domain.UserID) ([]*domain.Account, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+accountColumns+`
		 FROM accounts
		 WHERE user_id = $1
		 ORDER BY created_at`,
		userID,
	)
	if err != nil {
		return nil, wrapError(err, "failed to get accounts for user %s", userID)
	}
	defer rows.Close()

	var accounts []*domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapError(err, "error iterating accounts")
	}

	return accounts, nil
}

// CountByUserID возвращает количество счетов пользователя
func (r *AccountRepository) CountByUserID(ctx context.Context, userID domain.UserID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM accounts WHERE user_id = $1`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, wrapError(err, "failed to count accounts for user %s", userID)
	}
	return count, nil
}

// IsNameTaken проверяет, есть ли у пользователя счёт с таким названием
func (r *AccountRepository) IsNameTaken(ctx context.Context, userID domain.UserID, name domain.Title) (bool, error) {
	var taken bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM accounts WHERE user_id = $1 AND name = $2)`,
		userID, name.String(),
	).Scan(&taken)
	if err != nil {
		return false, wrapError(err, "failed to check account name for user %s", userID)
	}
	return taken, nil
}

// Update сохраняет название и баланс счёта
func (r *AccountRepository) Update(ctx context.Context, account *domain.Account) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE accounts
		 SET name = $1, balance = $2, updated_at = $3
		 WHERE id = $4 AND user_id = $5`,
		account.Name.String(), account.Balance.Float64(), account.UpdatedAt, account.ID, account.UserID,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case uniqueViolation:
			return domain.ErrAccountAlreadyCreated
		case checkViolation:
			return domain.ErrInvalidBalance
		}
		return wrapError(err, "failed to update account %s", account.ID)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

// Delete удаляет счёт пользователя вместе с его историей
func (r *AccountRepository) Delete(ctx context.Context, userID domain.UserID, accountID domain.AccountID) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM accounts WHERE id = $1 AND user_id = $2`,
		accountID, userID,
	)
	if err != nil {
		return wrapError(err, "failed to delete account %s", accountID)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

func scanAccount(row scanner) (*domain.Account, error) {
	var (
		account  domain.Account
		name     string
		accType  string
		currency string
		balance  float64
	)

	err := row.Scan(&account.ID, &account.UserID, &name, &accType, &currency, &balance, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		return nil, err
	}

	money, err := domain.NewMoney(balance)
	if err != nil {
		return nil, fmt.Errorf("stored balance %v of account %s: %w", balance, account.ID, err)
	}

	account.Name = domain.RestoreTitle(name)
	account.Type = domain.AccountType(accType)
	account.Currency = domain.Currency(currency)
	account.Balance = money

	return &account, nil
}
