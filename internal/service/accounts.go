package service

import (
	"context"
	"time"

	"github.com/fundstracker/funds-tracker/internal/domain"
	"go.uber.org/zap"
)

// NetWorthInvalidator сбрасывает закэшированный капитал пользователя
type NetWorthInvalidator interface {
	Invalidate(userID domain.UserID)
}

// AccountService реализует domain.AccountService
type AccountService struct {
	accounts    domain.AccountRepository
	users       domain.UserRepository
	publisher   domain.EventPublisher
	netWorth    NetWorthInvalidator
	maxAccounts int
	logger      *zap.Logger
	now         func() time.Time
}

// NewAccountService создает новый AccountService
func NewAccountService(
	accounts domain.AccountRepository,
	users domain.UserRepository,
	publisher domain.EventPublisher,
	maxAccounts int,
	logger *zap.Logger,
) *AccountService {
	return &AccountService{
		accounts:    accounts,
		users:       users,
		publisher:   publisher,
		maxAccounts: maxAccounts,
		logger:      logger,
		now:         time.Now,
	}
}

// WithNetWorthCache подключает сброс кэша капитала при удалении счёта
func (s *AccountService) WithNetWorthCache(netWorth NetWorthInvalidator) *AccountService {
	s.netWorth = netWorth
	return s
}

// CreateAccount создает счёт. Уникальность названия и лимит счетов
// проверяются до создания сущности
func (s *AccountService) CreateAccount(ctx context.Context, cmd domain.CreateAccountCommand) (*domain.Account, error) {
	if _, err := s.users.GetByID(ctx, cmd.UserID); err != nil {
		return nil, wrapError(err, "account service: failed to get user %s", cmd.UserID)
	}

	name, err := domain.NewTitle(cmd.Name)
	if err != nil {
		return nil, err
	}

	taken, err := s.accounts.IsNameTaken(ctx, cmd.UserID, name)
	if err != nil {
		return nil, wrapError(err, "account service: failed to check account name")
	}
	if taken {
		return nil, domain.ErrAccountAlreadyCreated
	}

	count, err := s.accounts.CountByUserID(ctx, cmd.UserID)
	if err != nil {
		return nil, wrapError(err, "account service: failed to count accounts for user %s", cmd.UserID)
	}
	if count >= s.maxAccounts {
		return nil, domain.ErrTooManyAccounts
	}

	account, events, err := domain.NewAccount(cmd.UserID, cmd.Name, cmd.Balance, cmd.Type, cmd.Currency, s.now())
	if err != nil {
		return nil, err
	}

	// Хранилище повторяет обе проверки атомарно
	if err := s.accounts.Create(ctx, &account, s.maxAccounts); err != nil {
		return nil, wrapError(err, "account service: failed to create account")
	}

	publish(ctx, s.publisher, s.logger, events)

	return &account, nil
}

// GetAccount получает счёт пользователя
func (s *AccountService) GetAccount(ctx context.Context, userID domain.UserID, accountID domain.AccountID) (*domain.Account, error) {
	account, err := s.accounts.GetByID(ctx, userID, accountID)
	if err != nil {
		return nil, wrapError(err, "account service: failed to get account %s", accountID)
	}
	return account, nil
}

// GetUserAccounts получает все счета пользователя
func (s *AccountService) GetUserAccounts(ctx context.Context, userID domain.UserID) ([]*domain.Account, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, wrapError(err, "account service: failed to get user %s", userID)
	}

	accounts, err := s.accounts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, wrapError(err, "account service: failed to get accounts for user %s", userID)
	}
	return accounts, nil
}

// UpdateBalance устанавливает баланс счёта. Совпадающий баланс не меняет
// счёт и не порождает событий, вызов при этом считается успешным
func (s *AccountService) UpdateBalance(ctx context.Context, cmd domain.UpdateBalanceCommand) (*domain.Account, error) {
	account, err := s.accounts.GetByID(ctx, cmd.UserID, cmd.AccountID)
	if err != nil {
		return nil, wrapError(err, "account service: failed to get account %s", cmd.AccountID)
	}

	updated, events, err := account.UpdateBalance(cmd.Balance, cmd.IsMonthlyClosing, s.now())
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return account, nil
	}
	if len(events) > 1 {
		s.logger.Error("balance update produced several events",
			zap.String("account_id", account.ID.String()),
			zap.Int("count", len(events)),
			zap.Error(domain.ErrExcessBalanceEvents),
		)
	}

	if err := s.accounts.Update(ctx, &updated); err != nil {
		return nil, wrapError(err, "account service: failed to update balance of account %s", account.ID)
	}

	publish(ctx, s.publisher, s.logger, events)

	return &updated, nil
}

// RenameAccount меняет название счёта
func (s *AccountService) RenameAccount(ctx context.Context, userID domain.UserID, accountID domain.AccountID, name string) (*domain.Account, error) {
	account, err := s.accounts.GetByID(ctx, userID, accountID)
	if err != nil {
		return nil, wrapError(err, "account service: failed to get account %s", accountID)
	}

	renamed, err := account.Rename(name, s.now())
	if err != nil {
		return nil, err
	}
	if renamed.Name == account.Name {
		return account, nil
	}

	taken, err := s.accounts.IsNameTaken(ctx, userID, renamed.Name)
	if err != nil {
		return nil, wrapError(err, "account service: failed to check account name")
	}
	if taken {
		return nil, domain.ErrAccountAlreadyCreated
	}

	if err := s.accounts.Update(ctx, &renamed); err != nil {
		return nil, wrapError(err, "account service: failed to rename account %s", accountID)
	}

	return &renamed, nil
}

// DeleteAccount удаляет счёт пользователя
func (s *AccountService) DeleteAccount(ctx context.Context, userID domain.UserID, accountID domain.AccountID) error {
	if _, err := s.accounts.GetByID(ctx, userID, accountID); err != nil {
		return wrapError(err, "account service: failed to get account %s", accountID)
	}

	if err := s.accounts.Delete(ctx, userID, accountID); err != nil {
		return wrapError(err, "account service: failed to delete account %s", accountID)
	}

	if s.netWorth != nil {
		s.netWorth.Invalidate(userID)
	}

	return nil
}
