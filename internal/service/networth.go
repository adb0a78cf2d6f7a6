package service

import (
	"context"
	"time"

	"github.com/fundstracker/funds-tracker/internal/domain"
	"go.uber.org/zap"
)

// NetWorthCache кэш капитала пользователей
type NetWorthCache interface {
	Get(userID domain.UserID) (domain.NetWorth, bool)
	Set(userID domain.UserID, netWorth domain.NetWorth)
	Delete(userID domain.UserID)
}

// NetWorthService реализует domain.NetWorthService
type NetWorthService struct {
	accounts domain.AccountRepository
	history  domain.HistoryRepository
	users    domain.UserRepository
	cache    NetWorthCache
	logger   *zap.Logger
	now      func() time.Time
}

// NewNetWorthService создает новый NetWorthService. cache может быть nil
func NewNetWorthService(
	accounts domain.AccountRepository,
	history domain.HistoryRepository,
	users domain.UserRepository,
	cache NetWorthCache,
	logger *zap.Logger,
) *NetWorthService {
	return &NetWorthService{
		accounts: accounts,
		history:  history,
		users:    users,
		cache:    cache,
		logger:   logger,
		now:      time.Now,
	}
}

// CalculateTotalBalance суммирует балансы счетов пользователя по валютам
func (s *NetWorthService) CalculateTotalBalance(ctx context.Context, userID domain.UserID) (*domain.NetWorth, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(userID); ok {
			return &cached, nil
		}
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, wrapError(err, "net worth service: failed to get user %s", userID)
	}

	return s.compute(ctx, userID)
}

// GetIncomesAndExpenses суммирует изменения балансов пользователя с начала интервала
func (s *NetWorthService) GetIncomesAndExpenses(ctx context.Context, userID domain.UserID, interval domain.HistoryInterval) (*domain.CashFlow, error) {
	window, err := interval.Window(s.now())
	if err != nil {
		return nil, err
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, wrapError(err, "net worth service: failed to get user %s", userID)
	}

	incomes, expenses, err := s.history.SumDeltas(ctx, userID, window.StartDate)
	if err != nil {
		return nil, wrapError(err, "net worth service: failed to sum deltas for user %s", userID)
	}

	return &domain.CashFlow{Incomes: incomes, Expenses: expenses}, nil
}

// Invalidate сбрасывает закэшированный капитал пользователя
func (s *NetWorthService) Invalidate(userID domain.UserID) {
	if s.cache != nil {
		s.cache.Delete(userID)
	}
}

// Resync пересчитывает капитал пользователя и обновляет кэш
func (s *NetWorthService) Resync(ctx context.Context, userID domain.UserID) error {
	netWorth, err := s.compute(ctx, userID)
	if err != nil {
		return err
	}
	s.logger.Debug("net worth resynced",
		zap.String("user_id", userID.String()),
		zap.Int("currencies", len(netWorth.Totals)),
	)
	return nil
}

func (s *NetWorthService) compute(ctx context.Context, userID domain.UserID) (*domain.NetWorth, error) {
	accounts, err := s.accounts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, wrapError(err, "net worth service: failed to get accounts for user %s", userID)
	}

	netWorth := domain.NewNetWorth(userID, accounts)
	if s.cache != nil {
		s.cache.Set(userID, netWorth)
	}
	return &netWorth, nil
}
