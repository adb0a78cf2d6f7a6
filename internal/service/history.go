package service

import (
	"context"
	"errors"
	"time"

	"github.com/fundstracker/funds-tracker/internal/domain"
	"go.uber.org/zap"
)

// HistoryService реализует domain.HistoryService
type HistoryService struct {
	history     domain.HistoryRepository
	accounts    domain.AccountRepository
	dedupWindow time.Duration
	logger      *zap.Logger
	now         func() time.Time
}

// NewHistoryService создает новый HistoryService. Снимки одного счёта,
// попадающие в dedupWindow, объединяются в один
func NewHistoryService(history domain.HistoryRepository, accounts domain.AccountRepository, dedupWindow time.Duration, logger *zap.Logger) *HistoryService {
	return &HistoryService{
		history:     history,
		accounts:    accounts,
		dedupWindow: dedupWindow,
		logger:      logger,
		now:         time.Now,
	}
}

// SaveAccountHistory сохраняет снимок баланса. Повтор в пределах окна
// заменяет последний снимок, поэтому повторная доставка задачи не создает дублей
func (s *HistoryService) SaveAccountHistory(ctx context.Context, cmd domain.SaveHistoryCommand) (domain.HistoryID, error) {
	now := s.now()

	latest, err := s.history.GetLatestSince(ctx, cmd.AccountID, now.Add(-s.dedupWindow))
	switch {
	case err == nil:
		coalesced, err := latest.Coalesce(cmd.Balance, cmd.Delta, cmd.IsMonthlyClosing, now)
		if err != nil {
			return domain.HistoryID{}, err
		}
		if err := s.history.Update(ctx, &coalesced); err != nil {
			return domain.HistoryID{}, wrapError(err, "history service: failed to update history %s", coalesced.ID)
		}
		s.logger.Debug("history snapshot coalesced",
			zap.String("account_id", cmd.AccountID.String()),
			zap.String("history_id", coalesced.ID.String()),
		)
		return coalesced.ID, nil
	case !errors.Is(err, domain.ErrHistoryNotFound):
		return domain.HistoryID{}, wrapError(err, "history service: failed to get latest history of account %s", cmd.AccountID)
	}

	history, err := domain.NewHistory(cmd.AccountID, cmd.UserID, cmd.Balance, cmd.Delta, cmd.IsMonthlyClosing, now)
	if err != nil {
		return domain.HistoryID{}, err
	}
	if err := s.history.Save(ctx, &history); err != nil {
		return domain.HistoryID{}, wrapError(err, "history service: failed to save history of account %s", cmd.AccountID)
	}

	return history.ID, nil
}

// GetAccountHistory возвращает по одному последнему снимку на период интервала
func (s *HistoryService) GetAccountHistory(ctx context.Context, userID domain.UserID, accountID domain.AccountID, interval domain.HistoryInterval) (*domain.AccountHistory, error) {
	window, snapshots, err := s.bucketed(ctx, userID, accountID, interval)
	if err != nil {
		return nil, err
	}
	return &domain.AccountHistory{Metadata: window, Snapshots: snapshots}, nil
}

// GetHistoryProfit считает прибыль между самым ранним и самым поздним снимком интервала
func (s *HistoryService) GetHistoryProfit(ctx context.Context, userID domain.UserID, accountID domain.AccountID, interval domain.HistoryInterval) (*domain.Profit, error) {
	_, snapshots, err := s.bucketed(ctx, userID, accountID, interval)
	if err != nil {
		return nil, err
	}
	if len(snapshots) == 0 {
		return nil, domain.ErrHistoryNotExists
	}

	// Снимки отсортированы от новых к старым
	profit := domain.CalculateProfit(*snapshots[len(snapshots)-1], *snapshots[0])
	return &profit, nil
}

func (s *HistoryService) bucketed(ctx context.Context, userID domain.UserID, accountID domain.AccountID, interval domain.HistoryInterval) (domain.IntervalWindow, []*domain.History, error) {
	window, err := interval.Window(s.now())
	if err != nil {
		return domain.IntervalWindow{}, nil, err
	}

	if _, err := s.accounts.GetByID(ctx, userID, accountID); err != nil {
		return domain.IntervalWindow{}, nil, wrapError(err, "history service: failed to get account %s", accountID)
	}

	snapshots, err := s.history.GetBucketed(ctx, accountID, window.Period, window.StartDate)
	if err != nil {
		return domain.IntervalWindow{}, nil, wrapError(err, "history service: failed to get history of account %s", accountID)
	}
	return window, snapshots, nil
}
