package jobs

import (
	"context"
	"errors"

	"github.com/fundstracker/funds-tracker/internal/domain"
	"go.uber.org/zap"
)

// HandlerFunc выполняет задачу одного типа
type HandlerFunc func(ctx context.Context, job Job) error

// HistorySaver сохраняет снимки баланса
type HistorySaver interface {
	SaveAccountHistory(ctx context.Context, cmd domain.SaveHistoryCommand) (domain.HistoryID, error)
}

// GoalSyncer синхронизирует текущие суммы целей с балансами счетов
type GoalSyncer interface {
	SyncLinkedGoals(ctx context.Context, userID domain.UserID, accountID domain.AccountID) error
	SyncGoalAmount(ctx context.Context, userID domain.UserID, goalID domain.GoalID, accountID domain.AccountID) error
}

// NetWorthResyncer пересчитывает капитал пользователя
type NetWorthResyncer interface {
	Resync(ctx context.Context, userID domain.UserID) error
}

// Handlers связывает типы задач с сервисами
type Handlers struct {
	history  HistorySaver
	goals    GoalSyncer
	netWorth NetWorthResyncer
	logger   *zap.Logger
}

// NewHandlers создает набор обработчиков задач
func NewHandlers(history HistorySaver, goals GoalSyncer, netWorth NetWorthResyncer, logger *zap.Logger) *Handlers {
	return &Handlers{
		history:  history,
		goals:    goals,
		netWorth: netWorth,
		logger:   logger,
	}
}

// Routes возвращает таблицу обработчиков по типам задач
func (h *Handlers) Routes() map[Kind]HandlerFunc {
	return map[Kind]HandlerFunc{
		KindSaveAccountHistory: h.saveAccountHistory,
		KindSyncLinkedGoals:    h.syncLinkedGoals,
		KindSyncGoalAmount:     h.syncGoalAmount,
		KindResyncNetWorth:     h.resyncNetWorth,
	}
}

func (h *Handlers) saveAccountHistory(ctx context.Context, job Job) error {
	var p SaveAccountHistoryPayload
	if err := job.Decode(&p); err != nil {
		return Permanent(err)
	}
	id, err := h.history.SaveAccountHistory(ctx, domain.SaveHistoryCommand{
		AccountID:        p.AccountID,
		UserID:           p.UserID,
		Balance:          p.Balance,
		Delta:            p.Delta,
		IsMonthlyClosing: p.IsMonthlyClosing,
	})
	if err != nil {
		return err
	}
	h.logger.Debug("account history saved",
		zap.String("account_id", p.AccountID.String()),
		zap.String("history_id", id.String()),
	)
	return nil
}

func (h *Handlers) syncLinkedGoals(ctx context.Context, job Job) error {
	var p SyncLinkedGoalsPayload
	if err := job.Decode(&p); err != nil {
		return Permanent(err)
	}
	return h.goals.SyncLinkedGoals(ctx, p.UserID, p.AccountID)
}

func (h *Handlers) syncGoalAmount(ctx context.Context, job Job) error {
	var p SyncGoalAmountPayload
	if err := job.Decode(&p); err != nil {
		return Permanent(err)
	}
	return h.goals.SyncGoalAmount(ctx, p.UserID, p.GoalID, p.AccountID)
}

func (h *Handlers) resyncNetWorth(ctx context.Context, job Job) error {
	var p ResyncNetWorthPayload
	if err := job.Decode(&p); err != nil {
		return Permanent(err)
	}
	return h.netWorth.Resync(ctx, p.UserID)
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent помечает ошибку как не требующую повторных попыток
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// IsPermanent возвращает true, если повтор задачи не изменит результат:
// ошибка помечена Permanent, либо это доменная ошибка валидации или отсутствия данных
func IsPermanent(err error) bool {
	var pe *permanentError
	if errors.As(err, &pe) {
		return true
	}
	switch domain.CategoryOf(err) {
	case domain.CategoryNotFound, domain.CategoryInvalidInput, domain.CategoryConflict:
		return true
	}
	return false
}
