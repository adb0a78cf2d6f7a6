// Package events направляет доменные события в фоновые задачи.
package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fundstracker/funds-tracker/internal/domain"
	"github.com/fundstracker/funds-tracker/internal/jobs"
	"go.uber.org/zap"
)

// NetWorthInvalidator сбрасывает закэшированный капитал пользователя
type NetWorthInvalidator interface {
	Invalidate(userID domain.UserID)
}

// Publisher ставит задачи по событиям и логирует их результат
type Publisher struct {
	queue        jobs.Queue
	netWorth     NetWorthInvalidator
	trackTimeout time.Duration
	skipResync   bool
	logger       *zap.Logger
	now          func() time.Time
	wg           sync.WaitGroup
}

// NewPublisher создает Publisher. netWorth может быть nil
func NewPublisher(queue jobs.Queue, netWorth NetWorthInvalidator, trackTimeout time.Duration, logger *zap.Logger) *Publisher {
	return &Publisher{
		queue:        queue,
		netWorth:     netWorth,
		trackTimeout: trackTimeout,
		logger:       logger,
		now:          time.Now,
	}
}

// WithoutNetWorthResync отключает задачи пересчета капитала. Используется, когда задачи
// выполняются в другом процессе и не могут заполнить кэш капитала этого процесса
func (p *Publisher) WithoutNetWorthResync() *Publisher {
	p.skipResync = true
	return p
}

// Publish ставит задачи для всех событий. Результат задач не ожидается
func (p *Publisher) Publish(ctx context.Context, events ...domain.Event) error {
	var errs []error
	for _, event := range events {
		planned, err := p.route(event)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for _, job := range planned {
			if p.skipResync && job.Kind == jobs.KindResyncNetWorth {
				continue
			}
			ticket, err := p.queue.Enqueue(ctx, job)
			if err != nil {
				errs = append(errs, fmt.Errorf("events: failed to enqueue %s: %w", job.Kind, err))
				continue
			}
			p.track(job, ticket)
		}
	}
	return errors.Join(errs...)
}

// route сопоставляет событию список задач
func (p *Publisher) route(event domain.Event) ([]jobs.Job, error) {
	at := event.OccurredAt()
	if at.IsZero() {
		at = p.now()
	}

	switch e := event.(type) {
	case domain.AccountCreatedEvent:
		p.invalidate(e.UserID)
		return build(at,
			plan{jobs.KindSaveAccountHistory, jobs.SaveAccountHistoryPayload{
				AccountID: e.AccountID,
				UserID:    e.UserID,
				Balance:   e.NewBalance,
				Delta:     0,
			}},
			plan{jobs.KindResyncNetWorth, jobs.ResyncNetWorthPayload{UserID: e.UserID}},
		)
	case domain.BalanceUpdatedEvent:
		p.invalidate(e.UserID)
		return build(at,
			plan{jobs.KindSaveAccountHistory, jobs.SaveAccountHistoryPayload{
				AccountID:        e.AccountID,
				UserID:           e.UserID,
				Balance:          e.NewBalance,
				Delta:            e.Delta,
				IsMonthlyClosing: e.IsMonthlyClosing,
			}},
			plan{jobs.KindSyncLinkedGoals, jobs.SyncLinkedGoalsPayload{
				UserID:    e.UserID,
				AccountID: e.AccountID,
			}},
			plan{jobs.KindResyncNetWorth, jobs.ResyncNetWorthPayload{UserID: e.UserID}},
		)
	case domain.GoalLinkedToAccountEvent:
		return build(at,
			plan{jobs.KindSyncGoalAmount, jobs.SyncGoalAmountPayload{
				UserID:    e.UserID,
				GoalID:    e.GoalID,
				AccountID: e.AccountID,
			}},
		)
	case domain.GoalAlreadyReachedEvent:
		p.logger.Info("goal target reached",
			zap.String("goal_id", e.GoalID.String()),
			zap.String("user_id", e.UserID.String()),
		)
		return nil, nil
	}
	return nil, fmt.Errorf("events: unsupported event %T", event)
}

type plan struct {
	kind    jobs.Kind
	payload any
}

func build(at time.Time, plans ...plan) ([]jobs.Job, error) {
	result := make([]jobs.Job, 0, len(plans))
	for _, pl := range plans {
		job, err := jobs.New(pl.kind, pl.payload, at)
		if err != nil {
			return nil, err
		}
		result = append(result, job)
	}
	return result, nil
}

func (p *Publisher) invalidate(userID domain.UserID) {
	if p.netWorth != nil {
		p.netWorth.Invalidate(userID)
	}
}

// track в отдельной горутине ожидает результат задачи не дольше trackTimeout
func (p *Publisher) track(job jobs.Job, ticket jobs.Ticket) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), p.trackTimeout)
		defer cancel()

		logger := p.logger.With(
			zap.String("job_id", job.ID.String()),
			zap.String("job_kind", string(job.Kind)),
		)

		err := ticket.Wait(ctx)
		switch {
		case err == nil:
			logger.Info("background job succeeded")
		case errors.Is(err, context.DeadlineExceeded):
			logger.Warn("background job result timeout", zap.Duration("timeout", p.trackTimeout))
		default:
			logger.Error("background job failed", zap.Error(err))
		}
	}()
}

// Wait ожидает завершения отслеживания всех поставленных задач
func (p *Publisher) Wait() {
	p.wg.Wait()
}
