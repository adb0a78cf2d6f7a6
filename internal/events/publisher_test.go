package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fundstracker/funds-tracker/internal/domain"
	"github.com/fundstracker/funds-tracker/internal/jobs"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type resultTicket struct {
	err   error
	block bool
}

func (t resultTicket) Wait(ctx context.Context) error {
	if t.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return t.err
}

type recordingQueue struct {
	mu        sync.Mutex
	jobs      []jobs.Job
	ticket    resultTicket
	enqueueFn func(jobs.Job) error
}

func (q *recordingQueue) Enqueue(_ context.Context, job jobs.Job) (jobs.Ticket, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.enqueueFn != nil {
		if err := q.enqueueFn(job); err != nil {
			return nil, err
		}
	}
	q.jobs = append(q.jobs, job)
	return q.ticket, nil
}

func (q *recordingQueue) kinds() []jobs.Kind {
	q.mu.Lock()
	defer q.mu.Unlock()
	kinds := make([]jobs.Kind, 0, len(q.jobs))
	for _, j := range q.jobs {
		kinds = append(kinds, j.Kind)
	}
	return kinds
}

type recordingInvalidator struct {
	users []domain.UserID
}

func (r *recordingInvalidator) Invalidate(userID domain.UserID) {
	r.users = append(r.users, userID)
}

func TestPublisher_Routing(t *testing.T) {
	userID := uuid.New()
	accountID := uuid.New()
	ctx := context.Background()

	t.Run("Account created", func(t *testing.T) {
		queue := &recordingQueue{}
		invalidator := &recordingInvalidator{}
		p := NewPublisher(queue, invalidator, time.Second, zap.NewNop())

		err := p.Publish(ctx, domain.AccountCreatedEvent{UserID: userID, AccountID: accountID, NewBalance: 1000, Currency: domain.CurrencyRUB})
		require.NoError(t, err)
		p.Wait()

		assert.Equal(t, []jobs.Kind{jobs.KindSaveAccountHistory, jobs.KindResyncNetWorth}, queue.kinds())
		assert.Equal(t, []domain.UserID{userID}, invalidator.users)

		var payload jobs.SaveAccountHistoryPayload
		require.NoError(t, queue.jobs[0].Decode(&payload))
		assert.Equal(t, 1000.0, payload.Balance)
		assert.Equal(t, 0.0, payload.Delta)
	})

	t.Run("Balance updated", func(t *testing.T) {
		queue := &recordingQueue{}
		p := NewPublisher(queue, nil, time.Second, zap.NewNop())

		err := p.Publish(ctx, domain.BalanceUpdatedEvent{
			UserID: userID, AccountID: accountID, OldBalance: 1000, NewBalance: 1500, Delta: 500,
		})
		require.NoError(t, err)
		p.Wait()

		assert.Equal(t, []jobs.Kind{jobs.KindSaveAccountHistory, jobs.KindSyncLinkedGoals, jobs.KindResyncNetWorth}, queue.kinds())

		var payload jobs.SaveAccountHistoryPayload
		require.NoError(t, queue.jobs[0].Decode(&payload))
		assert.Equal(t, 1500.0, payload.Balance)
		assert.Equal(t, 500.0, payload.Delta)
	})

	t.Run("Goal linked", func(t *testing.T) {
		queue := &recordingQueue{}
		p := NewPublisher(queue, nil, time.Second, zap.NewNop())
		goalID := uuid.New()

		err := p.Publish(ctx, domain.GoalLinkedToAccountEvent{GoalID: goalID, UserID: userID, AccountID: accountID, PreviousAccountID: uuid.New()})
		require.NoError(t, err)
		p.Wait()

		require.Equal(t, []jobs.Kind{jobs.KindSyncGoalAmount}, queue.kinds())
		var payload jobs.SyncGoalAmountPayload
		require.NoError(t, queue.jobs[0].Decode(&payload))
		assert.Equal(t, goalID, payload.GoalID)
		assert.Equal(t, accountID, payload.AccountID)
	})

	t.Run("Goal reached only logs", func(t *testing.T) {
		queue := &recordingQueue{}
		p := NewPublisher(queue, nil, time.Second, zap.NewNop())

		err := p.Publish(ctx, domain.GoalAlreadyReachedEvent{GoalID: uuid.New(), UserID: userID})
		require.NoError(t, err)
		assert.Empty(t, queue.kinds())
	})
}

func TestPublisher_WithoutNetWorthResync(t *testing.T) {
	queue := &recordingQueue{}
	invalidator := &recordingInvalidator{}
	userID := uuid.New()
	p := NewPublisher(queue, invalidator, time.Second, zap.NewNop()).WithoutNetWorthResync()

	err := p.Publish(context.Background(), domain.BalanceUpdatedEvent{UserID: userID, AccountID: uuid.New(), NewBalance: 1})
	require.NoError(t, err)
	p.Wait()

	assert.Equal(t, []jobs.Kind{jobs.KindSaveAccountHistory, jobs.KindSyncLinkedGoals}, queue.kinds())
	assert.Equal(t, []uuid.UUID{userID}, invalidator.users)
}

func TestPublisher_EnqueueError(t *testing.T) {
	enqueueErr := errors.New("broker down")
	queue := &recordingQueue{enqueueFn: func(j jobs.Job) error {
		if j.Kind == jobs.KindSyncLinkedGoals {
			return enqueueErr
		}
		return nil
	}}
	p := NewPublisher(queue, nil, time.Second, zap.NewNop())

	err := p.Publish(context.Background(), domain.BalanceUpdatedEvent{UserID: uuid.New(), AccountID: uuid.New(), NewBalance: 1})
	assert.ErrorIs(t, err, enqueueErr)
	p.Wait()

	assert.Equal(t, []jobs.Kind{jobs.KindSaveAccountHistory, jobs.KindResyncNetWorth}, queue.kinds())
}

func TestPublisher_TracksOutcome(t *testing.T) {
	cases := []struct {
		name    string
		ticket  resultTicket
		message string
	}{
		{"Success", resultTicket{}, "background job succeeded"},
		{"Failure", resultTicket{err: errors.New("boom")}, "background job failed"},
		{"Timeout", resultTicket{block: true}, "background job result timeout"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			core, logs := observer.New(zap.DebugLevel)
			queue := &recordingQueue{ticket: tc.ticket}
			p := NewPublisher(queue, nil, 10*time.Millisecond, zap.New(core))

			err := p.Publish(context.Background(), domain.GoalLinkedToAccountEvent{GoalID: uuid.New(), UserID: uuid.New(), AccountID: uuid.New()})
			require.NoError(t, err)
			p.Wait()

			assert.Equal(t, 1, logs.FilterMessage(tc.message).Len())
		})
	}
}
