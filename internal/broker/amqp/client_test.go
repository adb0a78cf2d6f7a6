package amqp

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fundstracker/funds-tracker/internal/jobs"
	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAcknowledger struct {
	acked   int
	nacked  int
	requeue bool
}

func (a *fakeAcknowledger) Ack(uint64, bool) error {
	a.acked++
	return nil
}

func (a *fakeAcknowledger) Nack(_ uint64, _ bool, requeue bool) error {
	a.nacked++
	a.requeue = requeue
	return nil
}

func (a *fakeAcknowledger) Reject(uint64, bool) error {
	return nil
}

func delivery(t *testing.T, ack amqp091.Acknowledger, body []byte) amqp091.Delivery {
	t.Helper()
	return amqp091.Delivery{Acknowledger: ack, Body: body, DeliveryTag: 1}
}

func TestHandleDelivery(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	job, err := jobs.New(jobs.KindResyncNetWorth, jobs.ResyncNetWorthPayload{UserID: uuid.New()}, time.Now())
	require.NoError(t, err)
	body, err := jobs.Marshal(job)
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		ack := &fakeAcknowledger{}
		var got jobs.Job

		handleDelivery(ctx, delivery(t, ack, body), func(_ context.Context, j jobs.Job) error {
			got = j
			return nil
		}, logger)

		assert.Equal(t, job.ID, got.ID)
		assert.Equal(t, 1, ack.acked)
		assert.Equal(t, 0, ack.nacked)
	})

	t.Run("Processing failure is acked", func(t *testing.T) {
		ack := &fakeAcknowledger{}

		handleDelivery(ctx, delivery(t, ack, body), func(context.Context, jobs.Job) error {
			return errors.New("failed after retries")
		}, logger)

		assert.Equal(t, 1, ack.acked)
		assert.Equal(t, 0, ack.nacked)
	})

	t.Run("Interrupted job requeued", func(t *testing.T) {
		ack := &fakeAcknowledger{}
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		handleDelivery(cancelled, delivery(t, ack, body), func(ctx context.Context, _ jobs.Job) error {
			return ctx.Err()
		}, logger)

		assert.Equal(t, 0, ack.acked)
		assert.Equal(t, 1, ack.nacked)
		assert.True(t, ack.requeue)
	})

	t.Run("Cancelled processing requeued", func(t *testing.T) {
		ack := &fakeAcknowledger{}

		handleDelivery(ctx, delivery(t, ack, body), func(context.Context, jobs.Job) error {
			return fmt.Errorf("save history: %w", context.Canceled)
		}, logger)

		assert.Equal(t, 0, ack.acked)
		assert.Equal(t, 1, ack.nacked)
		assert.True(t, ack.requeue)
	})

	t.Run("Poison message rejected without requeue", func(t *testing.T) {
		ack := &fakeAcknowledger{}
		called := false

		handleDelivery(ctx, delivery(t, ack, []byte("not json")), func(context.Context, jobs.Job) error {
			called = true
			return nil
		}, logger)

		assert.False(t, called)
		assert.Equal(t, 0, ack.acked)
		assert.Equal(t, 1, ack.nacked)
		assert.False(t, ack.requeue)
	})
}

func TestConfirmTicket_WithoutConfirmation(t *testing.T) {
	ticket := &confirmTicket{}
	assert.NoError(t, ticket.Wait(context.Background()))
}
