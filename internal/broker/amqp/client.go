// Package amqp передает фоновые задачи через RabbitMQ.
package amqp

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fundstracker/funds-tracker/internal/jobs"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	publishTimeout = 5 * time.Second
	prefetchCount  = 10
)

// ErrNotConfirmed возвращается, если брокер отклонил публикацию
var ErrNotConfirmed = errors.New("broker did not confirm publishing")

// Processor выполняет задачу, полученную из очереди
type Processor func(ctx context.Context, job jobs.Job) error

// Client публикует и потребляет задачи
type Client struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
	queueName    string
	logger       *zap.Logger

	// amqp091.Channel не допускает параллельную публикацию
	mu sync.Mutex
}

// NewClient подключается к брокеру и объявляет exchange и очередь
func NewClient(url, exchangeName, queueName string, logger *zap.Logger) (*Client, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp: dial: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("amqp: open channel: %w", err)
	}

	client := &Client{
		conn:         conn,
		channel:      channel,
		exchangeName: exchangeName,
		queueName:    queueName,
		logger:       logger,
	}

	if err := client.setup(); err != nil {
		client.Close()
		return nil, fmt.Errorf("amqp: setup exchange and queue: %w", err)
	}

	return client, nil
}

func (c *Client) setup() error {
	err := c.channel.ExchangeDeclare(
		c.exchangeName, // name
		"direct",       // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = c.channel.QueueDeclare(
		c.queueName, // name
		true,        // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	err = c.channel.QueueBind(
		c.queueName,    // queue name
		c.queueName,    // routing key
		c.exchangeName, // exchange
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	// Подтверждения публикации нужны для Ticket
	if err := c.channel.Confirm(false); err != nil {
		return fmt.Errorf("enable publisher confirms: %w", err)
	}

	return nil
}

// Enqueue публикует задачу. Ticket завершается, когда брокер подтвердит сообщение
func (c *Client) Enqueue(ctx context.Context, job jobs.Job) (jobs.Ticket, error) {
	body, err := jobs.Marshal(job)
	if err != nil {
		return nil, fmt.Errorf("amqp: marshal job: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	c.mu.Lock()
	confirm, err := c.channel.PublishWithDeferredConfirmWithContext(
		ctx,
		c.exchangeName, // exchange
		c.queueName,    // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    job.ID.String(),
			Type:         string(job.Kind),
			Timestamp:    job.CreatedAt,
			Body:         body,
		},
	)
	c.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("amqp: publish job %s: %w", job.Kind, err)
	}

	c.logger.Debug("job published",
		zap.String("job_id", job.ID.String()),
		zap.String("job_kind", string(job.Kind)),
		zap.String("exchange", c.exchangeName),
		zap.String("queue", c.queueName),
	)

	return &confirmTicket{confirm: confirm}, nil
}

// Consume читает задачи из очереди до отмены контекста
func (c *Client) Consume(ctx context.Context, process Processor) error {
	if err := c.channel.Qos(prefetchCount, 0, false); err != nil {
		return fmt.Errorf("amqp: set qos: %w", err)
	}

	msgs, err := c.channel.Consume(
		c.queueName, // queue
		"",          // consumer
		false,       // auto-ack
		false,       // exclusive
		false,       // no-local
		false,       // no-wait
		nil,         // args
	)
	if err != nil {
		return fmt.Errorf("amqp: start consuming: %w", err)
	}

	c.logger.Info("started consuming jobs", zap.String("queue", c.queueName))

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("stopping job consumption", zap.Error(ctx.Err()))
			return ctx.Err()
		case delivery, ok := <-msgs:
			if !ok {
				return errors.New("amqp: delivery channel closed")
			}
			handleDelivery(ctx, delivery, process, c.logger)
		}
	}
}

// handleDelivery выполняет задачу и подтверждает сообщение. Неразбираемые сообщения
// отклоняются без повторной постановки, ошибки обработки логируются и подтверждаются.
// Задача, прерванная остановкой процесса, возвращается в очередь
func handleDelivery(ctx context.Context, delivery amqp091.Delivery, process Processor, logger *zap.Logger) {
	job, err := jobs.Unmarshal(delivery.Body)
	if err != nil {
		logger.Error("failed to unmarshal job", zap.String("message_id", delivery.MessageId), zap.Error(err))
		if nackErr := delivery.Nack(false, false); nackErr != nil {
			logger.Error("failed to nack message", zap.Error(nackErr))
		}
		return
	}

	logger = logger.With(
		zap.String("job_id", job.ID.String()),
		zap.String("job_kind", string(job.Kind)),
	)

	err = process(ctx, job)
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		logger.Info("job interrupted, requeueing", zap.Error(err))
		if nackErr := delivery.Nack(false, true); nackErr != nil {
			logger.Error("failed to requeue message", zap.Error(nackErr))
		}
		return
	}

	if err != nil {
		logger.Error("job dropped", zap.Error(err))
	} else {
		logger.Debug("job completed")
	}

	if err := delivery.Ack(false); err != nil {
		logger.Error("failed to ack message", zap.Error(err))
	}
}

// Close закрывает канал и соединение
func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

type confirmTicket struct {
	confirm *amqp091.DeferredConfirmation
}

// Wait ожидает подтверждения публикации от брокера
func (t *confirmTicket) Wait(ctx context.Context) error {
	if t.confirm == nil {
		return nil
	}
	acked, err := t.confirm.WaitContext(ctx)
	if err != nil {
		return err
	}
	if !acked {
		return ErrNotConfirmed
	}
	return nil
}
