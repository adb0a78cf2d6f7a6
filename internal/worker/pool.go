package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fundstracker/funds-tracker/internal/jobs"
	"go.uber.org/zap"
)

const maxBackoff = 30 * time.Second

// ErrPoolStopped возвращается при постановке задачи в остановленный пул
var ErrPoolStopped = errors.New("worker pool is stopped")

// PoolConfig параметры пула воркеров
type PoolConfig struct {
	Workers      int
	QueueSize    int
	MaxAttempts  int
	RetryBackoff time.Duration
}

type task struct {
	job    jobs.Job
	ticket *ticket
}

// Pool представляет пул воркеров для фоновых задач
type Pool struct {
	cfg      PoolConfig
	queue    chan task
	done     chan struct{}
	doneOnce sync.Once
	handlers map[jobs.Kind]jobs.HandlerFunc
	logger   *zap.Logger
	wg       sync.WaitGroup

	mu      sync.RWMutex
	stopped bool
}

// NewPool создает новый worker pool. handlers может быть nil, тогда обработчики
// добавляются через Register до Start
func NewPool(cfg PoolConfig, handlers map[jobs.Kind]jobs.HandlerFunc, logger *zap.Logger) *Pool {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	if handlers == nil {
		handlers = make(map[jobs.Kind]jobs.HandlerFunc)
	}
	return &Pool{
		cfg:      cfg,
		queue:    make(chan task, cfg.QueueSize),
		done:     make(chan struct{}),
		handlers: handlers,
		logger:   logger,
	}
}

// Register добавляет обработчики задач. Вызывается до Start
func (p *Pool) Register(handlers map[jobs.Kind]jobs.HandlerFunc) {
	for kind, handler := range handlers {
		p.handlers[kind] = handler
	}
}

// Start запускает worker pool
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.cfg.Workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
}

// Stop останавливает worker pool. Задачи, не взятые в работу, завершаются с ErrPoolStopped
func (p *Pool) Stop() {
	// Сначала будим Enqueue, ждущие места в очереди под RLock
	p.doneOnce.Do(func() { close(p.done) })

	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.queue)
	p.mu.Unlock()

	p.wg.Wait()

	for t := range p.queue {
		t.ticket.resolve(ErrPoolStopped)
	}
}

// Enqueue ставит задачу в очередь и возвращает Ticket для ожидания результата
func (p *Pool) Enqueue(ctx context.Context, job jobs.Job) (jobs.Ticket, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		return nil, ErrPoolStopped
	}

	t := task{job: job, ticket: newTicket()}
	select {
	case p.queue <- t:
		return t.ticket, nil
	case <-p.done:
		return nil, ErrPoolStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// worker обрабатывает задачи из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("worker stopping", zap.Int("worker_id", id))
			return
		case t, ok := <-p.queue:
			if !ok {
				return
			}
			t.ticket.resolve(p.Process(ctx, t.job))
		}
	}
}

// Process выполняет задачу с ограниченным числом попыток и экспоненциальной задержкой
func (p *Pool) Process(ctx context.Context, job jobs.Job) error {
	handler, ok := p.handlers[job.Kind]
	if !ok {
		return jobs.Permanent(fmt.Errorf("worker: %w: %s", jobs.ErrUnknownKind, job.Kind))
	}

	logger := p.logger.With(
		zap.String("job_id", job.ID.String()),
		zap.String("job_kind", string(job.Kind)),
	)

	var err error
	for attempt := 1; attempt <= p.cfg.MaxAttempts; attempt++ {
		err = handler(ctx, job)
		if err == nil {
			logger.Debug("job processed", zap.Int("attempt", attempt))
			return nil
		}

		if jobs.IsPermanent(err) {
			logger.Warn("job failed permanently", zap.Int("attempt", attempt), zap.Error(err))
			return err
		}

		logger.Warn("job attempt failed", zap.Int("attempt", attempt), zap.Error(err))
		if attempt == p.cfg.MaxAttempts {
			break
		}

		timer := time.NewTimer(p.backoff(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	logger.Error("job failed after retries", zap.Int("attempts", p.cfg.MaxAttempts), zap.Error(err))
	return fmt.Errorf("worker: job %s failed after %d attempts: %w", job.Kind, p.cfg.MaxAttempts, err)
}

// backoff возвращает задержку перед следующей попыткой
func (p *Pool) backoff(attempt int) time.Duration {
	d := p.cfg.RetryBackoff
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}

type ticket struct {
	done chan struct{}
	err  error
}

func newTicket() *ticket {
	return &ticket{done: make(chan struct{})}
}

func (t *ticket) resolve(err error) {
	t.err = err
	close(t.done)
}

// Wait ожидает завершения задачи или отмены контекста
func (t *ticket) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
