package app

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/fundstracker/funds-tracker/internal/broker/amqp"
	"github.com/fundstracker/funds-tracker/internal/config"
	"github.com/fundstracker/funds-tracker/internal/events"
	"github.com/fundstracker/funds-tracker/internal/service"
	"github.com/fundstracker/funds-tracker/internal/worker"
	"go.uber.org/zap"
)

// ErrBrokerRequired возвращается, если worker процесс запущен без брокера
var ErrBrokerRequired = errors.New("broker URL is required for worker process (use -b flag or BROKER_URL env)")

// Worker представляет процесс, выполняющий фоновые задачи из брокера
type Worker struct {
	logger    *zap.Logger
	storage   *storage
	broker    *amqp.Client
	publisher *events.Publisher
	pool      *worker.Pool
}

// NewWorker создает worker процесс
func NewWorker() (*Worker, error) {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if !cfg.UsesBroker() {
		return nil, ErrBrokerRequired
	}

	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	store, err := initStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	client, err := amqp.NewClient(cfg.BrokerURL, cfg.BrokerExchange, cfg.BrokerQueue, logger.Named("amqp"))
	if err != nil {
		store.close()
		return nil, fmt.Errorf("failed to connect to broker: %w", err)
	}

	// Кэш капитала живет в API процессе, пересчет здесь ничего не заполняет
	netWorth := service.NewNetWorthService(store.accounts, store.history, store.users, nil, logger.Named("net_worth"))
	// Задачи, порожденные обработчиками, публикуются обратно в брокер
	publisher := events.NewPublisher(client, nil, cfg.TaskTrackTimeout, logger.Named("events")).WithoutNetWorthResync()
	svcs := initServices(cfg, store, publisher, netWorth, logger)

	pool := worker.NewPool(poolConfig(cfg), jobHandlers(svcs, logger).Routes(), logger.Named("worker"))

	return &Worker{
		logger:    logger,
		storage:   store,
		broker:    client,
		publisher: publisher,
		pool:      pool,
	}, nil
}

// Run потребляет задачи до сигнала завершения
func (w *Worker) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := w.broker.Consume(ctx, w.pool.Process)
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	w.publisher.Wait()
	if closeErr := w.broker.Close(); closeErr != nil {
		w.logger.Error("failed to close broker connection", zap.Error(closeErr))
	}
	w.storage.close()
	w.logger.Info("worker stopped")
	_ = w.logger.Sync()

	return err
}
