package app

import (
	"fmt"

	"github.com/fundstracker/funds-tracker/internal/broker/amqp"
	"github.com/fundstracker/funds-tracker/internal/cache"
	"github.com/fundstracker/funds-tracker/internal/config"
	"github.com/fundstracker/funds-tracker/internal/domain"
	"github.com/fundstracker/funds-tracker/internal/events"
	"github.com/fundstracker/funds-tracker/internal/handlers"
	"github.com/fundstracker/funds-tracker/internal/jobs"
	"github.com/fundstracker/funds-tracker/internal/service"
	"github.com/fundstracker/funds-tracker/internal/worker"
	"go.uber.org/zap"
)

// services содержит все сервисы приложения
type services struct {
	users    *service.UserService
	accounts *service.AccountService
	goals    *service.GoalsService
	history  *service.HistoryService
	netWorth *service.NetWorthService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	users    *handlers.UserHandler
	accounts *handlers.AccountHandler
	goals    *handlers.GoalHandler
	history  *handlers.HistoryHandler
	netWorth *handlers.NetWorthHandler
	health   *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	storage      *storage
	services     *services
	handlers     *handlerSet
	publisher    *events.Publisher
	workerPool   *worker.Pool // nil, если задачи уходят в брокер
	broker       *amqp.Client // nil, если задачи выполняются в процессе
	cacheManager *cache.Manager
}

// initDependencies создает все зависимости API процесса
func initDependencies(cfg *config.Config, store *storage, logger *zap.Logger) (*dependencies, error) {
	deps := &dependencies{
		storage:      store,
		cacheManager: cache.NewManager(cfg.CacheCleanInterval, logger.Named("cache")),
	}

	// Очередь задач: брокер или пул в процессе
	var queue jobs.Queue
	if cfg.UsesBroker() {
		client, err := amqp.NewClient(cfg.BrokerURL, cfg.BrokerExchange, cfg.BrokerQueue, logger.Named("amqp"))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to broker: %w", err)
		}
		deps.broker = client
		queue = client
		logger.Info("background jobs are published to broker", zap.String("queue", cfg.BrokerQueue))
	} else {
		deps.workerPool = worker.NewPool(poolConfig(cfg), nil, logger.Named("worker"))
		queue = deps.workerPool
	}

	netWorth := newNetWorthService(cfg, store, deps.cacheManager, logger)
	deps.publisher = events.NewPublisher(queue, netWorth, cfg.TaskTrackTimeout, logger.Named("events"))
	if deps.broker != nil {
		// Кэш капитала живет только в этом процессе, достаточно его сброса
		deps.publisher.WithoutNetWorthResync()
	}
	deps.services = initServices(cfg, store, deps.publisher, netWorth, logger)

	if deps.workerPool != nil {
		deps.workerPool.Register(jobHandlers(deps.services, logger).Routes())
	}

	deps.handlers = &handlerSet{
		users:    handlers.NewUserHandler(deps.services.users, logger.Named("handlers")),
		accounts: handlers.NewAccountHandler(deps.services.accounts, logger.Named("handlers")),
		goals:    handlers.NewGoalHandler(deps.services.goals, logger.Named("handlers")),
		history:  handlers.NewHistoryHandler(deps.services.history, logger.Named("handlers")),
		netWorth: handlers.NewNetWorthHandler(deps.services.netWorth, logger.Named("handlers")),
		health:   handlers.NewHealthHandler(store.pinger, logger.Named("health")),
	}

	return deps, nil
}

// initServices создает сервисы поверх хранилища. Общая часть API и worker процессов
func initServices(
	cfg *config.Config,
	store *storage,
	publisher domain.EventPublisher,
	netWorth *service.NetWorthService,
	logger *zap.Logger,
) *services {
	return &services{
		users: service.NewUserService(store.users),
		accounts: service.NewAccountService(store.accounts, store.users, publisher, cfg.MaxAccounts, logger.Named("accounts")).
			WithNetWorthCache(netWorth),
		goals:    service.NewGoalsService(store.goals, store.accounts, store.users, publisher, logger.Named("goals")),
		history:  service.NewHistoryService(store.history, store.accounts, cfg.HistoryDedupWindow, logger.Named("history")),
		netWorth: netWorth,
	}
}

func newNetWorthService(cfg *config.Config, store *storage, manager *cache.Manager, logger *zap.Logger) *service.NetWorthService {
	netWorthCache := cache.NewLRU[domain.UserID, domain.NetWorth](cfg.CacheSize, cfg.CacheTTL)
	manager.Register(netWorthCache)
	return service.NewNetWorthService(store.accounts, store.history, store.users, netWorthCache, logger.Named("net_worth"))
}

func jobHandlers(svcs *services, logger *zap.Logger) *jobs.Handlers {
	return jobs.NewHandlers(svcs.history, svcs.goals, svcs.netWorth, logger.Named("jobs"))
}

func poolConfig(cfg *config.Config) worker.PoolConfig {
	return worker.PoolConfig{
		Workers:      cfg.WorkerPoolSize,
		QueueSize:    cfg.WorkerQueueSize,
		MaxAttempts:  cfg.JobMaxAttempts,
		RetryBackoff: cfg.JobRetryBackoff,
	}
}
