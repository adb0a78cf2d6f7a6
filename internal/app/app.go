package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/fundstracker/funds-tracker/internal/config"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// App представляет API процесс
type App struct {
	config *config.Config
	logger *zap.Logger
	deps   *dependencies
	server *http.Server
}

// NewApp создает новое приложение
func NewApp() (*App, error) {
	ctx := context.Background()

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	// Инициализация хранилища
	store, err := initStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	// Инициализация зависимостей
	deps, err := initDependencies(cfg, store, logger)
	if err != nil {
		store.close()
		return nil, err
	}

	// Настройка роутера и HTTP сервера
	router := setupRouter(deps.handlers, logger)
	server := createServer(cfg.RunAddress, router)

	return &App{
		config: cfg,
		logger: logger,
		deps:   deps,
		server: server,
	}, nil
}

// Run запускает приложение и блокируется до сигнала завершения
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	if a.deps.workerPool != nil {
		a.deps.workerPool.Start(gctx)
		a.logger.Info("worker pool started")
	}

	g.Go(func() error {
		return a.deps.cacheManager.Run(gctx)
	})
	g.Go(func() error {
		return a.runServer(gctx)
	})

	err := g.Wait()
	a.shutdown()
	return err
}

// shutdown освобождает ресурсы после остановки сервера
func (a *App) shutdown() {
	if a.deps.workerPool != nil {
		a.deps.workerPool.Stop()
		a.logger.Info("worker pool stopped")
	}

	// Дожидаемся логирования результатов поставленных задач
	a.deps.publisher.Wait()

	if a.deps.broker != nil {
		if err := a.deps.broker.Close(); err != nil {
			a.logger.Error("failed to close broker connection", zap.Error(err))
		}
	}

	a.deps.storage.close()
	a.logger.Info("storage closed")

	a.logger.Info("server stopped gracefully")
	_ = a.logger.Sync()
}
