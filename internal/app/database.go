package app

import (
	"context"
	"fmt"

	"github.com/fundstracker/funds-tracker/internal/config"
	"github.com/fundstracker/funds-tracker/internal/domain"
	"github.com/fundstracker/funds-tracker/internal/handlers"
	"github.com/fundstracker/funds-tracker/internal/repository/memory"
	"github.com/fundstracker/funds-tracker/internal/repository/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// storage содержит репозитории выбранного хранилища
type storage struct {
	users    domain.UserRepository
	accounts domain.AccountRepository
	goals    domain.GoalRepository
	history  domain.HistoryRepository
	pinger   handlers.Pinger
	close    func()
}

// initStorage подключает хранилище, указанное в конфигурации
func initStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*storage, error) {
	if cfg.StorageBackend == config.StorageMemory {
		logger.Warn("using in-memory storage, data will be lost on restart")
		store := memory.NewStore()
		return &storage{
			users:    memory.NewUserRepository(store),
			accounts: memory.NewAccountRepository(store),
			goals:    memory.NewGoalRepository(store),
			history:  memory.NewHistoryRepository(store),
			pinger:   store,
			close:    func() {},
		}, nil
	}

	dbPool, err := initDatabase(ctx, cfg.DatabaseURI, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to database")

	return &storage{
		users:    postgres.NewUserRepository(dbPool),
		accounts: postgres.NewAccountRepository(dbPool),
		goals:    postgres.NewGoalRepository(dbPool),
		history:  postgres.NewHistoryRepository(dbPool),
		pinger:   dbPool,
		close:    dbPool.Close,
	}, nil
}

// initDatabase создает пул соединений с базой данных и выполняет миграции
func initDatabase(ctx context.Context, databaseURI string, logger *zap.Logger) (*pgxpool.Pool, error) {
	dbPool, err := pgxpool.New(ctx, databaseURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := postgres.RunMigrations(databaseURI, logger); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Info("migrations completed successfully")

	return dbPool, nil
}
