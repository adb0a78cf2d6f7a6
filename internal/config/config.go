package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Хранилища данных
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress     string // Адрес и порт запуска сервиса
	DatabaseURI    string // URI подключения к БД
	StorageBackend string // postgres или memory
	LogLevel       string // Уровень логирования

	// Брокер задач. Пустой BrokerURL означает выполнение задач в процессе
	BrokerURL      string
	BrokerExchange string
	BrokerQueue    string

	MaxAccounts        int           // Максимум счетов у пользователя
	HistoryDedupWindow time.Duration // Окно объединения снимков истории

	// Worker Pool конфигурация
	WorkerPoolSize   int           // Количество воркеров
	WorkerQueueSize  int           // Размер очереди задач
	JobMaxAttempts   int           // Попыток на одну задачу
	JobRetryBackoff  time.Duration // Начальная задержка между попытками
	TaskTrackTimeout time.Duration // Сколько ждать результата задачи для лога

	// Кэш капитала
	CacheSize          int
	CacheTTL           time.Duration
	CacheCleanInterval time.Duration
}

func defaults() *Config {
	return &Config{
		RunAddress:         ":8080",
		StorageBackend:     StoragePostgres,
		LogLevel:           "info",
		BrokerExchange:     "fundstracker",
		BrokerQueue:        "fundstracker.jobs",
		MaxAccounts:        10,
		HistoryDedupWindow: 10 * time.Minute,
		WorkerPoolSize:     3,
		WorkerQueueSize:    100,
		JobMaxAttempts:     5,
		JobRetryBackoff:    500 * time.Millisecond,
		TaskTrackTimeout:   30 * time.Second,
		CacheSize:          1000,
		CacheTTL:           5 * time.Minute,
		CacheCleanInterval: time.Minute,
	}
}

// Load загружает конфигурацию из .env, флагов и переменных окружения
// Приоритет: env переменные > флаги > дефолтные значения
func Load() (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	return load(os.Args[1:], os.LookupEnv)
}

func load(args []string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := defaults()

	fs := flag.NewFlagSet("fundstracker", flag.ContinueOnError)
	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "address and port to run server")
	fs.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	fs.StringVar(&cfg.BrokerURL, "b", "", "AMQP broker URL")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	// Переменные окружения имеют приоритет над флагами
	lookupString(lookupEnv, "RUN_ADDRESS", &cfg.RunAddress)
	lookupString(lookupEnv, "DATABASE_URI", &cfg.DatabaseURI)
	lookupString(lookupEnv, "STORAGE_BACKEND", &cfg.StorageBackend)
	lookupString(lookupEnv, "LOG_LEVEL", &cfg.LogLevel)
	lookupString(lookupEnv, "BROKER_URL", &cfg.BrokerURL)
	lookupString(lookupEnv, "BROKER_EXCHANGE", &cfg.BrokerExchange)
	lookupString(lookupEnv, "BROKER_QUEUE", &cfg.BrokerQueue)

	lookupInt(lookupEnv, "MAX_ACCOUNTS", &cfg.MaxAccounts)
	lookupInt(lookupEnv, "WORKER_POOL_SIZE", &cfg.WorkerPoolSize)
	lookupInt(lookupEnv, "WORKER_QUEUE_SIZE", &cfg.WorkerQueueSize)
	lookupInt(lookupEnv, "JOB_MAX_ATTEMPTS", &cfg.JobMaxAttempts)
	lookupInt(lookupEnv, "CACHE_SIZE", &cfg.CacheSize)

	lookupDuration(lookupEnv, "HISTORY_DEDUP_WINDOW", &cfg.HistoryDedupWindow)
	lookupDuration(lookupEnv, "JOB_RETRY_BACKOFF", &cfg.JobRetryBackoff)
	lookupDuration(lookupEnv, "TASK_TRACK_TIMEOUT", &cfg.TaskTrackTimeout)
	lookupDuration(lookupEnv, "CACHE_TTL", &cfg.CacheTTL)
	lookupDuration(lookupEnv, "CACHE_CLEAN_INTERVAL", &cfg.CacheCleanInterval)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет обязательные параметры и возвращает все найденные ошибки
func (c *Config) Validate() error {
	var errs []error

	switch c.StorageBackend {
	case StoragePostgres:
		if c.DatabaseURI == "" {
			errs = append(errs, errors.New("database URI is required for postgres storage (use -d flag or DATABASE_URI env)"))
		}
	case StorageMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown storage backend %q (use %s or %s)", c.StorageBackend, StoragePostgres, StorageMemory))
	}

	if c.RunAddress == "" {
		errs = append(errs, errors.New("run address is required (use -a flag or RUN_ADDRESS env)"))
	}
	if c.BrokerURL != "" && (c.BrokerExchange == "" || c.BrokerQueue == "") {
		errs = append(errs, errors.New("broker exchange and queue are required when broker URL is set"))
	}

	return errors.Join(errs...)
}

// UsesBroker возвращает true, если задачи передаются через брокер
func (c *Config) UsesBroker() bool {
	return c.BrokerURL != ""
}

func lookupString(lookupEnv func(string) (string, bool), key string, dst *string) {
	if v, ok := lookupEnv(key); ok {
		*dst = v
	}
}

// Неположительные и нечисловые значения игнорируются
func lookupInt(lookupEnv func(string) (string, bool), key string, dst *int) {
	if v, ok := lookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			*dst = n
		}
	}
}

func lookupDuration(lookupEnv func(string) (string, bool), key string, dst *time.Duration) {
	if v, ok := lookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			*dst = d
		}
	}
}
