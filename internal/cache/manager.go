package cache

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Cleaner кэш с удалением устаревших записей
type Cleaner interface {
	CleanExpired() int
}

// Manager периодически очищает зарегистрированные кэши
type Manager struct {
	caches   []Cleaner
	interval time.Duration
	logger   *zap.Logger
}

// NewManager создает менеджер с заданным интервалом очистки
func NewManager(interval time.Duration, logger *zap.Logger) *Manager {
	return &Manager{interval: interval, logger: logger}
}

// Register добавляет кэш в менеджер. Вызывается до Run
func (m *Manager) Register(c Cleaner) {
	m.caches = append(m.caches, c)
}

// Run очищает кэши до отмены контекста
func (m *Manager) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if cleaned := m.CleanAll(); cleaned > 0 {
				m.logger.Debug("expired cache entries removed", zap.Int("count", cleaned))
			}
		}
	}
}

// CleanAll однократно очищает все кэши
func (m *Manager) CleanAll() int {
	total := 0
	for _, c := range m.caches {
		total += c.CleanExpired()
	}
	return total
}
