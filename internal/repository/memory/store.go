// Package memory содержит репозитории в памяти процесса. Они соблюдают те же
// ограничения, что и схема PostgreSQL: уникальность названий, лимит счетов,
// бюджет процентов активных целей и каскадное удаление истории счёта.
package memory

import (
	"context"
	"sync"

	"github.com/fundstracker/funds-tracker/internal/domain"
)

// Store общее хранилище для всех репозиториев в памяти
type Store struct {
	mu       sync.RWMutex
	users    map[domain.UserID]domain.User
	accounts map[domain.AccountID]domain.Account
	goals    map[domain.GoalID]domain.Goal
	history  map[domain.HistoryID]domain.History
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		users:    make(map[domain.UserID]domain.User),
		accounts: make(map[domain.AccountID]domain.Account),
		goals:    make(map[domain.GoalID]domain.Goal),
		history:  make(map[domain.HistoryID]domain.History),
	}
}

// Ping всегда успешен, хранилище в памяти доступно пока жив процесс
func (s *Store) Ping(_ context.Context) error {
	return nil
}
