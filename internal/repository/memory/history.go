package memory

import (
	"context"
	"time"

	"github.com/fundstracker/funds-tracker/internal/domain"
	"github.com/shopspring/decimal"
)

// HistoryRepository реализует domain.HistoryRepository
type HistoryRepository struct {
	store *Store
}

// NewHistoryRepository создает новый HistoryRepository
func NewHistoryRepository(store *Store) *HistoryRepository {
	return &HistoryRepository{store: store}
}

// Save добавляет снимок баланса существующего счёта
func (r *HistoryRepository) Save(_ context.Context, history *domain.History) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.accounts[history.AccountID]; !ok {
		return domain.ErrAccountNotFound
	}
	r.store.history[history.ID] = *history
	return nil
}

// Update заменяет баланс, дельту и время существующего снимка
func (r *HistoryRepository) Update(_ context.Context, history *domain.History) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.history[history.ID]
	if !ok {
		return domain.ErrHistoryNotFound
	}
	stored.Balance = history.Balance
	stored.Delta = history.Delta
	stored.IsMonthlyClosing = history.IsMonthlyClosing
	stored.CreatedAt = history.CreatedAt
	r.store.history[history.ID] = stored
	return nil
}

// GetLatestSince возвращает последний снимок счёта не старше since
func (r *HistoryRepository) GetLatestSince(_ context.Context, accountID domain.AccountID, since time.Time) (*domain.History, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var latest *domain.History
	for _, h := range r.store.history {
		if h.AccountID != accountID || h.CreatedAt.Before(since) {
			continue
		}
		if latest == nil || h.CreatedAt.After(latest.CreatedAt) {
			snapshot := h
			latest = &snapshot
		}
	}
	if latest == nil {
		return nil, domain.ErrHistoryNotFound
	}
	return latest, nil
}

// GetBucketed возвращает по одному последнему снимку на каждый период, от новых к старым
func (r *HistoryRepository) GetBucketed(_ context.Context, accountID domain.AccountID, period domain.HistoryPeriod, since time.Time) ([]*domain.History, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var snapshots []*domain.History
	for _, h := range r.store.history {
		if h.AccountID == accountID {
			snapshot := h
			snapshots = append(snapshots, &snapshot)
		}
	}
	return domain.Bucket(snapshots, period, since), nil
}

// SumDeltas суммирует положительные и отрицательные изменения балансов пользователя
func (r *HistoryRepository) SumDeltas(_ context.Context, userID domain.UserID, since time.Time) (float64, float64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	incomes, expenses := decimal.Zero, decimal.Zero
	for _, h := range r.store.history {
		if h.UserID != userID || h.CreatedAt.Before(since) {
			continue
		}
		delta := decimal.NewFromFloat(h.Delta)
		if delta.IsPositive() {
			incomes = incomes.Add(delta)
		} else {
			expenses = expenses.Sub(delta)
		}
	}

	in, _ := incomes.Float64()
	out, _ := expenses.Float64()
	return in, out, nil
}
