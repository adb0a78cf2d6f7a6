package memory

import (
	"context"
	"sort"

	"github.com/fundstracker/funds-tracker/internal/domain"
)

// AccountRepository реализует domain.AccountRepository
type AccountRepository struct {
	store *Store
}

// NewAccountRepository создает новый AccountRepository
func NewAccountRepository(store *Store) *AccountRepository {
	return &AccountRepository{store: store}
}

// Create сохраняет счёт, проверяя лимит и уникальность названия под общей блокировкой
func (r *AccountRepository) Create(_ context.Context, account *domain.Account, limit int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[account.UserID]; !ok {
		return domain.ErrUserNotFound
	}

	count := 0
	for _, a := range r.store.accounts {
		if a.UserID != account.UserID {
			continue
		}
		if a.Name == account.Name {
			return domain.ErrAccountAlreadyCreated
		}
		count++
	}
	if count >= limit {
		return domain.ErrTooManyAccounts
	}

	r.store.accounts[account.ID] = *account
	return nil
}

// GetByID получает счёт пользователя
func (r *AccountRepository) GetByID(_ context.Context, userID domain.UserID, accountID domain.AccountID) (*domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	account, ok := r.store.accounts[accountID]
	if !ok || account.UserID != userID {
		return nil, domain.ErrAccountNotFound
	}
	return &account, nil
}

// GetByUserID получает все счета пользователя в порядке создания
func (r *AccountRepository) GetByUserID(_ context.Context, userID domain.UserID) ([]*domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var accounts []*domain.Account
	for _, a := range r.store.accounts {
		if a.UserID == userID {
			account := a
			accounts = append(accounts, &account)
		}
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].CreatedAt.Before(accounts[j].CreatedAt)
	})
	return accounts, nil
}

// CountByUserID возвращает количество счетов пользователя
func (r *AccountRepository) CountByUserID(_ context.Context, userID domain.UserID) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, a := range r.store.accounts {
		if a.UserID == userID {
			count++
		}
	}
	return count, nil
}

// IsNameTaken проверяет, есть ли у пользователя счёт с таким названием
func (r *AccountRepository) IsNameTaken(_ context.Context, userID domain.UserID, name domain.Title) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, a := range r.store.accounts {
		if a.UserID == userID && a.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// Update сохраняет название и баланс счёта
func (r *AccountRepository) Update(_ context.Context, account *domain.Account) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.accounts[account.ID]
	if !ok || stored.UserID != account.UserID {
		return domain.ErrAccountNotFound
	}
	for id, a := range r.store.accounts {
		if id != account.ID && a.UserID == account.UserID && a.Name == account.Name {
			return domain.ErrAccountAlreadyCreated
		}
	}

	stored.Name = account.Name
	stored.Balance = account.Balance
	stored.UpdatedAt = account.UpdatedAt
	r.store.accounts[account.ID] = stored
	return nil
}

// Delete удаляет счёт вместе с историей и отвязывает от него цели
func (r *AccountRepository) Delete(_ context.Context, userID domain.UserID, accountID domain.AccountID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	account, ok := r.store.accounts[accountID]
	if !ok || account.UserID != userID {
		return domain.ErrAccountNotFound
	}
	delete(r.store.accounts, accountID)

	for id, h := range r.store.history {
		if h.AccountID == accountID {
			delete(r.store.history, id)
		}
	}
	for id, g := range r.store.goals {
		if g.AccountID != nil && *g.AccountID == accountID {
			r.store.goals[id] = g.UnlinkAccount()
		}
	}
	return nil
}
