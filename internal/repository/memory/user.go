package memory

import (
	"context"

	"github.com/fundstracker/funds-tracker/internal/domain"
)

// UserRepository реализует domain.UserRepository
type UserRepository struct {
	store *Store
}

// NewUserRepository создает новый UserRepository
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// Create сохраняет нового пользователя
func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.users[user.ID] = *user
	return nil
}

// GetByID получает пользователя по ID
func (r *UserRepository) GetByID(_ context.Context, id domain.UserID) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}
