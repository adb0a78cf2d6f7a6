package service

import (
	"context"
	"time"

	"github.com/fundstracker/funds-tracker/internal/domain"
)

// UserService реализует domain.UserService
type UserService struct {
	users domain.UserRepository
	now   func() time.Time
}

// NewUserService создает новый UserService
func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{
		users: users,
		now:   time.Now,
	}
}

// Create регистрирует пользователя с отображаемым именем
func (s *UserService) Create(ctx context.Context, name string) (*domain.User, error) {
	user, err := domain.NewUser(name, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, &user); err != nil {
		return nil, wrapError(err, "user service: failed to create user")
	}

	return &user, nil
}

// Get получает пользователя по ID
func (s *UserService) Get(ctx context.Context, id domain.UserID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, wrapError(err, "user service: failed to get user %s", id)
	}
	return user, nil
}
