package domain

import (
	"time"

	"github.com/google/uuid"
)

// User представляет пользователя системы
type User struct {
	ID        UserID    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUser создает пользователя с отображаемым именем
func NewUser(name string, now time.Time) (User, error) {
	if name == "" {
		return User{}, ErrTitleEmpty
	}
	return User{ID: uuid.New(), Name: name, CreatedAt: now}, nil
}
