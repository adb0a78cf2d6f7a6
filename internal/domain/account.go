package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account представляет счёт пользователя
type Account struct {
	ID        AccountID
	UserID    UserID
	Name      Title
	Type      AccountType
	Currency  Currency
	Balance   Money
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount создает счёт и возвращает событие AccountCreatedEvent
func NewAccount(userID UserID, name string, balance float64, accountType AccountType, currency Currency, now time.Time) (Account, []Event, error) {
	money, err := NewMoney(balance)
	if err != nil {
		return Account{}, nil, err
	}
	title, err := NewTitle(name)
	if err != nil {
		return Account{}, nil, err
	}
	if err := accountType.Validate(); err != nil {
		return Account{}, nil, err
	}
	if err := currency.Validate(); err != nil {
		return Account{}, nil, err
	}

	account := Account{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      title,
		Type:      accountType,
		Currency:  currency,
		Balance:   money,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created := AccountCreatedEvent{
		eventBase:  eventBase{At: now},
		UserID:     userID,
		AccountID:  account.ID,
		NewBalance: money.Float64(),
		Currency:   currency,
	}
	return account, []Event{created}, nil
}

// UpdateBalance возвращает счёт с новым балансом и событие BalanceUpdatedEvent.
// Если баланс не изменился, возвращается исходный счёт без событий
func (a Account) UpdateBalance(newBalance float64, monthlyClosing bool, now time.Time) (Account, []Event, error) {
	money, err := NewMoney(newBalance)
	if err != nil {
		return a, nil, err
	}
	if money.Equal(a.Balance) {
		return a, nil, nil
	}

	old := a.Balance
	a.Balance = money
	a.UpdatedAt = now

	updated := BalanceUpdatedEvent{
		eventBase:        eventBase{At: now},
		UserID:           a.UserID,
		AccountID:        a.ID,
		OldBalance:       old.Float64(),
		NewBalance:       money.Float64(),
		Delta:            money.Delta(old),
		Currency:         a.Currency,
		IsMonthlyClosing: monthlyClosing,
	}
	return a, []Event{updated}, nil
}

// Rename возвращает счёт с новым названием
func (a Account) Rename(newName string, now time.Time) (Account, error) {
	title, err := NewTitle(newName)
	if err != nil {
		return a, err
	}
	a.Name = title
	a.UpdatedAt = now
	return a, nil
}
