package domain

import "time"

// Event - доменное событие. Набор вариантов закрыт: реализовать интерфейс
// могут только типы этого пакета
type Event interface {
	OccurredAt() time.Time
	isEvent()
}

type eventBase struct {
	At time.Time `json:"occurred_at"`
}

func (e eventBase) OccurredAt() time.Time { return e.At }
func (eventBase) isEvent()                {}

// AccountCreatedEvent - счёт создан
type AccountCreatedEvent struct {
	eventBase
	UserID     UserID    `json:"user_id"`
	AccountID  AccountID `json:"account_id"`
	NewBalance float64   `json:"new_balance"`
	Currency   Currency  `json:"currency"`
}

// BalanceUpdatedEvent - баланс счёта изменился
type BalanceUpdatedEvent struct {
	eventBase
	UserID           UserID    `json:"user_id"`
	AccountID        AccountID `json:"account_id"`
	OldBalance       float64   `json:"old_balance"`
	NewBalance       float64   `json:"new_balance"`
	Delta            float64   `json:"delta"`
	Currency         Currency  `json:"currency"`
	IsMonthlyClosing bool      `json:"is_monthly_closing"`
}

// GoalLinkedToAccountEvent - цель перепривязана к другому счёту
type GoalLinkedToAccountEvent struct {
	eventBase
	GoalID            GoalID    `json:"goal_id"`
	UserID            UserID    `json:"user_id"`
	AccountID         AccountID `json:"account_id"`
	PreviousAccountID AccountID `json:"previous_account_id"`
}

// GoalAlreadyReachedEvent - текущая сумма цели превысила целевую
type GoalAlreadyReachedEvent struct {
	eventBase
	GoalID    GoalID     `json:"goal_id"`
	UserID    UserID     `json:"user_id"`
	AccountID *AccountID `json:"account_id,omitempty"`
}
