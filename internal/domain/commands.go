package domain

import "time"

// CreateAccountCommand параметры создания счёта
type CreateAccountCommand struct {
	UserID   UserID
	Name     string
	Balance  float64
	Type     AccountType
	Currency Currency
}

// UpdateBalanceCommand параметры обновления баланса
type UpdateBalanceCommand struct {
	UserID           UserID
	AccountID        AccountID
	Balance          float64
	IsMonthlyClosing bool
}

// CreateGoalCommand параметры создания цели
type CreateGoalCommand struct {
	UserID            UserID
	Title             string
	TargetAmount      float64
	SavingsPercentage *float64
	AccountID         *AccountID
	Deadline          *time.Time
}

// UpdateGoalCommand частичное обновление цели: применяются только заданные поля
type UpdateGoalCommand struct {
	UserID            UserID
	GoalID            GoalID
	Title             *string
	TargetAmount      *float64
	CurrentAmount     *float64
	SavingsPercentage *float64
	Deadline          *time.Time
	Status            *GoalStatus
	AccountID         *AccountID
	UnlinkAccount     bool
}

// SaveHistoryCommand параметры сохранения снимка баланса
type SaveHistoryCommand struct {
	AccountID        AccountID
	UserID           UserID
	Balance          float64
	Delta            float64
	IsMonthlyClosing bool
}

// AccountHistory сгруппированная история счёта с описанием интервала
type AccountHistory struct {
	Metadata  IntervalWindow
	Snapshots []*History
}
