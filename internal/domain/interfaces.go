package domain

import (
	"context"
	"time"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id UserID) (*User, error)
}

// AccountRepository определяет методы для работы со счетами.
// Create атомарно проверяет лимит счетов и уникальность названия
type AccountRepository interface {
	Create(ctx context.Context, account *Account, limit int) error
	GetByID(ctx context.Context, userID UserID, accountID AccountID) (*Account, error)
	GetByUserID(ctx context.Context, userID UserID) ([]*Account, error)
	CountByUserID(ctx context.Context, userID UserID) (int, error)
	IsNameTaken(ctx context.Context, userID UserID, name Title) (bool, error)
	Update(ctx context.Context, account *Account) error
	Delete(ctx context.Context, userID UserID, accountID AccountID) error
}

// GoalRepository определяет методы для работы с целями.
// Create и Update атомарно проверяют сумму процентов активных целей
type GoalRepository interface {
	Create(ctx context.Context, goal *Goal) error
	GetByID(ctx context.Context, userID UserID, goalID GoalID) (*Goal, error)
	GetByUserID(ctx context.Context, userID UserID) ([]*Goal, error)
	GetByAccountID(ctx context.Context, userID UserID, accountID AccountID) ([]*Goal, error)
	IsTitleTaken(ctx context.Context, userID UserID, title Title) (bool, error)
	Update(ctx context.Context, goal *Goal) error
	Delete(ctx context.Context, userID UserID, goalID GoalID) error
}

// HistoryRepository определяет методы для работы с историей счетов
type HistoryRepository interface {
	Save(ctx context.Context, history *History) error
	Update(ctx context.Context, history *History) error
	GetLatestSince(ctx context.Context, accountID AccountID, since time.Time) (*History, error)
	GetBucketed(ctx context.Context, accountID AccountID, period HistoryPeriod, since time.Time) ([]*History, error)
	SumDeltas(ctx context.Context, userID UserID, since time.Time) (incomes float64, expenses float64, err error)
}

// EventPublisher передает доменные события фоновым обработчикам.
// Publish возвращается после постановки задач в очередь, не дожидаясь их выполнения
type EventPublisher interface {
	Publish(ctx context.Context, events ...Event) error
}

// UserService определяет методы работы с пользователями
type UserService interface {
	Create(ctx context.Context, name string) (*User, error)
	Get(ctx context.Context, id UserID) (*User, error)
}

// AccountService определяет методы работы со счетами
type AccountService interface {
	CreateAccount(ctx context.Context, cmd CreateAccountCommand) (*Account, error)
	GetAccount(ctx context.Context, userID UserID, accountID AccountID) (*Account, error)
	GetUserAccounts(ctx context.Context, userID UserID) ([]*Account, error)
	UpdateBalance(ctx context.Context, cmd UpdateBalanceCommand) (*Account, error)
	RenameAccount(ctx context.Context, userID UserID, accountID AccountID, name string) (*Account, error)
	DeleteAccount(ctx context.Context, userID UserID, accountID AccountID) error
}

// GoalsService определяет методы работы с целями
type GoalsService interface {
	CreateGoal(ctx context.Context, cmd CreateGoalCommand) (*Goal, error)
	GetUserGoals(ctx context.Context, userID UserID) ([]*Goal, error)
	GetUserGoal(ctx context.Context, userID UserID, goalID GoalID) (*Goal, error)
	UpdateGoal(ctx context.Context, cmd UpdateGoalCommand) (*Goal, error)
	DeleteGoal(ctx context.Context, userID UserID, goalID GoalID) error
}

// HistoryService определяет методы работы с историей счетов
type HistoryService interface {
	SaveAccountHistory(ctx context.Context, cmd SaveHistoryCommand) (HistoryID, error)
	GetAccountHistory(ctx context.Context, userID UserID, accountID AccountID, interval HistoryInterval) (*AccountHistory, error)
	GetHistoryProfit(ctx context.Context, userID UserID, accountID AccountID, interval HistoryInterval) (*Profit, error)
}

// NetWorthService определяет методы расчета капитала
type NetWorthService interface {
	CalculateTotalBalance(ctx context.Context, userID UserID) (*NetWorth, error)
	GetIncomesAndExpenses(ctx context.Context, userID UserID, interval HistoryInterval) (*CashFlow, error)
}
