package domain

import (
	"time"

	"github.com/google/uuid"
)

// Goal представляет цель накоплений пользователя
type Goal struct {
	ID                GoalID
	UserID            UserID
	AccountID         *AccountID
	Title             Title
	TargetAmount      Money
	CurrentAmount     Money
	Status            GoalStatus
	Deadline          *time.Time
	SavingsPercentage Percentage
	CreatedAt         time.Time
}

// NewGoal создает активную цель с нулевой текущей суммой
func NewGoal(userID UserID, title string, targetAmount float64, savingsPercentage float64, accountID *AccountID, deadline *time.Time, now time.Time) (Goal, error) {
	target, err := goalAmount(targetAmount)
	if err != nil {
		return Goal{}, err
	}
	if deadline != nil && deadline.Before(now) {
		return Goal{}, ErrInvalidGoalDeadline
	}
	t, err := NewTitle(title)
	if err != nil {
		return Goal{}, err
	}
	percentage, err := NewPercentage(savingsPercentage)
	if err != nil {
		return Goal{}, err
	}

	return Goal{
		ID:                uuid.New(),
		UserID:            userID,
		AccountID:         accountID,
		Title:             t,
		TargetAmount:      target,
		CurrentAmount:     ZeroMoney(),
		Status:            GoalStatusActive,
		Deadline:          deadline,
		SavingsPercentage: percentage,
		CreatedAt:         now,
	}, nil
}

// Суммы целей отклоняются ошибкой ErrInvalidGoalAmount, а не ErrInvalidBalance
func goalAmount(amount float64) (Money, error) {
	m, err := NewMoney(amount)
	if err != nil {
		return Money{}, ErrInvalidGoalAmount
	}
	return m, nil
}

// ChangeCurrentAmount обновляет текущую сумму. При превышении целевой суммы
// возвращается GoalAlreadyReachedEvent, статус при этом не меняется
func (g Goal) ChangeCurrentAmount(amount float64, now time.Time) (Goal, []Event, error) {
	current, err := goalAmount(amount)
	if err != nil {
		return g, nil, err
	}
	var events []Event
	if current.GreaterThan(g.TargetAmount) {
		events = append(events, GoalAlreadyReachedEvent{
			eventBase: eventBase{At: now},
			GoalID:    g.ID,
			UserID:    g.UserID,
			AccountID: g.AccountID,
		})
	}
	g.CurrentAmount = current
	return g, events, nil
}

// ChangeTargetAmount обновляет целевую сумму
func (g Goal) ChangeTargetAmount(amount float64) (Goal, error) {
	target, err := goalAmount(amount)
	if err != nil {
		return g, err
	}
	g.TargetAmount = target
	return g, nil
}

// ChangeDeadline обновляет срок цели, срок в прошлом недопустим
func (g Goal) ChangeDeadline(deadline time.Time, now time.Time) (Goal, error) {
	if deadline.Before(now) {
		return g, ErrInvalidGoalDeadline
	}
	g.Deadline = &deadline
	return g, nil
}

// ChangeTitle обновляет название цели
func (g Goal) ChangeTitle(title string) (Goal, error) {
	t, err := NewTitle(title)
	if err != nil {
		return g, err
	}
	g.Title = t
	return g, nil
}

// ChangePercentage обновляет процент накоплений
func (g Goal) ChangePercentage(percentage Percentage) Goal {
	g.SavingsPercentage = percentage
	return g
}

// ChangeStatus выполняет явный переход статуса
func (g Goal) ChangeStatus(status GoalStatus) (Goal, error) {
	if err := status.Validate(); err != nil {
		return g, err
	}
	g.Status = status
	return g, nil
}

// LinkToAccount привязывает цель к счёту. Событие GoalLinkedToAccountEvent
// возвращается только при замене существующей привязки
func (g Goal) LinkToAccount(accountID AccountID, now time.Time) (Goal, []Event) {
	var events []Event
	if g.AccountID != nil && *g.AccountID != accountID {
		events = append(events, GoalLinkedToAccountEvent{
			eventBase:         eventBase{At: now},
			GoalID:            g.ID,
			UserID:            g.UserID,
			AccountID:         accountID,
			PreviousAccountID: *g.AccountID,
		})
	}
	g.AccountID = &accountID
	return g, events
}

// UnlinkAccount отвязывает цель от счёта
func (g Goal) UnlinkAccount() Goal {
	g.AccountID = nil
	return g
}

// Progress возвращает долю выполнения цели
func (g Goal) Progress() float64 {
	if g.TargetAmount.Decimal().IsZero() {
		return 0
	}
	f, _ := g.CurrentAmount.Decimal().Div(g.TargetAmount.Decimal()).Float64()
	return f
}

// IsActive возвращает true для целей, участвующих в распределении процентов
func (g Goal) IsActive() bool {
	return g.Status == GoalStatusActive
}
