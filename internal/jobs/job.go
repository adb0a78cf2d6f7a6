// Package jobs описывает фоновые задачи, которые порождают доменные события,
// и их сериализацию для передачи через брокер.
package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fundstracker/funds-tracker/internal/domain"
	"github.com/google/uuid"
)

// Kind тип фоновой задачи
type Kind string

const (
	KindSaveAccountHistory Kind = "save_account_history"
	KindSyncLinkedGoals    Kind = "sync_linked_goals"
	KindSyncGoalAmount     Kind = "sync_goal_amount"
	KindResyncNetWorth     Kind = "resync_net_worth"
)

// ErrUnknownKind возвращается для задач неизвестного типа
var ErrUnknownKind = errors.New("unknown job kind")

// Job конверт фоновой задачи
type Job struct {
	ID        uuid.UUID       `json:"id"`
	Kind      Kind            `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// SaveAccountHistoryPayload сохранить снимок баланса счёта
type SaveAccountHistoryPayload struct {
	AccountID        domain.AccountID `json:"account_id"`
	UserID           domain.UserID    `json:"user_id"`
	Balance          float64          `json:"balance"`
	Delta            float64          `json:"delta"`
	IsMonthlyClosing bool             `json:"is_monthly_closing"`
}

// SyncLinkedGoalsPayload скопировать текущий баланс счёта в привязанные к нему цели
type SyncLinkedGoalsPayload struct {
	UserID    domain.UserID    `json:"user_id"`
	AccountID domain.AccountID `json:"account_id"`
}

// SyncGoalAmountPayload пересчитать текущую сумму цели по балансу счёта
type SyncGoalAmountPayload struct {
	UserID    domain.UserID    `json:"user_id"`
	GoalID    domain.GoalID    `json:"goal_id"`
	AccountID domain.AccountID `json:"account_id"`
}

// ResyncNetWorthPayload пересчитать капитал пользователя
type ResyncNetWorthPayload struct {
	UserID domain.UserID `json:"user_id"`
}

// New создает задачу с сериализованной нагрузкой
func New(kind Kind, payload any, now time.Time) (Job, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Job{}, fmt.Errorf("jobs: failed to marshal %s payload: %w", kind, err)
	}
	return Job{
		ID:        uuid.New(),
		Kind:      kind,
		Payload:   raw,
		CreatedAt: now,
	}, nil
}

// Decode десериализует нагрузку задачи
func (j Job) Decode(v any) error {
	if err := json.Unmarshal(j.Payload, v); err != nil {
		return fmt.Errorf("jobs: failed to decode %s payload: %w", j.Kind, err)
	}
	return nil
}

// Marshal сериализует задачу для брокера
func Marshal(j Job) ([]byte, error) {
	return json.Marshal(j)
}

// Unmarshal восстанавливает задачу из сообщения брокера
func Unmarshal(data []byte) (Job, error) {
	var j Job
	if err := json.Unmarshal(data, &j); err != nil {
		return Job{}, fmt.Errorf("jobs: failed to unmarshal job: %w", err)
	}
	switch j.Kind {
	case KindSaveAccountHistory, KindSyncLinkedGoals, KindSyncGoalAmount, KindResyncNetWorth:
	default:
		return Job{}, fmt.Errorf("jobs: %w: %q", ErrUnknownKind, j.Kind)
	}
	return j, nil
}

// Ticket позволяет дождаться результата поставленной задачи
type Ticket interface {
	Wait(ctx context.Context) error
}

// Queue принимает задачи на выполнение
type Queue interface {
	Enqueue(ctx context.Context, job Job) (Ticket, error)
}
