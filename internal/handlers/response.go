package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/fundstracker/funds-tracker/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

var (
	errBadRequest = &domain.Error{Category: domain.CategoryInvalidInput, Message: "bad request", Suggestion: "Проверьте формат тела запроса, даты передаются в RFC 3339"}
	errBadID      = &domain.Error{Category: domain.CategoryInvalidInput, Message: "invalid identifier", Suggestion: "Идентификатор должен быть в формате uuid"}
)

// statusOf сопоставляет категорию ошибки с HTTP статусом
func statusOf(err error) int {
	if errors.Is(err, errBadRequest) || errors.Is(err, errBadID) {
		return http.StatusBadRequest
	}
	switch domain.CategoryOf(err) {
	case domain.CategoryNotFound:
		return http.StatusNotFound
	case domain.CategoryConflict:
		return http.StatusConflict
	case domain.CategoryInvalidInput:
		return http.StatusUnprocessableEntity
	case domain.CategoryUnavailable:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, logger *zap.Logger, msg string, err error) {
	status := statusOf(err)

	var domainErr *domain.Error
	response := ErrorResponse{Message: "internal server error"}
	if status != http.StatusInternalServerError && errors.As(err, &domainErr) {
		response = ErrorResponse{Message: domainErr.Message, Suggestion: domainErr.Suggestion}
	}

	if status >= http.StatusInternalServerError {
		logger.Error(msg, zap.Error(err))
	} else {
		logger.Debug(msg, zap.Error(err))
	}

	writeJSON(w, logger, status, response)
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errBadRequest
	}
	return nil
}

// pathID разбирает uuid из параметра маршрута
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, errBadID
	}
	return id, nil
}

// intervalParam возвращает интервал из query, по умолчанию All
func intervalParam(r *http.Request) domain.HistoryInterval {
	if interval := r.URL.Query().Get("interval"); interval != "" {
		return domain.HistoryInterval(interval)
	}
	return domain.IntervalAll
}

type accountResponse struct {
	ID        domain.AccountID   `json:"id"`
	UserID    domain.UserID      `json:"user_id"`
	Name      string             `json:"name"`
	Type      domain.AccountType `json:"type"`
	Currency  domain.Currency    `json:"currency"`
	Balance   float64            `json:"balance"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func newAccountResponse(a *domain.Account) accountResponse {
	return accountResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		Name:      a.Name.String(),
		Type:      a.Type,
		Currency:  a.Currency,
		Balance:   a.Balance.Float64(),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

type goalResponse struct {
	ID                domain.GoalID     `json:"id"`
	UserID            domain.UserID     `json:"user_id"`
	AccountID         *domain.AccountID `json:"account_id,omitempty"`
	Title             string            `json:"title"`
	TargetAmount      float64           `json:"target_amount"`
	CurrentAmount     float64           `json:"current_amount"`
	Progress          float64           `json:"progress"`
	Status            domain.GoalStatus `json:"status"`
	Deadline          *time.Time        `json:"deadline,omitempty"`
	SavingsPercentage float64           `json:"savings_percentage"`
	CreatedAt         time.Time         `json:"created_at"`
}

func newGoalResponse(g *domain.Goal) goalResponse {
	return goalResponse{
		ID:                g.ID,
		UserID:            g.UserID,
		AccountID:         g.AccountID,
		Title:             g.Title.String(),
		TargetAmount:      g.TargetAmount.Float64(),
		CurrentAmount:     g.CurrentAmount.Float64(),
		Progress:          g.Progress(),
		Status:            g.Status,
		Deadline:          g.Deadline,
		SavingsPercentage: g.SavingsPercentage.Float64(),
		CreatedAt:         g.CreatedAt,
	}
}

type historyResponse struct {
	ID               domain.HistoryID `json:"id"`
	AccountID        domain.AccountID `json:"account_id"`
	Balance          float64          `json:"balance"`
	Delta            float64          `json:"delta"`
	IsMonthlyClosing bool             `json:"is_monthly_closing"`
	CreatedAt        time.Time        `json:"created_at"`
}

type accountHistoryResponse struct {
	Metadata domain.IntervalWindow `json:"metadata"`
	History  []historyResponse     `json:"history"`
}

func newAccountHistoryResponse(h *domain.AccountHistory) accountHistoryResponse {
	items := make([]historyResponse, 0, len(h.Snapshots))
	for _, s := range h.Snapshots {
		items = append(items, historyResponse{
			ID:               s.ID,
			AccountID:        s.AccountID,
			Balance:          s.Balance.Float64(),
			Delta:            s.Delta,
			IsMonthlyClosing: s.IsMonthlyClosing,
			CreatedAt:        s.CreatedAt,
		})
	}
	return accountHistoryResponse{Metadata: h.Metadata, History: items}
}
