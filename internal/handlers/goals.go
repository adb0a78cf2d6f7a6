package handlers

import (
	"net/http"
	"time"

	"github.com/fundstracker/funds-tracker/internal/domain"
	"go.uber.org/zap"
)

// GoalHandler обрабатывает запросы к целям накоплений
type GoalHandler struct {
	goalsService domain.GoalsService
	logger       *zap.Logger
}

func NewGoalHandler(goalsService domain.GoalsService, logger *zap.Logger) *GoalHandler {
	return &GoalHandler{
		goalsService: goalsService,
		logger:       logger,
	}
}

type createGoalRequest struct {
	Title             string            `json:"title"`
	TargetAmount      float64           `json:"target_amount"`
	SavingsPercentage *float64          `json:"savings_percentage"`
	AccountID         *domain.AccountID `json:"account_id"`
	Deadline          *time.Time        `json:"deadline"`
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		writeError(w, h.logger, "invalid user id", err)
		return
	}

	var req createGoalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, "failed to decode create goal request", err)
		return
	}

	goal, err := h.goalsService.CreateGoal(r.Context(), domain.CreateGoalCommand{
		UserID:            userID,
		Title:             req.Title,
		TargetAmount:      req.TargetAmount,
		SavingsPercentage: req.SavingsPercentage,
		AccountID:         req.AccountID,
		Deadline:          req.Deadline,
	})
	if err != nil {
		writeError(w, h.logger, "failed to create goal", err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, newGoalResponse(goal))
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		writeError(w, h.logger, "invalid user id", err)
		return
	}

	goals, err := h.goalsService.GetUserGoals(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, "failed to get goals", err)
		return
	}

	response := make([]goalResponse, 0, len(goals))
	for _, g := range goals {
		response = append(response, newGoalResponse(g))
	}
	writeJSON(w, h.logger, http.StatusOK, response)
}

func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, goalID, ok := h.ids(w, r)
	if !ok {
		return
	}

	goal, err := h.goalsService.GetUserGoal(r.Context(), userID, goalID)
	if err != nil {
		writeError(w, h.logger, "failed to get goal", err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, newGoalResponse(goal))
}

// updateGoalRequest частичное обновление: отсутствующие поля не меняются
type updateGoalRequest struct {
	Title             *string            `json:"title"`
	TargetAmount      *float64           `json:"target_amount"`
	CurrentAmount     *float64           `json:"current_amount"`
	SavingsPercentage *float64           `json:"savings_percentage"`
	Deadline          *time.Time         `json:"deadline"`
	Status            *domain.GoalStatus `json:"status"`
	AccountID         *domain.AccountID  `json:"account_id"`
	UnlinkAccount     bool               `json:"unlink_account"`
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, goalID, ok := h.ids(w, r)
	if !ok {
		return
	}

	var req updateGoalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, "failed to decode update goal request", err)
		return
	}

	goal, err := h.goalsService.UpdateGoal(r.Context(), domain.UpdateGoalCommand{
		UserID:            userID,
		GoalID:            goalID,
		Title:             req.Title,
		TargetAmount:      req.TargetAmount,
		CurrentAmount:     req.CurrentAmount,
		SavingsPercentage: req.SavingsPercentage,
		Deadline:          req.Deadline,
		Status:            req.Status,
		AccountID:         req.AccountID,
		UnlinkAccount:     req.UnlinkAccount,
	})
	if err != nil {
		writeError(w, h.logger, "failed to update goal", err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, newGoalResponse(goal))
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, goalID, ok := h.ids(w, r)
	if !ok {
		return
	}

	if err := h.goalsService.DeleteGoal(r.Context(), userID, goalID); err != nil {
		writeError(w, h.logger, "failed to delete goal", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *GoalHandler) ids(w http.ResponseWriter, r *http.Request) (domain.UserID, domain.GoalID, bool) {
	userID, err := pathID(r, "userID")
	if err != nil {
		writeError(w, h.logger, "invalid user id", err)
		return domain.UserID{}, domain.GoalID{}, false
	}
	goalID, err := pathID(r, "goalID")
	if err != nil {
		writeError(w, h.logger, "invalid goal id", err)
		return domain.UserID{}, domain.GoalID{}, false
	}
	return userID, goalID, true
}
