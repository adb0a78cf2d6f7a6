package handlers

import (
	"net/http"

	"github.com/fundstracker/funds-tracker/internal/domain"
	"go.uber.org/zap"
)

// HistoryHandler отдает историю балансов счёта и прибыль за интервал
type HistoryHandler struct {
	historyService domain.HistoryService
	logger         *zap.Logger
}

func NewHistoryHandler(historyService domain.HistoryService, logger *zap.Logger) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
		logger:         logger,
	}
}

func (h *HistoryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, accountID, ok := h.ids(w, r)
	if !ok {
		return
	}

	history, err := h.historyService.GetAccountHistory(r.Context(), userID, accountID, intervalParam(r))
	if err != nil {
		writeError(w, h.logger, "failed to get account history", err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, newAccountHistoryResponse(history))
}

func (h *HistoryHandler) GetProfit(w http.ResponseWriter, r *http.Request) {
	userID, accountID, ok := h.ids(w, r)
	if !ok {
		return
	}

	profit, err := h.historyService.GetHistoryProfit(r.Context(), userID, accountID, intervalParam(r))
	if err != nil {
		writeError(w, h.logger, "failed to get history profit", err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, profit)
}

func (h *HistoryHandler) ids(w http.ResponseWriter, r *http.Request) (domain.UserID, domain.AccountID, bool) {
	userID, err := pathID(r, "userID")
	if err != nil {
		writeError(w, h.logger, "invalid user id", err)
		return domain.UserID{}, domain.AccountID{}, false
	}
	accountID, err := pathID(r, "accountID")
	if err != nil {
		writeError(w, h.logger, "invalid account id", err)
		return domain.UserID{}, domain.AccountID{}, false
	}
	return userID, accountID, true
}
