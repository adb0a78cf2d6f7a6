package handlers

import (
	"net/http"

	"github.com/fundstracker/funds-tracker/internal/domain"
	"go.uber.org/zap"
)

type NetWorthHandler struct {
	netWorthService domain.NetWorthService
	logger          *zap.Logger
}

func NewNetWorthHandler(netWorthService domain.NetWorthService, logger *zap.Logger) *NetWorthHandler {
	return &NetWorthHandler{
		netWorthService: netWorthService,
		logger:          logger,
	}
}

func (h *NetWorthHandler) GetTotal(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		writeError(w, h.logger, "invalid user id", err)
		return
	}

	netWorth, err := h.netWorthService.CalculateTotalBalance(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, "failed to calculate net worth", err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, netWorth)
}

func (h *NetWorthHandler) GetCashFlow(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		writeError(w, h.logger, "invalid user id", err)
		return
	}

	flow, err := h.netWorthService.GetIncomesAndExpenses(r.Context(), userID, intervalParam(r))
	if err != nil {
		writeError(w, h.logger, "failed to get incomes and expenses", err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, flow)
}
