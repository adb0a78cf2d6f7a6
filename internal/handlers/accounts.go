package handlers

import (
	"net/http"

	"github.com/fundstracker/funds-tracker/internal/domain"
	"go.uber.org/zap"
)

// AccountHandler обрабатывает запросы к счетам пользователя
type AccountHandler struct {
	accountService domain.AccountService
	logger         *zap.Logger
}

func NewAccountHandler(accountService domain.AccountService, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		logger:         logger,
	}
}

type createAccountRequest struct {
	Name     string             `json:"name"`
	Balance  float64            `json:"balance"`
	Type     domain.AccountType `json:"type"`
	Currency domain.Currency    `json:"currency"`
}

func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		writeError(w, h.logger, "invalid user id", err)
		return
	}

	var req createAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, "failed to decode create account request", err)
		return
	}

	account, err := h.accountService.CreateAccount(r.Context(), domain.CreateAccountCommand{
		UserID:   userID,
		Name:     req.Name,
		Balance:  req.Balance,
		Type:     req.Type,
		Currency: req.Currency,
	})
	if err != nil {
		writeError(w, h.logger, "failed to create account", err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, newAccountResponse(account))
}

func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		writeError(w, h.logger, "invalid user id", err)
		return
	}

	accounts, err := h.accountService.GetUserAccounts(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, "failed to get accounts", err)
		return
	}

	response := make([]accountResponse, 0, len(accounts))
	for _, a := range accounts {
		response = append(response, newAccountResponse(a))
	}
	writeJSON(w, h.logger, http.StatusOK, response)
}

func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, accountID, ok := h.ids(w, r)
	if !ok {
		return
	}

	account, err := h.accountService.GetAccount(r.Context(), userID, accountID)
	if err != nil {
		writeError(w, h.logger, "failed to get account", err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, newAccountResponse(account))
}

type updateBalanceRequest struct {
	Balance          float64 `json:"balance"`
	IsMonthlyClosing bool    `json:"is_monthly_closing"`
}

func (h *AccountHandler) UpdateBalance(w http.ResponseWriter, r *http.Request) {
	userID, accountID, ok := h.ids(w, r)
	if !ok {
		return
	}

	var req updateBalanceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, "failed to decode update balance request", err)
		return
	}

	account, err := h.accountService.UpdateBalance(r.Context(), domain.UpdateBalanceCommand{
		UserID:           userID,
		AccountID:        accountID,
		Balance:          req.Balance,
		IsMonthlyClosing: req.IsMonthlyClosing,
	})
	if err != nil {
		writeError(w, h.logger, "failed to update balance", err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, newAccountResponse(account))
}

type renameAccountRequest struct {
	Name string `json:"name"`
}

func (h *AccountHandler) Rename(w http.ResponseWriter, r *http.Request) {
	userID, accountID, ok := h.ids(w, r)
	if !ok {
		return
	}

	var req renameAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, "failed to decode rename account request", err)
		return
	}

	account, err := h.accountService.RenameAccount(r.Context(), userID, accountID, req.Name)
	if err != nil {
		writeError(w, h.logger, "failed to rename account", err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, newAccountResponse(account))
}

func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, accountID, ok := h.ids(w, r)
	if !ok {
		return
	}

	if err := h.accountService.DeleteAccount(r.Context(), userID, accountID); err != nil {
		writeError(w, h.logger, "failed to delete account", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AccountHandler) ids(w http.ResponseWriter, r *http.Request) (domain.UserID, domain.AccountID, bool) {
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
