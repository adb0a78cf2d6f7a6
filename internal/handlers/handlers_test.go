package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fundstracker/funds-tracker/internal/domain"
	domainmocks "github.com/fundstracker/funds-tracker/internal/domain/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// serve прогоняет запрос через chi, чтобы заполнить параметры маршрута
func serve(method, pattern, target, body string, h http.HandlerFunc) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Method(method, pattern, h)

	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, target, reader)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func testAccount(userID domain.UserID, balance float64) *domain.Account {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	return &domain.Account{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      domain.MustTitle("Tinkoff"),
		Type:      domain.AccountTypeCard,
		Currency:  domain.CurrencyRUB,
		Balance:   domain.MustMoney(balance),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"Not found", domain.ErrAccountNotFound, http.StatusNotFound},
		{"Conflict", domain.ErrTooManyAccounts, http.StatusConflict},
		{"Invalid input", domain.ErrInvalidBalance, http.StatusUnprocessableEntity},
		{"Unavailable", fmt.Errorf("account service: %w", domain.ErrStorageUnavailable), http.StatusServiceUnavailable},
		{"Bad request", errBadRequest, http.StatusBadRequest},
		{"Bad id", errBadID, http.StatusBadRequest},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusOf(tt.err))
		})
	}
}

func TestUserHandler(t *testing.T) {
	mockService := domainmocks.NewUserServiceMock(t)
	handler := NewUserHandler(mockService, zap.NewNop())

	t.Run("Create", func(t *testing.T) {
		user := &domain.User{ID: uuid.New(), Name: "Ivan"}
		mockService.EXPECT().Create(mock.Anything, "Ivan").Return(user, nil).Once()

		w := serve(http.MethodPost, "/api/users", "/api/users", `{"name":"Ivan"}`, handler.Create)
		assert.Equal(t, http.StatusCreated, w.Code)

		var result domain.User
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		assert.Equal(t, user.ID, result.ID)
	})

	t.Run("Not found", func(t *testing.T) {
		userID := uuid.New()
		mockService.EXPECT().Get(mock.Anything, userID).Return(nil, domain.ErrUserNotFound).Once()

		w := serve(http.MethodGet, "/api/users/{userID}", "/api/users/"+userID.String(), "", handler.Get)
		assert.Equal(t, http.StatusNotFound, w.Code)

		resp := decodeError(t, w)
		assert.Equal(t, "user not found", resp.Message)
		assert.NotEmpty(t, resp.Suggestion)
	})

	t.Run("Invalid id", func(t *testing.T) {
		w := serve(http.MethodGet, "/api/users/{userID}", "/api/users/42", "", handler.Get)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAccountHandler_Create(t *testing.T) {
	mockService := domainmocks.NewAccountServiceMock(t)
	handler := NewAccountHandler(mockService, zap.NewNop())
	userID := uuid.New()
	pattern := "/api/users/{userID}/accounts"
	target := "/api/users/" + userID.String() + "/accounts"

	t.Run("Success", func(t *testing.T) {
		account := testAccount(userID, 1000)
		mockService.EXPECT().CreateAccount(mock.Anything, domain.CreateAccountCommand{
			UserID:   userID,
			Name:     "Tinkoff",
			Balance:  1000,
			Type:     domain.AccountTypeCard,
			Currency: domain.CurrencyRUB,
		}).Return(account, nil).Once()

		body := `{"name":"Tinkoff","balance":1000,"type":"Card","currency":"RUB"}`
		w := serve(http.MethodPost, pattern, target, body, handler.Create)
		assert.Equal(t, http.StatusCreated, w.Code)

		var result accountResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		assert.Equal(t, account.ID, result.ID)
		assert.Equal(t, "Tinkoff", result.Name)
		assert.Equal(t, 1000.0, result.Balance)
	})

	t.Run("Name taken", func(t *testing.T) {
		mockService.EXPECT().CreateAccount(mock.Anything, mock.Anything).Return(nil, domain.ErrAccountAlreadyCreated).Once()

		w := serve(http.MethodPost, pattern, target, `{"name":"Tinkoff","type":"Card","currency":"RUB"}`, handler.Create)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, domain.ErrAccountAlreadyCreated.Suggestion, decodeError(t, w).Suggestion)
	})

	t.Run("Negative balance", func(t *testing.T) {
		mockService.EXPECT().CreateAccount(mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidBalance).Once()

		w := serve(http.MethodPost, pattern, target, `{"name":"Tinkoff","balance":-1,"type":"Card","currency":"RUB"}`, handler.Create)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		w := serve(http.MethodPost, pattern, target, `{"name":}`, handler.Create)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Internal error hides details", func(t *testing.T) {
		mockService.EXPECT().CreateAccount(mock.Anything, mock.Anything).
			Return(nil, errors.New("account service: connection reset")).Once()

		w := serve(http.MethodPost, pattern, target, `{"name":"Tinkoff","type":"Card","currency":"RUB"}`, handler.Create)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "internal server error", decodeError(t, w).Message)
	})
}

func TestAccountHandler_UpdateBalance(t *testing.T) {
	mockService := domainmocks.NewAccountServiceMock(t)
	handler := NewAccountHandler(mockService, zap.NewNop())
	userID := uuid.New()
	account := testAccount(userID, 1500)
	pattern := "/api/users/{userID}/accounts/{accountID}/balance"
	target := fmt.Sprintf("/api/users/%s/accounts/%s/balance", userID, account.ID)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().UpdateBalance(mock.Anything, domain.UpdateBalanceCommand{
			UserID:           userID,
			AccountID:        account.ID,
			Balance:          1500,
			IsMonthlyClosing: true,
		}).Return(account, nil).Once()

		w := serve(http.MethodPut, pattern, target, `{"balance":1500,"is_monthly_closing":true}`, handler.UpdateBalance)
		assert.Equal(t, http.StatusOK, w.Code)

		var result accountResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		assert.Equal(t, 1500.0, result.Balance)
	})

	t.Run("Account not found", func(t *testing.T) {
		mockService.EXPECT().UpdateBalance(mock.Anything, mock.Anything).Return(nil, domain.ErrAccountNotFound).Once()

		w := serve(http.MethodPut, pattern, target, `{"balance":10}`, handler.UpdateBalance)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Storage unavailable", func(t *testing.T) {
		mockService.EXPECT().UpdateBalance(mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("account service: failed to update account: %w", domain.ErrStorageUnavailable)).Once()

		w := serve(http.MethodPut, pattern, target, `{"balance":10}`, handler.UpdateBalance)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("Invalid account id", func(t *testing.T) {
		w := serve(http.MethodPut, pattern, "/api/users/"+userID.String()+"/accounts/abc/balance", `{"balance":10}`, handler.UpdateBalance)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAccountHandler_ListRenameDelete(t *testing.T) {
	mockService := domainmocks.NewAccountServiceMock(t)
	handler := NewAccountHandler(mockService, zap.NewNop())
	userID := uuid.New()
	account := testAccount(userID, 10)

	t.Run("List", func(t *testing.T) {
		mockService.EXPECT().GetUserAccounts(mock.Anything, userID).Return([]*domain.Account{account}, nil).Once()

		w := serve(http.MethodGet, "/api/users/{userID}/accounts", "/api/users/"+userID.String()+"/accounts", "", handler.List)
		assert.Equal(t, http.StatusOK, w.Code)

		var result []accountResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		require.Len(t, result, 1)
		assert.Equal(t, account.ID, result[0].ID)
	})

	t.Run("Empty list", func(t *testing.T) {
		mockService.EXPECT().GetUserAccounts(mock.Anything, userID).Return(nil, nil).Once()

		w := serve(http.MethodGet, "/api/users/{userID}/accounts", "/api/users/"+userID.String()+"/accounts", "", handler.List)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("Rename", func(t *testing.T) {
		renamed := *account
		renamed.Name = domain.MustTitle("Savings")
		mockService.EXPECT().RenameAccount(mock.Anything, userID, account.ID, "Savings").Return(&renamed, nil).Once()

		w := serve(http.MethodPatch, "/api/users/{userID}/accounts/{accountID}",
			fmt.Sprintf("/api/users/%s/accounts/%s", userID, account.ID), `{"name":"Savings"}`, handler.Rename)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		mockService.EXPECT().DeleteAccount(mock.Anything, userID, account.ID).Return(nil).Once()

		w := serve(http.MethodDelete, "/api/users/{userID}/accounts/{accountID}",
			fmt.Sprintf("/api/users/%s/accounts/%s", userID, account.ID), "", handler.Delete)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestGoalHandler(t *testing.T) {
	mockService := domainmocks.NewGoalsServiceMock(t)
	handler := NewGoalHandler(mockService, zap.NewNop())
	userID := uuid.New()
	goal := &domain.Goal{
		ID:                uuid.New(),
		UserID:            userID,
		Title:             domain.MustTitle("Car"),
		TargetAmount:      domain.MustMoney(1000),
		CurrentAmount:     domain.MustMoney(250),
		Status:            domain.GoalStatusActive,
		SavingsPercentage: domain.RestorePercentage(0.2),
	}

	t.Run("Create", func(t *testing.T) {
		mockService.EXPECT().CreateGoal(mock.Anything, mock.MatchedBy(func(cmd domain.CreateGoalCommand) bool {
			return cmd.UserID == userID && cmd.Title == "Car" && cmd.SavingsPercentage == nil && cmd.Deadline != nil
		})).Return(goal, nil).Once()

		body := `{"title":"Car","target_amount":1000,"deadline":"2030-01-01T00:00:00Z"}`
		w := serve(http.MethodPost, "/api/users/{userID}/goals", "/api/users/"+userID.String()+"/goals", body, handler.Create)
		assert.Equal(t, http.StatusCreated, w.Code)

		var result goalResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		assert.Equal(t, 0.25, result.Progress)
		assert.Equal(t, 0.2, result.SavingsPercentage)
	})

	t.Run("Budget exceeded", func(t *testing.T) {
		mockService.EXPECT().CreateGoal(mock.Anything, mock.Anything).Return(nil, domain.ErrGoalsPercentageOutOfBounds).Once()

		w := serve(http.MethodPost, "/api/users/{userID}/goals", "/api/users/"+userID.String()+"/goals",
			`{"title":"Car","target_amount":1000,"savings_percentage":0.5}`, handler.Create)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Invalid deadline format", func(t *testing.T) {
		w := serve(http.MethodPost, "/api/users/{userID}/goals", "/api/users/"+userID.String()+"/goals",
			`{"title":"Car","deadline":"tomorrow"}`, handler.Create)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Partial update", func(t *testing.T) {
		mockService.EXPECT().UpdateGoal(mock.Anything, mock.MatchedBy(func(cmd domain.UpdateGoalCommand) bool {
			return cmd.GoalID == goal.ID && cmd.Title == nil && cmd.Status != nil &&
				*cmd.Status == domain.GoalStatusArchived && cmd.UnlinkAccount
		})).Return(goal, nil).Once()

		w := serve(http.MethodPatch, "/api/users/{userID}/goals/{goalID}",
			fmt.Sprintf("/api/users/%s/goals/%s", userID, goal.ID), `{"status":"ARCHIVED","unlink_account":true}`, handler.Update)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Get not found", func(t *testing.T) {
		mockService.EXPECT().GetUserGoal(mock.Anything, userID, goal.ID).Return(nil, domain.ErrGoalNotFound).Once()

		w := serve(http.MethodGet, "/api/users/{userID}/goals/{goalID}",
			fmt.Sprintf("/api/users/%s/goals/%s", userID, goal.ID), "", handler.Get)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		mockService.EXPECT().DeleteGoal(mock.Anything, userID, goal.ID).Return(nil).Once()

		w := serve(http.MethodDelete, "/api/users/{userID}/goals/{goalID}",
			fmt.Sprintf("/api/users/%s/goals/%s", userID, goal.ID), "", handler.Delete)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestHistoryHandler(t *testing.T) {
	mockService := domainmocks.NewHistoryServiceMock(t)
	handler := NewHistoryHandler(mockService, zap.NewNop())
	userID, accountID := uuid.New(), uuid.New()
	pattern := "/api/users/{userID}/accounts/{accountID}/history"
	target := fmt.Sprintf("/api/users/%s/accounts/%s/history", userID, accountID)

	t.Run("History with metadata", func(t *testing.T) {
		start := time.Date(2025, time.February, 10, 12, 0, 0, 0, time.UTC)
		history := &domain.AccountHistory{
			Metadata: domain.IntervalWindow{StartDate: start, Period: domain.PeriodDays},
			Snapshots: []*domain.History{
				{ID: uuid.New(), AccountID: accountID, Balance: domain.MustMoney(95), Delta: 5, CreatedAt: start.AddDate(0, 0, 3)},
			},
		}
		mockService.EXPECT().GetAccountHistory(mock.Anything, userID, accountID, domain.IntervalMonth).Return(history, nil).Once()

		w := serve(http.MethodGet, pattern, target+"?interval=1Month", "", handler.GetHistory)
		assert.Equal(t, http.StatusOK, w.Code)

		var result accountHistoryResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		assert.Equal(t, domain.PeriodDays, result.Metadata.Period)
		require.Len(t, result.History, 1)
		assert.Equal(t, 95.0, result.History[0].Balance)
	})

	t.Run("Default interval", func(t *testing.T) {
		mockService.EXPECT().GetAccountHistory(mock.Anything, userID, accountID, domain.IntervalAll).
			Return(&domain.AccountHistory{}, nil).Once()

		w := serve(http.MethodGet, pattern, target, "", handler.GetHistory)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Invalid interval", func(t *testing.T) {
		mockService.EXPECT().GetAccountHistory(mock.Anything, userID, accountID, domain.HistoryInterval("2Days")).
			Return(nil, domain.ErrInvalidInterval).Once()

		w := serve(http.MethodGet, pattern, target+"?interval=2Days", "", handler.GetHistory)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Profit", func(t *testing.T) {
		mockService.EXPECT().GetHistoryProfit(mock.Anything, userID, accountID, domain.IntervalYear).
			Return(&domain.Profit{AmountProfit: 100, PercentProfit: 0.5}, nil).Once()

		w := serve(http.MethodGet, pattern+"/profit", target+"/profit?interval=1Year", "", handler.GetProfit)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"amount_profit":100,"percent_profit":0.5}`, w.Body.String())
	})

	t.Run("Profit without history", func(t *testing.T) {
		mockService.EXPECT().GetHistoryProfit(mock.Anything, userID, accountID, domain.IntervalWeek).
			Return(nil, domain.ErrHistoryNotExists).Once()

		w := serve(http.MethodGet, pattern+"/profit", target+"/profit?interval=1Week", "", handler.GetProfit)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestNetWorthHandler(t *testing.T) {
	mockService := domainmocks.NewNetWorthServiceMock(t)
	handler := NewNetWorthHandler(mockService, zap.NewNop())
	userID := uuid.New()

	t.Run("Total", func(t *testing.T) {
		mockService.EXPECT().CalculateTotalBalance(mock.Anything, userID).Return(&domain.NetWorth{
			UserID: userID,
			Totals: map[domain.Currency]float64{domain.CurrencyRUB: 300.3},
		}, nil).Once()

		w := serve(http.MethodGet, "/api/users/{userID}/net-worth", "/api/users/"+userID.String()+"/net-worth", "", handler.GetTotal)
		assert.Equal(t, http.StatusOK, w.Code)

		var result domain.NetWorth
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		assert.Equal(t, 300.3, result.Totals[domain.CurrencyRUB])
	})

	t.Run("Cash flow", func(t *testing.T) {
		mockService.EXPECT().GetIncomesAndExpenses(mock.Anything, userID, domain.IntervalMonth).
			Return(&domain.CashFlow{Incomes: 1200, Expenses: 300}, nil).Once()

		w := serve(http.MethodGet, "/api/users/{userID}/cash-flow", "/api/users/"+userID.String()+"/cash-flow?interval=1Month", "", handler.GetCashFlow)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"incomes":1200,"expenses":300}`, w.Body.String())
	})
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error {
	return p.err
}

func TestHealthHandler(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		handler := NewHealthHandler(stubPinger{}, zap.NewNop())

		w := httptest.NewRecorder()
		handler.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok","storage":"ok"}`, w.Body.String())

		w = httptest.NewRecorder()
		handler.Ready(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Storage down", func(t *testing.T) {
		handler := NewHealthHandler(stubPinger{err: errors.New("connection refused")}, zap.NewNop())

		w := httptest.NewRecorder()
		handler.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"status":"degraded","storage":"unavailable"}`, w.Body.String())

		w = httptest.NewRecorder()
		handler.Ready(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
