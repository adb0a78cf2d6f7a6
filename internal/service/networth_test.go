package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fundstracker/funds-tracker/internal/cache"
	"github.com/fundstracker/funds-tracker/internal/domain"
	domainmocks "github.com/fundstracker/funds-tracker/internal/domain/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type netWorthDeps struct {
	accounts *domainmocks.AccountRepositoryMock
	history  *domainmocks.HistoryRepositoryMock
	users    *domainmocks.UserRepositoryMock
}

func newTestNetWorthService(t *testing.T) (*NetWorthService, netWorthDeps) {
	deps := netWorthDeps{
		accounts: domainmocks.NewAccountRepositoryMock(t),
		history:  domainmocks.NewHistoryRepositoryMock(t),
		users:    domainmocks.NewUserRepositoryMock(t),
	}
	lru := cache.NewLRU[domain.UserID, domain.NetWorth](16, time.Minute)
	svc := NewNetWorthService(deps.accounts, deps.history, deps.users, lru, zap.NewNop())
	svc.now = func() time.Time { return fixedNow }
	return svc, deps
}

func accountWith(userID domain.UserID, balance float64, currency domain.Currency) *domain.Account {
	return &domain.Account{ID: uuid.New(), UserID: userID, Balance: domain.MustMoney(balance), Currency: currency}
}

func TestNetWorthService_CalculateTotalBalance(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	accounts := []*domain.Account{
		accountWith(userID, 100.1, domain.CurrencyRUB),
		accountWith(userID, 200.2, domain.CurrencyRUB),
		accountWith(userID, 50, domain.CurrencyUSD),
	}

	t.Run("Computes and caches", func(t *testing.T) {
		svc, deps := newTestNetWorthService(t)

		deps.users.EXPECT().GetByID(mock.Anything, userID).Return(&domain.User{ID: userID}, nil).Once()
		deps.accounts.EXPECT().GetByUserID(mock.Anything, userID).Return(accounts, nil).Once()

		netWorth, err := svc.CalculateTotalBalance(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 300.3, netWorth.Totals[domain.CurrencyRUB])
		assert.Equal(t, 50.0, netWorth.Totals[domain.CurrencyUSD])

		cached, err := svc.CalculateTotalBalance(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, netWorth.Totals, cached.Totals)
	})

	t.Run("Invalidate forces recompute", func(t *testing.T) {
		svc, deps := newTestNetWorthService(t)

		deps.users.EXPECT().GetByID(mock.Anything, userID).Return(&domain.User{ID: userID}, nil).Twice()
		deps.accounts.EXPECT().GetByUserID(mock.Anything, userID).Return(accounts[:1], nil).Once()
		deps.accounts.EXPECT().GetByUserID(mock.Anything, userID).Return(accounts, nil).Once()

		first, err := svc.CalculateTotalBalance(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 100.1, first.Totals[domain.CurrencyRUB])

		svc.Invalidate(userID)

		second, err := svc.CalculateTotalBalance(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 300.3, second.Totals[domain.CurrencyRUB])
	})

	t.Run("Resync refreshes cache", func(t *testing.T) {
		svc, deps := newTestNetWorthService(t)

		deps.accounts.EXPECT().GetByUserID(mock.Anything, userID).Return(accounts, nil).Once()

		require.NoError(t, svc.Resync(ctx, userID))

		netWorth, err := svc.CalculateTotalBalance(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 50.0, netWorth.Totals[domain.CurrencyUSD])
	})

	t.Run("User not found", func(t *testing.T) {
		svc, deps := newTestNetWorthService(t)

		deps.users.EXPECT().GetByID(mock.Anything, userID).Return(nil, domain.ErrUserNotFound).Once()

		_, err := svc.CalculateTotalBalance(ctx, userID)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestNetWorthService_GetIncomesAndExpenses(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		svc, deps := newTestNetWorthService(t)

		deps.users.EXPECT().GetByID(mock.Anything, userID).Return(&domain.User{ID: userID}, nil).Once()
		deps.history.EXPECT().SumDeltas(mock.Anything, userID, fixedNow.AddDate(0, -1, 0)).Return(1200.0, 300.0, nil).Once()

		flow, err := svc.GetIncomesAndExpenses(ctx, userID, domain.IntervalMonth)
		require.NoError(t, err)
		assert.Equal(t, 1200.0, flow.Incomes)
		assert.Equal(t, 300.0, flow.Expenses)
	})

	t.Run("Invalid interval", func(t *testing.T) {
		svc, _ := newTestNetWorthService(t)

		_, err := svc.GetIncomesAndExpenses(ctx, userID, domain.HistoryInterval("Forever"))
		assert.ErrorIs(t, err, domain.ErrInvalidInterval)
	})

	t.Run("Storage error", func(t *testing.T) {
		svc, deps := newTestNetWorthService(t)

		deps.users.EXPECT().GetByID(mock.Anything, userID).Return(&domain.User{ID: userID}, nil).Once()
		deps.history.EXPECT().SumDeltas(mock.Anything, userID, fixedNow.AddDate(-1, 0, 0)).Return(0.0, 0.0, errors.New("db error")).Once()

		_, err := svc.GetIncomesAndExpenses(ctx, userID, domain.IntervalYear)
		assert.Error(t, err)
	})
}
