package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		account, events, err := NewAccount(userID, "Основная карта", 1000, AccountTypeCard, CurrencyRUB, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, account.ID)
		assert.Equal(t, userID, account.UserID)
		assert.Equal(t, 1000.0, account.Balance.Float64())
		assert.Equal(t, AccountTypeCard, account.Type)
		assert.Equal(t, CurrencyRUB, account.Currency)
		assert.Equal(t, now, account.CreatedAt)

		require.Len(t, events, 1)
		created, ok := events[0].(AccountCreatedEvent)
		require.True(t, ok)
		assert.Equal(t, account.ID, created.AccountID)
		assert.Equal(t, 1000.0, created.NewBalance)
		assert.Equal(t, now, created.OccurredAt())
	})

	t.Run("Negative balance", func(t *testing.T) {
		_, events, err := NewAccount(userID, "card", -1, AccountTypeCard, CurrencyRUB, now)
		assert.ErrorIs(t, err, ErrInvalidBalance)
		assert.Empty(t, events)
	})

	t.Run("Invalid type", func(t *testing.T) {
		_, _, err := NewAccount(userID, "card", 1, AccountType("Crypto"), CurrencyRUB, now)
		assert.ErrorIs(t, err, ErrInvalidAccountType)
	})

	t.Run("Invalid currency", func(t *testing.T) {
		_, _, err := NewAccount(userID, "card", 1, AccountTypeCash, Currency("EUR"), now)
		assert.ErrorIs(t, err, ErrInvalidCurrency)
	})
}

func TestAccount_UpdateBalance(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	later := created.Add(time.Hour)

	account, _, err := NewAccount(uuid.New(), "card", 1000, AccountTypeCard, CurrencyRUB, created)
	require.NoError(t, err)

	t.Run("Emits delta", func(t *testing.T) {
		updated, events, err := account.UpdateBalance(1500, false, later)
		require.NoError(t, err)

		assert.Equal(t, 1500.0, updated.Balance.Float64())
		assert.Equal(t, later, updated.UpdatedAt)
		assert.Equal(t, 1000.0, account.Balance.Float64(), "original value must stay untouched")

		require.Len(t, events, 1)
		event, ok := events[0].(BalanceUpdatedEvent)
		require.True(t, ok)
		assert.Equal(t, 1000.0, event.OldBalance)
		assert.Equal(t, 1500.0, event.NewBalance)
		assert.Equal(t, 500.0, event.Delta)
		assert.Equal(t, CurrencyRUB, event.Currency)

		again, events, err := updated.UpdateBalance(1500, false, later.Add(time.Hour))
		require.NoError(t, err)
		assert.Empty(t, events)
		assert.Equal(t, later, again.UpdatedAt)
	})

	t.Run("Same balance is a no-op", func(t *testing.T) {
		same, events, err := account.UpdateBalance(1000.001, false, later)
		require.NoError(t, err)
		assert.Empty(t, events)
		assert.Equal(t, created, same.UpdatedAt)
	})

	t.Run("Negative delta", func(t *testing.T) {
		_, events, err := account.UpdateBalance(250.5, true, later)
		require.NoError(t, err)
		require.Len(t, events, 1)
		event := events[0].(BalanceUpdatedEvent)
		assert.Equal(t, -749.5, event.Delta)
		assert.True(t, event.IsMonthlyClosing)
	})

	t.Run("Negative balance rejected", func(t *testing.T) {
		_, events, err := account.UpdateBalance(-10, false, later)
		assert.ErrorIs(t, err, ErrInvalidBalance)
		assert.Empty(t, events)
	})
}

func TestAccount_Rename(t *testing.T) {
	account, _, err := NewAccount(uuid.New(), "card", 0, AccountTypeCash, CurrencyUSD, time.Now())
	require.NoError(t, err)

	renamed, err := account.Rename("Наличные", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "Наличные", renamed.Name.String())

	_, err = account.Rename("bad#name", time.Now())
	assert.ErrorIs(t, err, ErrTitleInvalidLetter)
}

func TestNewNetWorth(t *testing.T) {
	userID := uuid.New()
	now := time.Now()
	rub1, _, _ := NewAccount(userID, "a", 100.1, AccountTypeCard, CurrencyRUB, now)
	rub2, _, _ := NewAccount(userID, "b", 200.2, AccountTypeCash, CurrencyRUB, now)
	usd, _, _ := NewAccount(userID, "c", 50, AccountTypeInvestment, CurrencyUSD, now)

	nw := NewNetWorth(userID, []*Account{&rub1, &rub2, &usd})
	assert.Equal(t, 300.3, nw.Totals[CurrencyRUB])
	assert.Equal(t, 50.0, nw.Totals[CurrencyUSD])
}
