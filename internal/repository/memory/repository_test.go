package memory

import (
	"context"
	"testing"
	"time"

	"github.com/fundstracker/funds-tracker/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func seedUser(t *testing.T, store *Store) domain.UserID {
	t.Helper()
	user, err := domain.NewUser("Ivan", testNow)
	require.NoError(t, err)
	require.NoError(t, NewUserRepository(store).Create(context.Background(), &user))
	return user.ID
}

func seedAccount(t *testing.T, store *Store, userID domain.UserID, name string) *domain.Account {
	t.Helper()
	account, _, err := domain.NewAccount(userID, name, 1000, domain.AccountTypeCard, domain.CurrencyRUB, testNow)
	require.NoError(t, err)
	require.NoError(t, NewAccountRepository(store).Create(context.Background(), &account, 10))
	return &account
}

func TestUserRepository(t *testing.T) {
	store := NewStore()
	repo := NewUserRepository(store)
	ctx := context.Background()

	userID := seedUser(t, store)

	user, err := repo.GetByID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Ivan", user.Name)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAccountRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown user", func(t *testing.T) {
		store := NewStore()
		account, _, err := domain.NewAccount(uuid.New(), "Card", 0, domain.AccountTypeCard, domain.CurrencyRUB, testNow)
		require.NoError(t, err)

		err = NewAccountRepository(store).Create(ctx, &account, 10)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("Duplicate name", func(t *testing.T) {
		store := NewStore()
		userID := seedUser(t, store)
		seedAccount(t, store, userID, "Tinkoff")

		account, _, err := domain.NewAccount(userID, "Tinkoff", 5, domain.AccountTypeCash, domain.CurrencyUSD, testNow)
		require.NoError(t, err)

		err = NewAccountRepository(store).Create(ctx, &account, 10)
		assert.ErrorIs(t, err, domain.ErrAccountAlreadyCreated)
	})

	t.Run("Same name for another user", func(t *testing.T) {
		store := NewStore()
		seedAccount(t, store, seedUser(t, store), "Tinkoff")
		seedAccount(t, store, seedUser(t, store), "Tinkoff")
	})

	t.Run("Limit reached", func(t *testing.T) {
		store := NewStore()
		userID := seedUser(t, store)
		repo := NewAccountRepository(store)

		for _, name := range []string{"One", "Two"} {
			account, _, err := domain.NewAccount(userID, name, 0, domain.AccountTypeCard, domain.CurrencyRUB, testNow)
			require.NoError(t, err)
			require.NoError(t, repo.Create(ctx, &account, 2))
		}

		account, _, err := domain.NewAccount(userID, "Three", 0, domain.AccountTypeCard, domain.CurrencyRUB, testNow)
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Create(ctx, &account, 2), domain.ErrTooManyAccounts)

		count, err := repo.CountByUserID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}

func TestAccountRepository_Ownership(t *testing.T) {
	store := NewStore()
	repo := NewAccountRepository(store)
	ctx := context.Background()

	owner := seedUser(t, store)
	stranger := seedUser(t, store)
	account := seedAccount(t, store, owner, "Tinkoff")

	_, err := repo.GetByID(ctx, stranger, account.ID)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, stranger, account.ID), domain.ErrAccountNotFound)

	found, err := repo.GetByID(ctx, owner, account.ID)
	require.NoError(t, err)
	assert.Equal(t, account.ID, found.ID)
}

func TestAccountRepository_Update(t *testing.T) {
	store := NewStore()
	repo := NewAccountRepository(store)
	ctx := context.Background()

	userID := seedUser(t, store)
	first := seedAccount(t, store, userID, "First")
	seedAccount(t, store, userID, "Second")

	renamed, err := first.Rename("Second", testNow.Add(time.Minute))
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Update(ctx, &renamed), domain.ErrAccountAlreadyCreated)

	updated, _, err := first.UpdateBalance(2500, false, testNow.Add(time.Minute))
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, &updated))

	stored, err := repo.GetByID(ctx, userID, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 2500.0, stored.Balance.Float64())
	assert.Equal(t, testNow.Add(time.Minute), stored.UpdatedAt)
}

func TestAccountRepository_DeleteCascades(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	userID := seedUser(t, store)
	account := seedAccount(t, store, userID, "Tinkoff")

	history, err := domain.NewHistory(account.ID, userID, 1000, 0, false, testNow)
	require.NoError(t, err)
	require.NoError(t, NewHistoryRepository(store).Save(ctx, &history))

	goal, err := domain.NewGoal(userID, "Отпуск", 5000, 0.2, &account.ID, nil, testNow)
	require.NoError(t, err)
	require.NoError(t, NewGoalRepository(store).Create(ctx, &goal))

	require.NoError(t, NewAccountRepository(store).Delete(ctx, userID, account.ID))

	_, err = NewHistoryRepository(store).GetLatestSince(ctx, account.ID, domain.HistoryEpoch)
	assert.ErrorIs(t, err, domain.ErrHistoryNotFound)

	stored, err := NewGoalRepository(store).GetByID(ctx, userID, goal.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.AccountID)
}

func TestGoalRepository_Budget(t *testing.T) {
	store := NewStore()
	repo := NewGoalRepository(store)
	ctx := context.Background()

	userID := seedUser(t, store)

	first, err := domain.NewGoal(userID, "Отпуск", 1000, 0.2, nil, nil, testNow)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, &first))

	t.Run("Exceeded", func(t *testing.T) {
		goal, err := domain.NewGoal(userID, "Машина", 1000, 0.9, nil, nil, testNow)
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Create(ctx, &goal), domain.ErrGoalsPercentageOutOfBounds)
	})

	t.Run("Boundary inclusive", func(t *testing.T) {
		goal, err := domain.NewGoal(userID, "Машина", 1000, 0.8, nil, nil, testNow)
		require.NoError(t, err)
		assert.NoError(t, repo.Create(ctx, &goal))
	})

	t.Run("Update excludes itself", func(t *testing.T) {
		pct, err := domain.NewPercentage(0.2)
		require.NoError(t, err)
		same := first.ChangePercentage(pct)
		assert.NoError(t, repo.Update(ctx, &same))
	})

	t.Run("Archived goals do not count", func(t *testing.T) {
		archived, err := first.ChangeStatus(domain.GoalStatusArchived)
		require.NoError(t, err)
		require.NoError(t, repo.Update(ctx, &archived))

		goal, err := domain.NewGoal(userID, "Дом", 1000, 0.2, nil, nil, testNow)
		require.NoError(t, err)
		assert.NoError(t, repo.Create(ctx, &goal))

		reactivated, err := archived.ChangeStatus(domain.GoalStatusActive)
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Update(ctx, &reactivated), domain.ErrGoalsPercentageOutOfBounds)
	})
}

func TestGoalRepository_Title(t *testing.T) {
	store := NewStore()
	repo := NewGoalRepository(store)
	ctx := context.Background()

	userID := seedUser(t, store)

	goal, err := domain.NewGoal(userID, "Отпуск", 1000, 0.1, nil, nil, testNow)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, &goal))

	duplicate, err := domain.NewGoal(userID, "Отпуск", 500, 0.1, nil, nil, testNow)
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Create(ctx, &duplicate), domain.ErrGoalTitleAlreadyTaken)

	taken, err := repo.IsTitleTaken(ctx, userID, domain.MustTitle("Отпуск"))
	require.NoError(t, err)
	assert.True(t, taken)

	assert.ErrorIs(t, repo.Delete(ctx, uuid.New(), goal.ID), domain.ErrGoalNotFound)
	assert.NoError(t, repo.Delete(ctx, userID, goal.ID))
}

func TestHistoryRepository_GetBucketed(t *testing.T) {
	store := NewStore()
	repo := NewHistoryRepository(store)
	ctx := context.Background()

	userID := seedUser(t, store)
	account := seedAccount(t, store, userID, "Tinkoff")

	for i, balance := range []float64{100, 200, 150} {
		at := time.Date(2021+i, time.June, 1, 0, 0, 0, 0, time.UTC)
		h, err := domain.NewHistory(account.ID, userID, balance, 0, false, at)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, &h))
	}
	early, err := domain.NewHistory(account.ID, userID, 50, 0, false, time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, &early))

	snapshots, err := repo.GetBucketed(ctx, account.ID, domain.PeriodYears, domain.HistoryEpoch)
	require.NoError(t, err)
	require.Len(t, snapshots, 3)
	assert.Equal(t, 150.0, snapshots[0].Balance.Float64())
	assert.Equal(t, 200.0, snapshots[1].Balance.Float64())
	assert.Equal(t, 100.0, snapshots[2].Balance.Float64())
}

func TestHistoryRepository_Coalesce(t *testing.T) {
	store := NewStore()
	repo := NewHistoryRepository(store)
	ctx := context.Background()

	userID := seedUser(t, store)
	account := seedAccount(t, store, userID, "Tinkoff")

	h, err := domain.NewHistory(account.ID, userID, 1000, 0, false, testNow)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, &h))

	latest, err := repo.GetLatestSince(ctx, account.ID, testNow.Add(-10*time.Minute))
	require.NoError(t, err)

	replaced, err := latest.Coalesce(1200, 200, true, testNow.Add(time.Minute))
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, &replaced))

	stored, err := repo.GetLatestSince(ctx, account.ID, testNow)
	require.NoError(t, err)
	assert.Equal(t, h.ID, stored.ID)
	assert.Equal(t, 1200.0, stored.Balance.Float64())
	assert.True(t, stored.IsMonthlyClosing)

	missing, err := domain.NewHistory(account.ID, userID, 1, 0, false, testNow)
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Update(ctx, &missing), domain.ErrHistoryNotFound)
}

func TestHistoryRepository_SumDeltas(t *testing.T) {
	store := NewStore()
	repo := NewHistoryRepository(store)
	ctx := context.Background()

	userID := seedUser(t, store)
	account := seedAccount(t, store, userID, "Tinkoff")

	for i, delta := range []float64{500, -200.5, 100, -50} {
		h, err := domain.NewHistory(account.ID, userID, 1000, delta, false, testNow.Add(time.Duration(i)*time.Hour))
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, &h))
	}

	incomes, expenses, err := repo.SumDeltas(ctx, userID, testNow)
	require.NoError(t, err)
	assert.Equal(t, 600.0, incomes)
	assert.Equal(t, 250.5, expenses)

	incomes, expenses, err = repo.SumDeltas(ctx, userID, testNow.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 100.0, incomes)
	assert.Equal(t, 50.0, expenses)
}
