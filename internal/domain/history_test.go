package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(t *testing.T, accountID AccountID, balance float64, at time.Time) *History {
	t.Helper()
	h, err := NewHistory(accountID, uuid.New(), balance, 0, false, at)
	require.NoError(t, err)
	return &h
}

func TestHistoryInterval_Window(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	cases := []struct {
		interval HistoryInterval
		start    time.Time
		period   HistoryPeriod
	}{
		{IntervalDay, now.AddDate(0, 0, -1), PeriodMinutes},
		{IntervalWeek, now.AddDate(0, 0, -7), PeriodHours},
		{IntervalMonth, now.AddDate(0, -1, 0), PeriodDays},
		{Interval6Months, now.AddDate(0, -6, 0), PeriodWeeks},
		{IntervalYear, now.AddDate(-1, 0, 0), PeriodMonths},
		{IntervalAll, HistoryEpoch, PeriodYears},
	}
	for _, tc := range cases {
		t.Run(string(tc.interval), func(t *testing.T) {
			window, err := tc.interval.Window(now)
			require.NoError(t, err)
			assert.Equal(t, tc.start, window.StartDate)
			assert.Equal(t, tc.period, window.Period)
		})
	}

	_, err := HistoryInterval("2Days").Window(now)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestHistoryPeriod_Truncate(t *testing.T) {
	// Среда
	ts := time.Date(2025, 6, 18, 14, 45, 30, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 6, 18, 14, 45, 0, 0, time.UTC), PeriodMinutes.Truncate(ts))
	assert.Equal(t, time.Date(2025, 6, 18, 14, 0, 0, 0, time.UTC), PeriodHours.Truncate(ts))
	assert.Equal(t, time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC), PeriodDays.Truncate(ts))
	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), PeriodWeeks.Truncate(ts))
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), PeriodMonths.Truncate(ts))
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), PeriodYears.Truncate(ts))

	sunday := time.Date(2025, 6, 22, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), PeriodWeeks.Truncate(sunday))
}

func TestBucket(t *testing.T) {
	accountID := uuid.New()

	t.Run("One latest snapshot per day", func(t *testing.T) {
		day1 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		day2 := day1.AddDate(0, 0, 1)
		raw := []*History{
			snapshot(t, accountID, 10, day1.Add(1*time.Hour)),
			snapshot(t, accountID, 20, day1.Add(5*time.Hour)),
			snapshot(t, accountID, 15, day1.Add(3*time.Hour)),
			snapshot(t, accountID, 30, day2.Add(2*time.Hour)),
		}

		buckets := Bucket(raw, PeriodDays, day1)
		require.Len(t, buckets, 2)
		assert.Equal(t, 30.0, buckets[0].Balance.Float64())
		assert.Equal(t, 20.0, buckets[1].Balance.Float64())
	})

	t.Run("Years for All interval", func(t *testing.T) {
		raw := []*History{
			snapshot(t, accountID, 100, time.Date(2022, 5, 1, 0, 0, 0, 0, time.UTC)),
			snapshot(t, accountID, 200, time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)),
			snapshot(t, accountID, 150, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
		}

		buckets := Bucket(raw, PeriodYears, HistoryEpoch)
		require.Len(t, buckets, 3)
		assert.Equal(t, []float64{150, 200, 100}, []float64{
			buckets[0].Balance.Float64(),
			buckets[1].Balance.Float64(),
			buckets[2].Balance.Float64(),
		})
	})

	t.Run("Snapshots before cutoff ignored", func(t *testing.T) {
		since := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		raw := []*History{
			snapshot(t, accountID, 1, since.Add(-time.Second)),
		}
		assert.Empty(t, Bucket(raw, PeriodDays, since))
	})
}

func TestHistory_Coalesce(t *testing.T) {
	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	h, err := NewHistory(uuid.New(), uuid.New(), 100, 0, false, at)
	require.NoError(t, err)

	later := at.Add(5 * time.Minute)
	coalesced, err := h.Coalesce(150.555, 50.555, false, later)
	require.NoError(t, err)

	assert.Equal(t, h.ID, coalesced.ID)
	assert.Equal(t, 150.56, coalesced.Balance.Float64())
	assert.Equal(t, 50.56, coalesced.Delta)
	assert.Equal(t, later, coalesced.CreatedAt)

	_, err = h.Coalesce(-1, 0, false, later)
	assert.ErrorIs(t, err, ErrInvalidBalance)
}

func TestCalculateProfit(t *testing.T) {
	accountID := uuid.New()
	now := time.Now()

	t.Run("Regular", func(t *testing.T) {
		profit := CalculateProfit(*snapshot(t, accountID, 200, now), *snapshot(t, accountID, 250, now))
		assert.Equal(t, 50.0, profit.AmountProfit)
		assert.Equal(t, 0.25, profit.PercentProfit)
	})

	t.Run("Zero start balance divides by one", func(t *testing.T) {
		profit := CalculateProfit(*snapshot(t, accountID, 0, now), *snapshot(t, accountID, 75, now))
		assert.Equal(t, 75.0, profit.AmountProfit)
		assert.Equal(t, 75.0, profit.PercentProfit)
	})

	t.Run("Loss", func(t *testing.T) {
		profit := CalculateProfit(*snapshot(t, accountID, 100, now), *snapshot(t, accountID, 40, now))
		assert.Equal(t, -60.0, profit.AmountProfit)
		assert.Equal(t, -0.6, profit.PercentProfit)
	})
}
