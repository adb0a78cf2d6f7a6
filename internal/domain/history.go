package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// History представляет снимок баланса счёта
type History struct {
	ID               HistoryID
	AccountID        AccountID
	UserID           UserID
	Balance          Money
	Delta            float64
	IsMonthlyClosing bool
	CreatedAt        time.Time
}

// NewHistory создает снимок баланса счёта
func NewHistory(accountID AccountID, userID UserID, balance float64, delta float64, monthlyClosing bool, now time.Time) (History, error) {
	money, err := NewMoney(balance)
	if err != nil {
		return History{}, err
	}
	return History{
		ID:               uuid.New(),
		AccountID:        accountID,
		UserID:           userID,
		Balance:          money,
		Delta:            roundDelta(delta),
		IsMonthlyClosing: monthlyClosing,
		CreatedAt:        now,
	}, nil
}

// Coalesce заменяет баланс, дельту и время существующего снимка
func (h History) Coalesce(balance float64, delta float64, monthlyClosing bool, now time.Time) (History, error) {
	money, err := NewMoney(balance)
	if err != nil {
		return h, err
	}
	h.Balance = money
	h.Delta = roundDelta(delta)
	h.IsMonthlyClosing = h.IsMonthlyClosing || monthlyClosing
	h.CreatedAt = now
	return h, nil
}

// Дельта знаковая, поэтому Money здесь не подходит
func roundDelta(delta float64) float64 {
	f, _ := decimal.NewFromFloat(delta).Round(MoneyDigits).Float64()
	return f
}

// HistoryInterval интервал отображения истории
type HistoryInterval string

const (
	IntervalDay     HistoryInterval = "1Day"
	IntervalWeek    HistoryInterval = "1Week"
	IntervalMonth   HistoryInterval = "1Month"
	Interval6Months HistoryInterval = "6Months"
	IntervalYear    HistoryInterval = "1Year"
	IntervalAll     HistoryInterval = "All"
)

// HistoryPeriod период группировки снимков
type HistoryPeriod string

const (
	PeriodMinutes HistoryPeriod = "minutes"
	PeriodHours   HistoryPeriod = "hours"
	PeriodDays    HistoryPeriod = "days"
	PeriodWeeks   HistoryPeriod = "weeks"
	PeriodMonths  HistoryPeriod = "months"
	PeriodYears   HistoryPeriod = "years"
)

// HistoryEpoch начало отсчета для интервала All
var HistoryEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// IntervalWindow описывает начало интервала и период группировки
type IntervalWindow struct {
	StartDate time.Time     `json:"start_date"`
	Period    HistoryPeriod `json:"period"`
}

// Window возвращает начало интервала и период группировки относительно now
func (i HistoryInterval) Window(now time.Time) (IntervalWindow, error) {
	switch i {
	case IntervalDay:
		return IntervalWindow{StartDate: now.AddDate(0, 0, -1), Period: PeriodMinutes}, nil
	case IntervalWeek:
		return IntervalWindow{StartDate: now.AddDate(0, 0, -7), Period: PeriodHours}, nil
	case IntervalMonth:
		return IntervalWindow{StartDate: now.AddDate(0, -1, 0), Period: PeriodDays}, nil
	case Interval6Months:
		return IntervalWindow{StartDate: now.AddDate(0, -6, 0), Period: PeriodWeeks}, nil
	case IntervalYear:
		return IntervalWindow{StartDate: now.AddDate(-1, 0, 0), Period: PeriodMonths}, nil
	case IntervalAll:
		return IntervalWindow{StartDate: HistoryEpoch, Period: PeriodYears}, nil
	}
	return IntervalWindow{}, ErrInvalidInterval
}

// TruncUnit возвращает единицу для date_trunc в PostgreSQL
func (p HistoryPeriod) TruncUnit() string {
	switch p {
	case PeriodMinutes:
		return "minute"
	case PeriodHours:
		return "hour"
	case PeriodWeeks:
		return "week"
	case PeriodMonths:
		return "month"
	case PeriodYears:
		return "year"
	}
	return "day"
}

// Truncate округляет время вниз до начала периода (неделя начинается с понедельника)
func (p HistoryPeriod) Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	loc := t.Location()
	switch p {
	case PeriodMinutes:
		return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, loc)
	case PeriodHours:
		return time.Date(y, m, d, t.Hour(), 0, 0, 0, loc)
	case PeriodWeeks:
		offset := (int(t.Weekday()) + 6) % 7
		return time.Date(y, m, d-offset, 0, 0, 0, 0, loc)
	case PeriodMonths:
		return time.Date(y, m, 1, 0, 0, 0, 0, loc)
	case PeriodYears:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	}
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// Bucket оставляет в каждом периоде последний снимок и сортирует результат по убыванию времени
func Bucket(snapshots []*History, period HistoryPeriod, since time.Time) []*History {
	latest := make(map[time.Time]*History)
	for _, h := range snapshots {
		if h.CreatedAt.Before(since) {
			continue
		}
		key := period.Truncate(h.CreatedAt)
		if current, ok := latest[key]; !ok || h.CreatedAt.After(current.CreatedAt) {
			latest[key] = h
		}
	}

	result := make([]*History, 0, len(latest))
	for _, h := range latest {
		result = append(result, h)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

// Profit прибыль за интервал
type Profit struct {
	AmountProfit  float64 `json:"amount_profit"`
	PercentProfit float64 `json:"percent_profit"`
}

// CalculateProfit считает прибыль между первым и последним снимком.
// При нулевом начальном балансе делитель равен 1
func CalculateProfit(first, last History) Profit {
	amount := last.Balance.Decimal().Sub(first.Balance.Decimal())
	divisor := first.Balance.Decimal()
	if divisor.IsZero() {
		divisor = decimal.NewFromInt(1)
	}
	a, _ := amount.Round(MoneyDigits).Float64()
	p, _ := amount.Div(divisor).Float64()
	return Profit{AmountProfit: a, PercentProfit: p}
}
