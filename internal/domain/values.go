package domain

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MoneyDigits количество знаков после запятой для денежных сумм и истории
const MoneyDigits int32 = 2

// Идентификаторы сущностей
type (
	UserID    = uuid.UUID
	AccountID = uuid.UUID
	GoalID    = uuid.UUID
	HistoryID = uuid.UUID
)

// Money представляет неотрицательную денежную сумму с фиксированной точностью
type Money struct {
	amount decimal.Decimal
}

// NewMoney округляет сумму до MoneyDigits знаков и отклоняет отрицательные значения
func NewMoney(amount float64) (Money, error) {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, ErrInvalidBalance
	}
	return Money{amount: decimal.NewFromFloat(amount).Round(MoneyDigits)}, nil
}

// MustMoney создает Money и паникует на невалидном значении (для констант и тестов)
func MustMoney(amount float64) Money {
	m, err := NewMoney(amount)
	if err != nil {
		panic(err)
	}
	return m
}

// ZeroMoney возвращает нулевую сумму
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Float64 возвращает сумму в виде float64
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// Decimal возвращает сумму в виде decimal
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Sub возвращает разницу сумм. Отрицательный результат недопустим
func (m Money) Sub(other Money) (Money, error) {
	diff := m.amount.Sub(other.amount)
	if diff.IsNegative() {
		return Money{}, ErrInvalidBalance
	}
	return Money{amount: diff}, nil
}

// Delta возвращает знаковую разницу m - other с точностью MoneyDigits
func (m Money) Delta(other Money) float64 {
	f, _ := m.amount.Sub(other.amount).Round(MoneyDigits).Float64()
	return f
}

// Equal сравнивает суммы после округления
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// GreaterThan возвращает true если m > other
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

func (m Money) String() string {
	return m.amount.StringFixed(MoneyDigits)
}

// TitleMaxLen максимальная длина названия в символах
const TitleMaxLen = 63

// Title представляет название счёта или цели
type Title struct {
	value string
}

// NewTitle проверяет длину и допустимость символов названия
func NewTitle(value string) (Title, error) {
	if strings.TrimSpace(value) == "" {
		return Title{}, ErrTitleEmpty
	}
	if utf8.RuneCountInString(value) > TitleMaxLen {
		return Title{}, ErrTitleTooLarge
	}
	for _, r := range value {
		if !isTitleRune(r) {
			return Title{}, ErrTitleInvalidLetter
		}
	}
	return Title{value: value}, nil
}

// MustTitle создает Title и паникует на невалидном значении
func MustTitle(value string) Title {
	t, err := NewTitle(value)
	if err != nil {
		panic(err)
	}
	return t
}

// RestoreTitle восстанавливает ранее проверенное название из хранилища
func RestoreTitle(value string) Title {
	return Title{value: value}
}

func (t Title) String() string {
	return t.value
}

// Допустимы латиница, цифры, кириллица (включая ё/Ё) и пробел
func isTitleRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r >= 'а' && r <= 'я', r >= 'А' && r <= 'Я':
		return true
	case r == 'ё', r == 'Ё', r == ' ':
		return true
	}
	return false
}

// DefaultSavingsPercentage процент накоплений цели по умолчанию
const DefaultSavingsPercentage = 0.2

// PercentageDigits количество знаков после запятой для доли, совпадает с NUMERIC(6,4) в хранилище
const PercentageDigits int32 = 4

// Percentage представляет долю в диапазоне (0, 1]
type Percentage struct {
	value decimal.Decimal
}

// NewPercentage округляет долю до PercentageDigits знаков и проверяет, что она лежит в (0, 1]
func NewPercentage(value float64) (Percentage, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Percentage{}, ErrInvalidGoalPercentage
	}
	d := decimal.NewFromFloat(value).Round(PercentageDigits)
	if !d.IsPositive() || d.GreaterThan(decimal.NewFromInt(1)) {
		return Percentage{}, ErrInvalidGoalPercentage
	}
	return Percentage{value: d}, nil
}

// RestorePercentage восстанавливает долю из хранилища
func RestorePercentage(value float64) Percentage {
	return Percentage{value: decimal.NewFromFloat(value).Round(PercentageDigits)}
}

// Float64 возвращает долю в виде float64
func (p Percentage) Float64() float64 {
	f, _ := p.value.Float64()
	return f
}

// Decimal возвращает долю в виде decimal
func (p Percentage) Decimal() decimal.Decimal {
	return p.value
}

// PercentageFitsBudget проверяет, что сумма долей не превышает 1
func PercentageFitsBudget(candidate Percentage, others []Percentage) bool {
	total := candidate.value
	for _, p := range others {
		total = total.Add(p.value)
	}
	return total.LessThanOrEqual(decimal.NewFromInt(1))
}

// AccountType представляет тип счёта
type AccountType string

const (
	AccountTypeCard       AccountType = "Card"
	AccountTypeInvestment AccountType = "Investment"
	AccountTypeCash       AccountType = "Cash"
)

// Validate проверяет тип счёта
func (t AccountType) Validate() error {
	switch t {
	case AccountTypeCard, AccountTypeInvestment, AccountTypeCash:
		return nil
	}
	return ErrInvalidAccountType
}

// Currency представляет валюту счёта
type Currency string

const (
	CurrencyRUB Currency = "RUB"
	CurrencyUSD Currency = "USD"
)

// Validate проверяет валюту
func (c Currency) Validate() error {
	switch c {
	case CurrencyRUB, CurrencyUSD:
		return nil
	}
	return ErrInvalidCurrency
}

// GoalStatus представляет статус цели
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "ACTIVE"
	GoalStatusCompleted GoalStatus = "COMPLETED"
	GoalStatusFailed    GoalStatus = "FAILED"
	GoalStatusArchived  GoalStatus = "ARCHIVED"
)

// Validate проверяет статус цели
func (s GoalStatus) Validate() error {
	switch s {
	case GoalStatusActive, GoalStatusCompleted, GoalStatusFailed, GoalStatusArchived:
		return nil
	}
	return ErrInvalidGoalStatus
}
