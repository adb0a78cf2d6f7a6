package domain

import "errors"

// Category определяет класс доменной ошибки
type Category string

const (
	CategoryNotFound     Category = "not_found"
	CategoryConflict     Category = "conflict"
	CategoryInvalidInput Category = "invalid_input"
	CategoryUnavailable  Category = "unavailable"
	CategoryInternal     Category = "internal"
)

// Error представляет доменную ошибку с категорией и подсказкой для пользователя
type Error struct {
	Category   Category
	Message    string
	Suggestion string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(category Category, message, suggestion string) *Error {
	return &Error{Category: category, Message: message, Suggestion: suggestion}
}

// CategoryOf возвращает категорию ошибки, для неизвестных ошибок - CategoryInternal
func CategoryOf(err error) Category {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Category
	}
	return CategoryInternal
}

// Ошибки пользователей
var (
	ErrUserNotFound = newError(CategoryNotFound, "user not found", "Проверьте правильность uuid пользователя")
)

// Ошибки счетов
var (
	ErrAccountNotFound       = newError(CategoryNotFound, "account not found", "Проверьте правильность uuid счёта")
	ErrAccountAlreadyCreated = newError(CategoryConflict, "account with this name already exists", "Попробуйте другое название для создания нового счёта")
	ErrTooManyAccounts       = newError(CategoryConflict, "active accounts limit exceeded", "Удалите ненужные и попробуйте еще раз")
	ErrInvalidBalance        = newError(CategoryInvalidInput, "invalid balance", "Баланс должен быть не отрицательным")
	ErrInvalidAccountType    = newError(CategoryInvalidInput, "invalid account type", "Используйте Card, Investment или Cash")
	ErrInvalidCurrency       = newError(CategoryInvalidInput, "invalid currency", "Используйте RUB или USD")
)

// Ошибки названий
var (
	ErrTitleTooLarge      = newError(CategoryInvalidInput, "title is too long", "Попробуйте другое название")
	ErrTitleEmpty         = newError(CategoryInvalidInput, "title cannot be empty", "Введите название")
	ErrTitleInvalidLetter = newError(CategoryInvalidInput, "title contains invalid characters", "Используйте цифры, латиницу и кириллицу")
)

// Ошибки целей
var (
	ErrGoalNotFound               = newError(CategoryNotFound, "goal not found", "Проверьте uid цели")
	ErrGoalTitleAlreadyTaken      = newError(CategoryConflict, "goal with this title already exists", "Попробуйте другое название")
	ErrGoalsPercentageOutOfBounds = newError(CategoryConflict, "goals savings percentage budget exceeded", "Уменьшите проценты других целей, чтобы добавить новую цель")
	ErrInvalidGoalPercentage      = newError(CategoryInvalidInput, "invalid goal percentage", "Значение должно быть больше 0 и не больше 1")
	ErrInvalidGoalDeadline        = newError(CategoryInvalidInput, "invalid goal deadline", "Дата не может быть раньше текущего времени")
	ErrInvalidGoalAmount          = newError(CategoryInvalidInput, "invalid goal amount", "Сумма не должна быть меньше 0")
	ErrInvalidGoalStatus          = newError(CategoryInvalidInput, "invalid goal status", "Используйте ACTIVE, COMPLETED, FAILED или ARCHIVED")
)

// Ошибки истории
var (
	ErrHistoryNotExists = newError(CategoryNotFound, "account history does not exist", "История счёта отсутствует за выбранный интервал")
	ErrHistoryNotFound  = newError(CategoryNotFound, "history snapshot not found", "Проверьте uid записи истории")
	ErrInvalidInterval  = newError(CategoryInvalidInput, "invalid history interval", "Используйте 1Day, 1Week, 1Month, 6Months, 1Year или All")
)

// Инфраструктурные и внутренние ошибки
var (
	ErrStorageUnavailable  = newError(CategoryUnavailable, "storage is unavailable", "Удостоверьтесь, что сервис активен и готов принимать запросы")
	ErrExcessBalanceEvents = newError(CategoryInternal, "more than one balance event in a single update", "")
)
