package memory

import (
	"context"
	"sort"

	"github.com/fundstracker/funds-tracker/internal/domain"
)

// GoalRepository реализует domain.GoalRepository
type GoalRepository struct {
	store *Store
}

// NewGoalRepository создает новый GoalRepository
func NewGoalRepository(store *Store) *GoalRepository {
	return &GoalRepository{store: store}
}

// Create сохраняет цель
func (r *GoalRepository) Create(_ context.Context, goal *domain.Goal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := r.checkLocked(goal); err != nil {
		return err
	}
	r.store.goals[goal.ID] = *goal
	return nil
}

// Update сохраняет все изменяемые поля цели
func (r *GoalRepository) Update(_ context.Context, goal *domain.Goal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.goals[goal.ID]
	if !ok || stored.UserID != goal.UserID {
		return domain.ErrGoalNotFound
	}
	if err := r.checkLocked(goal); err != nil {
		return err
	}
	r.store.goals[goal.ID] = *goal
	return nil
}

// checkLocked повторяет ограничения таблицы goals. Вызывается под r.store.mu
func (r *GoalRepository) checkLocked(goal *domain.Goal) error {
	if goal.AccountID != nil {
		if _, ok := r.store.accounts[*goal.AccountID]; !ok {
			return domain.ErrAccountNotFound
		}
	}

	var others []domain.Percentage
	for id, g := range r.store.goals {
		if id == goal.ID || g.UserID != goal.UserID {
			continue
		}
		if g.Title == goal.Title {
			return domain.ErrGoalTitleAlreadyTaken
		}
		if g.IsActive() {
			others = append(others, g.SavingsPercentage)
		}
	}

	if goal.IsActive() && !domain.PercentageFitsBudget(goal.SavingsPercentage, others) {
		return domain.ErrGoalsPercentageOutOfBounds
	}
	return nil
}

// GetByID получает цель пользователя
func (r *GoalRepository) GetByID(_ context.Context, userID domain.UserID, goalID domain.GoalID) (*domain.Goal, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	goal, ok := r.store.goals[goalID]
	if !ok || goal.UserID != userID {
		return nil, domain.ErrGoalNotFound
	}
	return &goal, nil
}

// GetByUserID получает все цели пользователя
func (r *GoalRepository) GetByUserID(_ context.Context, userID domain.UserID) ([]*domain.Goal, error) {
	return r.filter(func(g domain.Goal) bool { return g.UserID == userID }), nil
}

// GetByAccountID получает цели пользователя, привязанные к счёту
func (r *GoalRepository) GetByAccountID(_ context.Context, userID domain.UserID, accountID domain.AccountID) ([]*domain.Goal, error) {
	return r.filter(func(g domain.Goal) bool {
		return g.UserID == userID && g.AccountID != nil && *g.AccountID == accountID
	}), nil
}

func (r *GoalRepository) filter(match func(domain.Goal) bool) []*domain.Goal {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var goals []*domain.Goal
	for _, g := range r.store.goals {
		if match(g) {
			goal := g
			goals = append(goals, &goal)
		}
	}
	sort.Slice(goals, func(i, j int) bool {
		return goals[i].CreatedAt.Before(goals[j].CreatedAt)
	})
	return goals
}

// IsTitleTaken проверяет, есть ли у пользователя цель с таким названием
func (r *GoalRepository) IsTitleTaken(_ context.Context, userID domain.UserID, title domain.Title) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, g := range r.store.goals {
		if g.UserID == userID && g.Title == title {
			return true, nil
		}
	}
	return false, nil
}

// Delete удаляет цель пользователя
func (r *GoalRepository) Delete(_ context.Context, userID domain.UserID, goalID domain.GoalID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	goal, ok := r.store.goals[goalID]
	if !ok || goal.UserID != userID {
		return domain.ErrGoalNotFound
	}
	delete(r.store.goals, goalID)
	return nil
}
