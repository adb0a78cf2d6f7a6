package service

import (
	"context"
	"errors"
	"time"

	"github.com/fundstracker/funds-tracker/internal/domain"
	"go.uber.org/zap"
)

// GoalsService реализует domain.GoalsService
type GoalsService struct {
	goals     domain.GoalRepository
	accounts  domain.AccountRepository
	users     domain.UserRepository
	publisher domain.EventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewGoalsService создает новый GoalsService
func NewGoalsService(
	goals domain.GoalRepository,
	accounts domain.AccountRepository,
	users domain.UserRepository,
	publisher domain.EventPublisher,
	logger *zap.Logger,
) *GoalsService {
	return &GoalsService{
		goals:     goals,
		accounts:  accounts,
		users:     users,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// CreateGoal создает цель. При привязке к счёту текущая сумма цели
// сразу берется из баланса счёта
func (s *GoalsService) CreateGoal(ctx context.Context, cmd domain.CreateGoalCommand) (*domain.Goal, error) {
	if _, err := s.users.GetByID(ctx, cmd.UserID); err != nil {
		return nil, wrapError(err, "goals service: failed to get user %s", cmd.UserID)
	}

	title, err := domain.NewTitle(cmd.Title)
	if err != nil {
		return nil, err
	}

	taken, err := s.goals.IsTitleTaken(ctx, cmd.UserID, title)
	if err != nil {
		return nil, wrapError(err, "goals service: failed to check goal title")
	}
	if taken {
		return nil, domain.ErrGoalTitleAlreadyTaken
	}

	percentage := domain.DefaultSavingsPercentage
	if cmd.SavingsPercentage != nil {
		percentage = *cmd.SavingsPercentage
	}

	now := s.now()
	goal, err := domain.NewGoal(cmd.UserID, cmd.Title, cmd.TargetAmount, percentage, cmd.AccountID, cmd.Deadline, now)
	if err != nil {
		return nil, err
	}

	if err := s.checkBudget(ctx, goal); err != nil {
		return nil, err
	}

	var events []domain.Event
	if cmd.AccountID != nil {
		account, err := s.accounts.GetByID(ctx, cmd.UserID, *cmd.AccountID)
		if err != nil {
			return nil, wrapError(err, "goals service: failed to get account %s", *cmd.AccountID)
		}
		if goal, events, err = goal.ChangeCurrentAmount(account.Balance.Float64(), now); err != nil {
			return nil, err
		}
	}

	if err := s.goals.Create(ctx, &goal); err != nil {
		return nil, wrapError(err, "goals service: failed to create goal")
	}

	publish(ctx, s.publisher, s.logger, events)

	return &goal, nil
}

// GetUserGoals получает все цели пользователя
func (s *GoalsService) GetUserGoals(ctx context.Context, userID domain.UserID) ([]*domain.Goal, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, wrapError(err, "goals service: failed to get user %s", userID)
	}

	goals, err := s.goals.GetByUserID(ctx, userID)
	if err != nil {
		return nil, wrapError(err, "goals service: failed to get goals for user %s", userID)
	}
	return goals, nil
}

// GetUserGoal получает цель пользователя
func (s *GoalsService) GetUserGoal(ctx context.Context, userID domain.UserID, goalID domain.GoalID) (*domain.Goal, error) {
	goal, err := s.goals.GetByID(ctx, userID, goalID)
	if err != nil {
		return nil, wrapError(err, "goals service: failed to get goal %s", goalID)
	}
	return goal, nil
}

// UpdateGoal применяет заданные поля команды. Отвязка выполняется до привязки,
// поэтому один вызов может заменить счёт цели
func (s *GoalsService) UpdateGoal(ctx context.Context, cmd domain.UpdateGoalCommand) (*domain.Goal, error) {
	stored, err := s.goals.GetByID(ctx, cmd.UserID, cmd.GoalID)
	if err != nil {
		return nil, wrapError(err, "goals service: failed to get goal %s", cmd.GoalID)
	}

	now := s.now()
	goal := *stored
	var events []domain.Event

	if cmd.TargetAmount != nil {
		if goal, err = goal.ChangeTargetAmount(*cmd.TargetAmount); err != nil {
			return nil, err
		}
	}

	if cmd.CurrentAmount != nil {
		var reached []domain.Event
		if goal, reached, err = goal.ChangeCurrentAmount(*cmd.CurrentAmount, now); err != nil {
			return nil, err
		}
		events = append(events, reached...)
	}

	if cmd.Deadline != nil {
		if goal, err = goal.ChangeDeadline(*cmd.Deadline, now); err != nil {
			return nil, err
		}
	}

	recheckBudget := false
	if cmd.SavingsPercentage != nil {
		percentage, err := domain.NewPercentage(*cmd.SavingsPercentage)
		if err != nil {
			return nil, err
		}
		goal = goal.ChangePercentage(percentage)
		recheckBudget = true
	}

	if cmd.Status != nil {
		wasActive := goal.IsActive()
		if goal, err = goal.ChangeStatus(*cmd.Status); err != nil {
			return nil, err
		}
		if !wasActive && goal.IsActive() {
			recheckBudget = true
		}
	}

	if recheckBudget {
		if err := s.checkBudget(ctx, goal); err != nil {
			return nil, err
		}
	}

	if cmd.UnlinkAccount {
		goal = goal.UnlinkAccount()
	}

	if cmd.AccountID != nil {
		account, err := s.accounts.GetByID(ctx, cmd.UserID, *cmd.AccountID)
		if err != nil {
			return nil, wrapError(err, "goals service: failed to get account %s", *cmd.AccountID)
		}
		var linked, reached []domain.Event
		goal, linked = goal.LinkToAccount(account.ID, now)
		if goal, reached, err = goal.ChangeCurrentAmount(account.Balance.Float64(), now); err != nil {
			return nil, err
		}
		events = append(events, linked...)
		events = append(events, reached...)
	}

	if cmd.Title != nil {
		if goal, err = goal.ChangeTitle(*cmd.Title); err != nil {
			return nil, err
		}
		if goal.Title != stored.Title {
			taken, err := s.goals.IsTitleTaken(ctx, cmd.UserID, goal.Title)
			if err != nil {
				return nil, wrapError(err, "goals service: failed to check goal title")
			}
			if taken {
				return nil, domain.ErrGoalTitleAlreadyTaken
			}
		}
	}

	if err := s.goals.Update(ctx, &goal); err != nil {
		return nil, wrapError(err, "goals service: failed to update goal %s", goal.ID)
	}

	publish(ctx, s.publisher, s.logger, events)

	return &goal, nil
}

// DeleteGoal удаляет цель пользователя
func (s *GoalsService) DeleteGoal(ctx context.Context, userID domain.UserID, goalID domain.GoalID) error {
	if _, err := s.goals.GetByID(ctx, userID, goalID); err != nil {
		return wrapError(err, "goals service: failed to get goal %s", goalID)
	}

	if err := s.goals.Delete(ctx, userID, goalID); err != nil {
		return wrapError(err, "goals service: failed to delete goal %s", goalID)
	}

	return nil
}

// SyncLinkedGoals копирует текущий баланс счёта в текущую сумму всех привязанных к нему целей.
// Баланс читается из хранилища, поэтому порядок выполнения задач не важен
func (s *GoalsService) SyncLinkedGoals(ctx context.Context, userID domain.UserID, accountID domain.AccountID) error {
	account, err := s.accounts.GetByID(ctx, userID, accountID)
	if err != nil {
		return wrapError(err, "goals service: failed to get account %s", accountID)
	}

	goals, err := s.goals.GetByAccountID(ctx, userID, accountID)
	if err != nil {
		return wrapError(err, "goals service: failed to get goals of account %s", accountID)
	}

	balance := account.Balance.Float64()
	var errs []error
	for _, g := range goals {
		if err := s.syncAmount(ctx, *g, balance); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SyncGoalAmount копирует баланс счёта в текущую сумму цели. Если цель
// с тех пор перепривязана к другому счёту, синхронизация пропускается
func (s *GoalsService) SyncGoalAmount(ctx context.Context, userID domain.UserID, goalID domain.GoalID, accountID domain.AccountID) error {
	goal, err := s.goals.GetByID(ctx, userID, goalID)
	if err != nil {
		return wrapError(err, "goals service: failed to get goal %s", goalID)
	}
	if goal.AccountID == nil || *goal.AccountID != accountID {
		s.logger.Debug("goal relinked, amount sync skipped",
			zap.String("goal_id", goalID.String()),
			zap.String("account_id", accountID.String()),
		)
		return nil
	}

	account, err := s.accounts.GetByID(ctx, userID, accountID)
	if err != nil {
		return wrapError(err, "goals service: failed to get account %s", accountID)
	}

	return s.syncAmount(ctx, *goal, account.Balance.Float64())
}

func (s *GoalsService) syncAmount(ctx context.Context, goal domain.Goal, balance float64) error {
	updated, events, err := goal.ChangeCurrentAmount(balance, s.now())
	if err != nil {
		return err
	}
	if updated.CurrentAmount.Equal(goal.CurrentAmount) {
		return nil
	}

	if err := s.goals.Update(ctx, &updated); err != nil {
		return wrapError(err, "goals service: failed to sync goal %s", goal.ID)
	}

	publish(ctx, s.publisher, s.logger, events)
	return nil
}

// checkBudget быстрая проверка суммы процентов активных целей без учета самой цели.
// Окончательную проверку выполняет хранилище
func (s *GoalsService) checkBudget(ctx context.Context, goal domain.Goal) error {
	if !goal.IsActive() {
		return nil
	}

	goals, err := s.goals.GetByUserID(ctx, goal.UserID)
	if err != nil {
		return wrapError(err, "goals service: failed to get goals for user %s", goal.UserID)
	}

	others := make([]domain.Percentage, 0, len(goals))
	for _, g := range goals {
		if g.ID != goal.ID && g.IsActive() {
			others = append(others, g.SavingsPercentage)
		}
	}

	if !domain.PercentageFitsBudget(goal.SavingsPercentage, others) {
		return domain.ErrGoalsPercentageOutOfBounds
	}
	return nil
}
