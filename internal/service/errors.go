package service

import (
	"context"
	"fmt"

	"github.com/fundstracker/funds-tracker/internal/domain"
	"go.uber.org/zap"
)

// wrapError не оборачивает доменные sentinel errors, остальные ошибки
// дополняются контекстом операции
func wrapError(err error, format string, args ...any) error {
	if _, ok := err.(*domain.Error); ok { //nolint:errorlint // sentinel возвращается репозиторием как есть
		return err
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// publish передает события издателю. Ошибка публикации не отменяет
// уже сохраненное изменение и только логируется
func publish(ctx context.Context, publisher domain.EventPublisher, logger *zap.Logger, events []domain.Event) {
	if len(events) == 0 {
		return
	}
	if err := publisher.Publish(ctx, events...); err != nil {
		logger.Error("failed to publish domain events", zap.Int("count", len(events)), zap.Error(err))
	}
}
