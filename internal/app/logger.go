package app

import (
	"fmt"

	"go.uber.org/zap"
)

// initLogger создает и настраивает логгер. "production" включает JSON логгер,
// остальные значения задают уровень для development логгера
func initLogger(logLevel string) (*zap.Logger, error) {
	var cfg zap.Config

	if logLevel == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		if level, err := zap.ParseAtomicLevel(logLevel); err == nil {
			cfg.Level = level
		}
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	return logger, nil
}
