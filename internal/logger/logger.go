package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// New builds the application logger: JSON output in production,
// human-readable console output otherwise. The returned logger is also
// installed as the zap global so shared packages can use zap.L().
func New(isProduction bool) (*zap.Logger, error) {
	var cfg zap.Config
	if isProduction {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	zap.ReplaceGlobals(log)
	return log, nil
}
