package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aliskhannn/flashcard-quiz-bot/internal/config"
)

const envProduction = "production"

// New builds the application logger. Production emits JSON at info level,
// or debug when telegram.debug is set; every other environment gets the
// colored development console. All entries carry the environment name.
func New(cfg *config.Config) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.Env == envProduction {
		zcfg = zap.NewProductionConfig()
		if cfg.Telegram.Debug {
			zcfg.Level.SetLevel(zapcore.DebugLevel)
		}
	} else {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	lg, err := zcfg.Build(zap.Fields(zap.String("env", cfg.Env)))
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return lg, nil
}
