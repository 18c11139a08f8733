package zap

import (
	"time"

	"github.com/lintang-b-s/spellcheck/pkg/logger/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production zap logger from a validated configuration.
func New(cfg config.Configuration) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(zapcore.Level(cfg.Level))
	zapCfg.EncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format(cfg.TimeFormat))
	}

	return zapCfg.Build()
}
