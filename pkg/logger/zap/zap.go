package zap

import (
	"os"

	"github.com/lintang-b-s/Mincutx/pkg/logger/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a json zap logger writing to stdout. Levels follow zapcore, so
// config.DEBUG_LEVEL maps to zapcore.DebugLevel and so on.
func New(cfg config.Configuration) (*zap.Logger, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(cfg.TimeFormat)
	encoderConfig.TimeKey = "timestamp"

	level := zap.NewAtomicLevelAt(zapcore.Level(cfg.Level))

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.Lock(os.Stdout),
		level,
	)

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}
