// Package logger builds the process wide zap logger from viper settings.
package logger

import (
	"time"

	"github.com/lintang-b-s/Mincutx/pkg/logger/config"
	myZap "github.com/lintang-b-s/Mincutx/pkg/logger/zap"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const DEFAULT_SERVICE_NAME = "mincutx"

// New reads LOG_LEVEL, LOG_TIME_FORMAT and SERVICE_NAME and returns a logger
// whose entries all carry the service name.
func New() (*zap.Logger, error) {
	viper.SetDefault("LOG_LEVEL", config.INFO_LEVEL)
	viper.SetDefault("LOG_TIME_FORMAT", time.RFC3339Nano)
	viper.SetDefault("SERVICE_NAME", DEFAULT_SERVICE_NAME)

	cfg := config.Configuration{
		Level:      viper.GetInt("LOG_LEVEL"),
		TimeFormat: viper.GetString("LOG_TIME_FORMAT"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base, err := myZap.New(cfg)
	if err != nil {
		return nil, err
	}
	return base.With(zap.String("service", viper.GetString("SERVICE_NAME"))), nil
}
