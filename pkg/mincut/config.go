package mincut

import (
	"github.com/lintang-b-s/Mincutx/pkg/engine"
	"github.com/spf13/viper"
)

type Config = engine.Config

func NewConfig(algorithm, queueImpl string, balanced bool) Config {
	return engine.NewConfig(algorithm, queueImpl, balanced)
}

// ConfigFromViper reads MINCUT_ALGORITHM, MINCUT_QUEUE and MINCUT_BALANCED,
// falling back to noi, bqueue and unbalanced.
func ConfigFromViper() Config {
	viper.SetDefault("MINCUT_ALGORITHM", string(engine.DEFAULT_ALGORITHM))
	viper.SetDefault("MINCUT_QUEUE", string(engine.DEFAULT_QUEUE))
	viper.SetDefault("MINCUT_BALANCED", false)

	return NewConfig(viper.GetString("MINCUT_ALGORITHM"), viper.GetString("MINCUT_QUEUE"),
		viper.GetBool("MINCUT_BALANCED"))
}

// WorkersFromViper returns ENGINE_WORKERS; 0 lets the engine use every CPU.
func WorkersFromViper() int {
	viper.SetDefault("ENGINE_WORKERS", 0)
	return viper.GetInt("ENGINE_WORKERS")
}
