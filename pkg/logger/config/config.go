package config

import (
	"fmt"
	"time"
)

const (
	DEBUG_LEVEL int = iota - 1
	INFO_LEVEL
	WARN_LEVEL
	ERROR_LEVEL
	FATAL_LEVEL
)

type Configuration struct {
	Level      int
	TimeFormat string
}

func (c Configuration) Validate() error {
	if c.Level < DEBUG_LEVEL || c.Level > FATAL_LEVEL {
		return fmt.Errorf("invalid log level %d, must be between %d and %d", c.Level, DEBUG_LEVEL, FATAL_LEVEL)
	}

	if c.TimeFormat == "" {
		return fmt.Errorf("log time format must not be empty")
	}

	// layouts without any reference component format to themselves
	if time.Unix(0, 0).UTC().Format(c.TimeFormat) == c.TimeFormat {
		return fmt.Errorf("invalid log time format %q", c.TimeFormat)
	}

	return nil
}
