package config

import (
	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/logging"
)

// Config is the process level configuration, read from the environment.
type Config struct {
	LogLevel string `env:"PATTERNS_LOG_LEVEL" enum:"debug;info;warn;error;fatal;" default:"warn"`
}

func Load() (Config, error) {
	var c Config
	if err := env.Load(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Level() logging.Level {
	return logging.Level(c.LogLevel)
}
