// Package config loads host and logging settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Lua controls the embedded Lua runtime.
type Lua struct {
	// MaxViews caps how many array wrappers the runtime hands out over its
	// lifetime. Wrapping beyond the cap fails with an allocation error.
	MaxViews int  `env:"ARRAYVIEW_LUA_MAX_VIEWS" envDefault:"4096"`
	OpenLibs bool `env:"ARRAYVIEW_LUA_OPEN_LIBS" envDefault:"true"`
}

// Log controls the process logger.
type Log struct {
	Level       string `env:"ARRAYVIEW_LOG_LEVEL" envDefault:"info"`
	Development bool   `env:"ARRAYVIEW_LOG_DEV"   envDefault:"false"`
}

// Config is the full environment configuration.
type Config struct {
	Lua Lua
	Log Log
}

// Default returns the configuration used when the environment sets nothing.
func Default() Config {
	return Config{
		Lua: Lua{MaxViews: 4096, OpenLibs: true},
		Log: Log{Level: "info"},
	}
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the environment configuration, falling back to Default when
// the environment cannot be parsed.
func Load() Config {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Default()
	}
	if cfg.Lua.MaxViews <= 0 {
		cfg.Lua.MaxViews = Default().Lua.MaxViews
	}
	return cfg
}

// Logger builds a zap logger from the log settings.
func (l Log) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	if l.Development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
