// Package config loads formcheck settings from the environment and builds
// the process logger.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds formcheck settings.
type Config struct {
	Addr           string `env:"FORMCHECK_ADDR" envDefault:":8080"`
	RulesDir       string `env:"FORMCHECK_RULES_DIR"`
	LogLevel       string `env:"FORMCHECK_LOG_LEVEL" envDefault:"info"`
	LenientNumbers bool   `env:"FORMCHECK_LENIENT_NUMBERS"`
}

// Load reads envFiles (or .env when none are given) into the process
// environment and parses Config from it. Missing env files are ignored;
// variables already set in the environment win.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load env files: %w", err)
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	return cfg, nil
}

// NewLogger builds a production zap logger at level. verbose forces debug.
func NewLogger(level string, verbose bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("config: log level: %w", err)
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("config: build logger: %w", err)
	}
	return logger, nil
}
