// Package config loads the solver's runtime defaults (board size, color
// count, heuristic mode, async block size) from file and environment via
// viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidSize           = errors.New("board size must be positive")
	ErrInvalidColorCount     = errors.New("color count must be positive")
	ErrInvalidHeuristicMode  = errors.New("heuristic mode must be admissible, weighted, or greedy")
	ErrInvalidAsyncBlockSize = errors.New("async block size must be positive")
)

// Default configuration values.
const (
	defaultSize           = 14
	defaultColorCount     = 6
	defaultHeuristicMode  = "weighted"
	defaultAsyncBlockSize = 100
)

// Config holds the solver's runtime configuration.
type Config struct {
	Board   BoardConfig   `mapstructure:"board"`
	Solver  SolverConfig  `mapstructure:"solver"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// BoardConfig controls board generation.
type BoardConfig struct {
	Size       int `mapstructure:"size"`
	ColorCount int `mapstructure:"color_count"`
}

// SolverConfig controls which heuristic and search parameters are used.
type SolverConfig struct {
	HeuristicMode  string `mapstructure:"heuristic_mode"`
	AsyncBlockSize int    `mapstructure:"async_block_size"`
	LookAhead      int    `mapstructure:"look_ahead"`
}

// LoggingConfig controls the zerolog setup (internal/logging).
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// Load loads configuration from configPath (if non-empty) or the default
// search paths, overlaid with FLOODIT_-prefixed environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("FLOODIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("board.size", defaultSize)
	v.SetDefault("board.color_count", defaultColorCount)

	v.SetDefault("solver.heuristic_mode", defaultHeuristicMode)
	v.SetDefault("solver.async_block_size", defaultAsyncBlockSize)
	v.SetDefault("solver.look_ahead", 0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.pretty", true)
}

func validate(cfg *Config) error {
	if cfg.Board.Size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, cfg.Board.Size)
	}
	if cfg.Board.ColorCount <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidColorCount, cfg.Board.ColorCount)
	}
	switch cfg.Solver.HeuristicMode {
	case "admissible", "weighted", "greedy":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidHeuristicMode, cfg.Solver.HeuristicMode)
	}
	if cfg.Solver.AsyncBlockSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidAsyncBlockSize, cfg.Solver.AsyncBlockSize)
	}
	return nil
}
