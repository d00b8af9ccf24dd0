package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaultsWithoutAConfigFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, defaultSize, cfg.Board.Size)
	require.Equal(t, defaultColorCount, cfg.Board.ColorCount)
	require.Equal(t, defaultHeuristicMode, cfg.Solver.HeuristicMode)
	require.Equal(t, defaultAsyncBlockSize, cfg.Solver.AsyncBlockSize)
}

func TestValidateRejectsNonPositiveSize(t *testing.T) {
	cfg := &Config{
		Board:  BoardConfig{Size: 0, ColorCount: 6},
		Solver: SolverConfig{HeuristicMode: "weighted", AsyncBlockSize: 100},
	}
	require.ErrorIs(t, validate(cfg), ErrInvalidSize)
}

func TestValidateRejectsUnknownHeuristicMode(t *testing.T) {
	cfg := &Config{
		Board:  BoardConfig{Size: 14, ColorCount: 6},
		Solver: SolverConfig{HeuristicMode: "bogus", AsyncBlockSize: 100},
	}
	require.ErrorIs(t, validate(cfg), ErrInvalidHeuristicMode)
}

func TestValidateRejectsNonPositiveAsyncBlockSize(t *testing.T) {
	cfg := &Config{
		Board:  BoardConfig{Size: 14, ColorCount: 6},
		Solver: SolverConfig{HeuristicMode: "weighted", AsyncBlockSize: 0},
	}
	require.ErrorIs(t, validate(cfg), ErrInvalidAsyncBlockSize)
}
