// Package commands implements the floodit CLI's subcommands.
package commands

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/foldedgrid/flooditsolver/internal/board"
	"github.com/foldedgrid/flooditsolver/internal/config"
	"github.com/foldedgrid/flooditsolver/internal/floodit"
	"github.com/foldedgrid/flooditsolver/internal/logging"
	"github.com/foldedgrid/flooditsolver/internal/metrics"
)

// NewSolveCommand builds the "floodit solve" subcommand: generate a random
// board and solve it with one heuristic mode, printing the move count and
// elapsed time. Flag defaults come from cfg (file/env via internal/config).
func NewSolveCommand(cfg *config.Config) *cobra.Command {
	var (
		size      int
		colors    int
		mode      string
		logLevel  string
		logPretty bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a freshly generated Flood-It board",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := logging.New(logLevel, logPretty)
			reg := prometheus.NewRegistry()
			m := metrics.NewSearchMetrics(reg)

			start, err := board.Random(board.RandomOptions{Size: size, ColorCount: colors})
			if err != nil {
				return err
			}

			logger.Info().Int("size", size).Int("colors", colors).Str("mode", mode).Msg("solving board")

			started := time.Now()
			path, moveErr := solveByMode(start, mode, m)
			if moveErr != nil {
				return moveErr
			}

			fmt.Fprintf(cmd.OutOrStdout(), "mode=%s moves=%d elapsed=%s\n", mode, len(path)-1, time.Since(started))
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", cfg.Board.Size, "board edge length")
	cmd.Flags().IntVar(&colors, "colors", cfg.Board.ColorCount, "number of distinct colors")
	cmd.Flags().StringVar(&mode, "mode", cfg.Solver.HeuristicMode, "admissible, weighted, or greedy")
	cmd.Flags().StringVar(&logLevel, "log-level", cfg.Logging.Level, "zerolog level")
	cmd.Flags().BoolVar(&logPretty, "log-pretty", cfg.Logging.Pretty, "use a human-readable console log writer")

	return cmd
}

// solveByMode dispatches to the requested solver entry point.
func solveByMode(start board.Board, mode string, m *metrics.SearchMetrics) ([]board.Board, error) {
	switch mode {
	case "admissible":
		return floodit.SolveBoard(start, floodit.SolveOptions{Admissible: true, Metrics: m})
	case "weighted":
		return floodit.SolveBoard(start, floodit.SolveOptions{Metrics: m})
	case "greedy":
		return floodit.SolveBoardGreedy(start, 0), nil
	default:
		return nil, fmt.Errorf("unknown mode %q: want admissible, weighted, or greedy", mode)
	}
}
