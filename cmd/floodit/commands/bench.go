package commands

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"

	"github.com/foldedgrid/flooditsolver/internal/board"
	"github.com/foldedgrid/flooditsolver/internal/config"
	"github.com/foldedgrid/flooditsolver/internal/floodit"
	"github.com/foldedgrid/flooditsolver/internal/metrics"
)

// benchModes are run back-to-back against the same starting board.
var benchModes = []string{"admissible", "weighted", "greedy"}

// NewBenchCommand builds the "floodit bench" subcommand: run admissible,
// weighted and greedy solves against one randomly generated board and
// report move counts, elapsed time and node-expansion counts recorded
// through the metrics registry. Flag defaults come from cfg.
func NewBenchCommand(cfg *config.Config) *cobra.Command {
	var (
		size   int
		colors int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run all three solvers against one board and report their stats",
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := board.Random(board.RandomOptions{Size: size, ColorCount: colors})
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			m := metrics.NewSearchMetrics(reg)

			for _, mode := range benchModes {
				started := time.Now()
				path, solveErr := solveByMode(start, mode, m)
				if solveErr != nil {
					return solveErr
				}
				fmt.Fprintf(cmd.OutOrStdout(), "mode=%-10s moves=%-4d elapsed=%s\n", mode, len(path)-1, time.Since(started))
			}

			expansions, err := collectNodeExpansions(reg)
			if err != nil {
				return err
			}
			for _, mode := range benchModes {
				fmt.Fprintf(cmd.OutOrStdout(), "mode=%-10s nodes_expanded=%d\n", mode, expansions[mode])
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", cfg.Board.Size, "board edge length")
	cmd.Flags().IntVar(&colors, "colors", cfg.Board.ColorCount, "number of distinct colors")

	return cmd
}

// collectNodeExpansions reads back the floodit_search_nodes_expanded_total
// counter vec, keyed by its "mode" label.
func collectNodeExpansions(reg *prometheus.Registry) (map[string]float64, error) {
	families, err := reg.Gather()
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64, len(benchModes))
	for _, f := range families {
		if f.GetName() != "floodit_search_nodes_expanded_total" {
			continue
		}
		for _, metric := range f.GetMetric() {
			out[labelValue(metric, "mode")] = metric.GetCounter().GetValue()
		}
	}
	return out, nil
}

func labelValue(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}
