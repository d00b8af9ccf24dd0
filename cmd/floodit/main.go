// Package main provides the floodit command-line entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/foldedgrid/flooditsolver/cmd/floodit/commands"
	"github.com/foldedgrid/flooditsolver/internal/config"
)

func main() {
	cfg, err := config.Load(os.Getenv("FLOODIT_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	root := &cobra.Command{
		Use:           "floodit",
		Short:         "Flood-It puzzle solver",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(commands.NewSolveCommand(cfg))
	root.AddCommand(commands.NewBenchCommand(cfg))

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
