package root

import (
	"github.com/spf13/cobra"

	"github.com/gridfill/gridfill/cmd/solve"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gridfill",
		Short: "Gridfill fills crossword grids from a word list",
		Long: `Gridfill fills crossword grids from a word list using constraint
propagation and heuristic backtracking search.`,
	}

	// add sub-commands
	rootCmd.AddCommand(solve.NewSolveCommand())

	return rootCmd
}
