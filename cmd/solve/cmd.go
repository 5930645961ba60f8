package solve

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gridfill/gridfill/internal/layout"
	"github.com/gridfill/gridfill/internal/render"
	"github.com/gridfill/gridfill/internal/sat"
	"github.com/gridfill/gridfill/pkg/crossword"
)

const (
	engineCSP = "csp"
	engineSAT = "sat"
)

func NewSolveCommand() *cobra.Command {
	var (
		output  string
		engine  string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "solve <structure> <words>",
		Short: "Fills a crossword grid with words from a word list",
		Long: `Fills a crossword grid with words from a word list. The structure file
describes the grid, one line per row, with '_' marking fillable cells
and any other character marking blocked cells. For instance:

#___#
_____
#___#

The words file holds one candidate word per line.`,
		Args: cobra.ExactArgs(2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("file (%s) not found", path)
				}
			}
			if engine != engineCSP && engine != engineSAT {
				return fmt.Errorf("unknown engine (%s): must be %q or %q", engine, engineCSP, engineSAT)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(args[0], args[1], output, engine, verbose)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the solved grid to a PNG file")
	cmd.Flags().StringVar(&engine, "engine", engineCSP, "solving engine (csp or sat)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log search decisions")
	return cmd
}

func solve(structurePath, wordsPath, output, engine string, verbose bool) error {
	logger := logrus.New()
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	grid, err := layout.ReadGridFile(structurePath)
	if err != nil {
		return err
	}
	words, err := layout.ReadWordsFile(wordsPath)
	if err != nil {
		return err
	}

	structure, err := crossword.BuildStructure(grid)
	if err != nil {
		return fmt.Errorf("error building structure from (%s): %w", structurePath, err)
	}
	logger.WithFields(logrus.Fields{
		"slots": len(structure.Slots()),
		"words": len(words),
	}).Debug("structure built")

	var (
		assignment crossword.Assignment
		ok         bool
	)
	switch engine {
	case engineSAT:
		assignment, ok = sat.NewSolver(structure, words).Solve()
	default:
		assignment, ok = crossword.NewSolver(structure, words,
			crossword.WithTracer(crossword.LoggingTracer{Logger: logger})).Solve()
	}

	if !ok {
		fmt.Println("No solution.")
		return nil
	}

	fmt.Println(render.Text(structure, assignment))
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("error creating output file (%s): %w", output, err)
		}
		defer f.Close()
		if err := render.PNG(structure, assignment, f); err != nil {
			return fmt.Errorf("error rendering image (%s): %w", output, err)
		}
	}
	return nil
}
