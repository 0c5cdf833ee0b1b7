// Package cmd implements the sudoku-solver command line.
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sudoku-solver",
	Short: "A 9x9 Sudoku solver, as a command and as a service",
	Long: `sudoku-solver enumerates the completions of standard 9x9 Sudoku
boards by constraint propagation with bisecting backtracking.

Boards are 81 characters in row-major order: '1'..'9' for givens,
'.' or '0' for blanks.  Whitespace and the '|' and '-' characters
of pretty-printed boards are ignored, so output can be pasted back
in as input.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command line.  Called once, from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
