package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sjanel/sudoku-solver/puzzle"
)

var (
	solveMax       int
	solveFile      string
	solveCountOnly bool
	solveFlat      bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [board]",
	Short: "Solve a board",
	Long: `Solve enumerates the completions of one board.  The board comes
from the argument, from --file, or from standard input ("-" or no
argument), in that order of preference.  An argument of the form @name
picks a built-in board (` + builtinList() + `).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := boardText(args)
		if err != nil {
			return err
		}
		g, err := puzzle.Parse(text)
		if err != nil {
			return err
		}
		solutions := g.Solve(solveMax)
		if solveCountOnly {
			fmt.Fprintln(cmd.OutOrStdout(), len(solutions))
			return nil
		}
		if len(solutions) == 0 {
			return fmt.Errorf("board has no solution")
		}
		for i := range solutions {
			if solveFlat {
				fmt.Fprintln(cmd.OutOrStdout(), solutions[i].Line())
			} else {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				fmt.Fprint(cmd.OutOrStdout(), solutions[i].String())
			}
		}
		return nil
	},
}

// boardText finds the board to solve per the argument rules.
func boardText(args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		if name, ok := strings.CutPrefix(args[0], "@"); ok {
			board, ok := builtinBoards[name]
			if !ok {
				return "", fmt.Errorf("no built-in board %q (have %s)", name, builtinList())
			}
			return board, nil
		}
		return args[0], nil
	}
	if solveFile != "" {
		bytes, err := os.ReadFile(solveFile)
		if err != nil {
			return "", err
		}
		return string(bytes), nil
	}
	bytes, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func init() {
	solveCmd.Flags().IntVarP(&solveMax, "max", "m", 1,
		"maximum number of solutions to enumerate (0 for all)")
	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "",
		"read the board from this file")
	solveCmd.Flags().BoolVarP(&solveCountOnly, "count", "c", false,
		"print only the number of solutions found")
	solveCmd.Flags().BoolVar(&solveFlat, "flat", false,
		"print solutions as flat 81-character lines")
	rootCmd.AddCommand(solveCmd)
}
