package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sjanel/sudoku-solver/storage"
)

var puzzlesCmd = &cobra.Command{
	Use:   "puzzles",
	Short: "List the stored puzzles",
	Long: `Puzzles lists every puzzle in storage, oldest first, with its
signature, name, number of givens, and board.  Storage is located the
same way the server locates it (REDIS_URL and DATABASE_URL).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, _, err := storage.Connect(); err != nil {
			return err
		}
		defer storage.Close()
		infos, err := storage.ListPuzzles()
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SIGNATURE\tNAME\tGIVENS\tBOARD")
		for i := range infos {
			fmt.Fprintf(w, "%.12s\t%s\t%d\t%s\n",
				infos[i].Signature, infos[i].Name, infos[i].Givens, infos[i].Board)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(puzzlesCmd)
}
