package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack-solitaire/internal/desk"
)

// layoutCmd represents the layout command
var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Show which cells make up each row and column of the desk",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		l := desk.NewLayout()
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Columns:")
		for i, col := range l.Columns() {
			fmt.Fprintf(out, "  %d: %s\n", i+1, joinCells(col))
		}

		fmt.Fprintln(out, "Rows:")
		for j, row := range l.Rows() {
			fmt.Fprintf(out, "  %d: %s\n", j+1, joinCells(row))
		}

		fmt.Fprintf(out, "Discard: %d-%d\n", desk.NumCells+1, desk.MaxDestination)
	},
}

func init() {
	RootCmd.AddCommand(layoutCmd)
}

func joinCells(cells []int) string {
	parts := make([]string, len(cells))
	for i, n := range cells {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}
