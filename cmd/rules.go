package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack-solitaire/internal/console"
)

var rulesText = []string{
	"Cards are drawn one at a time from a shuffled deck of 52. Each card goes into a free cell of the game desk (1 to 16) or into one of the four discard slots (17 to 20). A cell is filled once and for all.",
	"The desk has five columns. The outer columns hold two cells and the three inner columns hold four, giving four rows: two full rows of five cells and two short rows of three.",
	"Each row and column is counted like a blackjack hand. Number cards are worth their number, jacks, queens and kings 10, and aces 11, dropping to 1 one at a time while the line is over 21.",
	"A line scores 1 for 16 points or less, 2 for 17, 3 for 18, 4 for 19, 5 for 20 and 7 for 21. A 21 in one of the two cell columns is a blackjack and scores 10. Rows never score a blackjack. A line over 21 scores nothing.",
	"The score is shown after every card. The game ends when all 16 desk cells are filled; the discard slots do not have to be used.",
}

// rulesCmd represents the rules command
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Explain the rules of the game",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		width := console.TerminalWidth(os.Stdout, 80) - 4
		out := cmd.OutOrStdout()

		for i, paragraph := range rulesText {
			if i > 0 {
				fmt.Fprintln(out)
			}
			for _, line := range console.WrapText(paragraph, width) {
				fmt.Fprintln(out, "  "+line)
			}
		}
	},
}

func init() {
	RootCmd.AddCommand(rulesCmd)
}
