package cmd

import (
	"fmt"
	"os"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack-solitaire/internal/card"
	"github.com/arcanaland/blackjack-solitaire/internal/config"
	"github.com/arcanaland/blackjack-solitaire/internal/console"
)

var showCmd = &cobra.Command{
	Use:   "show [card]",
	Short: "Display information about a card",
	Long: `Show displays the name, suit, rank and point value of a card.
Cards are written the way the game prints them: rank then suit letter.

Examples:
  bjsolitaire show AH
  bjsolitaire show 10s
  bjsolitaire show QC`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := card.Parse(args[0])
		if err != nil {
			return err
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		colorEnabled := console.ColorEnabled(cfg.Color, os.Stdout)
		theme, err := console.NewTheme(cfg.Theme.Colors(), colorEnabled)
		if err != nil {
			return fmt.Errorf("error loading theme: %v", err)
		}
		if !colorEnabled {
			colorize.NoColor = true
		}

		for _, line := range cardInfo(c, theme) {
			fmt.Fprintln(cmd.OutOrStdout(), "  "+line)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

// cardInfo returns the labelled description lines of a card
func cardInfo(c card.Card, theme *console.Theme) []string {
	var lines []string

	lines = append(lines, colorize.CyanString("Card:   ")+colorize.HiWhiteString("%s", c.Name()))
	lines = append(lines, colorize.CyanString("Code:   ")+theme.Card(c))
	lines = append(lines, colorize.CyanString("Suit:   ")+
		colorize.HiWhiteString("%s · ", c.Suit)+theme.Suit(c.Suit, getSuitSymbol(c.Suit)))
	lines = append(lines, colorize.CyanString("Rank:   ")+colorize.HiWhiteString("%s", c.Rank))

	if c.IsAce() {
		lines = append(lines, colorize.CyanString("Points: ")+
			colorize.HiWhiteString("%d (or 1 when a line goes over 21)", c.PointValue()))
	} else {
		lines = append(lines, colorize.CyanString("Points: ")+colorize.HiWhiteString("%d", c.PointValue()))
	}

	return lines
}

// getSuitSymbol returns a symbol for the suit
func getSuitSymbol(suit card.Suit) string {
	switch suit {
	case card.Hearts:
		return "♥"
	case card.Spades:
		return "♠"
	case card.Diamonds:
		return "♦"
	case card.Clubs:
		return "♣"
	default:
		return "•"
	}
}
