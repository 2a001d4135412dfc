package cmd

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/arcanaland/blackjack-solitaire/internal/config"
	"github.com/arcanaland/blackjack-solitaire/internal/console"
	"github.com/arcanaland/blackjack-solitaire/internal/deck"
	"github.com/arcanaland/blackjack-solitaire/internal/game"
)

var (
	seedFlag      int64
	cardsFlag     string
	noColorFlag   bool
	breakdownFlag bool
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Play deals a shuffled deck one card at a time. Enter the number of a free
cell for each card: 1 to 16 are the cells of the game desk, 17 to 20 are
the discard slots. The game ends once all 16 desk cells are filled.

Examples:
  bjsolitaire play
  bjsolitaire play --seed 42
  bjsolitaire play --cards AH,KD,10S,...`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	RootCmd.AddCommand(playCmd)
	addPlayFlags(playCmd)
}

func addPlayFlags(c *cobra.Command) {
	c.Flags().Int64Var(&seedFlag, "seed", 0, "Seed for the shuffle (default: from config, 0 picks one from the clock)")
	c.Flags().StringVar(&cardsFlag, "cards", "", "Comma separated cards to deal in order instead of a shuffled deck")
	c.Flags().BoolVar(&noColorFlag, "no-color", false, "Disable coloured output")
	c.Flags().BoolVar(&breakdownFlag, "breakdown", false, "Print the score of every row and column")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed = seedFlag
	}
	if cmd.Flags().Changed("breakdown") {
		cfg.Breakdown = breakdownFlag
	}

	colorEnabled := !noColorFlag && console.ColorEnabled(cfg.Color, os.Stdout)
	theme, err := console.NewTheme(cfg.Theme.Colors(), colorEnabled)
	if err != nil {
		return fmt.Errorf("error loading theme: %v", err)
	}

	d, err := buildDeck(cfg.Seed)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	e := game.New(d,
		console.NewPrompter(cmd.InOrStdin(), out),
		console.NewRenderer(out, theme, cfg.Breakdown))

	if _, err := e.Play(); err != nil {
		if errors.Is(err, console.ErrInputClosed) {
			return fmt.Errorf("game abandoned: %w", err)
		}
		return err
	}

	return nil
}

// buildDeck returns the scripted deck from --cards, or a full deck
// shuffled with seed
func buildDeck(seed int64) (*deck.Deck, error) {
	if cardsFlag != "" {
		d, err := deck.FromCodes(strings.Split(cardsFlag, ","))
		if err != nil {
			return nil, fmt.Errorf("error reading --cards: %v", err)
		}
		klog.V(1).Infof("using scripted deck of %d cards", d.Len())
		return d, nil
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	klog.V(1).Infof("shuffling with seed %d", seed)

	d := deck.New()
	d.Shuffle(rand.New(rand.NewSource(seed)))
	return d, nil
}
