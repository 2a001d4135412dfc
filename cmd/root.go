package cmd

import (
	"flag"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

var configPath string

// RootCmd represents the base command. Without a subcommand it starts a game.
var RootCmd = &cobra.Command{
	Use:   "bjsolitaire",
	Short: "Blackjack solitaire in the terminal",
	Long: `Bjsolitaire is a single player card game. Cards are drawn one at a time
and placed on a desk of 16 cells or thrown into one of 4 discard slots.
Every row and column of the desk is scored like a blackjack hand.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	RootCmd.PersistentFlags().AddGoFlagSet(fs)

	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: XDG_CONFIG_HOME/bjsolitaire/config.toml)")

	addPlayFlags(RootCmd)
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
