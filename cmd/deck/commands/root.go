package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "deck",
	Short: "Investor presentation backend",
	Long: `Pitchdeck CLI

Generates the synthetic performance dataset behind the investor
presentation and serves it to the browser-hosted deck.

Usage:
  go run ./cmd/deck [command]

Examples:
  go run ./cmd/deck serve
  go run ./cmd/deck generate --horizon 75 --seed 42
  go run ./cmd/deck export`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
