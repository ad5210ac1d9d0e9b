package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quantpitch/pitchdeck/internal/series"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a performance dataset and print it as JSON",
	Long: `Generates one synthetic performance dataset and writes it to stdout.

A non-zero seed makes the output fully reproducible.

Example:
  go run ./cmd/deck generate
  go run ./cmd/deck generate --horizon 75 --seed 42`,
	RunE: runGenerate,
}

var (
	generateHorizon int
	generateSeed    int64
)

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVar(&generateHorizon, "horizon", 75, "number of periods to generate")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "random seed (0 = non-deterministic)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := series.DefaultConfig()
	cfg.HorizonDays = generateHorizon
	cfg.Seed = generateSeed

	result, err := series.NewGenerator(cfg).Generate()
	if err != nil {
		return fmt.Errorf("generate series: %w", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
