// bingo prints bingo cards engineered so that every card completes its
// first line on the same call when items are called in order.
//
// Usage:
//
//	bingo catalogs            - List available catalogs
//	bingo cards               - Generate a batch of cards (HTML, PDF or text)
//	bingo key                 - Print the catalog key
//	bingo show                - Show one card in the terminal
//	bingo replay              - Step through a game call by call
//	bingo stats               - Measure how many attempts cards need
//	bingo intro <file.md>     - Render a host introduction
//
// Global flags:
//
//	--seed <value>       - RNG seed for reproducible cards (0 = time based)
//	--config <path>      - Config file (default search: ~/.bingo, ./configs)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import built-in catalogs to register them
	_ "github.com/vovakirdan/bingo/internal/catalog/builtin"
	"github.com/vovakirdan/bingo/internal/config"
)

var (
	// Global flags
	flagSeed     uint64
	flagConfig   string
	flagLogLevel string

	cfg    = config.Default()
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "bingo",
	})
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bingo",
	Short: "Bingo cards that all win on the same call",
	Long: `bingo generates themed bingo cards for watch-along games. Items are
called in a fixed order (1, 2, 3, ...) and every card is engineered to get
its first bingo on exactly the chosen call.

Available commands:
  catalogs - Show all available catalogs
  cards    - Generate printable cards
  key      - Print the key for a catalog
  show     - Show one card in the terminal
  replay   - Replay a game call by call
  stats    - Measure generation attempts
  intro    - Render a markdown introduction

Examples:
  bingo catalogs
  bingo cards -g meet_me_in_st_louis -n 30 -w 20
  bingo cards --format pdf --split -o out
  bingo show --seed 42
  bingo replay -n 5`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(catalogsCmd)
	rootCmd.AddCommand(cardsCmd)
	rootCmd.AddCommand(keyCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(introCmd)
}

// setup loads configuration, applies global flags and registers catalogs
// from the configured directory.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	cfg = loaded

	if cmd.Flags().Changed("seed") {
		cfg.Generation.Seed = flagSeed
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	logger.SetLevel(level)

	return registerCatalogDir(cfg.CatalogDir)
}
