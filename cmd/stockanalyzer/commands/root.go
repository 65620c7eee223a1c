package commands

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	offline    bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "stockanalyzer",
	Short: "Return, beta and ranking for a small set of stocks",
	Long: `StockAnalyzer reads price history, fundamentals and an index benchmark
from flat text files, optionally refreshes the latest price from a market-data
source, and shows the result of one action.

Examples:
  stockanalyzer fundamental -i Ericsson
  stockanalyzer technical -i Electrolux
  stockanalyzer rank
  stockanalyzer bot`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the command tree. Errors have already been shown to the user
// when it returns.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	defaultConfig := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		defaultConfig = v
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", defaultConfig, "config file")
	rootCmd.PersistentFlags().BoolVar(&offline, "offline", false, "skip live price lookups")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}
