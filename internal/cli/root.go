package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pond",
	Short: "Probabilistic reward economy engine for chat groups",
	Long:  "Pond runs a karma ledger with rarity-weighted fishing draws, time-bounded odds events, and daily-stable values. Single Go binary backed by SQLite.",
}

var configPath string

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(drawCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(statsCmd)
}
