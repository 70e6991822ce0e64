// tui1024 is a terminal version of the 1024 sliding-tile puzzle.
//
// Usage:
//
//	tui1024                  - Play (same as "tui1024 play")
//	tui1024 play [--plain]   - Play in the TUI, or line by line with --plain
//	tui1024 menu             - Start with an interactive menu
//	tui1024 scores           - Show the game history
//	tui1024 best [--reset]   - Show or clear the best score
//	tui1024 config           - Print the effective configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Use a custom config YAML
//	--db <path>          - Set database path (default from config)
//	--best <path>        - Set best-score file (default from config)
//	--log <path>         - Write logs to this file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagDBPath   string
	flagBestPath string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	defer closeLog()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		closeLog()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tui1024",
	Short: "1024 - Slide tiles, merge numbers, reach 2048",
	Long: `1024 is a sliding-tile puzzle for the terminal.

Slide the board to merge equal tiles. Reach 1024 to unlock the final
goal of 2048. Three undos per game.

Available commands:
  play     - Play the game (default)
  menu     - Start with an interactive menu
  scores   - View the game history
  best     - Show or reset the best score
  config   - Print the effective configuration

Examples:
  tui1024
  tui1024 play --seed 42
  tui1024 play --plain < moves.txt
  tui1024 scores --interactive
  tui1024 best --reset`,
	PersistentPreRunE: setup,
	Run:               runPlay,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagBestPath, "best", "", "Path to best-score file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.arcade/tui1024.log", "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(configCmd)
}
