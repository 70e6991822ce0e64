package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-1024/internal/config"
	"github.com/vovakirdan/tui-1024/internal/games/t1024"
)

var flagDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after applying the config file, environment
variables (TUI1024_MAX_UNDOS, TUI1024_BEST_FILE, TUI1024_SCORES_DB) and flags.

The output is valid YAML and can be saved to ~/.arcade/configs/1024.yaml.
With --default the built-in configuration is printed instead, comments
included.

Examples:
  tui1024 config
  tui1024 config --default > ~/.arcade/configs/1024.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefault, "default", false, "Print the built-in default configuration")
}

func runConfig(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	if flagDefault {
		fmt.Fprint(out, string(config.GetDefaultYAML(t1024.GameID)))
		return
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprint(out, string(data))
}
