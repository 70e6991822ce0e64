package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables that override file configuration.
const (
	EnvMaxUndos = "TUI1024_MAX_UNDOS"
	EnvBestFile = "TUI1024_BEST_FILE"
	EnvScoresDB = "TUI1024_SCORES_DB"
)

// ApplyEnv overrides cfg from the process environment. Unset or empty
// variables leave the value alone.
func ApplyEnv(cfg *T1024Config) error {
	if v := os.Getenv(EnvMaxUndos); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvMaxUndos, err)
		}
		cfg.Undo.MaxPerGame = n
	}
	if v := os.Getenv(EnvBestFile); v != "" {
		cfg.Storage.BestFile = v
	}
	if v := os.Getenv(EnvScoresDB); v != "" {
		cfg.Storage.ScoresDB = v
	}
	return nil
}
