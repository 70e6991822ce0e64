package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-1024/internal/config"
	"github.com/vovakirdan/tui-1024/internal/storage"
)

var (
	logger  *log.Logger
	logFile *os.File
	cfg     config.T1024Config
)

// setup runs before every command: .env, logging, then configuration.
func setup(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	if err := setupLogger(); err != nil {
		return err
	}

	loaded, err := loadConfig()
	if err != nil {
		return err
	}
	cfg = loaded
	logger.Debug("config loaded", "best_file", cfg.Storage.BestFile, "scores_db", cfg.Storage.ScoresDB, "max_undos", cfg.Undo.MaxPerGame)
	return nil
}

// setupLogger sends logs to the --log file. The TUI owns the terminal, so
// nothing is logged to stdout or stderr.
func setupLogger() error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	path, err := storage.ExpandPath(flagLogPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f

	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tui1024",
		Level:           level,
	})
	return nil
}

func closeLog() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// loadConfig applies, in order: config file, environment, command-line flags.
func loadConfig() (config.T1024Config, error) {
	c, err := config.LoadT1024(flagConfig)
	if err != nil {
		return c, err
	}
	if err := config.ApplyEnv(&c); err != nil {
		return c, err
	}
	if flagDBPath != "" {
		c.Storage.ScoresDB = flagDBPath
	}
	if flagBestPath != "" {
		c.Storage.BestFile = flagBestPath
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}
