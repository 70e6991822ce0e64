package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-1024/internal/storage"
)

var flagReset bool

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show or reset the best score",
	Long: `Print the persisted best score and when it was set.

Examples:
  tui1024 best
  tui1024 best --reset`,
	Args: cobra.NoArgs,
	Run:  runBest,
}

func init() {
	bestCmd.Flags().BoolVar(&flagReset, "reset", false, "Clear the best score")
}

func runBest(cmd *cobra.Command, args []string) {
	best, err := storage.NewBestFile(cfg.Storage.BestFile, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagReset {
		if err := best.Reset(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Info("best score reset", "path", best.Path())
		fmt.Println("Best score cleared.")
		return
	}

	rec, err := best.Read()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if rec.Best == 0 {
		fmt.Println("No best score yet.")
		return
	}
	fmt.Printf("Best: %d\n", rec.Best)
	if !rec.UpdatedAt.IsZero() {
		fmt.Printf("Set:  %s\n", rec.UpdatedAt.Local().Format(time.DateTime))
	}
	fmt.Printf("File: %s\n", best.Path())
}
