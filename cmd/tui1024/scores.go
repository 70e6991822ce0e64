package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-1024/internal/games/t1024"
	"github.com/vovakirdan/tui-1024/internal/platform/tui"
	"github.com/vovakirdan/tui-1024/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the game history",
	Long: `Display the top games and aggregate statistics.

Examples:
  tui1024 scores
  tui1024 scores --limit 25
  tui1024 scores --interactive
  tui1024 scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the game history")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(cfg.Storage.ScoresDB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearGames(t1024.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		logger.Info("game history cleared")
		fmt.Println("Game history cleared.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if _, err := tui.RunScoreboard(store, t1024.GameID, "1024", width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	games, err := store.TopGames(t1024.GameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - 1024")
	fmt.Println()

	if len(games) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tui1024 play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-5s  %-6s  %s\n", "Rank", "Score", "Max", "Moves", "Undos", "Result", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-5s  %-6s  %s\n", "----", "-----", "---", "-----", "-----", "------", "----")

	for i, g := range games {
		result := "-"
		if g.Won {
			result = "won"
		}
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %-5d  %-6s  %s\n",
			i+1, g.Score, g.MaxTile, g.Moves, g.UndosUsed, result, g.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	stats, err := store.GetGameStats(t1024.GameID)
	if err == nil {
		fmt.Println(tui.StatsLine(stats))
	}
	if high, err := store.HighScore(t1024.GameID); err == nil {
		fmt.Printf("Best recorded game: %d\n", high)
	}
}
