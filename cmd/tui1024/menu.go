package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-1024/internal/games/t1024"
	"github.com/vovakirdan/tui-1024/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a menu",
	Long: `Start in interactive menu mode.

Pick Play to start a game or High scores to browse the history. After a
game ends you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q/Esc        - Quit`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	game, best := createGame()

	store, recorder := openRecorder()
	if store != nil {
		defer store.Close()
	}

	// A zero seed lets every game pick its own.
	runCfg := terminalConfig(flagSeed)

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(best.Load(), runCfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		runCfg = menuResult.Config

		switch menuResult.Choice {
		case tui.ChoicePlay:
			logger.Info("starting game from menu")
			if err := tui.Run(game, recorder, logger, runCfg); err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
				return
			}

		case tui.ChoiceScores:
			if store == nil {
				fmt.Fprintln(os.Stderr, "Score history is unavailable.")
				continue
			}
			goBack, sbErr := tui.RunScoreboard(store, t1024.GameID, game.Title(), runCfg.ScreenW, runCfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				return // User quit from scoreboard
			}

		default:
			return
		}
	}
}
