package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-1024/internal/core"
	"github.com/vovakirdan/tui-1024/internal/games/t1024"
	"github.com/vovakirdan/tui-1024/internal/platform/cli"
	"github.com/vovakirdan/tui-1024/internal/platform/tui"
	"github.com/vovakirdan/tui-1024/internal/registry"
	"github.com/vovakirdan/tui-1024/internal/storage"
)

var flagPlain bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game of 1024.

Controls:
  Arrows/WASD/HJKL  - Slide tiles
  U                 - Undo the last move (3 per game)
  N                 - New game
  R                 - New game after game over
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

With --plain, or when stdout is not a terminal, commands are read one per
line from stdin (w/a/s/d, u, n, q).

Examples:
  tui1024 play
  tui1024 play --seed 7
  tui1024 play --plain`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Line-mode play on stdin/stdout")
	// play is also the root command's default action
	rootCmd.Flags().BoolVar(&flagPlain, "plain", false, "Line-mode play on stdin/stdout")
}

func runPlay(cmd *cobra.Command, args []string) {
	game, best := createGame()

	store, recorder := openRecorder()
	if store != nil {
		defer store.Close()
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting game", "seed", seed, "plain", flagPlain, "best", best.Path())

	plain := flagPlain || !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd()))
	if plain {
		runPlain(game, recorder, seed)
		return
	}

	if err := tui.Run(game, recorder, logger, terminalConfig(seed)); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// createGame configures the registered game with the loaded rules and the
// best-score file, then creates it.
func createGame() (registry.Game, *storage.BestFile) {
	best, err := storage.NewBestFile(cfg.Storage.BestFile, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	t1024.Configure(
		t1024.WithRules(cfg.Rules()),
		t1024.WithBestKeeper(best),
	)

	game, err := registry.Create(t1024.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	return game, best
}

// openRecorder opens the score history. The game still works without it,
// so failures only produce a warning and a nil recorder.
func openRecorder() (*storage.Store, tui.GameRecorder) {
	store, err := storage.Open(cfg.Storage.ScoresDB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		return nil, nil
	}
	return store, store
}

// terminalConfig sizes the game to the terminal, defaulting to 80x24.
func terminalConfig(seed int64) core.RuntimeConfig {
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    seed,
	}
}

func runPlain(game registry.Game, recorder tui.GameRecorder, seed int64) {
	g, ok := game.(*t1024.Game)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: %s does not support plain mode\n", game.ID())
		os.Exit(1)
	}

	rc := core.DefaultConfig()
	rc.Seed = seed
	g.Reset(rc)

	record := func(sum core.Summary) {
		if recorder == nil {
			return
		}
		rec := storage.GameRecord{
			GameID:    t1024.GameID,
			Score:     sum.Score,
			MaxTile:   sum.MaxTile,
			Moves:     sum.Moves,
			UndosUsed: sum.UndosUsed,
			Won:       sum.Won,
		}
		if _, err := recorder.SaveGame(rec); err != nil {
			logger.Warn("cannot record game", "score", sum.Score, "error", err)
		}
	}

	if err := cli.Play(os.Stdin, os.Stdout, g, cli.OnGameEnd(record)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
