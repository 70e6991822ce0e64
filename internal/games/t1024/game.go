package t1024

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-1024/internal/core"
	"github.com/vovakirdan/tui-1024/internal/registry"
)

// GameID is the registry identifier and the score history key.
const GameID = "1024"

// BestKeeper persists the best score across games and restarts.
// Save failures are the keeper's problem; the game never sees them.
type BestKeeper interface {
	Load() int
	Save(best int)
}

// Option configures a Game.
type Option func(*Game)

// WithRules overrides the default rules.
func WithRules(r Rules) Option {
	return func(g *Game) { g.rules = r }
}

// WithBestKeeper attaches best-score persistence.
func WithBestKeeper(k BestKeeper) Option {
	return func(g *Game) { g.keeper = k }
}

// factoryOptions are applied to games created through the registry.
var factoryOptions []Option

// Configure sets the options used by the registry factory.
// Call it before registry.Create.
func Configure(opts ...Option) {
	factoryOptions = opts
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New(factoryOptions...)
	})
}

// Game drives a State for the platform: it maps input actions onto the
// controller operations, keeps the best score and produces notices.
type Game struct {
	rules  Rules
	keeper BestKeeper
	rng    *rand.Rand

	state State
	best  int

	lastResult  MoveResult
	notice      string
	won         bool // final goal reached; play may continue
	gameOver    bool
	undosUsed   int
	initialized bool

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a 1024 game with the given options.
func New(opts ...Option) *Game {
	g := &Game{rules: DefaultRules()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string { return GameID }

// Title returns the display name.
func (g *Game) Title() string { return "1024" }

// Reset starts a new game with a fresh RNG seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()

	if !g.initialized && g.keeper != nil {
		g.best = g.keeper.Load()
	}
	g.initialized = true

	g.newGame()
}

// Resize updates the screen dimensions without touching the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

func (g *Game) newGame() {
	g.state = NewState(g.rules, g.rng)
	g.notice = ""
	g.won = false
	g.gameOver = false
	g.undosUsed = 0
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Step handles one input event.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	changed := g.step(in)
	return core.StepResult{State: g.State(), Changed: changed}
}

func (g *Game) step(in core.InputFrame) bool {
	if g.rng == nil {
		g.Reset(core.DefaultConfig())
	}

	switch {
	case in.Has(core.ActionNewGame), in.Has(core.ActionRestart) && g.gameOver:
		g.newGame()
		return true
	case in.Has(core.ActionUndo):
		return g.undo()
	}

	if g.tooSmall || g.gameOver {
		return false
	}

	switch {
	case in.Has(core.ActionUp):
		return g.move(DirUp)
	case in.Has(core.ActionDown):
		return g.move(DirDown)
	case in.Has(core.ActionLeft):
		return g.move(DirLeft)
	case in.Has(core.ActionRight):
		return g.move(DirRight)
	}
	return false
}

// Move applies a direction directly. Used by drivers that do not go
// through input frames.
func (g *Game) Move(dir Direction) MoveResult {
	if g.rng == nil {
		g.Reset(core.DefaultConfig())
	}
	if g.gameOver {
		return MoveResult{}
	}
	g.move(dir)
	return g.lastResult
}

func (g *Game) move(dir Direction) bool {
	next, res := Move(g.state, dir, g.rules, g.rng)
	g.state = next
	g.lastResult = res
	if !res.Moved {
		// The winning move may have left a board with no moves.
		if g.won && IsGameOver(g.state.Board) {
			g.endGame()
			return true
		}
		return false
	}

	g.notice = ""
	g.updateBest()

	if res.Milestone {
		g.notice = fmt.Sprintf("Reached %d! Next goal: %d", GoalMilestone, GoalFinal)
	}
	newlyWon := res.Won && !g.won
	if newlyWon {
		g.won = true
		g.notice = fmt.Sprintf("You win! Reached %d with score %d", GoalFinal, g.state.Score)
	}
	// MoveResult never reports a loss on a winning board, but after the
	// win has been announced a full board still ends the game.
	if res.GameOver || (!newlyWon && g.won && IsGameOver(g.state.Board)) {
		g.endGame()
	}
	return true
}

func (g *Game) endGame() {
	g.gameOver = true
	g.notice = fmt.Sprintf("No moves left. Score: %d", g.state.Score)
}

// Undo spends one undo. Refusals are reported as notices.
func (g *Game) Undo() error {
	if g.rng == nil {
		g.Reset(core.DefaultConfig())
	}
	next, err := Undo(g.state)
	switch {
	case errors.Is(err, ErrUndoExhausted):
		g.notice = "No undos left this game"
		return err
	case errors.Is(err, ErrNothingToUndo):
		g.notice = "Nothing to undo"
		return err
	case err != nil:
		return err
	}

	g.state = next
	g.undosUsed++
	g.gameOver = false
	// A win only stands while the board still shows it.
	g.won = IsWin(g.state.Board, g.state.Goal)
	g.notice = ""
	return nil
}

// undo always reports a change: either the board or the notice moved.
func (g *Game) undo() bool {
	//nolint:errcheck // refusals surface through the notice
	g.Undo()
	return true
}

// NewGame abandons the current game and starts another.
func (g *Game) NewGame() {
	if g.rng == nil {
		g.Reset(core.DefaultConfig())
		return
	}
	g.newGame()
}

func (g *Game) updateBest() {
	if g.state.Score <= g.best {
		return
	}
	g.best = g.state.Score
	if g.keeper != nil {
		g.keeper.Save(g.best)
	}
}

// Quit persists the best score one last time.
func (g *Game) Quit() {
	if g.keeper != nil {
		g.keeper.Save(g.best)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.gameOver,
	}
}

// Summary reports the current game for the score history.
func (g *Game) Summary() core.Summary {
	return core.Summary{
		Score:     g.state.Score,
		MaxTile:   MaxTile(g.state.Board),
		Moves:     g.state.Moves,
		UndosUsed: g.undosUsed,
		Won:       g.won,
	}
}

// Board returns a copy of the current board.
func (g *Game) Board() Board { return g.state.Board }

// Best returns the best score seen so far.
func (g *Game) Best() int { return g.best }

// Notice returns the latest informational message, or "".
func (g *Game) Notice() string { return g.notice }

var (
	_ registry.Game       = (*Game)(nil)
	_ registry.Quitter    = (*Game)(nil)
	_ registry.Summarizer = (*Game)(nil)
	_ registry.Resizer    = (*Game)(nil)
)
