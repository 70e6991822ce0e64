// Package tui provides the Bubble Tea integration for the 1024 puzzle.
// It handles the terminal UI loop, input mapping and score history.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-1024/internal/core"
	"github.com/vovakirdan/tui-1024/internal/registry"
	"github.com/vovakirdan/tui-1024/internal/storage"
)

// helpHeight is the number of rows reserved below the game screen.
const helpHeight = 1

// GameRecorder stores finished games in the score history.
type GameRecorder interface {
	SaveGame(rec storage.GameRecord) (int64, error)
}

// Model is the Bubble Tea model for running the game.
// The game is event-driven: every key press produces exactly one Step.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	recorder  GameRecorder
	logger    *log.Logger
	config    core.RuntimeConfig
	keys      *KeyMapper
	help      help.Model
	gameState core.GameState
	quitting  bool
	recorded  bool // Whether the current game is already in the history
	shotDir   string
}

// NewModel creates a new Bubble Tea model for the given game and starts it.
// recorder and logger may be nil.
func NewModel(game registry.Game, recorder GameRecorder, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		recorder:  recorder,
		logger:    logger,
		config:    cfg,
		keys:      NewKeyMapper(),
		help:      h,
		gameState: game.State(),
		shotDir:   defaultScreenshotDir(),
	}
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "screenshots")
}

// Init implements tea.Model. The game is already running; there is no tick.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.recordGame("quit")
		if q, ok := m.game.(registry.Quitter); ok {
			q.Quit()
		}
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionNone {
		return m, nil
	}

	// Abandoning a game in progress still counts for the history.
	if action == core.ActionNewGame {
		m.recordGame("new game")
	}

	result := m.game.Step(core.FrameOf(action))
	m.gameState = result.State

	if result.Changed && (action == core.ActionNewGame || action == core.ActionRestart) {
		m.recorded = false
	}

	// Save the game on game over (once)
	if m.gameState.GameOver {
		m.recordGame("game over")
	}

	return m, nil
}

// recordGame stores the current game unless it is empty or already stored.
func (m *Model) recordGame(reason string) {
	if m.recorded || m.gameState.Score <= 0 {
		return
	}
	m.recorded = true

	rec := storage.GameRecord{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
	}
	if s, ok := m.game.(registry.Summarizer); ok {
		sum := s.Summary()
		rec.Score = sum.Score
		rec.MaxTile = sum.MaxTile
		rec.Moves = sum.Moves
		rec.UndosUsed = sum.UndosUsed
		rec.Won = sum.Won
	}

	if m.recorder == nil {
		return
	}
	if _, err := m.recorder.SaveGame(rec); err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("cannot record game", "reason", reason, "score", rec.Score, "error", err)
		return
	}
	m.logger.Info("game recorded", "reason", reason, "score", rec.Score, "max_tile", rec.MaxTile, "won", rec.Won)
}

// handleResize processes window resize events. The game keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	w, h := msg.Width, core.Max(msg.Height-helpHeight, 0)
	m.config.ScreenW = w
	m.config.ScreenH = h
	m.screen.Resize(w, h)
	m.help.Width = w

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(w, h)
	}

	return m, nil
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if m.shotDir == "" {
		return
	}

	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "dir", m.shotDir, "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(m.shotDir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, recorder GameRecorder, logger *log.Logger, cfg core.RuntimeConfig) error {
	cfg.ScreenH = core.Max(cfg.ScreenH-helpHeight, 0)
	model := NewModel(game, recorder, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
