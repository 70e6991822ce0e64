package t1024

// GameStatus is the coarse state of the game for display and history.
type GameStatus string

const (
	StatusPlaying     GameStatus = "playing"
	StatusWon         GameStatus = "won"
	StatusGameOver    GameStatus = "game_over"
	StatusPausedSmall GameStatus = "paused_small_window"
)

// Snapshot captures everything a renderer needs about the current game.
type Snapshot struct {
	Board     Board
	Score     int
	Best      int
	Goal      int
	UndosLeft int
	CanUndo   bool
	MaxTile   int
	Moves     int
	Notice    string
	Status    GameStatus
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	status := StatusPlaying
	switch {
	case g.tooSmall:
		status = StatusPausedSmall
	case g.gameOver:
		status = StatusGameOver
	case g.won:
		status = StatusWon
	}

	return Snapshot{
		Board:     g.state.Board,
		Score:     g.state.Score,
		Best:      g.best,
		Goal:      g.state.Goal,
		UndosLeft: g.state.UndosLeft,
		CanUndo:   g.state.CanUndo(),
		MaxTile:   MaxTile(g.state.Board),
		Moves:     g.state.Moves,
		Notice:    g.notice,
		Status:    status,
	}
}
