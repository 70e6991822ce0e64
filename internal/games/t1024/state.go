package t1024

import (
	"errors"
	"math/rand"
)

// DefaultMaxUndos is the per-game undo budget.
const DefaultMaxUndos = 3

var (
	// ErrUndoExhausted is returned by Undo when the budget is spent.
	ErrUndoExhausted = errors.New("t1024: undo budget exhausted")
	// ErrNothingToUndo is returned by Undo when no snapshot is held.
	ErrNothingToUndo = errors.New("t1024: nothing to undo")
)

// Rules holds the tunable parts of a game.
type Rules struct {
	Spawn    SpawnRules
	MaxUndos int
}

// DefaultRules returns the standard rules.
func DefaultRules() Rules {
	return Rules{
		Spawn:    DefaultSpawnRules(),
		MaxUndos: DefaultMaxUndos,
	}
}

// History is the single retained pre-move snapshot.
type History struct {
	Board Board
	Score int
}

// State is the complete state of one game. It is passed into and returned
// from every controller operation; nothing is held in package variables.
type State struct {
	Board     Board
	Score     int
	Goal      int
	UndosLeft int
	// History holds at most one snapshot, taken before the last effective
	// move. It is cleared by a no-op move and consumed by Undo.
	History *History
	Moves   int
}

// CanUndo reports whether Undo would succeed.
func (s State) CanUndo() bool {
	return s.UndosLeft > 0 && s.History != nil
}

// MoveResult describes what a Move did.
type MoveResult struct {
	Moved     bool
	Gained    int
	Spawned   Cell
	DidSpawn  bool
	Milestone bool // goal upgraded from GoalMilestone to GoalFinal
	Won       bool
	GameOver  bool
}

// NewState starts a game: empty board with two spawned tiles, zero score,
// goal GoalMilestone and a full undo budget.
func NewState(rules Rules, rng *rand.Rand) State {
	s := State{
		Goal:      GoalMilestone,
		UndosLeft: rules.MaxUndos,
	}
	s.Board, _, _ = Spawn(s.Board, rules.Spawn, rng)
	s.Board, _, _ = Spawn(s.Board, rules.Spawn, rng)
	return s
}

// Move attempts a move in dir. An invalid direction returns s unchanged.
// A move that changes nothing clears the history slot and neither spawns a
// tile nor touches the score. An effective move adds the merge points,
// spawns one tile and then runs the milestone, win and game-over checks in
// that order; milestone and win can both fire on the same move.
func Move(s State, dir Direction, rules Rules, rng *rand.Rand) (State, MoveResult) {
	if !dir.Valid() {
		return s, MoveResult{}
	}

	prev := &History{Board: s.Board, Score: s.Score}

	board, gained, moved := ApplyMove(s.Board, dir)
	if !moved {
		s.History = nil
		return s, MoveResult{}
	}

	res := MoveResult{Moved: true, Gained: gained}

	s.History = prev
	s.Score += gained
	s.Moves++
	s.Board, res.Spawned, res.DidSpawn = Spawn(board, rules.Spawn, rng)

	goal := CheckMilestone(s.Board, s.Goal)
	res.Milestone = goal != s.Goal
	s.Goal = goal

	res.Won = IsWin(s.Board, s.Goal)
	res.GameOver = !res.Won && IsGameOver(s.Board)

	return s, res
}

// Undo restores the retained snapshot and spends one undo.
// The goal is not rolled back.
func Undo(s State) (State, error) {
	if s.UndosLeft <= 0 {
		return s, ErrUndoExhausted
	}
	if s.History == nil {
		return s, ErrNothingToUndo
	}

	s.Board = s.History.Board
	s.Score = s.History.Score
	s.History = nil
	s.UndosLeft--
	return s, nil
}
