// Package cli is a line-mode driver for the 1024 puzzle. It reads one
// command per line and prints the board after each, so the game can be
// played through pipes and dumb terminals.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/tui-1024/internal/core"
	"github.com/vovakirdan/tui-1024/internal/games/t1024"
)

const helpText = `Commands:
  w/a/s/d or up/left/down/right   move
  u, undo                         undo the last move
  n, new                          start a new game
  h, help                         show this help
  q, quit                         quit`

// Option configures Play.
type Option func(*player)

// OnGameEnd registers fn to receive every game that ends: by losing, by
// starting a new game or by quitting. Games with no score are skipped.
func OnGameEnd(fn func(core.Summary)) Option {
	return func(p *player) { p.onEnd = fn }
}

type player struct {
	game     *t1024.Game
	w        io.Writer
	onEnd    func(core.Summary)
	reported bool
}

// Play runs game until q, EOF or a read error. The game must already be
// Reset by the caller.
func Play(r io.Reader, w io.Writer, game *t1024.Game, opts ...Option) error {
	p := &player{game: game, w: w}
	for _, opt := range opts {
		opt(p)
	}

	fmt.Fprintln(w, "=== 1024 ===")
	fmt.Fprintln(w, "Type h for help.")
	p.printState()

	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "> ")
		if !scanner.Scan() {
			break
		}
		if !p.handle(strings.TrimSpace(scanner.Text())) {
			p.finish()
			return nil
		}
	}

	p.finish()
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("cli: read command: %w", err)
	}
	return nil
}

// handle runs one command. It returns false when the player quits.
func (p *player) handle(cmd string) bool {
	switch strings.ToLower(cmd) {
	case "":
		return true
	case "q", "quit", "exit":
		return false
	case "h", "help", "?":
		fmt.Fprintln(p.w, helpText)
		return true
	case "u", "undo":
		//nolint:errcheck // refusals are shown as the game notice
		p.game.Undo()
	case "n", "new":
		p.report()
		p.game.NewGame()
		p.reported = false
	default:
		dir, ok := t1024.ParseDirection(cmd)
		if !ok {
			fmt.Fprintf(p.w, "Unknown command %q. Type h for help.\n", cmd)
			return true
		}
		if p.game.Snapshot().Status == t1024.StatusGameOver {
			fmt.Fprintln(p.w, "No moves left. u: undo, n: new game, q: quit")
			return true
		}
		if res := p.game.Move(dir); !res.Moved {
			fmt.Fprintln(p.w, "Nothing moves that way.")
			return true
		}
	}

	p.printState()
	if p.game.State().GameOver {
		p.report()
	}
	return true
}

func (p *player) printState() {
	s := p.game.Snapshot()
	fmt.Fprintf(p.w, "\nScore: %d  Best: %d  Goal: %d  Undos: %d\n", s.Score, s.Best, s.Goal, s.UndosLeft)
	fmt.Fprintln(p.w, s.Board.String())
	if s.Notice != "" {
		fmt.Fprintln(p.w, s.Notice)
	}
}

// report hands the current game to the OnGameEnd callback once.
func (p *player) report() {
	if p.reported || p.onEnd == nil {
		return
	}
	sum := p.game.Summary()
	if sum.Score <= 0 {
		return
	}
	p.reported = true
	p.onEnd(sum)
}

func (p *player) finish() {
	p.report()
	p.game.Quit()
	fmt.Fprintf(p.w, "\nFinal score: %d  Best: %d\n", p.game.State().Score, p.game.Best())
}
