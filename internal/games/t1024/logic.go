// Package t1024 implements the 1024/2048 sliding-tile puzzle: a pure grid
// engine (row reduction, rotation, weighted spawning, goal tracking) and the
// game controller that drives it for the platform.
package t1024

import (
	"fmt"
	"strings"
)

// BoardSize is the board dimension.
const BoardSize = 4

// Board is the 4x4 grid. Zero marks an empty cell; every other value is a
// power of two >= 2. Board is a value type, so assignment copies it.
type Board [BoardSize][BoardSize]int

// Row is a single board row.
type Row [BoardSize]int

// Cell addresses a board position.
type Cell struct {
	Row, Col int
}

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Valid reports whether d is one of the four move directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection accepts direction names and WASD letters.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "w":
		return DirUp, true
	case "down", "s":
		return DirDown, true
	case "left", "a":
		return DirLeft, true
	case "right", "d":
		return DirRight, true
	default:
		return 0, false
	}
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func EmptyCells(board Board) []Cell {
	var cells []Cell
	for r := range BoardSize {
		for c := range BoardSize {
			if board[r][c] == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(board Board) bool {
	for r := range BoardSize {
		for c := range BoardSize {
			if board[r][c] == 0 {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if two horizontally or vertically adjacent
// tiles hold the same non-zero value.
func HasPossibleMerge(board Board) bool {
	for r := range BoardSize {
		for c := range BoardSize {
			val := board[r][c]
			if val == 0 {
				continue
			}
			if c < BoardSize-1 && board[r][c+1] == val {
				return true
			}
			if r < BoardSize-1 && board[r+1][c] == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if any move is possible.
func CanMove(board Board) bool {
	return HasEmptyCell(board) || HasPossibleMerge(board)
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(board Board) int {
	maxVal := 0
	for r := range BoardSize {
		for c := range BoardSize {
			if board[r][c] > maxVal {
				maxVal = board[r][c]
			}
		}
	}
	return maxVal
}

// TileSum returns the sum of all tile values.
func TileSum(board Board) int {
	sum := 0
	for r := range BoardSize {
		for c := range BoardSize {
			sum += board[r][c]
		}
	}
	return sum
}

// String renders the board as right-aligned columns, one row per line.
func (b Board) String() string {
	var sb strings.Builder
	for r := range BoardSize {
		for c := range BoardSize {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if b[r][c] == 0 {
				sb.WriteString(fmt.Sprintf("%5s", "."))
				continue
			}
			sb.WriteString(fmt.Sprintf("%5d", b[r][c]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
