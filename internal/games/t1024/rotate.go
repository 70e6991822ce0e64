package t1024

// RotateClockwise returns the board turned 90° clockwise.
func RotateClockwise(board Board) Board {
	var out Board
	for r := range BoardSize {
		for c := range BoardSize {
			out[r][c] = board[BoardSize-1-c][r]
		}
	}
	return out
}

// Rotate applies times clockwise rotations. Counts are taken mod 4, so
// negative values rotate counter-clockwise.
func Rotate(board Board, times int) Board {
	times = ((times % 4) + 4) % 4
	for range times {
		board = RotateClockwise(board)
	}
	return board
}

// Rotations returns how many clockwise turns bring d onto "left".
func (d Direction) Rotations() int {
	switch d {
	case DirDown:
		return 1
	case DirRight:
		return 2
	case DirUp:
		return 3
	default:
		return 0
	}
}
