package t1024

// ApplyMove slides the board in dir. Every direction is expressed as a
// leftward reduction on a rotated board, rotated back afterwards.
// Returns the new board, the points gained from merges and whether anything
// moved. An invalid direction leaves the board untouched.
func ApplyMove(board Board, dir Direction) (Board, int, bool) {
	if !dir.Valid() {
		return board, 0, false
	}

	times := dir.Rotations()
	rotated := Rotate(board, times)

	gained := 0
	moved := false
	for r := range BoardSize {
		row, g, changed := ReduceRow(Row(rotated[r]))
		rotated[r] = row
		gained += g
		if changed {
			moved = true
		}
	}

	if !moved {
		return board, 0, false
	}
	return Rotate(rotated, (4-times)%4), gained, true
}
