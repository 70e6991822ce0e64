package t1024

import (
	"math/rand"
	"testing"
)

func TestCompress(t *testing.T) {
	tests := []struct {
		name    string
		input   Row
		want    Row
		changed bool
	}{
		{"empty row", Row{0, 0, 0, 0}, Row{0, 0, 0, 0}, false},
		{"already packed", Row{2, 4, 0, 0}, Row{2, 4, 0, 0}, false},
		{"gap in middle", Row{2, 0, 4, 0}, Row{2, 4, 0, 0}, true},
		{"trailing tile", Row{0, 0, 0, 8}, Row{8, 0, 0, 0}, true},
		{"full row", Row{2, 4, 8, 16}, Row{2, 4, 8, 16}, false},
		{"equal tiles are not merged", Row{2, 0, 2, 0}, Row{2, 2, 0, 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := Compress(tt.input)
			if got != tt.want {
				t.Errorf("Compress(%v) = %v, want %v", tt.input, got, tt.want)
			}
			if changed != tt.changed {
				t.Errorf("Compress(%v) changed = %v, want %v", tt.input, changed, tt.changed)
			}
		})
	}
}

func TestCompressIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for range 500 {
		row := randomRow(rng)
		once, _ := Compress(row)
		twice, changed := Compress(once)
		if twice != once {
			t.Fatalf("Compress(Compress(%v)) = %v, want %v", row, twice, once)
		}
		if changed {
			t.Fatalf("second Compress(%v) reported a change", once)
		}
	}
}

func TestMergeOnce(t *testing.T) {
	tests := []struct {
		name    string
		input   Row
		want    Row
		gained  int
		changed bool
	}{
		{"simple pair", Row{2, 2, 0, 0}, Row{4, 0, 0, 0}, 4, true},
		{"no cascade", Row{2, 2, 2, 0}, Row{4, 0, 2, 0}, 4, true},
		{"two pairs", Row{4, 4, 4, 4}, Row{8, 0, 8, 0}, 16, true},
		{"merged cell not re-examined", Row{2, 2, 4, 0}, Row{4, 0, 4, 0}, 4, true},
		{"zeros never merge", Row{0, 0, 2, 4}, Row{0, 0, 2, 4}, 0, false},
		{"nothing to merge", Row{2, 4, 8, 16}, Row{2, 4, 8, 16}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gained, changed := MergeOnce(tt.input)
			if got != tt.want {
				t.Errorf("MergeOnce(%v) = %v, want %v", tt.input, got, tt.want)
			}
			if gained != tt.gained {
				t.Errorf("MergeOnce(%v) gained = %d, want %d", tt.input, gained, tt.gained)
			}
			if changed != tt.changed {
				t.Errorf("MergeOnce(%v) changed = %v, want %v", tt.input, changed, tt.changed)
			}
		})
	}
}

func TestReduceRow(t *testing.T) {
	tests := []struct {
		name    string
		input   Row
		want    Row
		gained  int
		changed bool
	}{
		{"simple merge", Row{2, 2, 0, 0}, Row{4, 0, 0, 0}, 4, true},
		{"merge with trailing tile", Row{2, 2, 2, 0}, Row{4, 2, 0, 0}, 4, true},
		{"double merge", Row{2, 2, 2, 2}, Row{4, 4, 0, 0}, 8, true},
		{"one merge per tile", Row{4, 4, 4, 4}, Row{8, 8, 0, 0}, 16, true},
		{"slide with gap", Row{0, 0, 2, 2}, Row{4, 0, 0, 0}, 4, true},
		{"slide with multiple gaps", Row{2, 0, 0, 2}, Row{4, 0, 0, 0}, 4, true},
		{"no change needed", Row{4, 2, 0, 0}, Row{4, 2, 0, 0}, 0, false},
		{"empty row", Row{0, 0, 0, 0}, Row{0, 0, 0, 0}, 0, false},
		{"single tile", Row{0, 4, 0, 0}, Row{4, 0, 0, 0}, 0, true},
		{"no merge possible", Row{2, 4, 8, 16}, Row{2, 4, 8, 16}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gained, changed := ReduceRow(tt.input)
			if got != tt.want {
				t.Errorf("ReduceRow(%v) = %v, want %v", tt.input, got, tt.want)
			}
			if gained != tt.gained {
				t.Errorf("ReduceRow(%v) gained = %d, want %d", tt.input, gained, tt.gained)
			}
			if changed != tt.changed {
				t.Errorf("ReduceRow(%v) changed = %v, want %v", tt.input, changed, tt.changed)
			}
		})
	}
}

func TestRotateClockwise(t *testing.T) {
	board := Board{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}
	want := Board{
		{13, 9, 5, 1},
		{14, 10, 6, 2},
		{15, 11, 7, 3},
		{16, 12, 8, 4},
	}

	got := RotateClockwise(board)
	if got != want {
		t.Errorf("RotateClockwise:\n%v\nwant\n%v", got, want)
	}
	if board[0][0] != 1 {
		t.Error("RotateClockwise must not mutate its input")
	}
}

func TestRotateIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for range 200 {
		board := randomBoard(rng)
		if got := Rotate(board, 4); got != board {
			t.Fatalf("Rotate(b, 4) = \n%v\nwant\n%v", got, board)
		}
		if got := Rotate(Rotate(board, 3), 1); got != board {
			t.Fatalf("Rotate(Rotate(b, 3), 1) != b for\n%v", board)
		}
		if got := Rotate(board, -1); got != Rotate(board, 3) {
			t.Fatalf("Rotate(b, -1) should equal Rotate(b, 3)")
		}
	}
}

func TestDirectionRotations(t *testing.T) {
	tests := []struct {
		dir  Direction
		want int
	}{
		{DirLeft, 0},
		{DirDown, 1},
		{DirRight, 2},
		{DirUp, 3},
	}
	for _, tt := range tests {
		if got := tt.dir.Rotations(); got != tt.want {
			t.Errorf("%v.Rotations() = %d, want %d", tt.dir, got, tt.want)
		}
	}
}

func TestApplyMoveLeftScenario(t *testing.T) {
	board := Board{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	want := Board{
		{4, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	got, gained, moved := ApplyMove(board, DirLeft)
	if got != want {
		t.Errorf("ApplyMove(left):\n%v\nwant\n%v", got, want)
	}
	if gained != 4 {
		t.Errorf("ApplyMove(left) gained = %d, want 4", gained)
	}
	if !moved {
		t.Error("ApplyMove(left) moved = false, want true")
	}
}

func TestApplyMoveDirections(t *testing.T) {
	tests := []struct {
		name   string
		dir    Direction
		board  Board
		want   Board
		gained int
	}{
		{
			name: "left",
			dir:  DirLeft,
			board: Board{
				{2, 2, 0, 0},
				{4, 0, 4, 0},
				{2, 2, 2, 2},
				{0, 0, 0, 2},
			},
			want: Board{
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{4, 4, 0, 0},
				{2, 0, 0, 0},
			},
			gained: 20,
		},
		{
			name: "right",
			dir:  DirRight,
			board: Board{
				{2, 2, 0, 0},
				{4, 0, 4, 0},
				{2, 2, 2, 2},
				{0, 0, 0, 2},
			},
			want: Board{
				{0, 0, 0, 4},
				{0, 0, 0, 8},
				{0, 0, 4, 4},
				{0, 0, 0, 2},
			},
			gained: 20,
		},
		{
			name: "up",
			dir:  DirUp,
			board: Board{
				{2, 4, 2, 0},
				{2, 0, 2, 0},
				{0, 4, 2, 0},
				{0, 0, 2, 2},
			},
			want: Board{
				{4, 8, 4, 2},
				{0, 0, 4, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			gained: 20,
		},
		{
			name: "down",
			dir:  DirDown,
			board: Board{
				{2, 4, 2, 2},
				{2, 0, 2, 0},
				{0, 4, 2, 0},
				{0, 0, 2, 0},
			},
			want: Board{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 4, 0},
				{4, 8, 4, 2},
			},
			gained: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gained, moved := ApplyMove(tt.board, tt.dir)
			if got != tt.want {
				t.Errorf("ApplyMove(%s):\n%v\nwant\n%v", tt.dir, got, tt.want)
			}
			if gained != tt.gained {
				t.Errorf("ApplyMove(%s) gained = %d, want %d", tt.dir, gained, tt.gained)
			}
			if !moved {
				t.Errorf("ApplyMove(%s) should report a move", tt.dir)
			}
		})
	}
}

func TestApplyMovePackedBoardDoesNotMove(t *testing.T) {
	board := Board{
		{4, 2, 0, 0},
		{8, 0, 0, 0},
		{2, 4, 8, 0},
		{0, 0, 0, 0},
	}

	got, gained, moved := ApplyMove(board, DirLeft)
	if moved {
		t.Error("ApplyMove(left) on a left-packed board should not move")
	}
	if gained != 0 {
		t.Errorf("gained = %d, want 0", gained)
	}
	if got != board {
		t.Errorf("board changed:\n%v\nwant\n%v", got, board)
	}

	// The same board seen through any rotation is still a no-op once the
	// rotation is undone.
	for _, dir := range []Direction{DirDown, DirRight, DirUp} {
		turned := Rotate(board, (4-dir.Rotations())%4)
		after, _, moved := ApplyMove(turned, dir)
		if moved || after != turned {
			t.Errorf("ApplyMove(%s) on packed board moved=%v", dir, moved)
		}
	}
}

func TestApplyMoveInvalidDirection(t *testing.T) {
	board := Board{{0, 2, 0, 2}}
	got, gained, moved := ApplyMove(board, Direction(42))
	if moved || gained != 0 || got != board {
		t.Errorf("ApplyMove(invalid) = (%v, %d, %v), want board unchanged", got, gained, moved)
	}
}

func TestApplyMoveConservesTileSum(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for range 500 {
		board := randomBoard(rng)
		for _, dir := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
			after, gained, _ := ApplyMove(board, dir)
			if TileSum(after) != TileSum(board) {
				t.Fatalf("ApplyMove(%s) changed tile sum %d -> %d", dir, TileSum(board), TileSum(after))
			}
			if gained < 0 || gained%4 != 0 {
				t.Fatalf("ApplyMove(%s) gained = %d, want a non-negative multiple of 4", dir, gained)
			}
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
		ok   bool
	}{
		{"up", DirUp, true},
		{"W", DirUp, true},
		{" left ", DirLeft, true},
		{"d", DirRight, true},
		{"s", DirDown, true},
		{"sideways", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseDirection(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseDirection(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMaxTileAndEmptyCells(t *testing.T) {
	board := Board{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	}

	if got := MaxTile(board); got != 2048 {
		t.Errorf("MaxTile = %d, want 2048", got)
	}
	cells := EmptyCells(board)
	if len(cells) != 8 {
		t.Errorf("EmptyCells count = %d, want 8", len(cells))
	}
	for _, c := range cells {
		if board[c.Row][c.Col] != 0 {
			t.Errorf("EmptyCells returned non-empty cell %+v", c)
		}
	}
}

// randomRow returns a row of zeros and small powers of two.
func randomRow(rng *rand.Rand) Row {
	var row Row
	for i := range row {
		if rng.Intn(3) == 0 {
			continue
		}
		row[i] = 1 << (1 + rng.Intn(4))
	}
	return row
}

func randomBoard(rng *rand.Rand) Board {
	var b Board
	for r := range BoardSize {
		b[r] = randomRow(rng)
	}
	return b
}
