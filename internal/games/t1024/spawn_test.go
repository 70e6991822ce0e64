package t1024

import (
	"math"
	"math/rand"
	"testing"
)

func TestSpawnFillsExactlyOneEmptyCell(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	rules := DefaultSpawnRules()

	for range 200 {
		board := randomBoard(rng)
		if !HasEmptyCell(board) {
			continue
		}

		after, cell, ok := Spawn(board, rules, rng)
		if !ok {
			t.Fatalf("Spawn on board with empty cells reported ok=false")
		}
		if board[cell.Row][cell.Col] != 0 {
			t.Fatalf("Spawn wrote into occupied cell %+v", cell)
		}

		diff := 0
		for r := range BoardSize {
			for c := range BoardSize {
				if after[r][c] != board[r][c] {
					diff++
				}
			}
		}
		if diff != 1 {
			t.Fatalf("Spawn changed %d cells, want 1", diff)
		}
	}
}

func TestSpawnFullBoardIsNoOp(t *testing.T) {
	board := Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	rng := rand.New(rand.NewSource(1))

	after, _, ok := Spawn(board, DefaultSpawnRules(), rng)
	if ok {
		t.Error("Spawn on full board should report ok=false")
	}
	if after != board {
		t.Error("Spawn on full board should not change it")
	}
}

func TestSpawnTableThreshold(t *testing.T) {
	rules := DefaultSpawnRules()
	tests := []struct {
		name    string
		maxTile int
		allowed map[int]bool
	}{
		{"below threshold", 32, map[int]bool{2: true, 4: true, 8: true}},
		{"at threshold", 64, map[int]bool{2: true, 4: true, 8: true, 16: true, 32: true, 64: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(5))
			board := Board{{tt.maxTile}}
			seen := make(map[int]bool)
			for range 5000 {
				after, cell, ok := Spawn(board, rules, rng)
				if !ok {
					t.Fatal("Spawn reported ok=false")
				}
				v := after[cell.Row][cell.Col]
				if !tt.allowed[v] {
					t.Fatalf("Spawn produced %d, not in allowed set", v)
				}
				seen[v] = true
			}
			if len(seen) != len(tt.allowed) {
				t.Errorf("saw values %v, want all of %v", seen, tt.allowed)
			}
		})
	}
}

func TestWeightTableDrawFrequencies(t *testing.T) {
	table := DefaultSpawnRules().Small
	rng := rand.New(rand.NewSource(42))

	const n = 100000
	counts := make(map[int]int)
	for range n {
		counts[table.Draw(rng)]++
	}

	total := float64(table.Total())
	for _, w := range table {
		want := float64(w.Weight) / total
		got := float64(counts[w.Value]) / n
		if math.Abs(got-want) > 0.01 {
			t.Errorf("value %d frequency = %.4f, want %.4f", w.Value, got, want)
		}
	}
}

func TestWeightTableEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if got := (WeightTable{}).Draw(rng); got != 0 {
		t.Errorf("empty table Draw = %d, want 0", got)
	}
	if got := (WeightTable{{Value: 2, Weight: 0}}).Draw(rng); got != 0 {
		t.Errorf("zero-weight table Draw = %d, want 0", got)
	}
}
