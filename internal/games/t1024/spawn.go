package t1024

import "math/rand"

// Weighted pairs a tile value with its relative spawn weight.
type Weighted struct {
	Value  int
	Weight int
}

// WeightTable is an ordered list of spawnable values.
type WeightTable []Weighted

// Total returns the sum of all positive weights.
func (t WeightTable) Total() int {
	total := 0
	for _, w := range t {
		if w.Weight > 0 {
			total += w.Weight
		}
	}
	return total
}

// Draw picks a value with probability weight/total. A uniform real in
// [0, total) is compared against the running cumulative weight; the first
// entry whose cumulative weight reaches the draw wins.
// Returns 0 when the table has no positive weight.
func (t WeightTable) Draw(rng *rand.Rand) int {
	total := t.Total()
	if total <= 0 {
		return 0
	}

	pick := rng.Float64() * float64(total)
	cum := 0
	last := 0
	for _, w := range t {
		if w.Weight <= 0 {
			continue
		}
		cum += w.Weight
		last = w.Value
		if float64(cum) >= pick {
			return w.Value
		}
	}
	return last
}

// SpawnRules selects the spawn table from the board's current maximum:
// below Threshold only the Small table is used.
type SpawnRules struct {
	Threshold int
	Small     WeightTable
	Full      WeightTable
}

// DefaultSpawnRules keeps early boards to 2/4/8 until a 64 appears.
func DefaultSpawnRules() SpawnRules {
	return SpawnRules{
		Threshold: 64,
		Small: WeightTable{
			{Value: 2, Weight: 800},
			{Value: 4, Weight: 160},
			{Value: 8, Weight: 40},
		},
		Full: WeightTable{
			{Value: 2, Weight: 600},
			{Value: 4, Weight: 250},
			{Value: 8, Weight: 90},
			{Value: 16, Weight: 40},
			{Value: 32, Weight: 15},
			{Value: 64, Weight: 5},
		},
	}
}

// TableFor returns the table that applies to board.
func (s SpawnRules) TableFor(board Board) WeightTable {
	if MaxTile(board) < s.Threshold {
		return s.Small
	}
	return s.Full
}

// Spawn writes one new tile into a uniformly chosen empty cell.
// If the board is full it is returned unchanged with ok=false.
func Spawn(board Board, rules SpawnRules, rng *rand.Rand) (Board, Cell, bool) {
	empty := EmptyCells(board)
	if len(empty) == 0 {
		return board, Cell{}, false
	}

	cell := empty[rng.Intn(len(empty))]
	value := rules.TableFor(board).Draw(rng)
	if value == 0 {
		return board, Cell{}, false
	}

	board[cell.Row][cell.Col] = value
	return board, cell, true
}
