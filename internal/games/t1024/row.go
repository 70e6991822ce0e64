package t1024

// Compress removes zeros from the row, keeping the order of the remaining
// tiles, and pads the right end with zeros.
func Compress(row Row) (Row, bool) {
	var out Row
	w := 0
	for _, v := range row {
		if v != 0 {
			out[w] = v
			w++
		}
	}
	return out, out != row
}

// MergeOnce makes one left-to-right pass merging equal neighbours. A cell
// produced by a merge is not compared against the next cell in the same pass,
// so each tile merges at most once per move.
func MergeOnce(row Row) (Row, int, bool) {
	gained := 0
	changed := false
	for i := 0; i < BoardSize-1; i++ {
		if row[i] != 0 && row[i] == row[i+1] {
			row[i] *= 2
			row[i+1] = 0
			gained += row[i]
			changed = true
		}
	}
	return row, gained, changed
}

// ReduceRow performs a full leftward reduction: compress, merge, compress.
// changed reports whether the result differs from the input.
func ReduceRow(row Row) (Row, int, bool) {
	packed, _ := Compress(row)
	merged, gained, _ := MergeOnce(packed)
	result, _ := Compress(merged)
	return result, gained, result != row
}
