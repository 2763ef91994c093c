package merge

// Aligner positions the fields of rows read from one source file according
// to a reference header. It is built once per file.
type Aligner struct {
	// positions[i] is the source index feeding reference column i, or -1.
	positions []int
}

// NewAligner maps every reference column to its index in source. When a
// source header repeats a column name, the last occurrence wins.
func NewAligner(source, reference Header) *Aligner {
	lookup := make(map[string]int, len(source))
	for i, col := range source {
		lookup[col] = i
	}

	positions := make([]int, len(reference))
	for i, col := range reference {
		if k, ok := lookup[col]; ok {
			positions[i] = k
		} else {
			positions[i] = -1
		}
	}
	return &Aligner{positions: positions}
}

// Align returns a row with exactly one field per reference column. Columns
// missing from the source, or beyond the end of a short row, are empty.
// Source columns outside the reference header are dropped.
func (a *Aligner) Align(row []string) []string {
	aligned := make([]string, len(a.positions))
	for i, k := range a.positions {
		if k >= 0 && k < len(row) {
			aligned[i] = row[k]
		}
	}
	return aligned
}

// Align is the one-shot form of NewAligner(source, reference).Align(row).
func Align(row []string, source, reference Header) []string {
	return NewAligner(source, reference).Align(row)
}
