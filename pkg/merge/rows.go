package merge

// rowSet holds merged rows keyed by merge key. Iteration follows the order
// keys were first seen; storing under an existing key replaces the row in
// place.
type rowSet struct {
	index map[string]int
	rows  [][]string
}

func newRowSet() *rowSet {
	return &rowSet{index: make(map[string]int)}
}

// put stores row under key and reports whether an earlier row was replaced.
func (s *rowSet) put(key string, row []string) bool {
	if i, ok := s.index[key]; ok {
		s.rows[i] = row
		return true
	}
	s.index[key] = len(s.rows)
	s.rows = append(s.rows, row)
	return false
}

func (s *rowSet) len() int {
	return len(s.rows)
}

// values returns the rows in first-seen key order.
func (s *rowSet) values() [][]string {
	return s.rows
}
