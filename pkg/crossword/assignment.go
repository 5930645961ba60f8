package crossword

// Assignment maps slots to their chosen words. It may be partial during
// search; it is complete when every slot of the structure has an entry.
type Assignment map[Slot]string

// Complete reports whether every slot of the structure is assigned a
// non-empty word.
func (a Assignment) Complete(s *Structure) bool {
	for _, slot := range s.Slots() {
		if a[slot] == "" {
			return false
		}
	}
	return true
}

// Letters lays the assigned words onto a height×width rune grid. Cells
// not reached by any assigned word hold zero. Renderers combine this
// with Structure.Open to draw the puzzle.
func (a Assignment) Letters(s *Structure) [][]rune {
	grid := make([][]rune, s.Height())
	for i := range grid {
		grid[i] = make([]rune, s.Width())
	}
	for slot, word := range a {
		for k, r := range []rune(word) {
			row, col := slot.Cell(k)
			grid[row][col] = r
		}
	}
	return grid
}
