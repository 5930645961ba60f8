package crossword

import "fmt"

// Direction is the orientation of a slot in the grid.
type Direction int

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Across {
		return "across"
	}
	return "down"
}

// Slot identifies a maximal run of open cells to be filled with a single
// word. It is a plain value type with structural equality, so it can be
// used as a map key.
type Slot struct {
	Row       int
	Col       int
	Direction Direction
	Length    int
}

// Cell returns the grid coordinates of the k-th letter of the slot.
func (s Slot) Cell(k int) (row, col int) {
	if s.Direction == Across {
		return s.Row, s.Col + k
	}
	return s.Row + k, s.Col
}

// Before reports whether s orders before o under the canonical slot
// ordering: row, then column, then across before down, then length.
// This is the tie-break rule used everywhere determinism matters.
func (s Slot) Before(o Slot) bool {
	if s.Row != o.Row {
		return s.Row < o.Row
	}
	if s.Col != o.Col {
		return s.Col < o.Col
	}
	if s.Direction != o.Direction {
		return s.Direction < o.Direction
	}
	return s.Length < o.Length
}

func (s Slot) String() string {
	return fmt.Sprintf("(%d,%d %s %d)", s.Row, s.Col, s.Direction, s.Length)
}
