package crossword

import (
	"fmt"
	"sort"
)

// Overlap records that the I-th letter of one slot occupies the same grid
// cell as the J-th letter of another.
type Overlap struct {
	I int
	J int
}

// StructuralError reports a malformed grid layout.
type StructuralError struct {
	Row  int
	Want int
	Got  int
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("row %d has width %d, expected %d", e.Row, e.Got, e.Want)
}

type slotPair struct {
	x Slot
	y Slot
}

// Structure is the static description of a puzzle grid: its dimensions,
// which cells are open, the slots derived from runs of open cells, and
// the overlap relation between crossing slots. It is built once and is
// immutable for the lifetime of a solve.
type Structure struct {
	height    int
	width     int
	open      [][]bool
	slots     []Slot
	overlaps  map[slotPair]Overlap
	neighbors map[Slot][]Slot
}

// BuildStructure derives the slot set and overlap table from a grid
// layout. Each row of the layout marks open (fillable) cells true and
// blocked cells false. Rows of unequal width yield a StructuralError.
//
// Slots are maximal horizontal or vertical runs of at least two open
// cells. An open cell covered by no run at all becomes its own length-1
// across slot, so degenerate single-cell grids remain solvable.
func BuildStructure(layout [][]bool) (*Structure, error) {
	height := len(layout)
	width := 0
	if height > 0 {
		width = len(layout[0])
	}
	for i, row := range layout {
		if len(row) != width {
			return nil, &StructuralError{Row: i, Want: width, Got: len(row)}
		}
	}

	open := make([][]bool, height)
	for i := range layout {
		open[i] = append([]bool(nil), layout[i]...)
	}

	s := &Structure{
		height:    height,
		width:     width,
		open:      open,
		overlaps:  map[slotPair]Overlap{},
		neighbors: map[Slot][]Slot{},
	}

	covered := make([][]bool, height)
	for i := range covered {
		covered[i] = make([]bool, width)
	}

	// Across slots: maximal horizontal runs.
	for i := 0; i < height; i++ {
		for j := 0; j < width; {
			if !open[i][j] {
				j++
				continue
			}
			length := 0
			for j+length < width && open[i][j+length] {
				length++
			}
			if length >= 2 {
				s.slots = append(s.slots, Slot{Row: i, Col: j, Direction: Across, Length: length})
				for k := 0; k < length; k++ {
					covered[i][j+k] = true
				}
			}
			j += length
		}
	}

	// Down slots: maximal vertical runs.
	for j := 0; j < width; j++ {
		for i := 0; i < height; {
			if !open[i][j] {
				i++
				continue
			}
			length := 0
			for i+length < height && open[i+length][j] {
				length++
			}
			if length >= 2 {
				s.slots = append(s.slots, Slot{Row: i, Col: j, Direction: Down, Length: length})
				for k := 0; k < length; k++ {
					covered[i+k][j] = true
				}
			}
			i += length
		}
	}

	// Isolated open cells belong to no run in either direction.
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			if open[i][j] && !covered[i][j] {
				s.slots = append(s.slots, Slot{Row: i, Col: j, Direction: Across, Length: 1})
			}
		}
	}

	sort.Slice(s.slots, func(a, b int) bool { return s.slots[a].Before(s.slots[b]) })

	for ai, x := range s.slots {
		for _, y := range s.slots[ai+1:] {
			ov, ok := intersect(x, y)
			if !ok {
				continue
			}
			s.overlaps[slotPair{x, y}] = ov
			s.overlaps[slotPair{y, x}] = Overlap{I: ov.J, J: ov.I}
			s.neighbors[x] = append(s.neighbors[x], y)
			s.neighbors[y] = append(s.neighbors[y], x)
		}
	}
	for _, ns := range s.neighbors {
		sort.Slice(ns, func(a, b int) bool { return ns[a].Before(ns[b]) })
	}

	return s, nil
}

// intersect computes the single shared cell of two crossing slots, if
// any. Parallel slots never overlap: distinct maximal runs in the same
// direction cannot share a cell.
func intersect(x, y Slot) (Overlap, bool) {
	if x.Direction == y.Direction {
		return Overlap{}, false
	}
	a, d := x, y
	if a.Direction == Down {
		a, d = y, x
	}
	if d.Col < a.Col || d.Col >= a.Col+a.Length {
		return Overlap{}, false
	}
	if a.Row < d.Row || a.Row >= d.Row+d.Length {
		return Overlap{}, false
	}
	ov := Overlap{I: d.Col - a.Col, J: a.Row - d.Row}
	if x.Direction == Down {
		ov = Overlap{I: ov.J, J: ov.I}
	}
	return ov, true
}

func (s *Structure) Height() int { return s.height }
func (s *Structure) Width() int  { return s.width }

// Open reports whether the cell at (row, col) is fillable.
func (s *Structure) Open(row, col int) bool {
	return s.open[row][col]
}

// Slots returns all slots in canonical order. The returned slice is
// shared and must not be modified.
func (s *Structure) Slots() []Slot {
	return s.slots
}

// Overlap returns the shared-cell offsets of two crossing slots: the
// I-th letter of x coincides with the J-th letter of y. The second
// return is false when the slots do not cross.
func (s *Structure) Overlap(x, y Slot) (Overlap, bool) {
	ov, ok := s.overlaps[slotPair{x, y}]
	return ov, ok
}

// Neighbors returns every slot crossing x, in canonical order. The
// returned slice is shared and must not be modified.
func (s *Structure) Neighbors(x Slot) []Slot {
	return s.neighbors[x]
}
