package crossword

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grid(rows ...string) [][]bool {
	out := make([][]bool, len(rows))
	for i, r := range rows {
		row := make([]bool, len(r))
		for j, c := range r {
			row[j] = c == '_'
		}
		out[i] = row
	}
	return out
}

func TestBuildStructureSlots(t *testing.T) {
	type tc struct {
		Name  string
		Rows  []string
		Slots []Slot
	}

	for _, tt := range []tc{
		{
			Name: "single across run",
			Rows: []string{"___"},
			Slots: []Slot{
				{Row: 0, Col: 0, Direction: Across, Length: 3},
			},
		},
		{
			Name: "crossing runs",
			Rows: []string{"#_#", "___", "#_#"},
			Slots: []Slot{
				{Row: 0, Col: 1, Direction: Down, Length: 3},
				{Row: 1, Col: 0, Direction: Across, Length: 3},
			},
		},
		{
			Name: "isolated cell becomes a length-1 slot",
			Rows: []string{"___", "_##", "_#_"},
			Slots: []Slot{
				{Row: 0, Col: 0, Direction: Across, Length: 3},
				{Row: 0, Col: 0, Direction: Down, Length: 3},
				{Row: 2, Col: 2, Direction: Across, Length: 1},
			},
		},
		{
			Name: "blocked cells split runs",
			Rows: []string{"__#__"},
			Slots: []Slot{
				{Row: 0, Col: 0, Direction: Across, Length: 2},
				{Row: 0, Col: 3, Direction: Across, Length: 2},
			},
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			s, err := BuildStructure(grid(tt.Rows...))
			require.NoError(t, err)
			assert.Equal(t, tt.Slots, s.Slots())
		})
	}
}

func TestBuildStructureRaggedRows(t *testing.T) {
	_, err := BuildStructure([][]bool{
		{true, true, true},
		{true, true},
	})
	require.Error(t, err)
	var serr *StructuralError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 1, serr.Row)
	assert.Equal(t, 3, serr.Want)
	assert.Equal(t, 2, serr.Got)
}

func TestOverlaps(t *testing.T) {
	s, err := BuildStructure(grid("#_#", "___", "#_#"))
	require.NoError(t, err)

	across := Slot{Row: 1, Col: 0, Direction: Across, Length: 3}
	down := Slot{Row: 0, Col: 1, Direction: Down, Length: 3}

	ov, ok := s.Overlap(across, down)
	require.True(t, ok)
	assert.Equal(t, Overlap{I: 1, J: 1}, ov)

	// The reverse arc sees the offsets swapped.
	ov, ok = s.Overlap(down, across)
	require.True(t, ok)
	assert.Equal(t, Overlap{I: 1, J: 1}, ov)

	assert.Equal(t, []Slot{down}, s.Neighbors(across))
	assert.Equal(t, []Slot{across}, s.Neighbors(down))
}

func TestParallelSlotsNeverOverlap(t *testing.T) {
	s, err := BuildStructure(grid("___", "###", "___"))
	require.NoError(t, err)
	slots := s.Slots()
	require.Len(t, slots, 2)

	_, ok := s.Overlap(slots[0], slots[1])
	assert.False(t, ok)
	assert.Empty(t, s.Neighbors(slots[0]))
	assert.Empty(t, s.Neighbors(slots[1]))
}

func TestOverlapOffsetsOffsetStarts(t *testing.T) {
	// Across run starting at column 1, down run starting at row 0:
	// they share the cell (2, 3).
	s, err := BuildStructure(grid(
		"###_#",
		"###_#",
		"#____",
		"###_#",
	))
	require.NoError(t, err)

	across := Slot{Row: 2, Col: 1, Direction: Across, Length: 4}
	down := Slot{Row: 0, Col: 3, Direction: Down, Length: 4}

	ov, ok := s.Overlap(across, down)
	require.True(t, ok)
	assert.Equal(t, Overlap{I: 2, J: 2}, ov)
}
