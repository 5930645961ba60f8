package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridfill/gridfill/pkg/crossword"
)

func buildCrossing(t *testing.T) *crossword.Structure {
	t.Helper()
	s, err := crossword.BuildStructure([][]bool{
		{false, true, false},
		{true, true, true},
		{false, true, false},
	})
	require.NoError(t, err)
	return s
}

func TestTextRendersLettersAndBlocks(t *testing.T) {
	s := buildCrossing(t)
	assignment := crossword.Assignment{
		{Row: 1, Col: 0, Direction: crossword.Across, Length: 3}: "CAT",
		{Row: 0, Col: 1, Direction: crossword.Down, Length: 3}:   "OAK",
	}

	assert.Equal(t, "█O█\nCAT\n█K█", Text(s, assignment))
}

func TestTextLeavesUnassignedCellsBlank(t *testing.T) {
	s := buildCrossing(t)
	assignment := crossword.Assignment{
		{Row: 1, Col: 0, Direction: crossword.Across, Length: 3}: "CAT",
	}

	assert.Equal(t, "█ █\nCAT\n█ █", Text(s, assignment))
}

func TestPNGProducesDecodableImage(t *testing.T) {
	s := buildCrossing(t)
	assignment := crossword.Assignment{
		{Row: 1, Col: 0, Direction: crossword.Across, Length: 3}: "CAT",
		{Row: 0, Col: 1, Direction: crossword.Down, Length: 3}:   "OAK",
	}

	var buf bytes.Buffer
	require.NoError(t, PNG(s, assignment, &buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 3*cellSize, img.Bounds().Dx())
	assert.Equal(t, 3*cellSize, img.Bounds().Dy())
}
