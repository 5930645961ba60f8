package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gridfill/gridfill/pkg/crossword"
)

// BlockedCell is the rune used for blocked cells in text output.
const BlockedCell = '█'

// Text renders the assignment as a line-per-row string: assigned letters
// in open cells, a space for open cells no word reaches, and a block
// marker for blocked cells.
func Text(s *crossword.Structure, a crossword.Assignment) string {
	letters := a.Letters(s)
	lines := make([]string, s.Height())
	for i := 0; i < s.Height(); i++ {
		var b strings.Builder
		for j := 0; j < s.Width(); j++ {
			switch {
			case !s.Open(i, j):
				b.WriteRune(BlockedCell)
			case letters[i][j] == 0:
				b.WriteRune(' ')
			default:
				b.WriteRune(letters[i][j])
			}
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

const (
	cellSize   = 32
	cellBorder = 2
)

// PNG renders the assignment as a bitmap: white squares on a black
// canvas, letters centred in their cells.
func PNG(s *crossword.Structure, a crossword.Assignment, w io.Writer) error {
	img := image.NewRGBA(image.Rect(0, 0, s.Width()*cellSize, s.Height()*cellSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	letters := a.Letters(s)
	face := basicfont.Face7x13
	for i := 0; i < s.Height(); i++ {
		for j := 0; j < s.Width(); j++ {
			if !s.Open(i, j) {
				continue
			}
			cell := image.Rect(
				j*cellSize+cellBorder,
				i*cellSize+cellBorder,
				(j+1)*cellSize-cellBorder,
				(i+1)*cellSize-cellBorder,
			)
			draw.Draw(img, cell, image.NewUniform(color.White), image.Point{}, draw.Src)
			if letters[i][j] == 0 {
				continue
			}
			text := string(letters[i][j])
			d := font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(color.Black),
				Face: face,
			}
			width := d.MeasureString(text)
			d.Dot = fixed.Point26_6{
				X: fixed.I(j*cellSize+cellSize/2) - width/2,
				Y: fixed.I(i*cellSize + cellSize/2 + face.Height/2 - face.Descent),
			}
			d.DrawString(text)
		}
	}
	return png.Encode(w, img)
}
