package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/domino14/crossfill/filler"
	"github.com/domino14/crossfill/xword"
)

const (
	cellSize   = 32
	cellBorder = 2
)

// WriteImage encodes the filled grid as a PNG: black background,
// white fillable cells, letters drawn in black.
func WriteImage(w io.Writer, xw *xword.Crossword, assignment filler.Assignment) error {
	letters := Letters(xw, assignment)
	img := image.NewRGBA(image.Rect(0, 0, xw.Width()*cellSize, xw.Height()*cellSize))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	for i := 0; i < xw.Height(); i++ {
		for j := 0; j < xw.Width(); j++ {
			if !xw.Fillable(i, j) {
				continue
			}
			cell := image.Rect(
				j*cellSize+cellBorder, i*cellSize+cellBorder,
				(j+1)*cellSize-cellBorder, (i+1)*cellSize-cellBorder)
			draw.Draw(img, cell, image.White, image.Point{}, draw.Src)
			if letters[i][j] == 0 {
				continue
			}
			d := font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(color.Black),
				Face: face,
				Dot: fixed.P(
					j*cellSize+(cellSize-face.Advance)/2,
					i*cellSize+(cellSize+face.Ascent)/2),
			}
			d.DrawString(string(letters[i][j]))
		}
	}
	return png.Encode(w, img)
}

// SaveImage writes the PNG rendering to the file at path.
func SaveImage(path string, xw *xword.Crossword, assignment filler.Assignment) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteImage(f, xw, assignment)
}
