package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/crossfill/filler"
	"github.com/domino14/crossfill/xword"
)

func smallCross(t *testing.T) (*xword.Crossword, filler.Assignment) {
	t.Helper()
	xw, err := xword.New(xword.GridFromLines(xword.SmallCrossGrid))
	if err != nil {
		t.Fatal(err)
	}
	assignment := filler.Assignment{
		{Row: 1, Col: 0, Direction: xword.Across, Length: 3}: "CAT",
		{Row: 0, Col: 1, Direction: xword.Down, Length: 3}:   "CAR",
	}
	return xw, assignment
}

func TestText(t *testing.T) {
	is := is.New(t)
	xw, assignment := smallCross(t)
	is.Equal(Text(xw, assignment), "█C█\nCAT\n█R█\n")
}

func TestTextPartialAssignment(t *testing.T) {
	is := is.New(t)
	xw, _ := smallCross(t)
	partial := filler.Assignment{
		{Row: 1, Col: 0, Direction: xword.Across, Length: 3}: "CAT",
	}
	is.Equal(Text(xw, partial), "█ █\nCAT\n█ █\n")
}

func TestLetters(t *testing.T) {
	is := is.New(t)
	xw, assignment := smallCross(t)
	letters := Letters(xw, assignment)
	is.Equal(letters[1], []rune{'C', 'A', 'T'})
	is.Equal(letters[0][1], 'C')
	is.Equal(letters[2][1], 'R')
	is.Equal(letters[0][0], rune(0))
}

func TestWriteImage(t *testing.T) {
	is := is.New(t)
	xw, assignment := smallCross(t)
	var buf bytes.Buffer
	is.NoErr(WriteImage(&buf, xw, assignment))

	img, err := png.Decode(&buf)
	is.NoErr(err)
	is.Equal(img.Bounds().Dx(), xw.Width()*cellSize)
	is.Equal(img.Bounds().Dy(), xw.Height()*cellSize)

	// Blocked corner is black, fillable center is under a white cell.
	r, g, b, _ := img.At(1, 1).RGBA()
	is.Equal(r|g|b, uint32(0))
	r, _, _, _ = img.At(cellSize+cellBorder+1, cellBorder+1).RGBA()
	is.Equal(r, uint32(0xffff))
}
