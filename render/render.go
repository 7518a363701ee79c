// Package render turns a solved crossword into a terminal grid or a
// PNG image. It consumes the structure and assignment read-only.
package render

import (
	"strings"

	"github.com/domino14/crossfill/filler"
	"github.com/domino14/crossfill/xword"
)

// Letters lays the assignment out on the grid. Fillable cells not
// covered by any variable (isolated cells) stay zero.
func Letters(xw *xword.Crossword, assignment filler.Assignment) [][]rune {
	letters := make([][]rune, xw.Height())
	for i := range letters {
		letters[i] = make([]rune, xw.Width())
	}
	for v, word := range assignment {
		for k, r := range word {
			cell := v.Cell(k)
			letters[cell.Row][cell.Col] = r
		}
	}
	return letters
}

// Text renders the filled grid for a terminal: solid blocks for
// blocked cells, letters (or spaces) for fillable ones.
func Text(xw *xword.Crossword, assignment filler.Assignment) string {
	letters := Letters(xw, assignment)
	var sb strings.Builder
	for i := 0; i < xw.Height(); i++ {
		for j := 0; j < xw.Width(); j++ {
			if !xw.Fillable(i, j) {
				sb.WriteRune('█')
			} else if letters[i][j] != 0 {
				sb.WriteRune(letters[i][j])
			} else {
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
