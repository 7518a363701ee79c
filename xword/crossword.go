package xword

import (
	"fmt"
	"sort"
)

// An Overlap records where two crossing variables share a cell: the
// shared cell itself, and the letter index within each variable's word
// that must agree.
type Overlap struct {
	Cell Cell
	// AOffset and BOffset are the letter indices within the pair's
	// first and second variable, in canonical pair order.
	AOffset int
	BOffset int
}

type pair struct {
	a, b Variable
}

// orderedPair normalizes an unordered variable pair so that both
// directions of a crossing share one overlap entry.
func orderedPair(x, y Variable) (pair, bool) {
	if x.less(y) {
		return pair{x, y}, false
	}
	return pair{y, x}, true
}

// A Crossword is the immutable structure of a puzzle: its dimensions,
// which cells are fillable, the variable set the grid induces, and the
// overlap between every pair of crossing variables. Build one with New
// and treat it as read-only afterwards.
type Crossword struct {
	height   int
	width    int
	fillable [][]bool

	variables []Variable
	overlaps  map[pair]Overlap
	neighbors map[Variable][]Variable
}

// New derives the puzzle structure from a matrix of cell states; true
// means fillable. The matrix must be rectangular with both dimensions
// positive. Runs of length 1 do not become variables; a grid with no
// runs at all is a valid (trivial) puzzle.
func New(cells [][]bool) (*Crossword, error) {
	height := len(cells)
	if height == 0 {
		return nil, fmt.Errorf("grid has no rows")
	}
	width := len(cells[0])
	if width == 0 {
		return nil, fmt.Errorf("grid has no columns")
	}
	for i, row := range cells {
		if len(row) != width {
			return nil, fmt.Errorf("grid is not rectangular: row %d has %d cells, want %d",
				i, len(row), width)
		}
	}

	fillable := make([][]bool, height)
	for i := range cells {
		fillable[i] = make([]bool, width)
		copy(fillable[i], cells[i])
	}

	xw := &Crossword{
		height:    height,
		width:     width,
		fillable:  fillable,
		overlaps:  map[pair]Overlap{},
		neighbors: map[Variable][]Variable{},
	}
	xw.deriveVariables()
	xw.computeOverlaps()
	return xw, nil
}

func (xw *Crossword) deriveVariables() {
	for i := 0; i < xw.height; i++ {
		for j := 0; j < xw.width; j++ {
			if !xw.fillable[i][j] {
				continue
			}
			// A cell starts a down run if the cell above is blocked
			// or off-grid; analogously for across.
			if i == 0 || !xw.fillable[i-1][j] {
				length := 1
				for k := i + 1; k < xw.height && xw.fillable[k][j]; k++ {
					length++
				}
				if length > 1 {
					xw.variables = append(xw.variables,
						Variable{Row: i, Col: j, Direction: Down, Length: length})
				}
			}
			if j == 0 || !xw.fillable[i][j-1] {
				length := 1
				for k := j + 1; k < xw.width && xw.fillable[i][k]; k++ {
					length++
				}
				if length > 1 {
					xw.variables = append(xw.variables,
						Variable{Row: i, Col: j, Direction: Across, Length: length})
				}
			}
		}
	}
	sort.Slice(xw.variables, func(a, b int) bool {
		return xw.variables[a].less(xw.variables[b])
	})
}

func (xw *Crossword) computeOverlaps() {
	// Two straight runs share at most one cell, and same-direction runs
	// never share any, so only across/down pairs need testing.
	for _, v1 := range xw.variables {
		if v1.Direction != Across {
			continue
		}
		for _, v2 := range xw.variables {
			if v2.Direction != Down {
				continue
			}
			// The across run v1 occupies row v1.Row; the down run v2
			// occupies column v2.Col. They cross iff that cell is in
			// both runs.
			if v2.Col < v1.Col || v2.Col >= v1.Col+v1.Length {
				continue
			}
			if v1.Row < v2.Row || v1.Row >= v2.Row+v2.Length {
				continue
			}
			cell := Cell{Row: v1.Row, Col: v2.Col}
			off1 := v2.Col - v1.Col
			off2 := v1.Row - v2.Row

			key, swapped := orderedPair(v1, v2)
			ov := Overlap{Cell: cell, AOffset: off1, BOffset: off2}
			if swapped {
				ov.AOffset, ov.BOffset = off2, off1
			}
			xw.overlaps[key] = ov
			xw.neighbors[v1] = append(xw.neighbors[v1], v2)
			xw.neighbors[v2] = append(xw.neighbors[v2], v1)
		}
	}
	for v := range xw.neighbors {
		ns := xw.neighbors[v]
		sort.Slice(ns, func(a, b int) bool { return ns[a].less(ns[b]) })
	}
}

func (xw *Crossword) Height() int { return xw.height }
func (xw *Crossword) Width() int  { return xw.width }

// Fillable reports whether the cell at (row, col) can hold a letter.
func (xw *Crossword) Fillable(row, col int) bool {
	return xw.fillable[row][col]
}

// Variables returns the puzzle's slots in canonical order. Callers must
// not mutate the returned slice.
func (xw *Crossword) Variables() []Variable {
	return xw.variables
}

// Neighbors returns the variables crossing v, in canonical order.
// Callers must not mutate the returned slice.
func (xw *Crossword) Neighbors(v Variable) []Variable {
	return xw.neighbors[v]
}

// OverlapOffsets returns the letter indices (xi, yi) such that any
// words wx assigned to x and wy assigned to y must satisfy
// wx[xi] == wy[yi]. ok is false if the two variables do not cross.
func (xw *Crossword) OverlapOffsets(x, y Variable) (xi, yi int, ok bool) {
	key, swapped := orderedPair(x, y)
	ov, found := xw.overlaps[key]
	if !found {
		return 0, 0, false
	}
	if swapped {
		return ov.BOffset, ov.AOffset, true
	}
	return ov.AOffset, ov.BOffset, true
}
