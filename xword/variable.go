// Package xword describes the static structure of a crossword puzzle:
// the grid of blocked and fillable cells, the word slots (variables)
// that the grid induces, and the overlaps between crossing slots.
package xword

import "fmt"

type Direction uint8

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

// A Cell is a zero-indexed (row, column) coordinate on the grid.
type Cell struct {
	Row int
	Col int
}

// A Variable is a maximal straight run of fillable cells that must be
// filled with a single word. It is a value type; two variables are the
// same slot iff their start cell, direction, and length all match.
type Variable struct {
	Row       int
	Col       int
	Direction Direction
	Length    int
}

func (v Variable) String() string {
	return fmt.Sprintf("(%d, %d) %v : %d", v.Row, v.Col, v.Direction, v.Length)
}

// Cell returns the k-th cell of the run, 0 <= k < v.Length.
func (v Variable) Cell(k int) Cell {
	if v.Direction == Across {
		return Cell{Row: v.Row, Col: v.Col + k}
	}
	return Cell{Row: v.Row + k, Col: v.Col}
}

// Cells enumerates the run's cells in word order.
func (v Variable) Cells() []Cell {
	cells := make([]Cell, v.Length)
	for k := 0; k < v.Length; k++ {
		cells[k] = v.Cell(k)
	}
	return cells
}

// less defines the canonical enumeration order for variables. Solvers
// rely on it for reproducible tie-breaking.
func (v Variable) less(o Variable) bool {
	if v.Row != o.Row {
		return v.Row < o.Row
	}
	if v.Col != o.Col {
		return v.Col < o.Col
	}
	if v.Direction != o.Direction {
		return v.Direction < o.Direction
	}
	return v.Length < o.Length
}
