package xword

import (
	"testing"

	"github.com/matryer/is"
)

func TestDeriveVariablesSmallCross(t *testing.T) {
	is := is.New(t)
	xw, err := New(GridFromLines(SmallCrossGrid))
	is.NoErr(err)

	is.Equal(len(xw.Variables()), 2)
	is.Equal(xw.Variables(), []Variable{
		{Row: 0, Col: 1, Direction: Down, Length: 3},
		{Row: 1, Col: 0, Direction: Across, Length: 3},
	})
}

func TestDeriveVariablesCornered(t *testing.T) {
	is := is.New(t)
	xw, err := New(GridFromLines(CorneredGrid))
	is.NoErr(err)

	is.Equal(xw.Variables(), []Variable{
		{Row: 0, Col: 0, Direction: Across, Length: 4},
		{Row: 0, Col: 3, Direction: Down, Length: 4},
	})
}

func TestDeriveVariablesLadder(t *testing.T) {
	is := is.New(t)
	xw, err := New(GridFromLines(LadderGrid))
	is.NoErr(err)

	is.Equal(len(xw.Variables()), 5)
	is.Equal(xw.Variables(), []Variable{
		{Row: 0, Col: 1, Direction: Across, Length: 3},
		{Row: 0, Col: 1, Direction: Down, Length: 3},
		{Row: 0, Col: 3, Direction: Down, Length: 3},
		{Row: 2, Col: 1, Direction: Across, Length: 3},
		{Row: 2, Col: 2, Direction: Down, Length: 2},
	})
}

func TestIsolatedCellIsNotAVariable(t *testing.T) {
	is := is.New(t)
	// A single fillable cell surrounded by blocked cells is not a slot.
	xw, err := New(GridFromLines([]string{
		`###`,
		`#_#`,
		`###`,
	}))
	is.NoErr(err)
	is.Equal(len(xw.Variables()), 0)
	is.True(xw.Fillable(1, 1))
}

func TestEmptyGridHasNoVariables(t *testing.T) {
	is := is.New(t)
	xw, err := New(GridFromLines(BlockedGrid))
	is.NoErr(err)
	is.Equal(len(xw.Variables()), 0)
}

func TestMalformedGrids(t *testing.T) {
	is := is.New(t)
	_, err := New([][]bool{})
	is.True(err != nil)

	_, err = New([][]bool{{}, {}})
	is.True(err != nil)

	_, err = New([][]bool{{true, true}, {true}})
	is.True(err != nil)
}

func TestOverlapOffsetsAreSymmetric(t *testing.T) {
	is := is.New(t)
	xw, err := New(GridFromLines(SmallCrossGrid))
	is.NoErr(err)

	across := Variable{Row: 1, Col: 0, Direction: Across, Length: 3}
	down := Variable{Row: 0, Col: 1, Direction: Down, Length: 3}

	ai, di, ok := xw.OverlapOffsets(across, down)
	is.True(ok)
	is.Equal(ai, 1)
	is.Equal(di, 1)

	// Asking in the other order swaps the offsets.
	di, ai, ok = xw.OverlapOffsets(down, across)
	is.True(ok)
	is.Equal(di, 1)
	is.Equal(ai, 1)
}

func TestOverlapOffsetsCornered(t *testing.T) {
	is := is.New(t)
	xw, err := New(GridFromLines(CorneredGrid))
	is.NoErr(err)

	across := Variable{Row: 0, Col: 0, Direction: Across, Length: 4}
	down := Variable{Row: 0, Col: 3, Direction: Down, Length: 4}

	ai, di, ok := xw.OverlapOffsets(across, down)
	is.True(ok)
	is.Equal(ai, 3)
	is.Equal(di, 0)
}

func TestNoOverlapForParallelRuns(t *testing.T) {
	is := is.New(t)
	xw, err := New(GridFromLines([]string{
		`___`,
		`###`,
		`___`,
	}))
	is.NoErr(err)

	top := Variable{Row: 0, Col: 0, Direction: Across, Length: 3}
	bottom := Variable{Row: 2, Col: 0, Direction: Across, Length: 3}
	_, _, ok := xw.OverlapOffsets(top, bottom)
	is.True(!ok)
	is.Equal(len(xw.Neighbors(top)), 0)
}

func TestNeighborsLadder(t *testing.T) {
	is := is.New(t)
	xw, err := New(GridFromLines(LadderGrid))
	is.NoErr(err)

	bottomAcross := Variable{Row: 2, Col: 1, Direction: Across, Length: 3}
	is.Equal(xw.Neighbors(bottomAcross), []Variable{
		{Row: 0, Col: 1, Direction: Down, Length: 3},
		{Row: 0, Col: 3, Direction: Down, Length: 3},
		{Row: 2, Col: 2, Direction: Down, Length: 2},
	})
}

func TestVariableCells(t *testing.T) {
	is := is.New(t)
	v := Variable{Row: 2, Col: 1, Direction: Across, Length: 3}
	is.Equal(v.Cells(), []Cell{{2, 1}, {2, 2}, {2, 3}})

	v = Variable{Row: 0, Col: 3, Direction: Down, Length: 2}
	is.Equal(v.Cells(), []Cell{{0, 3}, {1, 3}})
}

func TestVariableString(t *testing.T) {
	is := is.New(t)
	v := Variable{Row: 1, Col: 4, Direction: Down, Length: 5}
	is.Equal(v.String(), "(1, 4) down : 5")
}
