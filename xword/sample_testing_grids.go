package xword

// Sample structures for tests, in the text form the structure loader
// accepts: '_' is fillable, anything else is blocked.

var (
	// SmallCrossGrid has one 3-letter across slot and one 3-letter down
	// slot crossing at their middle letters.
	SmallCrossGrid = []string{
		`#_#`,
		`___`,
		`#_#`,
	}

	// CorneredGrid is the classic beginner structure: an across slot on
	// the top row, a down slot on the right column, crossing at the
	// corner.
	CorneredGrid = []string{
		`____#`,
		`###_#`,
		`###_#`,
		`###_#`,
		`#####`,
	}

	// LadderGrid induces five slots with five crossings: two across
	// rows threaded by two long down columns and one short one.
	LadderGrid = []string{
		`#___##`,
		`#_#_##`,
		`#___##`,
		`##_###`,
	}

	// BlockedGrid has no fillable cells at all.
	BlockedGrid = []string{
		`###`,
		`###`,
	}
)

// GridFromLines converts sample lines to the cell matrix New accepts.
// Test helper; the production path goes through the dataloaders package.
func GridFromLines(lines []string) [][]bool {
	cells := make([][]bool, len(lines))
	for i, line := range lines {
		cells[i] = make([]bool, len(line))
		for j, r := range line {
			cells[i][j] = r == '_'
		}
	}
	return cells
}
