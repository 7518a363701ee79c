// Package dataloaders reads crossword structure and word-list files
// into the in-memory forms the solver consumes. All input-format
// validation lives here; the solver assumes validated input.
package dataloaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/crossfill/xword"
)

// FillableMarker is the structure-file character for a cell that takes
// a letter. Every other character is a blocked cell.
const FillableMarker = '_'

// ParseStructure reads a structure description: one line per row, '_'
// for fillable cells. Lines shorter than the longest line are padded
// with blocked cells. An input with no lines, or only empty lines, is
// malformed.
func ParseStructure(r io.Reader) (*xword.Crossword, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	width := 0
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		lines = append(lines, line)
		if len(line) > width {
			width = len(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading structure: %w", err)
	}
	if len(lines) == 0 || width == 0 {
		return nil, fmt.Errorf("structure is empty")
	}

	cells := make([][]bool, len(lines))
	for i, line := range lines {
		cells[i] = make([]bool, width)
		for j, r := range line {
			cells[i][j] = r == FillableMarker
		}
	}
	xw, err := xword.New(cells)
	if err != nil {
		return nil, fmt.Errorf("bad structure: %w", err)
	}
	log.Debug().Int("height", xw.Height()).Int("width", xw.Width()).
		Int("variables", len(xw.Variables())).Msg("structure-loaded")
	return xw, nil
}

// LoadStructure parses the structure file at path.
func LoadStructure(path string) (*xword.Crossword, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseStructure(f)
}
