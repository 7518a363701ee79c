package dataloaders

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/domino14/crossfill/xword"
)

func TestParseStructure(t *testing.T) {
	xw, err := ParseStructure(strings.NewReader("#_#\n___\n#_#\n"))
	assert.NoError(t, err)
	assert.Equal(t, 3, xw.Height())
	assert.Equal(t, 3, xw.Width())
	assert.Equal(t, 2, len(xw.Variables()))
	assert.True(t, xw.Fillable(1, 0))
	assert.False(t, xw.Fillable(0, 0))
}

func TestParseStructurePadsRaggedLines(t *testing.T) {
	// Short lines are padded with blocked cells to the widest line.
	xw, err := ParseStructure(strings.NewReader("____\n__\n"))
	assert.NoError(t, err)
	assert.Equal(t, 4, xw.Width())
	assert.False(t, xw.Fillable(1, 2))
	assert.False(t, xw.Fillable(1, 3))
}

func TestParseStructureCRLF(t *testing.T) {
	xw, err := ParseStructure(strings.NewReader("___\r\n#_#\r\n"))
	assert.NoError(t, err)
	assert.Equal(t, 3, xw.Width())
	assert.Equal(t, 2, xw.Height())
}

func TestParseStructureEmpty(t *testing.T) {
	_, err := ParseStructure(strings.NewReader(""))
	assert.Error(t, err)

	_, err = ParseStructure(strings.NewReader("\n\n"))
	assert.Error(t, err)
}

func TestParseWords(t *testing.T) {
	words, err := ParseWords(strings.NewReader("cat\nDog\n\n  emu  \ncat\n"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"CAT", "DOG", "EMU"}, words)
}

func TestParseWordsEmpty(t *testing.T) {
	_, err := ParseWords(strings.NewReader("\n\n"))
	assert.Error(t, err)
}

func TestOnlyUnderscoreIsFillable(t *testing.T) {
	xw, err := ParseStructure(strings.NewReader(".x#!\n____\n"))
	assert.NoError(t, err)
	assert.Equal(t, []xword.Variable{
		{Row: 1, Col: 0, Direction: xword.Across, Length: 4},
	}, xw.Variables())
}
