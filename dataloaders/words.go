package dataloaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ParseWords reads a newline-separated word list. Words are uppercased
// here so the solver can compare candidates without any normalization
// of its own; blank lines are skipped and duplicates collapse.
func ParseWords(r io.Reader) ([]string, error) {
	upper := cases.Upper(language.Und)
	scanner := bufio.NewScanner(r)
	var words []string
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w == "" {
			continue
		}
		words = append(words, upper.String(w))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	words = lo.Uniq(words)
	log.Debug().Int("words", len(words)).Msg("word-list-loaded")
	return words, nil
}

// LoadWords parses the word-list file at path.
func LoadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseWords(f)
}
