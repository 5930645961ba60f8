package layout

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// OpenCell is the layout character marking a fillable cell. Every other
// character is a blocked cell.
const OpenCell = '_'

// ReadGrid parses a grid layout from r: one line per row, '_' for open
// cells, anything else blocked. Rows are returned exactly as written;
// width validation happens when the structure is built.
func ReadGrid(r io.Reader) ([][]bool, error) {
	var rows [][]bool
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		row := make([]bool, 0, len(line))
		for _, c := range line {
			row = append(row, c == OpenCell)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading grid layout: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("grid layout is empty")
	}
	return rows, nil
}

// ReadGridFile reads a grid layout from a file.
func ReadGridFile(path string) ([][]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening layout file (%s): %w", path, err)
	}
	defer f.Close()
	return ReadGrid(f)
}

// ReadWords parses a newline-separated word list from r. Words are
// upper-cased and deduplicated; blank lines are skipped.
func ReadWords(r io.Reader) ([]string, error) {
	seen := map[string]struct{}{}
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading word list: %w", err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}

// ReadWordsFile reads a word list from a file.
func ReadWordsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening word list file (%s): %w", path, err)
	}
	defer f.Close()
	return ReadWords(f)
}
