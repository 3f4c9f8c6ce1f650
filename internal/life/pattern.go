package life

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

var errNotUTF8 = errors.New("pattern is not valid UTF-8")

// PatternMarker marks a live cell in pattern text. Any other character,
// whitespace included, is a dead cell.
const PatternMarker = '#'

// ParsePattern decodes pattern text. Each line is a row starting at y = 0 and
// each character a column starting at x = 0.
func ParsePattern(text string) []Coord {
	var out []Coord
	for y, line := range strings.Split(text, "\n") {
		x := 0
		for _, r := range line {
			if r == PatternMarker {
				out = append(out, Coord{x, y})
			}
			x++
		}
	}
	return out
}

// LoadPattern replaces the live set with the pattern read from r. When r
// cannot be read or is not valid UTF-8 the engine is left untouched and a *LoadError is returned.
func (e *Engine) LoadPattern(r io.Reader) error {
	return e.loadPattern("", r)
}

// LoadPatternFile is LoadPattern for a file on disk.
func (e *Engine) LoadPatternFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &LoadError{Source: path, Err: err}
	}
	defer f.Close()
	return e.loadPattern(path, bufio.NewReader(f))
}

func (e *Engine) loadPattern(source string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return &LoadError{Source: source, Err: err}
	}
	if !utf8.Valid(data) {
		return &LoadError{Source: source, Err: errNotUTF8}
	}
	coords := ParsePattern(string(data))
	cells := make(cellSet, len(coords))
	for _, c := range coords {
		cells[c] = struct{}{}
	}
	e.setCells(cells)
	e.resetStats()
	return nil
}
