package life

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func stringsReader(s string) io.Reader { return strings.NewReader(s) }

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

func TestParsePattern(t *testing.T) {
	got := ParsePattern(".#.\n..#\n###\n")
	want := []Coord{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	if len(got) != len(want) {
		t.Fatalf("parsed %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("parsed %v, expected %v", got, want)
		}
	}
}

func TestParsePatternIgnoresOtherCharacters(t *testing.T) {
	got := ParsePattern("  #\r\nO*#x\n\n\t#")
	want := []Coord{{2, 0}, {2, 1}, {1, 3}}
	if len(got) != len(want) {
		t.Fatalf("parsed %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("parsed %v, expected %v", got, want)
		}
	}
}

func TestParsePatternCountsRunes(t *testing.T) {
	got := ParsePattern("é#")
	if len(got) != 1 || got[0] != (Coord{1, 0}) {
		t.Fatalf("parsed %v, expected [{1 0}]", got)
	}
}

func TestLoadPatternReplacesCells(t *testing.T) {
	e := newEngine(t, 10, Coord{8, 8})
	if err := e.LoadPattern(stringsReader("##\n##")); err != nil {
		t.Fatal(err)
	}
	expectCells(t, e, Coord{0, 0}, Coord{1, 0}, Coord{0, 1}, Coord{1, 1})
}

func TestLoadPatternFailureKeepsState(t *testing.T) {
	before := []Coord{{3, 3}, {4, 3}, {5, 3}}
	e := newEngine(t, 10, before...)
	err := e.LoadPattern(failingReader{})
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("err = %v, expected ErrUnreadable", err)
	}
	expectCells(t, e, before...)
}

func TestLoadPatternFileMissing(t *testing.T) {
	before := []Coord{{1, 1}, {2, 2}}
	e := newEngine(t, 10, before...)
	path := filepath.Join(t.TempDir(), "missing.txt")
	err := e.LoadPatternFile(path)
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("err = %v, expected ErrUnreadable", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, expected the cause to be preserved", err)
	}
	var loadErr *LoadError
	if !errors.As(err, &loadErr) || loadErr.Source != path {
		t.Fatalf("err = %#v, expected LoadError for %s", err, path)
	}
	expectCells(t, e, before...)
}

func TestLoadPatternFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blinker.txt")
	if err := os.WriteFile(path, []byte("...\n###\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	e := newEngine(t, 10)
	if err := e.LoadPatternFile(path); err != nil {
		t.Fatal(err)
	}
	expectCells(t, e, Coord{0, 1}, Coord{1, 1}, Coord{2, 1})
	e.Step()
	expectCells(t, e, Coord{1, 0}, Coord{1, 1}, Coord{1, 2})
}

func TestLoadPatternRejectsInvalidUTF8(t *testing.T) {
	before := []Coord{{4, 4}, {5, 4}}
	e := newEngine(t, 10, before...)
	err := e.LoadPattern(stringsReader("#\xff#\n"))
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("err = %v, expected ErrUnreadable", err)
	}
	expectCells(t, e, before...)
}
