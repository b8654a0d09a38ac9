package seed

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nd-life/internal/core"
	rng "nd-life/pkg/core"
)

func TestParseAndEmbed(t *testing.T) {
	p, err := Parse(strings.NewReader(".#.\r\n..#\r\n###\r\n\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.W != 3 || p.H != 3 {
		t.Fatalf("expected 3x3 pattern, got %dx%d", p.W, p.H)
	}
	if p.Active() != 5 {
		t.Fatalf("expected 5 active cells, got %d", p.Active())
	}

	g := core.FromCells(p.Cells(4))
	want := []core.Point{
		core.Pt(1, 0, 0, 0),
		core.Pt(2, 1, 0, 0),
		core.Pt(0, 2, 0, 0),
		core.Pt(1, 2, 0, 0),
		core.Pt(2, 2, 0, 0),
	}
	if g.Len() != len(want) {
		t.Fatalf("expected %d active points, got %d", len(want), g.Len())
	}
	for _, q := range want {
		if g.Get(q) != core.Active {
			t.Fatalf("expected %v active", q)
		}
	}
}

func TestCellsYieldsEveryCell(t *testing.T) {
	p, err := Parse(strings.NewReader("#.\n.#\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var got []core.Cell
	for q, c := range p.Cells(3) {
		if q.Dims() != 3 || q.At(2) != 0 {
			t.Fatalf("point %v not zero-padded into 3D", q)
		}
		got = append(got, c)
	}
	want := []core.Cell{core.Active, core.Inactive, core.Inactive, core.Active}
	if len(got) != len(want) {
		t.Fatalf("expected %d cells, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cell %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseInvalidCharacter(t *testing.T) {
	_, err := Parse(strings.NewReader("..#\n.x.\n"))
	if !errors.Is(err, ErrInvalidCell) {
		t.Fatalf("expected ErrInvalidCell, got %v", err)
	}
	var syn *SyntaxError
	if !errors.As(err, &syn) {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
	if syn.Line != 2 || syn.Col != 2 || syn.Char != 'x' {
		t.Fatalf("unexpected location %+v", syn)
	}
}

func TestParseRaggedRow(t *testing.T) {
	_, err := Parse(strings.NewReader("...\n..\n"))
	if !errors.Is(err, ErrRaggedRow) {
		t.Fatalf("expected ErrRaggedRow, got %v", err)
	}
}

func TestParseEmpty(t *testing.T) {
	p, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.W != 0 || p.H != 0 || p.Active() != 0 {
		t.Fatalf("expected empty pattern, got %dx%d", p.W, p.H)
	}
}

func TestStringRoundTrip(t *testing.T) {
	text := ".#.\n..#\n###\n"
	p, err := Parse(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.String() != text {
		t.Fatalf("String() = %q, want %q", p.String(), text)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(path, []byte("##\n##\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Active() != 4 {
		t.Fatalf("expected 4 active cells, got %d", p.Active())
	}

	if _, err := Load(filepath.Join(dir, "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestRandomDeterministic(t *testing.T) {
	a := Random(rng.NewRNG(5), 6, 4)
	b := Random(rng.NewRNG(5), 6, 4)
	if a.String() != b.String() {
		t.Fatal("same seed should produce the same pattern")
	}
	if a.W != 6 || a.H != 4 {
		t.Fatalf("expected 6x4 pattern, got %dx%d", a.W, a.H)
	}
}
