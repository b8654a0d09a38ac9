// Package seed reads 2D starting patterns and embeds them into N-dimensional
// space.
package seed

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"nd-life/internal/core"
	rng "nd-life/pkg/core"
)

const (
	activeChar   = '#'
	inactiveChar = '.'
)

var (
	// ErrInvalidCell reports a character other than '#' or '.'.
	ErrInvalidCell = errors.New("invalid cell character")
	// ErrRaggedRow reports a row whose length differs from the first row.
	ErrRaggedRow = errors.New("row length differs from first row")
)

// SyntaxError locates a malformed seed. Line and Col are 1-based.
type SyntaxError struct {
	Line int
	Col  int
	Char rune
	Err  error
}

func (e *SyntaxError) Error() string {
	if errors.Is(e.Err, ErrRaggedRow) {
		return fmt.Sprintf("seed line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("seed line %d col %d: %v %q", e.Line, e.Col, e.Err, e.Char)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Pattern is a validated 2D seed.
type Pattern struct {
	W, H  int
	cells []bool
}

// Parse reads a pattern of '#' (active) and '.' (inactive) rows. Trailing
// carriage returns and trailing blank lines are ignored.
func Parse(r io.Reader) (*Pattern, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	p := &Pattern{H: len(lines)}
	for y, line := range lines {
		row := []rune(line)
		if y == 0 {
			p.W = len(row)
			p.cells = make([]bool, 0, p.W*p.H)
		} else if len(row) != p.W {
			return nil, &SyntaxError{Line: y + 1, Col: len(row) + 1, Err: ErrRaggedRow}
		}
		for x, ch := range row {
			switch ch {
			case activeChar:
				p.cells = append(p.cells, true)
			case inactiveChar:
				p.cells = append(p.cells, false)
			default:
				return nil, &SyntaxError{Line: y + 1, Col: x + 1, Char: ch, Err: ErrInvalidCell}
			}
		}
	}
	return p, nil
}

// Load parses the pattern stored at path.
func Load(path string) (*Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed %q: %w", path, err)
	}
	defer f.Close()
	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse seed %q: %w", path, err)
	}
	return p, nil
}

// Random returns a w x h pattern with roughly half of its cells active.
func Random(r *rng.RNG, w, h int) *Pattern {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	p := &Pattern{W: w, H: h, cells: make([]bool, w*h)}
	r.FillBinary(p.cells)
	return p
}

// Get reports whether the cell at column x, row y is active.
func (p *Pattern) Get(x, y int) bool { return p.cells[y*p.W+x] }

// Active returns the number of active cells in the pattern.
func (p *Pattern) Active() int {
	n := 0
	for _, alive := range p.cells {
		if alive {
			n++
		}
	}
	return n
}

// Cells yields every cell of the pattern in row-major order, placed at
// (column, row, 0, ...) in dims-dimensional space. Inactive cells are
// yielded too. dims must be at least 2.
func (p *Pattern) Cells(dims int) iter.Seq2[core.Point, core.Cell] {
	if dims < 2 {
		panic("seed: a 2D pattern needs at least 2 dimensions")
	}
	return func(yield func(core.Point, core.Cell) bool) {
		base := core.Origin(dims)
		for y := 0; y < p.H; y++ {
			for x := 0; x < p.W; x++ {
				c := core.Inactive
				if p.Get(x, y) {
					c = core.Active
				}
				if !yield(base.With(0, x).With(1, y), c) {
					return
				}
			}
		}
	}
}

// String renders the pattern in the same notation Parse accepts.
func (p *Pattern) String() string {
	var b strings.Builder
	for y := 0; y < p.H; y++ {
		for x := 0; x < p.W; x++ {
			if p.Get(x, y) {
				b.WriteByte(activeChar)
			} else {
				b.WriteByte(inactiveChar)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
