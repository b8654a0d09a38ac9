package core

import (
	"iter"
	"maps"
)

// Cell is the binary state of a coordinate.
type Cell uint8

const (
	// Inactive is the zero value; inactive cells are never stored.
	Inactive Cell = iota
	// Active marks a live cell.
	Active
)

func (c Cell) String() string {
	if c == Active {
		return "active"
	}
	return "inactive"
}

// SparseGrid stores the set of active points. Any point not in the set is
// inactive, so memory grows with the population rather than the volume.
type SparseGrid struct {
	cells map[Point]struct{}
}

// NewSparseGrid returns an empty grid.
func NewSparseGrid() *SparseGrid {
	return &SparseGrid{cells: make(map[Point]struct{})}
}

// FromCells builds a grid by applying every (point, state) pair in order.
// Later entries for the same point override earlier ones.
func FromCells(seq iter.Seq2[Point, Cell]) *SparseGrid {
	g := NewSparseGrid()
	g.Load(seq)
	return g
}

// Load applies every (point, state) pair of seq to g in arrival order.
func (g *SparseGrid) Load(seq iter.Seq2[Point, Cell]) {
	for p, c := range seq {
		g.Set(p, c)
	}
}

// Get reports the state of p.
func (g *SparseGrid) Get(p Point) Cell {
	if _, ok := g.cells[p]; ok {
		return Active
	}
	return Inactive
}

// Set stores the state of p. Both directions are idempotent.
func (g *SparseGrid) Set(p Point, c Cell) {
	if c == Active {
		g.cells[p] = struct{}{}
		return
	}
	delete(g.cells, p)
}

// Clear marks every cell inactive while keeping the allocated storage.
func (g *SparseGrid) Clear() { clear(g.cells) }

// Len returns the number of active cells.
func (g *SparseGrid) Len() int { return len(g.cells) }

// Active yields every active point in unspecified order.
func (g *SparseGrid) Active() iter.Seq[Point] { return maps.Keys(g.cells) }

// Equal reports whether g and other hold the same active points.
func (g *SparseGrid) Equal(other *SparseGrid) bool {
	if g.Len() != other.Len() {
		return false
	}
	for p := range g.cells {
		if _, ok := other.cells[p]; !ok {
			return false
		}
	}
	return true
}
