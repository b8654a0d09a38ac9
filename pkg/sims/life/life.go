package life

import (
	"fmt"
	"iter"

	"nd-life/internal/core"
	"nd-life/internal/seed"
	rng "nd-life/pkg/core"
)

// Life implements Conway-style Life on an unbounded N-dimensional lattice.
// Only active cells are stored; two grids alternate as current and next.
type Life struct {
	dims    int
	rule    Rule
	cfg     Config
	offsets []core.Point

	cur    *core.SparseGrid
	nxt    *core.SparseGrid
	counts map[core.Point]int
	gen    int
}

// New returns a Life simulation in dims dimensions using rule.
func New(dims int, rule Rule) *Life {
	cfg := DefaultConfig()
	cfg.Dims = dims
	cfg.Rule = rule
	return NewWithConfig(cfg)
}

// NewWithConfig returns a Life simulation configured by cfg.
func NewWithConfig(cfg Config) *Life {
	return &Life{
		dims:    cfg.Dims,
		rule:    cfg.Rule,
		cfg:     cfg,
		offsets: core.Offsets(cfg.Dims),
		cur:     core.NewSparseGrid(),
		nxt:     core.NewSparseGrid(),
		counts:  make(map[core.Point]int),
	}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Dims returns the dimensionality of the lattice.
func (l *Life) Dims() int { return l.dims }

// Rule returns the birth/survival rule in use.
func (l *Life) Rule() Rule { return l.rule }

// Generation returns the number of steps taken since the last Load or Reset.
func (l *Life) Generation() int { return l.gen }

// Population returns the number of active cells.
func (l *Life) Population() int { return l.cur.Len() }

// Grid exposes the current generation.
func (l *Life) Grid() *core.SparseGrid { return l.cur }

// Load replaces the current generation with the given cells. It panics on a
// point whose dimensionality differs from the simulation's.
func (l *Life) Load(cells iter.Seq2[core.Point, core.Cell]) {
	l.cur.Clear()
	l.nxt.Clear()
	for p, c := range cells {
		if p.Dims() != l.dims {
			panic(fmt.Sprintf("life: loading %d-dimensional point %v into %d-dimensional sim", p.Dims(), p, l.dims))
		}
		l.cur.Set(p, c)
	}
	l.gen = 0
}

// Reset seeds a random Width x Height pattern on the first two axes. The seed
// argument overrides the configured one when non-zero.
func (l *Life) Reset(seedValue int64) {
	if seedValue == 0 {
		seedValue = l.cfg.Seed
	}
	pattern := seed.Random(rng.NewRNG(seedValue), l.cfg.Width, l.cfg.Height)
	l.Load(func(yield func(core.Point, core.Cell) bool) {
		for y := 0; y < pattern.H; y++ {
			for x := 0; x < pattern.W; x++ {
				c := core.Inactive
				if pattern.Get(x, y) {
					c = core.Active
				}
				if !yield(embed(l.dims, x, y), c) {
					return
				}
			}
		}
	})
}

func embed(dims, x, y int) core.Point {
	p := core.Origin(dims)
	if dims > 0 {
		p = p.With(0, x)
	}
	if dims > 1 {
		p = p.With(1, y)
	}
	return p
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	clear(l.counts)
	for p := range l.cur.Active() {
		for _, off := range l.offsets {
			l.counts[p.Add(off)]++
		}
	}
	// Cells with no active neighbours never get a counter and stay inactive.
	for p, n := range l.counts {
		l.nxt.Set(p, l.rule.Next(l.cur.Get(p), n))
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.nxt.Clear()
	l.gen++
}

// Run steps the simulation n times and returns the resulting population.
func (l *Life) Run(n int) int {
	for i := 0; i < n; i++ {
		l.Step()
	}
	return l.Population()
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
