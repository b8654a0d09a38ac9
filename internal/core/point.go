package core

import (
	"math"
	"strconv"
	"strings"
)

// MaxDims is the largest dimensionality a Point can hold.
const MaxDims = 8

// Point is a coordinate in N-dimensional integer space. Points are plain
// values: two points are equal when they have the same dimensionality and
// identical components, so they can be used directly as map keys.
type Point struct {
	n uint8
	v [MaxDims]int32
}

// Pt builds a point from its components. Components are stored as int32; Pt
// panics when more than MaxDims components are given or a component does not
// fit.
func Pt(xs ...int) Point {
	if len(xs) > MaxDims {
		panic("core: point has more than MaxDims components")
	}
	p := Point{n: uint8(len(xs))}
	for i, x := range xs {
		p.v[i] = component(x)
	}
	return p
}

func component(x int) int32 {
	if x < math.MinInt32 || x > math.MaxInt32 {
		panic("core: component " + strconv.Itoa(x) + " out of int32 range")
	}
	return int32(x)
}

func (p Point) check(i int) {
	if i < 0 || i >= int(p.n) {
		panic("core: axis " + strconv.Itoa(i) + " out of range for " + strconv.Itoa(int(p.n)) + "-dimensional point")
	}
}

// Origin returns the all-zero point with n dimensions.
func Origin(n int) Point {
	if n < 0 || n > MaxDims {
		panic("core: dimensionality out of range")
	}
	return Point{n: uint8(n)}
}

// Dims reports the dimensionality of p.
func (p Point) Dims() int { return int(p.n) }

// At returns the i-th component. It panics when i is not an axis of p.
func (p Point) At(i int) int {
	p.check(i)
	return int(p.v[i])
}

// With returns a copy of p whose i-th component is x. It panics when i is not
// an axis of p or x does not fit in int32.
func (p Point) With(i, x int) Point {
	p.check(i)
	p.v[i] = component(x)
	return p
}

// Add returns the component-wise sum of p and q. It panics when the
// dimensionalities differ.
func (p Point) Add(q Point) Point {
	if p.n != q.n {
		panic("core: adding points of different dimensionality")
	}
	for i := 0; i < int(p.n); i++ {
		p.v[i] += q.v[i]
	}
	return p
}

// Chebyshev returns the largest absolute component difference between p and q.
func (p Point) Chebyshev(q Point) int {
	d := 0
	for i := 0; i < int(p.n); i++ {
		diff := int(p.v[i]) - int(q.v[i])
		if diff < 0 {
			diff = -diff
		}
		if diff > d {
			d = diff
		}
	}
	return d
}

func (p Point) isZero() bool {
	for i := 0; i < int(p.n); i++ {
		if p.v[i] != 0 {
			return false
		}
	}
	return true
}

// String formats the point as "(x, y, z)".
func (p Point) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i := 0; i < int(p.n); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(int(p.v[i])))
	}
	b.WriteByte(')')
	return b.String()
}
