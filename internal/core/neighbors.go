package core

import "iter"

// NeighborCount returns the size of the Moore neighbourhood in n dimensions,
// 3^n - 1.
func NeighborCount(n int) int {
	total := 1
	for i := 0; i < n; i++ {
		total *= 3
	}
	return total - 1
}

// Neighbors yields every point within Chebyshev distance 1 of p, excluding p.
//
// Offsets are produced in odometer order: each axis counts -1, 0, 1 with the
// last axis turning fastest. The zero offset is skipped.
func Neighbors(p Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		n := int(p.n)
		off := Point{n: p.n}
		for i := 0; i < n; i++ {
			off.v[i] = -1
		}
		for {
			if !off.isZero() {
				if !yield(p.Add(off)) {
					return
				}
			}
			i := n - 1
			for ; i >= 0; i-- {
				if off.v[i] < 1 {
					off.v[i]++
					break
				}
				off.v[i] = -1
			}
			if i < 0 {
				return
			}
		}
	}
}

// Offsets materializes the neighbourhood offsets for n dimensions in the same
// order Neighbors uses.
func Offsets(n int) []Point {
	out := make([]Point, 0, NeighborCount(n))
	for q := range Neighbors(Origin(n)) {
		out = append(out, q)
	}
	return out
}
