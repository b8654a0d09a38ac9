package core

import "testing"

func TestNeighborsCountDistinctAndAdjacent(t *testing.T) {
	for n := 1; n <= 6; n++ {
		center := Origin(n)
		for i := 0; i < n; i++ {
			center = center.With(i, 10*i-7)
		}

		seen := map[Point]bool{}
		for q := range Neighbors(center) {
			if q == center {
				t.Fatalf("dims=%d: neighbourhood contains the centre %v", n, center)
			}
			if seen[q] {
				t.Fatalf("dims=%d: duplicate neighbour %v", n, q)
			}
			if d := q.Chebyshev(center); d != 1 {
				t.Fatalf("dims=%d: neighbour %v at distance %d", n, q, d)
			}
			if q.Dims() != n {
				t.Fatalf("dims=%d: neighbour %v has %d dims", n, q, q.Dims())
			}
			seen[q] = true
		}
		if want := NeighborCount(n); len(seen) != want {
			t.Fatalf("dims=%d: got %d neighbours, want %d", n, len(seen), want)
		}
	}
}

func TestNeighborsOdometerOrder(t *testing.T) {
	var got []Point
	for q := range Neighbors(Pt(0, 0)) {
		got = append(got, q)
	}
	want := []Point{
		Pt(-1, -1), Pt(-1, 0), Pt(-1, 1),
		Pt(0, -1), Pt(0, 1),
		Pt(1, -1), Pt(1, 0), Pt(1, 1),
	}
	if len(got) != len(want) {
		t.Fatalf("got %d neighbours, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("neighbour %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNeighborsStopsEarly(t *testing.T) {
	count := 0
	for range Neighbors(Pt(1, 2, 3)) {
		count++
		if count == 5 {
			break
		}
	}
	if count != 5 {
		t.Fatalf("expected to stop after 5 neighbours, got %d", count)
	}
}

func TestOffsetsMatchNeighborsOfOrigin(t *testing.T) {
	offsets := Offsets(4)
	if len(offsets) != 80 {
		t.Fatalf("expected 80 offsets in 4D, got %d", len(offsets))
	}
	i := 0
	p := Pt(5, -3, 2, 9)
	for q := range Neighbors(p) {
		if got := p.Add(offsets[i]); got != q {
			t.Fatalf("offset %d: %v + %v = %v, want %v", i, p, offsets[i], got, q)
		}
		i++
	}
}

func TestNeighborsZeroDims(t *testing.T) {
	for q := range Neighbors(Origin(0)) {
		t.Fatalf("0-dimensional point should have no neighbours, got %v", q)
	}
	if NeighborCount(0) != 0 {
		t.Fatalf("expected NeighborCount(0) == 0, got %d", NeighborCount(0))
	}
}
