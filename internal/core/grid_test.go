package core

import (
	"slices"
	"testing"
	"time"
)

func TestNewGridClampsExtents(t *testing.T) {
	cases := []struct {
		in   []int
		want []int
	}{
		{in: []int{1, 2}, want: []int{3, 3}},
		{in: []int{7}, want: []int{7, 3}},
		{in: nil, want: []int{3, 3}},
		{in: []int{4, 5, 6}, want: []int{4, 5, 6}},
	}
	for _, tc := range cases {
		g := NewGrid(tc.in...)
		if !slices.Equal(g.Dims(), tc.want) {
			t.Fatalf("NewGrid(%v) dims = %v, want %v", tc.in, g.Dims(), tc.want)
		}
	}
}

func TestIndexCoordRoundTrip(t *testing.T) {
	g := NewGrid(4, 5, 6)
	if g.Len() != 120 {
		t.Fatalf("expected 120 cells, got %d", g.Len())
	}
	if g.Stride(0) != 30 || g.Stride(1) != 6 || g.Stride(2) != 1 {
		t.Fatalf("unexpected strides %d %d %d", g.Stride(0), g.Stride(1), g.Stride(2))
	}
	coord := make([]int, 3)
	for idx := 0; idx < g.Len(); idx++ {
		coord = g.Coord(idx, coord)
		if got := g.Index(coord); got != idx {
			t.Fatalf("index %d -> %v -> %d", idx, coord, got)
		}
		if !g.InBounds(coord) {
			t.Fatalf("coordinate %v reported out of bounds", coord)
		}
	}
}

func TestInteriorAndBounds(t *testing.T) {
	g := NewGrid(5, 5)
	if !g.Interior([]int{1, 3}) {
		t.Fatalf("expected (1,3) to be interior")
	}
	if g.Interior([]int{0, 2}) || g.Interior([]int{2, 4}) {
		t.Fatalf("boundary cells must not be interior")
	}
	if g.InBounds([]int{5, 0}) || g.InBounds([]int{-1, 0}) || g.InBounds([]int{1}) {
		t.Fatalf("out of range coordinates accepted")
	}
}

func TestSolidAndSparseGrids(t *testing.T) {
	solid := NewSolidGrid(3, 3, 3)
	if solid.Count(Wall) != solid.Len() {
		t.Fatalf("solid grid has %d walls of %d", solid.Count(Wall), solid.Len())
	}

	a := NewSparseGrid(1, 10, 10, 10)
	b := NewSparseGrid(1, 10, 10, 10)
	if !a.Equal(b) {
		t.Fatalf("sparse grids with equal seeds differ")
	}
	walls := a.Count(Wall)
	if walls == 0 || walls > a.Len()/4 {
		t.Fatalf("sparse grid wall count %d out of range", walls)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewSolidGrid(3, 4)
	c := g.Clone()
	c.SetAt([]int{1, 1}, Air)
	if g.Get([]int{1, 1}) != Wall {
		t.Fatalf("clone shares storage with the original")
	}
	if g.Equal(c) {
		t.Fatalf("expected grids to differ after mutation")
	}
}

func TestStopwatchFirstLapIsZero(t *testing.T) {
	base := time.Unix(100, 0)
	ticks := []time.Time{base, base.Add(250 * time.Millisecond), base.Add(time.Second)}
	i := 0
	sw := &Stopwatch{now: func() time.Time {
		tm := ticks[i]
		i++
		return tm
	}}
	if got := sw.Lap(); got != 0 {
		t.Fatalf("first lap = %v, want 0", got)
	}
	if got := sw.Lap(); got != 0.25 {
		t.Fatalf("second lap = %v, want 0.25", got)
	}
	if got := sw.Lap(); got != 0.75 {
		t.Fatalf("third lap = %v, want 0.75", got)
	}
}
