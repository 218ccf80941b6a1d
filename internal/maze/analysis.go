package maze

import "ndmaze/internal/core"

// Entrance returns the start cell (1,...,1).
func Entrance(g *core.Grid) []int {
	c := make([]int, g.NumDims())
	for i := range c {
		c[i] = 1
	}
	return c
}

// Target returns the far interior corner (extent-2, ...).
func Target(g *core.Grid) []int {
	c := make([]int, g.NumDims())
	for i := range c {
		c[i] = g.Dim(i) - 2
	}
	return c
}

// Exit returns the open boundary cell next to the target, if any.
func Exit(g *core.Grid) ([]int, bool) {
	t := Target(g)
	for axis := range t {
		c := append([]int(nil), t...)
		c[axis]++
		if g.Get(c) == core.Air {
			return c, true
		}
	}
	return nil, false
}

// distances runs a BFS over open cells from `from` and returns the step
// distance of every cell, -1 where unreachable.
func distances(g *core.Grid, from []int) []int {
	dist := make([]int, g.Len())
	for i := range dist {
		dist[i] = -1
	}
	if !g.InBounds(from) || g.Get(from) != core.Air {
		return dist
	}
	n := g.NumDims()
	coord := make([]int, n)
	start := g.Index(from)
	dist[start] = 0
	queue := []int{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		coord = g.Coord(u, coord)
		for axis := 0; axis < n; axis++ {
			for _, sign := range [2]int{1, -1} {
				nc := coord[axis] + sign
				if nc < 0 || nc >= g.Dim(axis) {
					continue
				}
				v := u + sign*g.Stride(axis)
				if dist[v] >= 0 || g.At(v) != core.Air {
					continue
				}
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return dist
}

// Reachable marks every open cell connected to from.
func Reachable(g *core.Grid, from []int) []bool {
	dist := distances(g, from)
	out := make([]bool, len(dist))
	for i, d := range dist {
		out[i] = d >= 0
	}
	return out
}

// PathLength returns the number of steps on a shortest open path from a to
// b.
func PathLength(g *core.Grid, a, b []int) (int, bool) {
	if !g.InBounds(b) {
		return 0, false
	}
	d := distances(g, a)[g.Index(b)]
	return d, d >= 0
}

// Solvable reports whether the exit is open and reachable from the entrance.
func Solvable(g *core.Grid) bool {
	exit, ok := Exit(g)
	if !ok {
		return false
	}
	_, ok = PathLength(g, Entrance(g), exit)
	return ok
}

// HasOpenSquare reports whether any axis-aligned 2x2 square in any pair of
// axes is fully open.
func HasOpenSquare(g *core.Grid) bool {
	n := g.NumDims()
	coord := make([]int, n)
	for idx := 0; idx < g.Len(); idx++ {
		if g.At(idx) != core.Air {
			continue
		}
		coord = g.Coord(idx, coord)
		for a := 0; a < n; a++ {
			if coord[a]+1 >= g.Dim(a) {
				continue
			}
			sa := g.Stride(a)
			if g.At(idx+sa) != core.Air {
				continue
			}
			for b := a + 1; b < n; b++ {
				if coord[b]+1 >= g.Dim(b) {
					continue
				}
				sb := g.Stride(b)
				if g.At(idx+sb) == core.Air && g.At(idx+sa+sb) == core.Air {
					return true
				}
			}
		}
	}
	return false
}

// DeadEnds counts open interior cells with exactly one open neighbour.
func DeadEnds(g *core.Grid) int {
	n := g.NumDims()
	coord := make([]int, n)
	count := 0
	for idx := 0; idx < g.Len(); idx++ {
		if g.At(idx) != core.Air {
			continue
		}
		coord = g.Coord(idx, coord)
		if !g.Interior(coord) {
			continue
		}
		open := 0
		for axis := 0; axis < n; axis++ {
			s := g.Stride(axis)
			if g.At(idx+s) == core.Air {
				open++
			}
			if g.At(idx-s) == core.Air {
				open++
			}
		}
		if open == 1 {
			count++
		}
	}
	return count
}

// OpenFraction returns the share of interior cells that are open.
func OpenFraction(g *core.Grid) float64 {
	n := g.NumDims()
	coord := make([]int, n)
	carvable, open := 0, 0
	for idx := 0; idx < g.Len(); idx++ {
		coord = g.Coord(idx, coord)
		if !g.Interior(coord) {
			continue
		}
		carvable++
		if g.At(idx) == core.Air {
			open++
		}
	}
	if carvable == 0 {
		return 0
	}
	return float64(open) / float64(carvable)
}
