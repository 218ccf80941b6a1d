package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ndmaze/internal/core"
)

// carveLine opens the cells between two coordinates that differ on one axis.
func carveLine(g *core.Grid, from, to []int) {
	c := append([]int(nil), from...)
	for {
		g.SetAt(c, core.Air)
		done := true
		for i := range c {
			if c[i] < to[i] {
				c[i]++
				done = false
				break
			}
			if c[i] > to[i] {
				c[i]--
				done = false
				break
			}
		}
		if done {
			return
		}
	}
}

func TestAnalysisOnHandCarvedGrid(t *testing.T) {
	g := core.NewSolidGrid(7, 7)
	carveLine(g, []int{1, 1}, []int{1, 5})
	carveLine(g, []int{1, 5}, []int{5, 5})
	g.SetAt([]int{6, 5}, core.Air)

	assert.Equal(t, []int{1, 1}, Entrance(g))
	assert.Equal(t, []int{5, 5}, Target(g))
	exit, ok := Exit(g)
	require.True(t, ok)
	assert.Equal(t, []int{6, 5}, exit)

	length, ok := PathLength(g, Entrance(g), exit)
	require.True(t, ok)
	assert.Equal(t, 9, length)
	assert.True(t, Solvable(g))
	assert.False(t, HasOpenSquare(g))
	assert.Equal(t, 1, DeadEnds(g))
	assert.InDelta(t, 9.0/25.0, OpenFraction(g), 1e-12)

	reach := Reachable(g, Entrance(g))
	assert.True(t, reach[g.Index([]int{5, 5})])
	assert.False(t, reach[g.Index([]int{3, 3})])
}

func TestHasOpenSquareFindsAnyAxisPair(t *testing.T) {
	g := core.NewSolidGrid(5, 5, 5)
	assert.False(t, HasOpenSquare(g))
	g.SetAt([]int{1, 2, 1}, core.Air)
	g.SetAt([]int{2, 2, 1}, core.Air)
	g.SetAt([]int{1, 2, 2}, core.Air)
	assert.False(t, HasOpenSquare(g))
	g.SetAt([]int{2, 2, 2}, core.Air)
	assert.True(t, HasOpenSquare(g))
}

func TestUnreachableExit(t *testing.T) {
	g := core.NewSolidGrid(5, 5)
	g.SetAt([]int{1, 1}, core.Air)
	g.SetAt([]int{4, 3}, core.Air)
	g.SetAt([]int{3, 3}, core.Air)
	assert.False(t, Solvable(g))
	_, ok := PathLength(g, Entrance(g), []int{9, 9})
	assert.False(t, ok)
}

func TestFrontierSchedules(t *testing.T) {
	g := core.NewGrid(5, 5)
	mk := func(x int) *head { return newHead(g, []int{x, 1}) }

	first := newFrontier(ScheduleFirst)
	newest := newFrontier(ScheduleNewest)
	rr := newFrontier(ScheduleRoundRobin)
	for _, f := range []*frontier{first, newest, rr} {
		f.push(mk(1))
		f.push(mk(2))
		f.push(mk(3))
	}

	assert.Equal(t, 1, first.current().coord[0])
	assert.Equal(t, 3, newest.current().coord[0])

	var seen []int
	for i := 0; i < 4; i++ {
		seen = append(seen, rr.current().coord[0])
		rr.advance()
	}
	assert.Equal(t, []int{1, 2, 3, 1}, seen)

	rr.advance() // cursor on the head at x=3
	rr.drop()
	assert.Equal(t, 2, rr.len())
	assert.Equal(t, 1, rr.current().coord[0])

	first.drop()
	assert.Equal(t, 2, first.current().coord[0])
}

func TestHeadBacktrack(t *testing.T) {
	g := core.NewSolidGrid(5, 5)
	h := newHead(g, []int{1, 1})
	require.True(t, h.fits(g, Positive(0)))
	require.False(t, h.fits(g, Negative(0)))

	assert.True(t, h.carve(g, Positive(0)))
	assert.True(t, h.carve(g, Positive(1)))
	assert.Equal(t, []int{2, 2}, h.coord)
	assert.Equal(t, g.Index([]int{2, 2}), h.idx)

	c := h.clone()
	require.True(t, h.backtrack(g))
	require.True(t, h.backtrack(g))
	assert.False(t, h.backtrack(g))
	assert.Equal(t, []int{1, 1}, h.coord)
	assert.Equal(t, []int{2, 2}, c.coord, "clone must not share state")
	assert.Equal(t, Negative(1), Positive(1).Reverse())
	assert.Equal(t, "-1", Negative(1).String())
}
