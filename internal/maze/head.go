package maze

import (
	"slices"

	"ndmaze/internal/core"
)

// head is a carving agent walking through the grid.
type head struct {
	idx     int
	coord   []int
	history []Direction
	newness int
}

func newHead(g *core.Grid, coord []int) *head {
	return &head{idx: g.Index(coord), coord: slices.Clone(coord)}
}

func (h *head) clone() *head {
	return &head{
		idx:     h.idx,
		coord:   slices.Clone(h.coord),
		history: slices.Clone(h.history),
		newness: h.newness,
	}
}

func (h *head) last() (Direction, bool) {
	if len(h.history) == 0 {
		return Direction{}, false
	}
	return h.history[len(h.history)-1], true
}

// fits reports whether moving along d keeps the head in the interior.
func (h *head) fits(g *core.Grid, d Direction) bool {
	c := h.coord[d.Axis] + d.Sign
	return c >= 1 && c <= g.Dim(d.Axis)-2
}

func (h *head) move(g *core.Grid, d Direction) {
	h.idx += d.Offset(g)
	h.coord[d.Axis] += d.Sign
}

// backtrack undoes the most recent move.
func (h *head) backtrack(g *core.Grid) bool {
	d, ok := h.last()
	if !ok {
		return false
	}
	h.history = h.history[:len(h.history)-1]
	h.move(g, d.Reverse())
	return true
}

// carve moves along d and opens the destination. It reports whether the
// destination was solid.
func (h *head) carve(g *core.Grid, d Direction) bool {
	h.move(g, d)
	h.history = append(h.history, d)
	opened := g.At(h.idx) != core.Air
	g.Set(h.idx, core.Air)
	if h.newness > 0 {
		h.newness--
	}
	return opened
}
