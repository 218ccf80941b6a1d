package maze

import (
	"strconv"

	"ndmaze/internal/core"
)

// Direction is a unit move along one axis.
type Direction struct {
	Axis int
	Sign int // +1 or -1
}

// Positive returns the +1 move along axis.
func Positive(axis int) Direction { return Direction{Axis: axis, Sign: 1} }

// Negative returns the -1 move along axis.
func Negative(axis int) Direction { return Direction{Axis: axis, Sign: -1} }

// Reverse returns the move that undoes d.
func (d Direction) Reverse() Direction { return Direction{Axis: d.Axis, Sign: -d.Sign} }

// Offset returns the linear index delta of d in g.
func (d Direction) Offset(g *core.Grid) int { return d.Sign * g.Stride(d.Axis) }

func (d Direction) String() string {
	if d.Sign < 0 {
		return "-" + strconv.Itoa(d.Axis)
	}
	return "+" + strconv.Itoa(d.Axis)
}

// directions lists the 2n candidate moves: every positive axis move, then
// every negative one.
func directions(n int) []Direction {
	out := make([]Direction, 0, 2*n)
	for i := 0; i < n; i++ {
		out = append(out, Positive(i))
	}
	for i := 0; i < n; i++ {
		out = append(out, Negative(i))
	}
	return out
}
