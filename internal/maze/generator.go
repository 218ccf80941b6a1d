package maze

import (
	"github.com/sirupsen/logrus"

	"ndmaze/internal/core"
	pkgcore "ndmaze/pkg/core"
	"ndmaze/pkg/logger"
)

// minWeight is the total candidate weight below which a head has no move.
const minWeight = 1e-6

// Stats summarises one generation run.
type Stats struct {
	Carvable   int
	Opened     int
	Steps      int
	Spawned    int
	Died       int
	Backtracks int
	EarlyStop  bool
	Rescued    bool
	Exit       []int
}

// New allocates a solid grid with the configured extents and carves it.
func New(opts *Options) (*core.Grid, Stats) {
	if opts == nil {
		opts = DefaultOptions()
	}
	g := core.NewSolidGrid(opts.Dimensions()...)
	return g, Generate(g, opts)
}

// Generate fills g with walls and carves a maze from (1,...,1) to the far
// interior corner, then opens one boundary cell next to that corner. The
// result depends only on the grid extents and opts.
func Generate(g *core.Grid, opts *Options) Stats {
	if g == nil {
		panic("maze: Generate called with a nil grid")
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	c := newCarver(g, opts)
	stats := c.run()

	logger.Component("maze").WithFields(logrus.Fields{
		"dims":       FormatDims(g.Dims()),
		"seed":       opts.Seed(),
		"opened":     stats.Opened,
		"carvable":   stats.Carvable,
		"steps":      stats.Steps,
		"spawned":    stats.Spawned,
		"died":       stats.Died,
		"early_stop": stats.EarlyStop,
		"rescued":    stats.Rescued,
	}).Debug("maze generated")
	return stats
}

// carver holds the state of one generation run.
type carver struct {
	grid *core.Grid
	opts *Options
	rng  *pkgcore.RNG

	n       int
	dirs    []Direction
	cum     []float64
	target  int
	tcoord  []int
	scratch []int
}

func newCarver(g *core.Grid, opts *Options) *carver {
	n := g.NumDims()
	tcoord := make([]int, n)
	for i := range tcoord {
		tcoord[i] = g.Dim(i) - 2
	}
	return &carver{
		grid:    g,
		opts:    opts,
		rng:     pkgcore.NewRNGFromString(opts.Seed()),
		n:       n,
		dirs:    directions(n),
		cum:     make([]float64, 2*n),
		target:  g.Index(tcoord),
		tcoord:  tcoord,
		scratch: make([]int, n),
	}
}

func (c *carver) targetOpen() bool { return c.grid.At(c.target) == core.Air }

func (c *carver) run() Stats {
	g := c.grid
	g.Fill(core.Wall)

	var stats Stats
	stats.Carvable = 1
	start := make([]int, c.n)
	for i := range start {
		start[i] = 1
		stats.Carvable *= g.Dim(i) - 2
	}
	g.SetAt(start, core.Air)
	stats.Opened = 1

	goal := c.opts.Density() * float64(stats.Carvable)
	f := newFrontier(c.opts.Schedule())
	f.push(newHead(g, start))

	useless := 0
	for f.len() > 0 && (float64(stats.Opened) < goal || !c.targetOpen()) {
		if f.len() >= 3 && c.rng.Chance(c.opts.BranchDeathProbability()) {
			f.drop()
			stats.Died++
			continue
		}

		h := f.current()
		d, ok := c.nextDirection(h)
		for !ok && h.backtrack(g) {
			stats.Backtracks++
			d, ok = c.nextDirection(h)
		}
		if !ok {
			f.drop()
			continue
		}

		if g.At(h.idx+d.Offset(g)) != core.Air {
			for i := 0; i < 2*c.n; i++ {
				if c.rng.Chance(c.opts.BranchProbability()) {
					spawn := h.clone()
					spawn.newness = c.opts.RestrictNewAmount()
					f.push(spawn)
					stats.Spawned++
				}
			}
			if useless > 0 {
				useless--
			}
		} else {
			useless++
		}

		if h.carve(g, d) {
			stats.Opened++
		}
		stats.Steps++
		f.advance()

		if useless >= c.opts.MaxUseless() && c.targetOpen() {
			stats.EarlyStop = true
			break
		}
	}

	if !c.targetOpen() {
		stats.Opened += c.rescue()
		stats.Rescued = true
	}
	stats.Exit = c.openExit()
	return stats
}

// nextDirection draws a move for h, or reports false when every candidate
// is rejected.
func (c *carver) nextDirection(h *head) (Direction, bool) {
	g := c.grid
	prev, hasPrev := h.last()
	total := 0.0
	chosen := -1
	for i, d := range c.dirs {
		c.cum[i] = total
		if hasPrev && d == prev.Reverse() {
			continue
		}
		if !h.fits(g, d) {
			continue
		}
		dest := h.idx + d.Offset(g)
		if c.crowdsTarget(h, d, dest) {
			continue
		}
		// Heads within their newness allowance may run through open cells,
		// but never past the block check.
		if h.newness == 0 && c.rng.Chance(1-c.opts.LoopProbability()) && !c.isolated(dest, h.idx) {
			continue
		}
		if c.rng.Chance(c.opts.BlockProbability()) && c.closesSquare(dest) {
			continue
		}

		w := c.opts.TwistProbability()
		if hasPrev && d == prev {
			w = 1 - c.opts.TwistProbability()
		}
		if d.Sign > 0 {
			w *= c.opts.FlowProbability()
		} else {
			w *= 1 - c.opts.FlowProbability()
		}
		if w <= 0 {
			continue
		}
		total += w
		c.cum[i] = total
		chosen = i
	}
	if total < minWeight {
		return Direction{}, false
	}

	draw := c.rng.Float64() * total
	for i := range c.dirs {
		prevCum := 0.0
		if i > 0 {
			prevCum = c.cum[i-1]
		}
		if c.cum[i] > prevCum && c.cum[i] > draw {
			return c.dirs[i], true
		}
	}
	return c.dirs[chosen], true
}

// isolated reports whether dest is solid and none of its neighbours other
// than from is open.
func (c *carver) isolated(dest, from int) bool {
	g := c.grid
	if g.At(dest) == core.Air {
		return false
	}
	for axis := 0; axis < c.n; axis++ {
		s := g.Stride(axis)
		for _, nb := range [2]int{dest + s, dest - s} {
			if nb != from && g.At(nb) == core.Air {
				return false
			}
		}
	}
	return true
}

// closesSquare reports whether opening dest would complete a fully open 2x2
// square in some pair of axes. dest must be an interior cell.
func (c *carver) closesSquare(dest int) bool {
	g := c.grid
	for a := 0; a < c.n; a++ {
		for _, sa := range [2]int{g.Stride(a), -g.Stride(a)} {
			p := dest + sa
			if g.At(p) != core.Air {
				continue
			}
			for b := a + 1; b < c.n; b++ {
				for _, sb := range [2]int{g.Stride(b), -g.Stride(b)} {
					if g.At(dest+sb) == core.Air && g.At(p+sb) == core.Air {
						return true
					}
				}
			}
		}
	}
	return false
}

// crowdsTarget rejects opening a second neighbour of the still-solid target.
// With the guard on, a solid target never has more than one open neighbour,
// so opening it later joins the maze at a single cell and cannot complete an
// open square. Disabled by Options.SetTargetGuard(false).
func (c *carver) crowdsTarget(h *head, d Direction, dest int) bool {
	g := c.grid
	if !c.opts.TargetGuard() || c.targetOpen() || dest == c.target || g.At(dest) == core.Air {
		return false
	}
	dist := 0
	for i, t := range c.tcoord {
		v := h.coord[i]
		if i == d.Axis {
			v += d.Sign
		}
		if v > t {
			dist += v - t
		} else {
			dist += t - v
		}
	}
	if dist != 1 {
		return false
	}
	for axis := 0; axis < c.n; axis++ {
		if g.At(c.target-g.Stride(axis)) == core.Air {
			return true
		}
	}
	return false
}

// rescueMode selects which solid cells a rescue passage may run through.
type rescueMode int

const (
	// rescueSingleJoin keeps cells touching at most one open cell and
	// completing no open square.
	rescueSingleJoin rescueMode = iota
	// rescueSquareFree allows loops but no open squares.
	rescueSquareFree
	// rescueAny allows every solid interior cell.
	rescueAny
)

// rescue opens a shortest passage from the target to the carved region and
// returns the number of cells it opened. Modes are tried in order; rescueAny
// is skipped when BlockProbability is 1, leaving the target solid rather than
// completing an open square.
func (c *carver) rescue() int {
	modes := []rescueMode{rescueSingleJoin, rescueSquareFree}
	if c.opts.BlockProbability() < 1 {
		modes = append(modes, rescueAny)
	}
	for _, mode := range modes {
		path := c.searchFromTarget(mode)
		if path != nil && c.openPath(path, mode != rescueAny) {
			return len(path)
		}
	}
	if c.opts.BlockProbability() < 1 {
		c.grid.Set(c.target, core.Air)
		return 1
	}
	logger.Component("maze").WithField("seed", c.opts.Seed()).Warn("target left solid: every passage completes an open square")
	return 0
}

// openPath opens every cell of path. With squareFree set it undoes the
// passage and reports false when the opened cells complete an open square.
func (c *carver) openPath(path []int, squareFree bool) bool {
	for _, idx := range path {
		c.grid.Set(idx, core.Air)
	}
	if !squareFree {
		return true
	}
	for _, idx := range path {
		if c.closesSquare(idx) {
			for _, undo := range path {
				c.grid.Set(undo, core.Wall)
			}
			return false
		}
	}
	return true
}

// searchFromTarget runs a BFS over solid interior cells starting at the
// target and stops at the first cell that touches an open cell. mode limits
// the cells the search may enter.
func (c *carver) searchFromTarget(mode rescueMode) []int {
	g := c.grid
	passable := func(idx int) bool {
		switch mode {
		case rescueSingleJoin:
			return c.openNeighbours(idx) <= 1 && !c.closesSquare(idx)
		case rescueSquareFree:
			return !c.closesSquare(idx)
		default:
			return true
		}
	}
	if !passable(c.target) {
		return nil
	}
	prev := make(map[int]int, 64)
	prev[c.target] = -1
	queue := []int{c.target}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if c.openNeighbours(u) > 0 {
			var path []int
			for v := u; v != -1; v = prev[v] {
				path = append(path, v)
			}
			return path
		}
		coord := g.Coord(u, c.scratch)
		for axis := 0; axis < c.n; axis++ {
			for _, sign := range [2]int{1, -1} {
				nc := coord[axis] + sign
				if nc < 1 || nc > g.Dim(axis)-2 {
					continue
				}
				v := u + sign*g.Stride(axis)
				if _, seen := prev[v]; seen || !passable(v) {
					continue
				}
				prev[v] = u
				queue = append(queue, v)
			}
		}
	}
	return nil
}

func (c *carver) openNeighbours(idx int) int {
	g := c.grid
	n := 0
	for axis := 0; axis < c.n; axis++ {
		s := g.Stride(axis)
		if g.At(idx+s) == core.Air {
			n++
		}
		if g.At(idx-s) == core.Air {
			n++
		}
	}
	return n
}

// openExit opens the boundary cell one positive step past the target along
// a random axis and returns its coordinate.
func (c *carver) openExit() []int {
	axis := c.rng.IntN(c.n)
	exit := append([]int(nil), c.tcoord...)
	exit[axis]++
	c.grid.SetAt(exit, core.Air)
	return exit
}
