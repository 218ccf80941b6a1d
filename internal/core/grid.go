package core

import (
	"slices"

	pkgcore "ndmaze/pkg/core"
)

// Grid stores an N-dimensional array of block codes in row-major order, last
// dimension fastest.
type Grid struct {
	dims    []int
	strides []int
	data    []uint8
}

// MinExtent is the smallest extent along any axis: one interior cell plus
// two boundary walls.
const MinExtent = 3

// sparseSpread gives ad-hoc grids roughly one wall per 21 cells.
const sparseSpread = 20

// ClampDims applies the extent rules used everywhere a dimension vector is
// accepted: at least two axes, each at least MinExtent.
func ClampDims(dims []int) []int {
	n := len(dims)
	if n < 2 {
		n = 2
	}
	out := make([]int, n)
	for i := range out {
		out[i] = MinExtent
		if i < len(dims) && dims[i] > MinExtent {
			out[i] = dims[i]
		}
	}
	return out
}

// NewGrid allocates an all-air grid with the given extents.
func NewGrid(dims ...int) *Grid {
	d := ClampDims(dims)
	strides := make([]int, len(d))
	total := 1
	for i := len(d) - 1; i >= 0; i-- {
		strides[i] = total
		total *= d[i]
	}
	return &Grid{dims: d, strides: strides, data: make([]uint8, total)}
}

// NewSolidGrid allocates a grid filled with walls, ready for carving.
func NewSolidGrid(dims ...int) *Grid {
	g := NewGrid(dims...)
	g.Fill(Wall)
	return g
}

// NewSparseGrid allocates a grid with scattered walls for ad-hoc rendering.
func NewSparseGrid(seed int64, dims ...int) *Grid {
	g := NewGrid(dims...)
	rng := pkgcore.NewRNG(seed)
	pkgcore.FillSparse(rng.Source(), g.data, sparseSpread)
	return g
}

// NumDims returns the number of axes.
func (g *Grid) NumDims() int { return len(g.dims) }

// Dims returns a copy of the extents.
func (g *Grid) Dims() []int { return slices.Clone(g.dims) }

// Dim returns the extent along axis i.
func (g *Grid) Dim(i int) int { return g.dims[i] }

// Stride returns the linear step for axis i.
func (g *Grid) Stride(i int) int { return g.strides[i] }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.data) }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for a coordinate vector.
func (g *Grid) Index(coord []int) int {
	idx := 0
	for i, c := range coord {
		idx += c * g.strides[i]
	}
	return idx
}

// Coord writes the coordinate of idx into out (allocating when out is too
// short) and returns it.
func (g *Grid) Coord(idx int, out []int) []int {
	if len(out) < len(g.dims) {
		out = make([]int, len(g.dims))
	}
	for i, s := range g.strides {
		out[i] = idx / s
		idx -= out[i] * s
	}
	return out[:len(g.dims)]
}

// At returns the block at a linear index.
func (g *Grid) At(idx int) uint8 { return g.data[idx] }

// Set writes the block at a linear index.
func (g *Grid) Set(idx int, v uint8) { g.data[idx] = v }

// Get returns the block at a coordinate.
func (g *Grid) Get(coord []int) uint8 { return g.data[g.Index(coord)] }

// SetAt writes the block at a coordinate.
func (g *Grid) SetAt(coord []int, v uint8) { g.data[g.Index(coord)] = v }

// InBounds reports whether every component lies in [0, extent-1].
func (g *Grid) InBounds(coord []int) bool {
	if len(coord) != len(g.dims) {
		return false
	}
	for i, c := range coord {
		if c < 0 || c >= g.dims[i] {
			return false
		}
	}
	return true
}

// Interior reports whether every component lies in [1, extent-2], the
// carvable region.
func (g *Grid) Interior(coord []int) bool {
	if len(coord) != len(g.dims) {
		return false
	}
	for i, c := range coord {
		if c < 1 || c > g.dims[i]-2 {
			return false
		}
	}
	return true
}

// Fill sets every cell to v.
func (g *Grid) Fill(v uint8) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	return &Grid{
		dims:    slices.Clone(g.dims),
		strides: slices.Clone(g.strides),
		data:    slices.Clone(g.data),
	}
}

// Equal reports whether both grids have the same extents and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	return slices.Equal(g.dims, o.dims) && slices.Equal(g.data, o.data)
}

// Count returns the number of cells holding v.
func (g *Grid) Count(v uint8) int {
	n := 0
	for _, c := range g.data {
		if c == v {
			n++
		}
	}
	return n
}
