package viewer

import (
	"fmt"
	"math"
	"strings"

	"ndmaze/internal/core"
)

// Binding says how a slice follows rotations made in another slice.
type Binding int

const (
	// BindNone leaves the slice untouched.
	BindNone Binding = iota
	// BindMimic turns the same pair of the slice's own basis vectors.
	BindMimic
	// BindMatrix applies the rotation to the ambient space.
	BindMatrix
)

func (b Binding) String() string {
	switch b {
	case BindNone:
		return "none"
	case BindMimic:
		return "mimic"
	case BindMatrix:
		return "matrix"
	default:
		return fmt.Sprintf("Binding(%d)", int(b))
	}
}

// Next returns the following binding in the none, mimic, matrix cycle.
func (b Binding) Next() Binding {
	switch b {
	case BindNone:
		return BindMimic
	case BindMimic:
		return BindMatrix
	default:
		return BindNone
	}
}

// ParseBinding accepts the names produced by String.
func ParseBinding(name string) (Binding, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none":
		return BindNone, true
	case "mimic":
		return BindMimic, true
	case "matrix":
		return BindMatrix, true
	}
	return BindNone, false
}

const (
	DefaultFov     = 100.0
	DefaultWorkers = 8
	MinFov         = 1.0
	MaxFov         = 179.0
	MaxWorkers     = 1000
)

func clampFov(deg float64) float64 {
	if math.IsNaN(deg) {
		return DefaultFov
	}
	return math.Min(math.Max(deg, MinFov), MaxFov)
}

// Options is the slice layout of a viewer: ordered slices, the binding
// between every pair of them, the default field of view and the render pool
// size. bindings[i][j] is how slice j follows rotations made in slice i.
type Options struct {
	slices   []*Slice
	bindings [][]Binding
	fov      float64
	workers  int
}

// NewOptions returns options with no slices.
func NewOptions() *Options {
	return &Options{fov: DefaultFov, workers: DefaultWorkers}
}

// DefaultOptions lays out slices for a dims-dimensional grid, each sized
// width x height. A 3-D grid gets one slice; higher dimensions get four,
// successively swapping the w axis into up, right and forward.
func DefaultOptions(dims, width, height int) *Options {
	o := NewOptions()
	main := NewSlice("xyz", dims, width, height)
	o.AddSlice(main)
	if dims < 4 {
		return o
	}
	w := core.Basis(dims, 3)

	upW := main.Clone("xyw")
	upW.SetUp(w)
	o.AddSlice(upW)

	rightZ := upW.Clone("xzw")
	rightZ.SetRight(core.Basis(dims, 2))
	o.AddSlice(rightZ)

	fwdY := rightZ.Clone("yzw")
	fwdY.SetForward(core.Basis(dims, 1))
	o.AddSlice(fwdY)
	return o
}

// Clone deep-copies the options.
func (o *Options) Clone() *Options {
	c := &Options{fov: o.fov, workers: o.workers}
	for _, s := range o.slices {
		c.slices = append(c.slices, s.Clone(s.Name))
	}
	for _, row := range o.bindings {
		c.bindings = append(c.bindings, append([]Binding(nil), row...))
	}
	return c
}

func (o *Options) Fov() float64 { return o.fov }

// SetFov clamps the default field of view to [MinFov, MaxFov].
func (o *Options) SetFov(deg float64) { o.fov = clampFov(deg) }

func (o *Options) Workers() int { return o.workers }

// SetWorkers clamps the render pool size to [1, MaxWorkers].
func (o *Options) SetWorkers(n int) { o.workers = min(max(n, 1), MaxWorkers) }

// NumSlices returns the number of slices.
func (o *Options) NumSlices() int { return len(o.slices) }

// Slice returns slice i, or nil when i is out of range.
func (o *Options) Slice(i int) *Slice {
	if i < 0 || i >= len(o.slices) {
		return nil
	}
	return o.slices[i]
}

// Dims is the dimension shared by all slices, 0 when there are none.
func (o *Options) Dims() int {
	if len(o.slices) == 0 {
		return 0
	}
	return o.slices[0].Dims()
}

// AddSlice appends s. Its bindings to and from every existing slice start as
// BindMatrix. It returns false when s is nil or its dimension differs from
// the slices already present.
func (o *Options) AddSlice(s *Slice) bool {
	if s == nil || (len(o.slices) > 0 && s.Dims() != o.Dims()) {
		return false
	}
	o.slices = append(o.slices, s)
	n := len(o.slices)
	for i := range o.bindings {
		o.bindings[i] = append(o.bindings[i], BindMatrix)
	}
	row := make([]Binding, n)
	for j := range row {
		row[j] = BindMatrix
	}
	o.bindings = append(o.bindings, row)
	return true
}

// DeleteSlice removes slice i along with its row and column of bindings.
func (o *Options) DeleteSlice(i int) bool {
	if i < 0 || i >= len(o.slices) {
		return false
	}
	o.slices = append(o.slices[:i], o.slices[i+1:]...)
	o.bindings = append(o.bindings[:i], o.bindings[i+1:]...)
	for r := range o.bindings {
		o.bindings[r] = append(o.bindings[r][:i], o.bindings[r][i+1:]...)
	}
	return true
}

// Binding returns how slice to follows rotations made in slice from.
func (o *Options) Binding(from, to int) (Binding, bool) {
	if !o.pair(from, to) {
		return BindNone, false
	}
	return o.bindings[from][to], true
}

// SetBinding sets how slice to follows rotations made in slice from. A slice
// cannot be bound to itself.
func (o *Options) SetBinding(from, to int, b Binding) bool {
	if !o.pair(from, to) || b < BindNone || b > BindMatrix {
		return false
	}
	o.bindings[from][to] = b
	return true
}

// ToggleBinding advances the binding from -> to one step through the
// none, mimic, matrix cycle.
func (o *Options) ToggleBinding(from, to int) bool {
	if !o.pair(from, to) {
		return false
	}
	o.bindings[from][to] = o.bindings[from][to].Next()
	return true
}

func (o *Options) pair(from, to int) bool {
	n := len(o.slices)
	return from != to && from >= 0 && from < n && to >= 0 && to < n
}
