package viewer

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"ndmaze/internal/core"
	"ndmaze/internal/render"
	"ndmaze/pkg/logger"
)

// moveMargin keeps the camera this far short of the wall it runs into.
const moveMargin = 1e-3

var (
	ErrTooFewDims     = errors.New("viewer: grid needs at least three dimensions")
	ErrNoSlices       = errors.New("viewer: options have no slices")
	ErrDimsMismatch   = errors.New("viewer: slice dimension does not match grid")
	ErrCameraMismatch = errors.New("viewer: camera dimension does not match grid")
)

// Viewer owns one grid, the renderer over it and the slices it is seen
// through. Its methods must be called from a single goroutine.
type Viewer struct {
	grid     *core.Grid
	opts     *Options
	renderer *render.Renderer
	kernel   *render.Kernel
	camera   []float64
	active   int
	buffers  [][]byte
	log      *logrus.Entry
}

// New starts a viewer on g. Nil opts selects DefaultOptions with 320x240
// slices; a nil camera starts at the grid's (1,...,1) cell.
func New(g *core.Grid, opts *Options, camera []float64) (*Viewer, error) {
	if g == nil {
		panic("viewer: nil grid")
	}
	n := g.NumDims()
	if n < 3 {
		return nil, fmt.Errorf("%w (got %d)", ErrTooFewDims, n)
	}
	if opts == nil {
		opts = DefaultOptions(n, 320, 240)
	}
	if opts.NumSlices() == 0 {
		return nil, ErrNoSlices
	}
	if opts.Dims() != n {
		return nil, fmt.Errorf("%w: slices %d, grid %d", ErrDimsMismatch, opts.Dims(), n)
	}
	if camera == nil {
		camera = make([]float64, n)
		for i := range camera {
			camera[i] = 1
		}
	}
	if len(camera) != n {
		return nil, fmt.Errorf("%w: camera %d, grid %d", ErrCameraMismatch, len(camera), n)
	}

	v := &Viewer{
		grid:   g,
		opts:   opts,
		camera: core.Clone(camera),
		log:    logger.Component("viewer"),
	}
	v.renderer = render.NewRenderer(g, v.camera, opts.Workers())
	v.kernel = render.NewKernel(g, v.camera)
	v.log.WithFields(logrus.Fields{
		"dims":    n,
		"slices":  opts.NumSlices(),
		"workers": opts.Workers(),
	}).Debug("viewer started")
	return v, nil
}

// Close stops the render workers.
func (v *Viewer) Close() { v.renderer.Close() }

func (v *Viewer) Grid() *core.Grid   { return v.grid }
func (v *Viewer) Options() *Options  { return v.opts }
func (v *Viewer) Camera() []float64  { return core.Clone(v.camera) }
func (v *Viewer) NumSlices() int     { return v.opts.NumSlices() }
func (v *Viewer) Slice(i int) *Slice { return v.opts.Slice(i) }
func (v *Viewer) ActiveSlice() int   { return v.active }
func (v *Viewer) Active() *Slice     { return v.opts.Slice(v.active) }
func (v *Viewer) Fov() float64       { return v.opts.Fov() }
func (v *Viewer) SetFov(deg float64) { v.opts.SetFov(deg) }

// SetCamera moves the camera without collision checks.
func (v *Viewer) SetCamera(camera []float64) bool {
	if len(camera) != len(v.camera) {
		return false
	}
	copy(v.camera, camera)
	v.sync()
	return true
}

func (v *Viewer) sync() {
	v.renderer.SetCamera(v.camera)
	v.kernel.SetCamera(v.camera)
}

// SetActiveSlice selects the slice whose frame moves and rotations use.
func (v *Viewer) SetActiveSlice(i int) bool {
	if i < 0 || i >= v.opts.NumSlices() {
		return false
	}
	v.active = i
	return true
}

func (v *Viewer) MoveForward(amount float64) float64   { return v.move(Forward, 1, amount) }
func (v *Viewer) MoveBackwards(amount float64) float64 { return v.move(Forward, -1, amount) }
func (v *Viewer) MoveRight(amount float64) float64     { return v.move(Right, 1, amount) }
func (v *Viewer) MoveLeft(amount float64) float64      { return v.move(Right, -1, amount) }
func (v *Viewer) MoveUp(amount float64) float64        { return v.move(Up, 1, amount) }
func (v *Viewer) MoveDown(amount float64) float64      { return v.move(Up, -1, amount) }

// move translates the camera along sign*role of the active slice and returns
// the distance actually travelled. The move stops moveMargin short of the
// first wall on the way.
func (v *Viewer) move(role Role, sign, amount float64) float64 {
	if amount < 0 {
		sign, amount = -sign, -amount
	}
	if amount == 0 || math.IsNaN(amount) {
		return 0
	}
	dir := v.Active().Vector(role)
	for i := range dir {
		dir[i] *= sign
	}
	if hit := v.kernel.Cast(dir, render.Background); hit.Solid {
		if limit := math.Max(hit.T-moveMargin, 0); limit < amount {
			amount = limit
		}
	}
	core.AddScaled(v.camera, amount, dir)
	v.sync()
	return amount
}

func (v *Viewer) RotateUp(deg float64)               { v.rotate(Forward, Up, deg) }
func (v *Viewer) RotateRight(deg float64)            { v.rotate(Forward, Right, deg) }
func (v *Viewer) RotateDown(deg float64)             { v.rotate(Up, Forward, deg) }
func (v *Viewer) RotateLeft(deg float64)             { v.rotate(Right, Forward, deg) }
func (v *Viewer) RotateClockwise(deg float64)        { v.rotate(Right, Up, deg) }
func (v *Viewer) RotateCounterClockwise(deg float64) { v.rotate(Up, Right, deg) }

// rotate turns from towards to in the active slice and carries the rotation
// to the other slices according to their bindings.
func (v *Viewer) rotate(from, to Role, deg float64) {
	if deg == 0 || math.IsNaN(deg) {
		return
	}
	sin, cos := math.Sincos(deg * math.Pi / 180)
	active := v.Active()
	f, t := active.Vector(from), active.Vector(to)

	for j := 0; j < v.opts.NumSlices(); j++ {
		if j == v.active {
			continue
		}
		b, _ := v.opts.Binding(v.active, j)
		s := v.opts.Slice(j)
		switch b {
		case BindMimic:
			s.rotate(from, to, cos, sin)
		case BindMatrix:
			s.rotateIn(f, t, cos, sin)
		default:
			continue
		}
		s.orthonormalize()
	}
	active.rotate(from, to, cos, sin)
	active.orthonormalize()
}

// AddSlice appends a slice; it fails on a dimension mismatch.
func (v *Viewer) AddSlice(s *Slice) bool {
	if s == nil || s.Dims() != v.grid.NumDims() || !v.opts.AddSlice(s) {
		return false
	}
	v.log.WithField("slice", s.Name).Debug("slice added")
	return true
}

// DeleteSlice removes slice i. The last remaining slice cannot be deleted.
func (v *Viewer) DeleteSlice(i int) bool {
	if v.opts.NumSlices() <= 1 || !v.opts.DeleteSlice(i) {
		return false
	}
	if i < len(v.buffers) {
		// Callers may still hold the slice returned by Render.
		bufs := make([][]byte, 0, len(v.buffers)-1)
		bufs = append(bufs, v.buffers[:i]...)
		v.buffers = append(bufs, v.buffers[i+1:]...)
	}
	switch {
	case i < v.active:
		v.active--
	case v.active >= v.opts.NumSlices():
		v.active = v.opts.NumSlices() - 1
	}
	v.log.WithField("slice", i).Debug("slice deleted")
	return true
}

// ResizeSlice sets the image size of slice i.
func (v *Viewer) ResizeSlice(i, width, height int) bool {
	s := v.opts.Slice(i)
	if s == nil {
		return false
	}
	s.SetSize(width, height)
	return true
}

// SetSliceAspect sets the aspect ratio of slice i.
func (v *Viewer) SetSliceAspect(i int, aspect float64) bool {
	s := v.opts.Slice(i)
	if s == nil {
		return false
	}
	s.SetAspect(aspect)
	return true
}

// SetSliceFov sets the field of view of slice i; 0 follows the viewer.
func (v *Viewer) SetSliceFov(i int, deg float64) bool {
	s := v.opts.Slice(i)
	if s == nil {
		return false
	}
	s.SetFov(deg)
	return true
}

// Binding reports how slice to follows rotations made in slice from.
func (v *Viewer) Binding(from, to int) (Binding, bool) { return v.opts.Binding(from, to) }

// SetBinding configures how slice to follows rotations made in slice from.
func (v *Viewer) SetBinding(from, to int, b Binding) bool { return v.opts.SetBinding(from, to, b) }

// ToggleBinding cycles the binding from -> to and returns the new value.
func (v *Viewer) ToggleBinding(from, to int) (Binding, bool) {
	if !v.opts.ToggleBinding(from, to) {
		return BindNone, false
	}
	b, _ := v.opts.Binding(from, to)
	v.log.WithFields(logrus.Fields{"from": from, "to": to, "binding": b}).Debug("binding toggled")
	return b, true
}

// Render draws every slice and returns one RGBA8 buffer per slice. The
// buffers are reused by the next call.
func (v *Viewer) Render() [][]byte {
	n := v.opts.NumSlices()
	for len(v.buffers) < n {
		v.buffers = append(v.buffers, nil)
	}
	v.buffers = v.buffers[:n]
	for i := 0; i < n; i++ {
		s := v.opts.Slice(i)
		size := s.Size().Pixels()
		if len(v.buffers[i]) != size {
			v.buffers[i] = make([]byte, size)
		}
		fov := s.Fov()
		if fov == 0 {
			fov = v.opts.Fov()
		}
		v.renderer.Render(v.buffers[i], s.Basis(), s.Width(), s.Height(), s.Aspect(), fov)
	}
	v.renderer.Wait()
	return v.buffers
}

// Look casts a ray from the camera along the active slice's forward vector.
func (v *Viewer) Look() render.Hit {
	return v.kernel.Cast(v.Active().Forward(), render.Background)
}
