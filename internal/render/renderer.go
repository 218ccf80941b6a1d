package render

import (
	"fmt"
	"image/color"
	"math"
	"sync"

	"github.com/sirupsen/logrus"

	"ndmaze/internal/core"
	"ndmaze/pkg/logger"
)

// DefaultWorkers is the pool size used when none is configured.
const DefaultWorkers = 8

// Basis is the forward/right/up frame a slice is rendered through.
type Basis struct {
	Forward []float64
	Right   []float64
	Up      []float64
}

// task renders the rows of one image congruent to modulo mod stride. A stop
// task ends the worker that receives it.
type task struct {
	out        []byte
	basis      Basis
	camera     []float64
	width      int
	height     int
	xscale     float64
	yscale     float64
	modulo     int
	stride     int
	background color.RGBA
	stop       bool
}

// Renderer owns a pool of workers, each with its own Kernel over a shared
// read-only grid. Render is asynchronous; Wait blocks until every
// dispatched task has finished.
type Renderer struct {
	grid    *core.Grid
	workers int
	queue   *taskQueue
	log     *logrus.Entry

	mu      sync.Mutex
	done    *sync.Cond
	pending int
	camera  []float64
	closed  bool

	wg sync.WaitGroup
}

// NewRenderer starts a pool of workers over g. A non-positive worker count
// selects DefaultWorkers.
func NewRenderer(g *core.Grid, camera []float64, workers int) *Renderer {
	if g == nil {
		panic("render: renderer needs a grid")
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}
	r := &Renderer{
		grid:    g,
		workers: workers,
		queue:   newTaskQueue(),
		log:     logger.Component("renderer"),
		camera:  make([]float64, g.NumDims()),
	}
	r.done = sync.NewCond(&r.mu)
	r.SetCamera(camera)
	r.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go r.work()
	}
	r.log.WithFields(logrus.Fields{"workers": workers, "dims": g.NumDims()}).Debug("renderer started")
	return r
}

// Workers returns the pool size.
func (r *Renderer) Workers() int { return r.workers }

// Grid returns the grid being rendered.
func (r *Renderer) Grid() *core.Grid { return r.grid }

// SetCamera stores the camera used by subsequent Render calls.
func (r *Renderer) SetCamera(camera []float64) {
	if len(camera) != r.grid.NumDims() {
		panic(fmt.Sprintf("render: camera has %d components, grid has %d dims", len(camera), r.grid.NumDims()))
	}
	r.mu.Lock()
	copy(r.camera, camera)
	r.mu.Unlock()
}

// Camera returns a copy of the current camera position.
func (r *Renderer) Camera() []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return core.Clone(r.camera)
}

// Render dispatches one frame into out (RGBA8, row-major, top row first).
// fov is the full field of view in degrees. The frame is complete after
// Wait returns.
func (r *Renderer) Render(out []byte, b Basis, width, height int, aspect, fov float64) {
	n := r.grid.NumDims()
	if width <= 0 || height <= 0 || len(out) != 4*width*height {
		panic(fmt.Sprintf("render: buffer of %d bytes for a %dx%d image", len(out), width, height))
	}
	if len(b.Forward) != n || len(b.Right) != n || len(b.Up) != n {
		panic("render: basis dimension does not match grid")
	}
	xscale, yscale := Scales(width, height, aspect, fov)

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		panic("render: Render called after Close")
	}
	camera := core.Clone(r.camera)
	r.pending += r.workers
	r.mu.Unlock()

	for i := 0; i < r.workers; i++ {
		r.queue.push(task{
			out:        out,
			basis:      b,
			camera:     camera,
			width:      width,
			height:     height,
			xscale:     xscale,
			yscale:     yscale,
			modulo:     i,
			stride:     r.workers,
			background: Background,
		})
	}
}

// Wait blocks until every dispatched task has completed.
func (r *Renderer) Wait() {
	r.mu.Lock()
	for r.pending > 0 {
		r.done.Wait()
	}
	r.mu.Unlock()
}

// Close stops the workers after the queued work drains. It is safe to call
// more than once.
func (r *Renderer) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.mu.Unlock()

	for i := 0; i < r.workers; i++ {
		r.queue.push(task{stop: true})
	}
	r.wg.Wait()
	r.log.Debug("renderer stopped")
}

func (r *Renderer) work() {
	defer r.wg.Done()
	k := NewKernel(r.grid, make([]float64, r.grid.NumDims()))
	dir := make([]float64, r.grid.NumDims())
	for {
		t := r.queue.pop()
		if t.stop {
			return
		}
		k.SetCamera(t.camera)
		t.run(k, dir)

		r.mu.Lock()
		r.pending--
		if r.pending == 0 {
			r.done.Broadcast()
		}
		r.mu.Unlock()
	}
}

// Scales returns the per-pixel right and up increments for an image.
func Scales(width, height int, aspect, fov float64) (float64, float64) {
	tanFov := math.Tan(fov * math.Pi / 360)
	if aspect > 1 {
		return 2 * tanFov / float64(width), 2 * tanFov / (float64(height) * aspect)
	}
	return 2 * tanFov * aspect / float64(width), 2 * tanFov / float64(height)
}

func (t *task) run(k *Kernel, dir []float64) {
	halfW := float64(t.width) / 2
	halfH := float64(t.height) / 2
	f, rt, up := t.basis.Forward, t.basis.Right, t.basis.Up
	for row := t.modulo; row < t.height; row += t.stride {
		u := (halfH - float64(row)) * t.yscale
		for col := 0; col < t.width; col++ {
			r := (float64(col) - halfW) * t.xscale
			for i := range dir {
				dir[i] = f[i] + r*rt[i] + u*up[i]
			}
			core.Normalize(dir)
			putRGBA(t.out, 4*(row*t.width+col), k.Shade(dir, t.background))
		}
	}
}
