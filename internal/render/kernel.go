package render

import (
	"fmt"
	"image/color"
	"math"

	"ndmaze/internal/core"
)

const (
	// epsilon nudges the ray past a face so it never straddles an edge, and
	// marks direction components treated as parallel to an axis.
	epsilon = 1e-6

	shadeBase = 128
	shadeSpan = 56
)

// Background is the colour of rays that leave the grid without a hit.
var Background = color.RGBA{R: 0, G: 0, B: 0, A: 255}

// Hit describes the outcome of one ray.
type Hit struct {
	Color color.RGBA
	// T is the ray parameter of the hit, the distance along a unit direction.
	T     float64
	Block uint8
	Voxel []int
	Solid bool
}

// Kernel marches single rays through a grid. A Kernel is not safe for
// concurrent use; give each goroutine its own.
type Kernel struct {
	grid   *core.Grid
	camera []float64

	loc    []float64
	offset []float64
	steps  []float64
	sign   []float64
	voxel  []int
}

// NewKernel binds a kernel to a grid and a camera position.
func NewKernel(g *core.Grid, camera []float64) *Kernel {
	if g == nil {
		panic("render: kernel needs a grid")
	}
	n := g.NumDims()
	k := &Kernel{
		grid:   g,
		camera: make([]float64, n),
		loc:    make([]float64, n),
		offset: make([]float64, n),
		steps:  make([]float64, n),
		sign:   make([]float64, n),
		voxel:  make([]int, n),
	}
	k.SetCamera(camera)
	return k
}

// SetCamera copies the camera position into the kernel.
func (k *Kernel) SetCamera(camera []float64) {
	if len(camera) != len(k.camera) {
		panic(fmt.Sprintf("render: camera has %d components, grid has %d dims", len(camera), len(k.camera)))
	}
	copy(k.camera, camera)
}

// Camera returns a copy of the camera position.
func (k *Kernel) Camera() []float64 { return core.Clone(k.camera) }

// Shade returns the colour seen along dir, or background when the ray
// leaves the grid.
func (k *Kernel) Shade(dir []float64, background color.RGBA) color.RGBA {
	return k.Cast(dir, background).Color
}

// Cast marches a ray from the camera along dir, which should be unit length
// for T to be a distance.
func (k *Kernel) Cast(dir []float64, background color.RGBA) Hit {
	n := len(k.camera)
	if len(dir) != n {
		panic(fmt.Sprintf("render: direction has %d components, grid has %d dims", len(dir), n))
	}
	copy(k.loc, k.camera)
	for i, d := range dir {
		switch {
		case math.Abs(d) < epsilon:
			k.steps[i], k.sign[i] = math.Inf(1), 0
		case d > 0:
			k.steps[i], k.sign[i] = 1/d, 1
		default:
			k.steps[i], k.sign[i] = -1/d, -1
		}
	}

	t := 0.0
	k.locate()
	if !k.inBounds() {
		entry, ok := k.entry(dir)
		if !ok {
			return Hit{Color: background}
		}
		t = entry + epsilon
		for i := range k.loc {
			k.loc[i] = k.camera[i] + dir[i]*t
		}
		k.locate()
	}

	for k.inBounds() {
		if block := k.grid.Get(k.voxel); block != core.Air {
			return Hit{
				Color: k.shade(),
				T:     t,
				Block: block,
				Voxel: append([]int(nil), k.voxel...),
				Solid: true,
			}
		}
		step := math.Inf(1)
		for i := range k.loc {
			if k.sign[i] == 0 {
				continue
			}
			if s := k.steps[i] * (0.5 - k.sign[i]*k.offset[i]); s < step {
				step = s
			}
		}
		if math.IsInf(step, 1) {
			break
		}
		step += epsilon
		t += step
		core.AddScaled(k.loc, step, dir)
		k.locate()
	}
	return Hit{Color: background, T: t}
}

// locate derives the voxel containing loc and the offset from its centre.
// Voxel centres sit on integer coordinates.
func (k *Kernel) locate() {
	for i, l := range k.loc {
		v := math.Floor(l + 0.5)
		k.voxel[i] = int(v)
		k.offset[i] = l - v
	}
}

func (k *Kernel) inBounds() bool {
	for i, v := range k.voxel {
		if v < 0 || v >= k.grid.Dim(i) {
			return false
		}
	}
	return true
}

// entry runs the slab test against the grid's bounding box
// [-0.5, extent-0.5] on every axis and returns the ray parameter where the
// ray enters it.
func (k *Kernel) entry(dir []float64) (float64, bool) {
	lastForward := 0.0
	firstNonForward := math.Inf(1)
	consider := func(num, t float64) {
		forward := num >= 0
		if t > 0 {
			forward = num < 0
		}
		if forward {
			lastForward = math.Max(lastForward, t)
		} else {
			firstNonForward = math.Min(firstNonForward, t)
		}
	}
	for i, d := range dir {
		lo := -0.5
		hi := float64(k.grid.Dim(i)) - 0.5
		loc := k.camera[i]
		if math.Abs(d) < epsilon {
			if loc < lo || loc > hi {
				return 0, false
			}
			continue
		}
		high := hi - loc
		consider(high, high/d)
		low := loc - lo
		consider(low, low/-d)
	}
	if lastForward <= 0 || firstNonForward <= lastForward {
		return 0, false
	}
	return lastForward, true
}

// shade maps the hit offset within the voxel to a grey level.
func (k *Kernel) shade() color.RGBA {
	sum := 0.0
	for _, o := range k.offset {
		sum += o
	}
	v := uint8(shadeBase + sum*shadeSpan/float64(len(k.offset)))
	return color.RGBA{R: v, G: v, B: v, A: 255}
}
