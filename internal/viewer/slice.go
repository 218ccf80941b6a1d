package viewer

import (
	"math"

	"ndmaze/internal/core"
	"ndmaze/internal/render"
)

// Role names one vector of a slice basis.
type Role int

const (
	Forward Role = iota
	Right
	Up
)

func (r Role) String() string {
	switch r {
	case Forward:
		return "forward"
	case Right:
		return "right"
	case Up:
		return "up"
	default:
		return "unknown"
	}
}

const (
	MinSliceSize = 10
	MinAspect    = 1e-4
	MaxAspect    = 1e4

	nudge      = 1e-3
	degenerate = 1e-9
)

// Slice is a 2-D view into the N-D space: an orthonormal forward/right/up
// frame plus the image it is rendered into.
type Slice struct {
	Name string

	vecs   [3][]float64
	width  int
	height int
	aspect float64
	fov    float64
}

// NewSlice returns a slice looking along e0 with right e1 and up e2. The
// aspect starts as width/height.
func NewSlice(name string, dims, width, height int) *Slice {
	if dims < 3 {
		panic("viewer: a slice needs at least three dimensions")
	}
	s := &Slice{Name: name}
	s.vecs[Forward] = core.Basis(dims, 0)
	s.vecs[Right] = core.Basis(dims, 1)
	s.vecs[Up] = core.Basis(dims, 2)
	s.SetSize(width, height)
	s.SetAspect(float64(s.width) / float64(s.height))
	return s
}

// Clone returns a deep copy named name.
func (s *Slice) Clone(name string) *Slice {
	c := *s
	c.Name = name
	for i := range s.vecs {
		c.vecs[i] = core.Clone(s.vecs[i])
	}
	return &c
}

// Dims returns the dimension of the ambient space.
func (s *Slice) Dims() int { return len(s.vecs[Forward]) }

func (s *Slice) Forward() []float64 { return core.Clone(s.vecs[Forward]) }
func (s *Slice) Right() []float64   { return core.Clone(s.vecs[Right]) }
func (s *Slice) Up() []float64      { return core.Clone(s.vecs[Up]) }

// Vector returns a copy of the basis vector for role.
func (s *Slice) Vector(r Role) []float64 { return core.Clone(s.vecs[r]) }

// SetForward points the slice along v and re-orthonormalises right and up
// around it. It returns false for a zero vector or a dimension mismatch.
func (s *Slice) SetForward(v []float64) bool { return s.set(Forward, v, Right, Up) }

// SetRight fixes the right vector; forward then up are re-orthonormalised.
func (s *Slice) SetRight(v []float64) bool { return s.set(Right, v, Forward, Up) }

// SetUp fixes the up vector; forward then right are re-orthonormalised.
func (s *Slice) SetUp(v []float64) bool { return s.set(Up, v, Forward, Right) }

func (s *Slice) set(fixed Role, v []float64, first, second Role) bool {
	if len(v) != s.Dims() || core.Norm(v) < degenerate {
		return false
	}
	s.vecs[fixed] = core.Clone(v)
	core.Normalize(s.vecs[fixed])
	orthogonalize(s.vecs[first], s.vecs[fixed])
	orthogonalize(s.vecs[second], s.vecs[fixed], s.vecs[first])
	return true
}

func (s *Slice) Width() int  { return s.width }
func (s *Slice) Height() int { return s.height }

// Size returns the pixel size of the slice image.
func (s *Slice) Size() core.Size { return core.Size{W: s.width, H: s.height} }

// SetSize sets the image size; each side is at least MinSliceSize. The
// aspect is left alone.
func (s *Slice) SetSize(width, height int) {
	s.width = max(width, MinSliceSize)
	s.height = max(height, MinSliceSize)
}

func (s *Slice) Aspect() float64 { return s.aspect }

// SetAspect clamps to [MinAspect, MaxAspect]; NaN keeps the current value.
func (s *Slice) SetAspect(a float64) {
	if math.IsNaN(a) {
		return
	}
	s.aspect = math.Min(math.Max(a, MinAspect), MaxAspect)
}

// Fov is the slice's own field of view in degrees, 0 when it follows the
// viewer default.
func (s *Slice) Fov() float64 { return s.fov }

// SetFov sets a per-slice field of view. Values <= 0 restore the default.
func (s *Slice) SetFov(deg float64) {
	if deg <= 0 || math.IsNaN(deg) {
		s.fov = 0
		return
	}
	s.fov = clampFov(deg)
}

// Basis returns the frame in the form the renderer consumes. The vectors are
// shared with the slice.
func (s *Slice) Basis() render.Basis {
	return render.Basis{Forward: s.vecs[Forward], Right: s.vecs[Right], Up: s.vecs[Up]}
}

// Orthonormal reports whether the basis is orthonormal within tol.
func (s *Slice) Orthonormal(tol float64) bool {
	for i := range s.vecs {
		if math.Abs(core.Norm(s.vecs[i])-1) > tol {
			return false
		}
		for j := i + 1; j < len(s.vecs); j++ {
			if math.Abs(core.Dot(s.vecs[i], s.vecs[j])) > tol {
				return false
			}
		}
	}
	return true
}

// rotate turns the from/to pair of this slice's own basis by the angle with
// the given cosine and sine.
func (s *Slice) rotate(from, to Role, cos, sin float64) {
	f, t := s.vecs[from], s.vecs[to]
	for i := range f {
		fi, ti := f[i], t[i]
		f[i] = fi*cos + ti*sin
		t[i] = -fi*sin + ti*cos
	}
}

// rotateIn applies the rotation of the plane spanned by the orthonormal pair
// (f, t) to every basis vector, leaving the orthogonal complement fixed.
func (s *Slice) rotateIn(f, t []float64, cos, sin float64) {
	for _, v := range s.vecs {
		a, b := core.Dot(v, f), core.Dot(v, t)
		na := a*cos - b*sin
		nb := a*sin + b*cos
		for i := range v {
			v[i] += (na-a)*f[i] + (nb-b)*t[i]
		}
	}
}

// orthonormalize runs Gram-Schmidt over forward, right, up in that order.
func (s *Slice) orthonormalize() {
	orthogonalize(s.vecs[Forward])
	orthogonalize(s.vecs[Right], s.vecs[Forward])
	orthogonalize(s.vecs[Up], s.vecs[Forward], s.vecs[Right])
}

// orthogonalize makes v a unit vector orthogonal to each unit vector in
// against. A vector that collapses is nudged along successive axes until it
// has a usable remainder.
func orthogonalize(v []float64, against ...[]float64) {
	for attempt := 0; attempt <= 2*len(v); attempt++ {
		for _, a := range against {
			core.AddScaled(v, -core.Dot(v, a), a)
		}
		if core.Norm(v) > degenerate {
			core.Normalize(v)
			return
		}
		v[attempt%len(v)] += nudge
	}
	// Unreachable while len(against) < len(v); keep v well defined anyway.
	for i := range v {
		v[i] = 0
	}
	v[len(v)-1] = 1
}
