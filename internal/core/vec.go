package core

import "math"

// Vector helpers over []float64 of equal length. Callers own the slices;
// none of these allocate except Clone and Basis.

// Dot returns a·b.
func Dot(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

// Norm returns |a|.
func Norm(a []float64) float64 { return math.Sqrt(Dot(a, a)) }

// Normalize scales a to unit length in place and returns its previous
// length. A zero vector is left unchanged.
func Normalize(a []float64) float64 {
	l := Norm(a)
	if l == 0 {
		return 0
	}
	for i := range a {
		a[i] /= l
	}
	return l
}

// AddScaled sets dst = dst + s*v.
func AddScaled(dst []float64, s float64, v []float64) {
	for i := range dst {
		dst[i] += s * v[i]
	}
}

// Clone returns a copy of v.
func Clone(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}

// Basis returns the n-dimensional unit vector along axis.
func Basis(n, axis int) []float64 {
	v := make([]float64, n)
	if axis >= 0 && axis < n {
		v[axis] = 1
	}
	return v
}
