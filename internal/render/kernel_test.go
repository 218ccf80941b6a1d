package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ndmaze/internal/core"
)

func hollowCube() *core.Grid {
	g := core.NewSolidGrid(3, 3, 3)
	g.SetAt([]int{1, 1, 1}, core.Air)
	return g
}

func diagonal(x, y, z float64) []float64 {
	d := []float64{x, y, z}
	core.Normalize(d)
	return d
}

func TestKernelFromInsideHitsWallAtHalfCell(t *testing.T) {
	g := hollowCube()
	k := NewKernel(g, []float64{1, 1, 1})

	for axis := 0; axis < 3; axis++ {
		for _, sign := range []float64{1, -1} {
			dir := make([]float64, 3)
			dir[axis] = sign
			hit := k.Cast(dir, Background)
			require.True(t, hit.Solid, "axis %d sign %v", axis, sign)
			assert.InDelta(t, 0.5, hit.T, 1e-4)
			assert.Equal(t, core.Wall, hit.Block)

			want := []int{1, 1, 1}
			want[axis] += int(sign)
			assert.Equal(t, want, hit.Voxel)
			assert.NotEqual(t, Background, hit.Color)
			assert.Equal(t, uint8(255), hit.Color.A)
		}
	}
}

func TestKernelShadeDependsOnFace(t *testing.T) {
	g := hollowCube()
	k := NewKernel(g, []float64{1, 1, 1})

	// Entering through the low face of the next voxel gives offset -0.5 on
	// the stepped axis; entering from above gives +0.5.
	plus := k.Shade([]float64{1, 0, 0}, Background)
	minus := k.Shade([]float64{-1, 0, 0}, Background)
	assert.Less(t, plus.R, uint8(shadeBase))
	assert.Greater(t, minus.R, uint8(shadeBase))
	assert.Equal(t, plus.R, plus.G)
	assert.Equal(t, plus.G, plus.B)
}

func TestKernelOutsideCameraEntersBoundingBox(t *testing.T) {
	g := hollowCube()
	k := NewKernel(g, []float64{-5, -5, 5})

	// This ray grazes the (-0.5,-0.5,0.5) corner and lands in the wall
	// voxel at the origin rather than reaching the open centre.
	hit := k.Cast(diagonal(1, 1, -1), Background)
	require.True(t, hit.Solid)
	assert.Equal(t, []int{0, 0, 0}, hit.Voxel)
	assert.InDelta(t, 4.5*math.Sqrt(3), hit.T, 1e-4)

	miss := k.Cast(diagonal(-1, -1, 1), Background)
	assert.False(t, miss.Solid)
	assert.Equal(t, Background, miss.Color)
}

func TestKernelParallelRayOutsideSlabMisses(t *testing.T) {
	g := core.NewSolidGrid(4, 4, 4)
	k := NewKernel(g, []float64{10, 1, 1})

	assert.Equal(t, Background, k.Shade([]float64{0, 0, 1}, Background))
	assert.Equal(t, Background, k.Shade([]float64{1, 0, 0}, Background))

	hit := k.Cast([]float64{-1, 0, 0}, Background)
	require.True(t, hit.Solid)
	assert.Equal(t, []int{3, 1, 1}, hit.Voxel)
	assert.InDelta(t, 6.5, hit.T, 1e-4)
}

func TestKernelCustomBackground(t *testing.T) {
	g := core.NewGrid(3, 3, 3)
	k := NewKernel(g, []float64{1, 1, 1})
	sky := Background
	sky.B = 200

	hit := k.Cast(diagonal(1, 2, 3), sky)
	assert.False(t, hit.Solid)
	assert.Equal(t, sky, hit.Color)
	assert.Greater(t, hit.T, 0.0)
}

func TestKernelFourDimensions(t *testing.T) {
	g := core.NewSolidGrid(3, 3, 3, 4)
	g.SetAt([]int{1, 1, 1, 1}, core.Air)
	g.SetAt([]int{1, 1, 1, 2}, core.Air)
	k := NewKernel(g, []float64{1, 1, 1, 1})

	hit := k.Cast([]float64{0, 0, 0, 1}, Background)
	require.True(t, hit.Solid)
	assert.InDelta(t, 1.5, hit.T, 1e-4)
	assert.Equal(t, []int{1, 1, 1, 3}, hit.Voxel)

	back := k.Cast([]float64{0, 0, 0, -1}, Background)
	require.True(t, back.Solid)
	assert.InDelta(t, 0.5, back.T, 1e-4)
	assert.Equal(t, []int{1, 1, 1, 0}, back.Voxel)
}

func TestKernelPanics(t *testing.T) {
	assert.Panics(t, func() { NewKernel(nil, nil) })

	k := NewKernel(core.NewGrid(3, 3, 3), []float64{0, 0, 0})
	assert.Panics(t, func() { k.SetCamera([]float64{0, 0}) })
	assert.Panics(t, func() { k.Cast([]float64{1, 0}, Background) })
}
