package ui

import (
	"math"

	"ndmaze/internal/core"
)

// MapAxes picks the grid axes a minimap should span: the axis forward leans
// on most, then the remaining axis right leans on most.
func MapAxes(forward, right []float64) (int, int) {
	x := dominant(forward, -1)
	y := dominant(right, x)
	return x, y
}

func dominant(v []float64, skip int) int {
	best, bestAbs := -1, -1.0
	for i, c := range v {
		if i == skip {
			continue
		}
		if a := math.Abs(c); a > bestAbs {
			best, bestAbs = i, a
		}
	}
	return best
}

// CameraCell returns the voxel containing the camera, clamped into g.
func CameraCell(g *core.Grid, camera []float64) []int {
	cell := make([]int, len(camera))
	for i, c := range camera {
		v := int(math.Floor(c + 0.5))
		cell[i] = min(max(v, 0), g.Dim(i)-1)
	}
	return cell
}
