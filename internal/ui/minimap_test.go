package ui

import (
	"testing"

	"ndmaze/internal/core"
)

func TestMapAxes(t *testing.T) {
	cases := []struct {
		name           string
		forward, right []float64
		x, y           int
	}{
		{"aligned", []float64{1, 0, 0}, []float64{0, 1, 0}, 0, 1},
		{"tilted", []float64{0.2, -0.9, 0.1, 0.3}, []float64{0.1, 0.4, 0, -0.9}, 1, 3},
		{"right shares forward axis", []float64{0, 0, 1}, []float64{0, 0.1, 0.99}, 2, 1},
	}
	for _, tc := range cases {
		x, y := MapAxes(tc.forward, tc.right)
		if x != tc.x || y != tc.y {
			t.Fatalf("%s: got (%d,%d), want (%d,%d)", tc.name, x, y, tc.x, tc.y)
		}
	}
}

func TestCameraCellClamps(t *testing.T) {
	g := core.NewGrid(5, 5, 5)
	got := CameraCell(g, []float64{-3, 2.49, 9})
	want := []int{0, 2, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
