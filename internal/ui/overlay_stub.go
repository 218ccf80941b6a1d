//go:build !ebiten

package ui

import (
	"image"

	"ndmaze/internal/viewer"
)

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(*viewer.Viewer, int) *Overlay { return &Overlay{} }

// SetViewer is a no-op in headless builds.
func (o *Overlay) SetViewer(*viewer.Viewer) {}

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, []image.Rectangle) {}
