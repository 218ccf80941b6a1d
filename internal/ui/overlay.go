//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ndmaze/internal/core"
	"ndmaze/internal/maze"
	"ndmaze/internal/render"
	"ndmaze/internal/viewer"
)

// Overlay draws optional aids on top of the slices: a minimap cross-section
// through the camera (key 1) and a frame around the active slice (key 2).
type Overlay struct {
	view      *viewer.Viewer
	cellPx    int
	showMap   bool
	showFrame bool

	mapImg  *ebiten.Image
	mapSize core.Size
	pixel   *ebiten.Image
}

var (
	cameraColor = color.RGBA{R: 220, G: 60, B: 50, A: 255}
	exitColor   = color.RGBA{R: 60, G: 180, B: 90, A: 255}
	frameColor  = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

// NewOverlay constructs an overlay for v drawing cellPx pixels per minimap
// cell.
func NewOverlay(v *viewer.Viewer, cellPx int) *Overlay {
	if cellPx <= 0 {
		cellPx = 6
	}
	o := &Overlay{view: v, cellPx: cellPx, showMap: true, showFrame: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// SetViewer switches the overlay to a new viewer after regeneration.
func (o *Overlay) SetViewer(v *viewer.Viewer) {
	o.view = v
}

// Update toggles the overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showMap = !o.showMap
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showFrame = !o.showFrame
	}
}

// Draw renders the enabled layers. rects are the slice rectangles in the
// order the viewer renders them.
func (o *Overlay) Draw(screen *ebiten.Image, rects []image.Rectangle) {
	if o.view == nil {
		return
	}
	if o.showFrame {
		if a := o.view.ActiveSlice(); a < len(rects) {
			o.drawFrame(screen, rects[a], 2, frameColor)
		}
	}
	if o.showMap && len(rects) > 0 {
		o.drawMap(screen, rects[0].Min)
	}
}

func (o *Overlay) drawMap(screen *ebiten.Image, at image.Point) {
	g := o.view.Grid()
	active := o.view.Active()
	fwd := active.Forward()
	ax, ay := MapAxes(fwd, active.Right())
	camera := o.view.Camera()
	cell := CameraCell(g, camera)

	buf, size := render.SectionPixels(g, cell, ax, ay, render.SectionPalette)
	if exit, ok := maze.Exit(g); ok && sameSection(exit, cell, ax, ay) {
		render.MarkCell(buf, size, exit[ax], exit[ay], exitColor)
	}
	render.MarkCell(buf, size, cell[ax], cell[ay], cameraColor)

	if o.mapImg == nil || o.mapSize != size {
		o.mapImg = ebiten.NewImage(size.W, size.H)
		o.mapSize = size
	}
	o.mapImg.WritePixels(buf)

	px := float64(o.cellPx)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(px, px)
	op.GeoM.Translate(float64(at.X)+px, float64(at.Y)+px)
	op.ColorScale.ScaleAlpha(0.85)
	screen.DrawImage(o.mapImg, op)

	// Heading: forward projected onto the map plane, rows growing downwards.
	cx := float64(at.X) + px*(1.5+camera[ax])
	cy := float64(at.Y) + px*(1.5+float64(size.H-1)-camera[ay])
	dx, dy := fwd[ax], -fwd[ay]
	if l := math.Hypot(dx, dy); l > 1e-6 {
		reach := 2 * px
		o.drawLine(screen, cx, cy, cx+dx/l*reach, cy+dy/l*reach, 2, cameraColor)
	}
}

func sameSection(a, b []int, ax, ay int) bool {
	for i := range a {
		if i != ax && i != ay && a[i] != b[i] {
			return false
		}
	}
	return true
}

func (o *Overlay) drawFrame(screen *ebiten.Image, r image.Rectangle, width float64, col color.RGBA) {
	x0, y0 := float64(r.Min.X), float64(r.Min.Y)
	x1, y1 := float64(r.Max.X), float64(r.Max.Y)
	o.drawRect(screen, x0, y0, x1-x0, width, col)
	o.drawRect(screen, x0, y1-width, x1-x0, width, col)
	o.drawRect(screen, x0, y0, width, y1-y0, col)
	o.drawRect(screen, x1-width, y0, width, y1-y0, col)
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	if o.pixel == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
