//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"ndmaze/internal/core"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the generation parameter panel to the right of the slices.
// Edits go straight to the target; they show up in the maze on the next
// regeneration.
type HUD struct {
	target parameterProvider
	status func() []string
	knobs  []knob
	rows   []hudRow

	width   int
	height  int
	offsetX int
	panel   *ebiten.Image
	pixel   *ebiten.Image
}

type hudRow struct {
	top         int
	minus, plus image.Rectangle
}

var (
	panelColor    = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor    = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor    = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor      = color.RGBA{R: 140, G: 140, B: 150, A: 255}
	statusColor   = color.RGBA{R: 170, G: 200, B: 170, A: 255}
	buttonColor   = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonOffFill = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

const (
	hudTitle      = "Maze Controls"
	panelPadding  = 12
	rowHeight     = 28
	buttonSize    = 20
	buttonGap     = 6
	titleBaseline = 18
	labelBaseline = 18
	statusGap     = 28
	statusSpacing = 16
	rowsTop       = panelPadding + titleBaseline + 12
)

// NewHUD constructs a HUD editing target in a panel of the given width.
// status, when non-nil, supplies lines printed under the controls.
func NewHUD(target parameterProvider, width int, status func() []string) *HUD {
	h := &HUD{width: max(width, 0), status: status}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.SetTarget(target)
	return h
}

// SetTarget points the panel at a new parameter set.
func (h *HUD) SetTarget(target parameterProvider) {
	h.target = target
	h.knobs = knobsFor(target)
	h.rows = make([]hudRow, len(h.knobs))
	for i := range h.rows {
		top := rowsTop + i*rowHeight
		y := top + (rowHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, y, h.width-panelPadding, y+buttonSize)
		minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
		h.rows[i] = hudRow{top: top, minus: minus, plus: plus}
	}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the knob values and handles clicks on the panel
// buttons. offsetX is where the panel starts on screen.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offsetX = offsetX
	if h.target == nil {
		return
	}
	snap := h.target.Parameters()
	for i := range h.knobs {
		h.knobs[i].sync(snap)
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	p := image.Pt(mx-h.offsetX, my)
	for i, row := range h.rows {
		switch {
		case p.In(row.minus):
			h.knobs[i].nudge(h.target, -1)
			return
		case p.In(row.plus):
			h.knobs[i].nudge(h.target, 1)
			return
		}
	}
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.height != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.height = height
	}
	h.panel.Fill(panelColor)
	face := basicfont.Face7x13
	text.Draw(h.panel, hudTitle, face, panelPadding, panelPadding+titleBaseline, titleColor)

	for i, k := range h.knobs {
		row := h.rows[i]
		y := row.top + labelBaseline
		text.Draw(h.panel, k.ctrl.Label, face, panelPadding, y, labelColor)
		value := k.text()
		col := labelColor
		if !k.known {
			col = dimColor
		}
		x := row.minus.Min.X - buttonGap - text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, x, y, col)
		_, canDown := k.next(-1)
		_, canUp := k.next(1)
		h.drawButton(row.minus, "-", canDown)
		h.drawButton(row.plus, "+", canUp)
	}

	if h.status != nil {
		y := rowsTop + len(h.knobs)*rowHeight + statusGap
		for _, line := range h.status() {
			if y > h.height-panelPadding {
				break
			}
			text.Draw(h.panel, line, face, panelPadding, y, statusColor)
			y += statusSpacing
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(r image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg, fg := buttonColor, labelColor
	if !enabled {
		bg, fg = buttonOffFill, dimColor
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := r.Min.X + (r.Dx()-b.Dx())/2
	y := r.Min.Y + (r.Dy()+b.Dy())/2
	text.Draw(h.panel, label, face, x, y, fg)
}
