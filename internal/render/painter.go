//go:build ebiten

package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"ndmaze/internal/core"
)

// Painter uploads an RGBA8 buffer into an ebiten image and draws it into a
// screen region.
type Painter struct {
	size core.Size
	img  *ebiten.Image
}

// NewPainter allocates a painter for buffers of the given size.
func NewPainter(size core.Size) *Painter {
	return &Painter{size: size, img: ebiten.NewImage(size.W, size.H)}
}

// Blit uploads buf and draws it scaled to fill rect.
func (p *Painter) Blit(dst *ebiten.Image, buf []byte, rect image.Rectangle) {
	if len(buf) != p.size.Pixels() || rect.Empty() {
		return
	}
	p.img.WritePixels(buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx())/float64(p.size.W), float64(rect.Dy())/float64(p.size.H))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	dst.DrawImage(p.img, op)
}

// Size returns the buffer dimensions the painter accepts.
func (p *Painter) Size() core.Size { return p.size }
