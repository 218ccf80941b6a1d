package render

import (
	"image"
	"image/color"

	"ndmaze/internal/core"
)

// SectionPalette colours cross-section cells by block code; codes past the
// end use the last entry.
var SectionPalette = []color.RGBA{
	{R: 236, G: 232, B: 220, A: 255}, // air
	{R: 40, G: 44, B: 52, A: 255},    // wall
}

func putRGBA(buf []byte, base int, c color.RGBA) {
	buf[base+0] = c.R
	buf[base+1] = c.G
	buf[base+2] = c.B
	buf[base+3] = c.A
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			putRGBA(buf, i*4, color.RGBA{})
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		putRGBA(buf, i*4, palette[idx])
	}
}

// Section extracts the 2-D cross-section of g through origin spanned by
// axisX (columns) and axisY (rows, top row = highest coordinate). It returns
// the cells and the section size.
func Section(g *core.Grid, origin []int, axisX, axisY int) ([]uint8, core.Size) {
	w, h := g.Dim(axisX), g.Dim(axisY)
	coord := make([]int, g.NumDims())
	copy(coord, origin)
	cells := make([]uint8, w*h)
	for row := 0; row < h; row++ {
		coord[axisY] = h - 1 - row
		for col := 0; col < w; col++ {
			coord[axisX] = col
			cells[row*w+col] = g.Get(coord)
		}
	}
	return cells, core.Size{W: w, H: h}
}

// SectionPixels renders a cross-section into an RGBA8 buffer using palette.
func SectionPixels(g *core.Grid, origin []int, axisX, axisY int, palette []color.RGBA) ([]byte, core.Size) {
	cells, size := Section(g, origin, axisX, axisY)
	buf := make([]byte, size.Pixels())
	fillPaletteRGBA(buf, cells, palette)
	return buf, size
}

// MarkCell paints one cross-section cell, given in grid coordinates along
// the section axes.
func MarkCell(buf []byte, size core.Size, x, y int, c color.RGBA) {
	row := size.H - 1 - y
	if x < 0 || x >= size.W || row < 0 || row >= size.H {
		return
	}
	putRGBA(buf, 4*(row*size.W+x), c)
}

// Upscale repeats every pixel into a scale x scale block.
func Upscale(buf []byte, size core.Size, scale int) ([]byte, core.Size) {
	if scale <= 1 {
		return buf, size
	}
	out := core.Size{W: size.W * scale, H: size.H * scale}
	dst := make([]byte, out.Pixels())
	for y := 0; y < out.H; y++ {
		for x := 0; x < out.W; x++ {
			src := 4 * ((y/scale)*size.W + x/scale)
			copy(dst[4*(y*out.W+x):], buf[src:src+4])
		}
	}
	return dst, out
}

// Image wraps an RGBA8 buffer without copying.
func Image(buf []byte, size core.Size) *image.RGBA {
	return &image.RGBA{
		Pix:    buf,
		Stride: 4 * size.W,
		Rect:   image.Rect(0, 0, size.W, size.H),
	}
}
