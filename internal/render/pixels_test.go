package render

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ndmaze/internal/core"
)

func TestSectionOrientation(t *testing.T) {
	g := core.NewGrid(3, 4, 5)
	g.SetAt([]int{1, 0, 2}, core.Wall)
	g.SetAt([]int{1, 3, 4}, core.Wall)

	cells, size := Section(g, []int{1, 0, 0}, 2, 1)
	require.Equal(t, core.Size{W: 5, H: 4}, size)
	// Row 0 is the highest coordinate along the vertical axis.
	assert.Equal(t, core.Wall, cells[0*5+4])
	assert.Equal(t, core.Wall, cells[3*5+2])
	assert.Equal(t, 2, countNonZero(cells))
}

func countNonZero(cells []uint8) int {
	n := 0
	for _, c := range cells {
		if c != 0 {
			n++
		}
	}
	return n
}

func TestSectionPixelsPaletteAndMarker(t *testing.T) {
	g := core.NewSolidGrid(3, 3)
	g.SetAt([]int{1, 1}, core.Air)

	buf, size := SectionPixels(g, []int{0, 0}, 0, 1, SectionPalette)
	require.Equal(t, size.Pixels(), len(buf))
	centre := 4 * (1*size.W + 1)
	assert.Equal(t, SectionPalette[0].R, buf[centre])
	assert.Equal(t, SectionPalette[1].R, buf[0])

	red := color.RGBA{R: 255, A: 255}
	MarkCell(buf, size, 1, 1, red)
	assert.Equal(t, []byte{255, 0, 0, 255}, buf[centre:centre+4])
	MarkCell(buf, size, 7, 1, red)
}

func TestFillPaletteEmptyClears(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	fillPaletteRGBA(buf, []uint8{1}, nil)
	assert.Equal(t, []byte{0, 0, 0, 0}, buf)
}

func TestUpscale(t *testing.T) {
	buf := []byte{
		1, 1, 1, 255, 2, 2, 2, 255,
	}
	out, size := Upscale(buf, core.Size{W: 2, H: 1}, 3)
	require.Equal(t, core.Size{W: 6, H: 3}, size)
	assert.Equal(t, byte(1), out[4*(2*6+2)])
	assert.Equal(t, byte(2), out[4*(2*6+3)])

	same, s := Upscale(buf, core.Size{W: 2, H: 1}, 1)
	assert.Equal(t, core.Size{W: 2, H: 1}, s)
	assert.Equal(t, buf, same)
}

func TestEncodePNGRoundTrip(t *testing.T) {
	g := core.NewSparseGrid(5, 6, 6)
	buf, size := SectionPixels(g, []int{0, 0}, 0, 1, SectionPalette)

	var w bytes.Buffer
	require.NoError(t, EncodePNG(&w, buf, size))
	img, err := png.Decode(&w)
	require.NoError(t, err)
	assert.Equal(t, 6, img.Bounds().Dx())

	assert.Error(t, EncodePNG(&w, buf[:4], size))
}

func TestWritePNGs(t *testing.T) {
	dir := t.TempDir()
	buf := make([]byte, core.Size{W: 2, H: 2}.Pixels())
	frames := []Frame{
		{Path: filepath.Join(dir, "a.png"), Pixels: buf, Size: core.Size{W: 2, H: 2}},
		{Path: filepath.Join(dir, "b.png"), Pixels: buf, Size: core.Size{W: 2, H: 2}},
	}
	require.NoError(t, WritePNGs(frames))
	assert.FileExists(t, frames[1].Path)

	bad := []Frame{{Path: filepath.Join(dir, "missing", "c.png"), Pixels: buf, Size: core.Size{W: 2, H: 2}}}
	assert.Error(t, WritePNGs(bad))
}
