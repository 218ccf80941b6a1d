package render

import (
	"fmt"
	"image/png"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"ndmaze/internal/core"
)

// EncodePNG writes an RGBA8 buffer as a PNG image.
func EncodePNG(w io.Writer, buf []byte, size core.Size) error {
	if len(buf) != size.Pixels() {
		return fmt.Errorf("encode png: buffer has %d bytes, want %d", len(buf), size.Pixels())
	}
	return png.Encode(w, Image(buf, size))
}

// WritePNG writes an RGBA8 buffer to path.
func WritePNG(path string, buf []byte, size core.Size) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	if err := EncodePNG(f, buf, size); err != nil {
		f.Close()
		return fmt.Errorf("write png %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write png %s: %w", path, err)
	}
	return nil
}

// Frame is one image destined for a file.
type Frame struct {
	Path   string
	Pixels []byte
	Size   core.Size
}

// WritePNGs encodes frames concurrently and returns the first error.
func WritePNGs(frames []Frame) error {
	var g errgroup.Group
	for _, fr := range frames {
		fr := fr
		g.Go(func() error {
			return WritePNG(fr.Path, fr.Pixels, fr.Size)
		})
	}
	return g.Wait()
}
