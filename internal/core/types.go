package core

// Block codes stored in a Grid. Any nonzero value is solid.
const (
	Air  uint8 = 0
	Wall uint8 = 1
)

// Size describes the pixel dimensions of an image or window region.
type Size struct {
	W int
	H int
}

// Pixels returns the RGBA8 buffer length for the size.
func (s Size) Pixels() int { return 4 * s.W * s.H }
