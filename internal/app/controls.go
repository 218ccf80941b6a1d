package app

import (
	"fmt"
	"image"
	"sort"
	"strings"

	"ndmaze/internal/viewer"
)

// Operation is one thing a key chord can ask the viewer to do.
type Operation int

const (
	OpMoveForward Operation = iota
	OpMoveUp
	OpMoveRight
	OpMoveDown
	OpMoveLeft
	OpMoveBackwards
	OpRotateUp
	OpRotateRight
	OpRotateDown
	OpRotateLeft
	OpRotateClockwise
	OpRotateCounterClockwise
	OpSwitchSlice
	OpToggleBinding
	OpSetBinding
	OpRegenerate
	OpReseed
	OpQuit
)

var opNames = [...]string{
	"move-forward", "move-up", "move-right", "move-down", "move-left", "move-backwards",
	"rotate-up", "rotate-right", "rotate-down", "rotate-left", "rotate-cw", "rotate-ccw",
	"switch-slice", "toggle-binding", "set-binding", "regenerate", "reseed", "quit",
}

func (o Operation) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return fmt.Sprintf("Operation(%d)", int(o))
	}
	return opNames[o]
}

// IsMove reports whether o translates the camera.
func (o Operation) IsMove() bool { return o >= OpMoveForward && o <= OpMoveBackwards }

// IsRotation reports whether o turns the active slice.
func (o Operation) IsRotation() bool { return o >= OpRotateUp && o <= OpRotateCounterClockwise }

// Continuous operations act every frame while held, scaled by elapsed time.
// The rest fire once per key press.
func (o Operation) Continuous() bool { return o.IsMove() || o.IsRotation() }

// Squareness limits which operations may run in the same frame.
type Squareness int

const (
	// Smooth allows everything except two rotations at once.
	Smooth Squareness = iota
	// JustRotation keeps rotations apart from moves and other rotations.
	JustRotation
	// Square resolves like JustRotation.
	Square
)

func (s Squareness) String() string {
	switch s {
	case JustRotation:
		return "just-rotation"
	case Square:
		return "square"
	default:
		return "smooth"
	}
}

// ParseSquareness maps a name produced by String back to its value.
func ParseSquareness(name string) (Squareness, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "smooth", "":
		return Smooth, true
	case "just-rotation", "just_rotation", "rotation":
		return JustRotation, true
	case "square":
		return Square, true
	}
	return Smooth, false
}

// Compatible reports whether first may run alongside second, which has
// already been selected for this frame.
func Compatible(mode Squareness, first, second Operation) bool {
	switch mode {
	case JustRotation, Square:
		switch {
		case !first.Continuous():
			return true
		case first.IsMove():
			return !second.IsRotation()
		default:
			return !second.Continuous()
		}
	default:
		return !(first.IsRotation() && second.IsRotation())
	}
}

// Action is an operation with its arguments. Slice and To index slices; a
// negative Slice means the active slice and a negative To means the slice
// after From.
type Action struct {
	Op      Operation
	Slice   int
	To      int
	Binding viewer.Binding
}

// Controls maps key chords to actions and carries the motion tuning.
type Controls struct {
	Squareness Squareness

	velocity    float64
	sensitivity float64
	chords      map[string][]Action
}

// Default motion tuning: blocks per second and degrees per second.
const (
	DefaultVelocity    = 5.0
	DefaultSensitivity = 250.0

	// maxHeld bounds the number of simultaneously held keys considered.
	maxHeld = 10
)

// NewControls returns an empty key map with default tuning.
func NewControls(mode Squareness) *Controls {
	return &Controls{
		Squareness:  mode,
		velocity:    DefaultVelocity,
		sensitivity: DefaultSensitivity,
		chords:      map[string][]Action{},
	}
}

// DefaultControls binds the standard layout: W/S forward and back, D/A
// right and left, E/Q up and down, I/K/L/J/O/U rotations, R/F/C/X select
// slices 0-3, B toggles the binding from the active slice to the next, G
// regenerates, N regenerates with a fresh seed and Escape quits.
func DefaultControls(mode Squareness) *Controls {
	c := NewControls(mode)
	single := map[string]Operation{
		"W": OpMoveForward, "S": OpMoveBackwards,
		"D": OpMoveRight, "A": OpMoveLeft,
		"E": OpMoveUp, "Q": OpMoveDown,
		"I": OpRotateUp, "K": OpRotateDown,
		"L": OpRotateRight, "J": OpRotateLeft,
		"O": OpRotateClockwise, "U": OpRotateCounterClockwise,
		"G": OpRegenerate, "N": OpReseed,
		"Escape": OpQuit,
	}
	for key, op := range single {
		c.Bind(op.action(), key)
	}
	for i, key := range []string{"R", "F", "C", "X"} {
		c.Bind(Action{Op: OpSwitchSlice, Slice: i}, key)
	}
	c.Bind(Action{Op: OpToggleBinding, Slice: -1, To: -1}, "B")
	return c
}

func (o Operation) action() Action { return Action{Op: o, Slice: -1, To: -1} }

func (c *Controls) Velocity() float64 { return c.velocity }

// SetVelocity ignores non-positive values.
func (c *Controls) SetVelocity(v float64) {
	if v > 0 {
		c.velocity = v
	}
}

func (c *Controls) Sensitivity() float64 { return c.sensitivity }

// SetSensitivity ignores non-positive values.
func (c *Controls) SetSensitivity(deg float64) {
	if deg > 0 {
		c.sensitivity = deg
	}
}

// Bind adds a to the actions triggered by holding exactly keys.
func (c *Controls) Bind(a Action, keys ...string) {
	if len(keys) == 0 {
		return
	}
	chord := chordKey(keys)
	c.chords[chord] = append(c.chords[chord], a)
}

// Keys returns every key that takes part in some chord, sorted.
func (c *Controls) Keys() []string {
	seen := map[string]bool{}
	for chord := range c.chords {
		for _, k := range strings.Split(chord, "+") {
			seen[k] = true
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func chordKey(keys []string) string {
	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)
	return strings.Join(sorted, "+")
}

// Resolve selects the actions for one frame. Every subset of the held keys
// is looked up as a chord; continuous actions fire while held, the others
// only when one of their keys is in pressed. An action is dropped when it
// is incompatible with one selected before it.
func (c *Controls) Resolve(held, pressed []string) []Action {
	keys := append([]string(nil), held...)
	sort.Strings(keys)
	if len(keys) > maxHeld {
		keys = keys[:maxHeld]
	}
	fresh := map[string]bool{}
	for _, k := range pressed {
		fresh[k] = true
	}

	var out []Action
	subset := make([]string, 0, len(keys))
	for mask := 1; mask < 1<<len(keys); mask++ {
		subset = subset[:0]
		isFresh := false
		for i, k := range keys {
			if mask&(1<<i) != 0 {
				subset = append(subset, k)
				isFresh = isFresh || fresh[k]
			}
		}
		for _, a := range c.chords[strings.Join(subset, "+")] {
			if !a.Op.Continuous() && !isFresh {
				continue
			}
			if c.compatible(a.Op, out) {
				out = append(out, a)
			}
		}
	}
	return out
}

func (c *Controls) compatible(op Operation, selected []Action) bool {
	for _, s := range selected {
		if !Compatible(c.Squareness, op, s.Op) {
			return false
		}
	}
	return true
}

// Request collects the operations Apply leaves to the caller.
type Request struct {
	Regenerate bool
	Reseed     bool
	Quit       bool
}

// Apply runs the viewer actions against v for a frame that lasted seconds
// and returns the requests that concern the caller.
func (c *Controls) Apply(v *viewer.Viewer, actions []Action, seconds float64) Request {
	var req Request
	step := c.velocity * seconds
	turn := c.sensitivity * seconds
	for _, a := range actions {
		switch a.Op {
		case OpMoveForward:
			v.MoveForward(step)
		case OpMoveUp:
			v.MoveUp(step)
		case OpMoveRight:
			v.MoveRight(step)
		case OpMoveDown:
			v.MoveDown(step)
		case OpMoveLeft:
			v.MoveLeft(step)
		case OpMoveBackwards:
			v.MoveBackwards(step)
		case OpRotateUp:
			v.RotateUp(turn)
		case OpRotateRight:
			v.RotateRight(turn)
		case OpRotateDown:
			v.RotateDown(turn)
		case OpRotateLeft:
			v.RotateLeft(turn)
		case OpRotateClockwise:
			v.RotateClockwise(turn)
		case OpRotateCounterClockwise:
			v.RotateCounterClockwise(turn)
		case OpSwitchSlice:
			v.SetActiveSlice(a.Slice)
		case OpToggleBinding:
			from, to := c.pair(v, a)
			v.ToggleBinding(from, to)
		case OpSetBinding:
			from, to := c.pair(v, a)
			v.SetBinding(from, to, a.Binding)
		case OpRegenerate:
			req.Regenerate = true
		case OpReseed:
			req.Reseed = true
		case OpQuit:
			req.Quit = true
		}
	}
	return req
}

func (c *Controls) pair(v *viewer.Viewer, a Action) (int, int) {
	from, to := a.Slice, a.To
	if from < 0 {
		from = v.ActiveSlice()
	}
	if to < 0 {
		to = (from + 1) % v.NumSlices()
	}
	return from, to
}

// SliceRects tiles n slices side by side across bounds.
func SliceRects(n int, bounds image.Rectangle) []image.Rectangle {
	if n <= 0 {
		return nil
	}
	rects := make([]image.Rectangle, n)
	w := bounds.Dx()
	for i := range rects {
		x0 := bounds.Min.X + i*w/n
		x1 := bounds.Min.X + (i+1)*w/n
		rects[i] = image.Rect(x0, bounds.Min.Y, x1, bounds.Max.Y)
	}
	return rects
}

// FitSlices sizes every slice of v to its window rectangle divided by scale
// and sets its aspect from the rectangle.
func FitSlices(v *viewer.Viewer, bounds image.Rectangle, scale int) []image.Rectangle {
	if scale <= 0 {
		scale = 1
	}
	rects := SliceRects(v.NumSlices(), bounds)
	for i, r := range rects {
		if r.Dx() <= 0 || r.Dy() <= 0 {
			continue
		}
		v.ResizeSlice(i, r.Dx()/scale, r.Dy()/scale)
		v.SetSliceAspect(i, float64(r.Dx())/float64(r.Dy()))
	}
	return rects
}
