package app

import (
	"flag"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ndmaze/internal/core"
	"ndmaze/internal/viewer"
)

func ops(actions []Action) []Operation {
	out := make([]Operation, len(actions))
	for i, a := range actions {
		out[i] = a.Op
	}
	return out
}

func corridorViewer(t *testing.T) *viewer.Viewer {
	t.Helper()
	g := core.NewSolidGrid(7, 3, 3)
	for x := 1; x <= 5; x++ {
		g.SetAt([]int{x, 1, 1}, core.Air)
	}
	v, err := viewer.New(g, nil, nil)
	require.NoError(t, err)
	t.Cleanup(v.Close)
	return v
}

func TestCompatible(t *testing.T) {
	cases := []struct {
		mode          Squareness
		first, second Operation
		want          bool
	}{
		{Smooth, OpRotateUp, OpRotateLeft, false},
		{Smooth, OpRotateUp, OpMoveForward, true},
		{Smooth, OpMoveForward, OpMoveRight, true},
		{Smooth, OpSwitchSlice, OpRotateUp, true},
		{JustRotation, OpRegenerate, OpRotateUp, true},
		{JustRotation, OpMoveForward, OpMoveUp, true},
		{JustRotation, OpMoveForward, OpRotateUp, false},
		{JustRotation, OpMoveForward, OpToggleBinding, true},
		{JustRotation, OpRotateUp, OpMoveForward, false},
		{JustRotation, OpRotateUp, OpRotateDown, false},
		{JustRotation, OpRotateUp, OpSwitchSlice, true},
		{Square, OpRotateClockwise, OpMoveLeft, false},
		{Square, OpQuit, OpRotateLeft, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Compatible(tc.mode, tc.first, tc.second),
			"%s: %s after %s", tc.mode, tc.first, tc.second)
	}
}

func TestResolveDropsSecondRotationWhenSmooth(t *testing.T) {
	c := DefaultControls(Smooth)
	got := c.Resolve([]string{"W", "L", "I"}, nil)
	assert.Equal(t, []Operation{OpRotateUp, OpMoveForward}, ops(got))
}

func TestResolveIsolatesRotationsInJustRotation(t *testing.T) {
	c := DefaultControls(JustRotation)
	got := c.Resolve([]string{"W", "L", "I"}, nil)
	assert.Equal(t, []Operation{OpRotateUp}, ops(got))

	got = c.Resolve([]string{"R", "W"}, []string{"R"})
	assert.Equal(t, []Operation{OpSwitchSlice, OpMoveForward}, ops(got))
}

func TestResolveFiresDiscreteOnPressOnly(t *testing.T) {
	c := DefaultControls(Smooth)
	assert.Empty(t, c.Resolve([]string{"G"}, nil))
	assert.Equal(t, []Operation{OpRegenerate}, ops(c.Resolve([]string{"G"}, []string{"G"})))
	assert.Equal(t, []Operation{OpMoveForward}, ops(c.Resolve([]string{"W"}, nil)))
}

func TestResolveMatchesChords(t *testing.T) {
	c := DefaultControls(Smooth)
	c.Bind(Action{Op: OpSetBinding, Slice: 0, To: 1, Binding: viewer.BindMimic}, "Shift", "B")

	got := c.Resolve([]string{"Shift", "B"}, []string{"Shift"})
	require.Len(t, got, 1)
	assert.Equal(t, OpSetBinding, got[0].Op)
	assert.Equal(t, viewer.BindMimic, got[0].Binding)

	got = c.Resolve([]string{"B", "Shift"}, []string{"B"})
	assert.Equal(t, []Operation{OpToggleBinding, OpSetBinding}, ops(got))
	assert.Contains(t, c.Keys(), "Shift")
}

func TestApplyMovesAndRotates(t *testing.T) {
	v := corridorViewer(t)
	c := DefaultControls(Smooth)

	req := c.Apply(v, []Action{OpMoveForward.action()}, 0.5)
	assert.Equal(t, Request{}, req)
	assert.InDelta(t, 1+0.5*DefaultVelocity, v.Camera()[0], 1e-9)

	c.SetSensitivity(90)
	c.SetSensitivity(-1)
	assert.Equal(t, 90.0, c.Sensitivity())
	c.Apply(v, []Action{OpRotateRight.action()}, 1)
	fwd := v.Active().Forward()
	assert.InDelta(t, 0, fwd[0], 1e-9)
	assert.InDelta(t, 1, fwd[1], 1e-9)
}

func TestApplyReturnsRequests(t *testing.T) {
	v := corridorViewer(t)
	c := DefaultControls(Smooth)
	req := c.Apply(v, []Action{OpRegenerate.action(), OpReseed.action(), OpQuit.action()}, 0.1)
	assert.Equal(t, Request{Regenerate: true, Reseed: true, Quit: true}, req)
}

func TestApplyBindingActions(t *testing.T) {
	v, err := viewer.New(core.NewGrid(5, 5, 5, 5), nil, nil)
	require.NoError(t, err)
	defer v.Close()
	require.Equal(t, 4, v.NumSlices())
	c := DefaultControls(Smooth)

	c.Apply(v, []Action{{Op: OpSwitchSlice, Slice: 2}}, 0)
	assert.Equal(t, 2, v.ActiveSlice())

	c.Apply(v, []Action{{Op: OpToggleBinding, Slice: -1, To: -1}}, 0)
	b, ok := v.Binding(2, 3)
	require.True(t, ok)
	assert.Equal(t, viewer.BindNone, b)

	c.Apply(v, []Action{{Op: OpSetBinding, Slice: 3, To: -1, Binding: viewer.BindMimic}}, 0)
	b, _ = v.Binding(3, 0)
	assert.Equal(t, viewer.BindMimic, b)
}

func TestSliceRectsTile(t *testing.T) {
	rects := SliceRects(3, image.Rect(10, 0, 310, 100))
	require.Len(t, rects, 3)
	assert.Equal(t, image.Rect(10, 0, 110, 100), rects[0])
	assert.Equal(t, image.Rect(110, 0, 210, 100), rects[1])
	assert.Equal(t, image.Rect(210, 0, 310, 100), rects[2])
	assert.Nil(t, SliceRects(0, image.Rect(0, 0, 10, 10)))
}

func TestFitSlices(t *testing.T) {
	v, err := viewer.New(core.NewGrid(5, 5, 5, 5), nil, nil)
	require.NoError(t, err)
	defer v.Close()

	rects := FitSlices(v, image.Rect(0, 0, 800, 300), 2)
	require.Len(t, rects, 4)
	for i := range rects {
		s := v.Slice(i)
		assert.Equal(t, 100, s.Width())
		assert.Equal(t, 150, s.Height())
		assert.InDelta(t, 200.0/300.0, s.Aspect(), 1e-9)
	}
}

func TestKVListMap(t *testing.T) {
	var l KVList
	require.NoError(t, l.Set("loop=0.2"))
	require.NoError(t, l.Set(" seed = abc "))
	require.NoError(t, l.Set("broken"))
	assert.Equal(t, map[string]string{"loop": "0.2", "seed": "abc"}, l.Map())
	assert.Equal(t, "loop=0.2, seed = abc ,broken", l.String())
}

func TestConfigLoadLayers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "maze.yaml")
	doc := "preset: classic\nmaze:\n  seed: fromfile\n  twist: 0.9\ncamera: [1, 1, 1, 1]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	cfg.BindView(fs)
	require.NoError(t, fs.Parse([]string{
		"-config", path, "-dims", "7x7x7x7", "-set", "twist=0.25", "-set", "loop=0.1", "-workers", "3",
	}))

	s, err := cfg.Load()
	require.NoError(t, err)
	assert.Equal(t, []int{7, 7, 7, 7}, s.Maze.Dimensions())
	assert.Equal(t, "fromfile", s.Maze.Seed())
	assert.Equal(t, 0.25, s.Maze.TwistProbability())
	assert.Equal(t, 0.1, s.Maze.LoopProbability())
	assert.Equal(t, []float64{1, 1, 1, 1}, s.Camera)

	o, err := cfg.ViewerOptions(s, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, o.NumSlices())
	assert.Equal(t, 3, o.Workers())
}

func TestConfigLoadErrors(t *testing.T) {
	cfg := NewConfig()
	cfg.Preset = "nope"
	_, err := cfg.Load()
	assert.Error(t, err)

	cfg = NewConfig()
	cfg.Dims = "9xq"
	_, err = cfg.Load()
	assert.Error(t, err)

	cfg = NewConfig()
	cfg.ConfigPath = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = cfg.Load()
	assert.Error(t, err)
}

func TestParseSquareness(t *testing.T) {
	for _, mode := range []Squareness{Smooth, JustRotation, Square} {
		got, ok := ParseSquareness(mode.String())
		require.True(t, ok)
		assert.Equal(t, mode, got)
	}
	_, ok := ParseSquareness("wobbly")
	assert.False(t, ok)

	cfg := NewConfig()
	cfg.Squareness = "wobbly"
	_, err := cfg.Mode()
	assert.Error(t, err)
}
