package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ndmaze/internal/maze"
	"ndmaze/internal/viewer"
)

const sample = `
preset: braided
maze:
  dims: [7, 7, 7, 7]
  seed: "hello"
  density: 2.5
  twist: -1
  restrict_new: -4
  schedule: newest
  target_guard: false
viewer:
  fov: 250
  workers: 3
  width: 64
  height: 48
  slices:
    - name: front
    - name: side
      up: [0, 0, 0, 1]
      fov: 60
  bindings:
    - {from: 0, to: 1, binding: mimic}
camera: [1, 1, 1, 1]
`

func TestLoadClampsIntoOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1, 1}, f.Camera)

	m, err := f.MazeOptions()
	require.NoError(t, err)
	assert.Equal(t, []int{7, 7, 7, 7}, m.Dimensions())
	assert.Equal(t, "hello", m.Seed())
	assert.Equal(t, 1.0, m.Density())
	assert.Equal(t, 0.0, m.TwistProbability())
	assert.Equal(t, 0, m.RestrictNewAmount())
	assert.Equal(t, maze.ScheduleNewest, m.Schedule())
	assert.False(t, m.TargetGuard())

	preset, ok := maze.Preset("braided")
	require.True(t, ok)
	assert.Equal(t, preset.LoopProbability(), m.LoopProbability())

	v, err := f.ViewerOptions(len(m.Dimensions()))
	require.NoError(t, err)
	assert.Equal(t, viewer.MaxFov, v.Fov())
	assert.Equal(t, 3, v.Workers())
	require.Equal(t, 2, v.NumSlices())
	assert.Equal(t, "front", v.Slice(0).Name)
	assert.Equal(t, 64, v.Slice(0).Width())
	assert.Equal(t, []float64{0, 0, 0, 1}, v.Slice(1).Up())
	assert.Equal(t, 60.0, v.Slice(1).Fov())
	b, ok := v.Binding(0, 1)
	require.True(t, ok)
	assert.Equal(t, viewer.BindMimic, b)
	b, _ = v.Binding(1, 0)
	assert.Equal(t, viewer.BindMatrix, b)
}

func TestEmptyDocumentUsesDefaults(t *testing.T) {
	f, err := Parse(nil)
	require.NoError(t, err)

	m, err := f.MazeOptions()
	require.NoError(t, err)
	assert.Equal(t, maze.DefaultOptions().Dimensions(), m.Dimensions())

	v, err := f.ViewerOptions(4)
	require.NoError(t, err)
	assert.Equal(t, 4, v.NumSlices())
	assert.Equal(t, DefaultWidth, v.Slice(0).Width())
	assert.Equal(t, viewer.DefaultFov, v.Fov())
}

func TestConfigErrors(t *testing.T) {
	_, err := Parse([]byte("maze:\n  colour: red\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	cases := map[string]string{
		"preset":   "preset: nope\n",
		"schedule": "maze:\n  schedule: sideways\n",
	}
	for name, doc := range cases {
		f, err := Parse([]byte(doc))
		require.NoError(t, err, name)
		_, err = f.MazeOptions()
		assert.Error(t, err, name)
	}

	viewerCases := map[string]string{
		"binding name":  "viewer:\n  bindings:\n    - {from: 0, to: 1, binding: glue}\n",
		"binding range": "viewer:\n  bindings:\n    - {from: 0, to: 9, binding: none}\n",
		"vector":        "viewer:\n  slices:\n    - up: [0, 1]\n",
	}
	for name, doc := range viewerCases {
		f, err := Parse([]byte(doc))
		require.NoError(t, err, name)
		_, err = f.ViewerOptions(4)
		assert.Error(t, err, name)
	}

	_, err = (&File{}).ViewerOptions(2)
	assert.ErrorIs(t, err, viewer.ErrTooFewDims)
}
