// Package config loads generation and viewer settings from YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"ndmaze/internal/maze"
	"ndmaze/internal/viewer"
)

// File mirrors the YAML document. Absent fields keep their defaults.
type File struct {
	Preset string      `yaml:"preset"`
	Maze   MazeSection `yaml:"maze"`
	Viewer ViewSection `yaml:"viewer"`
	Camera []float64   `yaml:"camera"`
}

type MazeSection struct {
	Dims        []int    `yaml:"dims"`
	Seed        *string  `yaml:"seed"`
	Density     *float64 `yaml:"density"`
	Branch      *float64 `yaml:"branch"`
	BranchDeath *float64 `yaml:"branch_death"`
	Twist       *float64 `yaml:"twist"`
	Flow        *float64 `yaml:"flow"`
	Loop        *float64 `yaml:"loop"`
	Block       *float64 `yaml:"block"`
	RestrictNew *int     `yaml:"restrict_new"`
	MaxUseless  *int     `yaml:"max_useless"`
	Schedule    string   `yaml:"schedule"`
	TargetGuard *bool    `yaml:"target_guard"`
}

type ViewSection struct {
	Fov      *float64       `yaml:"fov"`
	Workers  *int           `yaml:"workers"`
	Width    int            `yaml:"width"`
	Height   int            `yaml:"height"`
	Slices   []SliceSection `yaml:"slices"`
	Bindings []BindingEntry `yaml:"bindings"`
}

type SliceSection struct {
	Name    string    `yaml:"name"`
	Forward []float64 `yaml:"forward"`
	Right   []float64 `yaml:"right"`
	Up      []float64 `yaml:"up"`
	Width   int       `yaml:"width"`
	Height  int       `yaml:"height"`
	Aspect  float64   `yaml:"aspect"`
	Fov     float64   `yaml:"fov"`
}

type BindingEntry struct {
	From    int    `yaml:"from"`
	To      int    `yaml:"to"`
	Binding string `yaml:"binding"`
}

// Default slice size when the file gives none.
const (
	DefaultWidth  = 320
	DefaultHeight = 240
)

// Load reads and parses a YAML config file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a YAML document. Unknown keys are an error; an empty
// document yields an empty File.
func Parse(data []byte) (*File, error) {
	f := &File{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return f, nil
}

// MazeOptions builds generation options: the preset (or the defaults) with
// the file's values applied through the clamping setters.
func (f *File) MazeOptions() (*maze.Options, error) {
	o := maze.DefaultOptions()
	if f.Preset != "" {
		p, ok := maze.Preset(f.Preset)
		if !ok {
			return nil, fmt.Errorf("config: unknown preset %q", f.Preset)
		}
		o = p
	}
	m := f.Maze
	if len(m.Dims) > 0 {
		o.SetDimensions(m.Dims...)
	}
	if m.Seed != nil {
		o.SetSeed(*m.Seed)
	}
	setFloat(m.Density, o.SetDensity)
	setFloat(m.Branch, o.SetBranchProbability)
	setFloat(m.BranchDeath, o.SetBranchDeathProbability)
	setFloat(m.Twist, o.SetTwistProbability)
	setFloat(m.Flow, o.SetFlowProbability)
	setFloat(m.Loop, o.SetLoopProbability)
	setFloat(m.Block, o.SetBlockProbability)
	if m.RestrictNew != nil {
		o.SetRestrictNewAmount(*m.RestrictNew)
	}
	if m.MaxUseless != nil {
		o.SetMaxUseless(*m.MaxUseless)
	}
	if m.Schedule != "" {
		s, ok := maze.ParseSchedule(m.Schedule)
		if !ok {
			return nil, fmt.Errorf("config: unknown schedule %q", m.Schedule)
		}
		o.SetSchedule(s)
	}
	if m.TargetGuard != nil {
		o.SetTargetGuard(*m.TargetGuard)
	}
	return o, nil
}

func setFloat(v *float64, set func(float64)) {
	if v != nil {
		set(*v)
	}
}

// ViewerOptions builds the slice layout for a dims-dimensional grid. With no
// slices listed the default layout is used.
func (f *File) ViewerOptions(dims int) (*viewer.Options, error) {
	if dims < 3 {
		return nil, fmt.Errorf("config: %w (got %d)", viewer.ErrTooFewDims, dims)
	}
	v := f.Viewer
	width, height := v.Width, v.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	var o *viewer.Options
	if len(v.Slices) == 0 {
		o = viewer.DefaultOptions(dims, width, height)
	} else {
		o = viewer.NewOptions()
		for i, sc := range v.Slices {
			s, err := sc.build(i, dims, width, height)
			if err != nil {
				return nil, err
			}
			o.AddSlice(s)
		}
	}
	if v.Fov != nil {
		o.SetFov(*v.Fov)
	}
	if v.Workers != nil {
		o.SetWorkers(*v.Workers)
	}
	for _, b := range v.Bindings {
		binding, ok := viewer.ParseBinding(b.Binding)
		if !ok {
			return nil, fmt.Errorf("config: unknown binding %q", b.Binding)
		}
		if !o.SetBinding(b.From, b.To, binding) {
			return nil, fmt.Errorf("config: binding %d -> %d does not name two slices", b.From, b.To)
		}
	}
	return o, nil
}

func (sc SliceSection) build(i, dims, width, height int) (*viewer.Slice, error) {
	name := sc.Name
	if name == "" {
		name = fmt.Sprintf("slice%d", i)
	}
	if sc.Width > 0 {
		width = sc.Width
	}
	if sc.Height > 0 {
		height = sc.Height
	}
	s := viewer.NewSlice(name, dims, width, height)
	set := []struct {
		v   []float64
		set func([]float64) bool
		key string
	}{
		{sc.Forward, s.SetForward, "forward"},
		{sc.Right, s.SetRight, "right"},
		{sc.Up, s.SetUp, "up"},
	}
	for _, e := range set {
		if e.v == nil {
			continue
		}
		if !e.set(e.v) {
			return nil, fmt.Errorf("config: slice %q: bad %s vector %v for %d dims", name, e.key, e.v, dims)
		}
	}
	if sc.Aspect > 0 {
		s.SetAspect(sc.Aspect)
	}
	s.SetFov(sc.Fov)
	return s, nil
}
