package app

import (
	"flag"
	"fmt"
	"strings"

	"ndmaze/internal/config"
	"ndmaze/internal/maze"
	"ndmaze/internal/viewer"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map splits the entries at their first '='; entries without one are
// skipped.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}

// Config represents the command-line parameters shared by the commands.
// Zero values leave the config file or preset in charge.
type Config struct {
	ConfigPath string
	Preset     string
	Dims       string
	Seed       string
	Overrides  KVList

	Width      int
	Height     int
	Scale      int
	TPS        int
	Workers    int
	Fov        float64
	Squareness string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 1280, Height: 480, Scale: 2, TPS: 60, Squareness: "smooth"}
}

// Bind attaches the generation flags to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML config file")
	fs.StringVar(&c.Preset, "preset", c.Preset, "generation preset ("+strings.Join(maze.Presets(), ", ")+")")
	fs.StringVar(&c.Dims, "dims", c.Dims, "maze extents, e.g. 9x9x9x9")
	fs.StringVar(&c.Seed, "seed", c.Seed, "generation seed")
	fs.Var(&c.Overrides, "set", "generation override in key=value form (repeatable)")
}

// BindView attaches the window and rendering flags.
func (c *Config) BindView(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window or image width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window or image height in pixels")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window pixels per rendered pixel")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Workers, "workers", c.Workers, "render workers (0 keeps the configured count)")
	fs.Float64Var(&c.Fov, "fov", c.Fov, "field of view in degrees (0 keeps the configured value)")
	fs.StringVar(&c.Squareness, "squareness", c.Squareness, "key combination mode: smooth, just-rotation, square")
}

// Settings is everything needed to generate and view a maze.
type Settings struct {
	Maze   *maze.Options
	File   *config.File
	Camera []float64
}

// Load resolves the generation options: config file (or preset), then
// -dims, -seed and -set overrides in that order.
func (c *Config) Load() (*Settings, error) {
	f := &config.File{}
	if c.ConfigPath != "" {
		loaded, err := config.Load(c.ConfigPath)
		if err != nil {
			return nil, err
		}
		f = loaded
	}
	if c.Preset != "" {
		f.Preset = c.Preset
	}
	opts, err := f.MazeOptions()
	if err != nil {
		return nil, err
	}
	if c.Dims != "" {
		dims, err := maze.ParseDims(c.Dims)
		if err != nil {
			return nil, fmt.Errorf("flag -dims: %w", err)
		}
		opts.SetDimensions(dims...)
	}
	if c.Seed != "" {
		opts.SetSeed(c.Seed)
	}
	opts.Apply(c.Overrides.Map())
	return &Settings{Maze: opts, File: f, Camera: f.Camera}, nil
}

// ViewerOptions builds the slice layout for the generated grid, sized to
// the window and adjusted by -workers and -fov.
func (c *Config) ViewerOptions(s *Settings, dims int) (*viewer.Options, error) {
	if s.File.Viewer.Width == 0 {
		s.File.Viewer.Width = c.Width
	}
	if s.File.Viewer.Height == 0 {
		s.File.Viewer.Height = c.Height
	}
	o, err := s.File.ViewerOptions(dims)
	if err != nil {
		return nil, err
	}
	if c.Workers > 0 {
		o.SetWorkers(c.Workers)
	}
	if c.Fov > 0 {
		o.SetFov(c.Fov)
	}
	return o, nil
}

// Mode parses the -squareness flag.
func (c *Config) Mode() (Squareness, error) {
	mode, ok := ParseSquareness(c.Squareness)
	if !ok {
		return Smooth, fmt.Errorf("flag -squareness: unknown mode %q", c.Squareness)
	}
	return mode, nil
}
