//go:build ebiten

package app

import (
	"fmt"
	"image"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"ndmaze/internal/core"
	"ndmaze/internal/maze"
	"ndmaze/internal/render"
	"ndmaze/internal/ui"
	"ndmaze/internal/viewer"
	"ndmaze/pkg/logger"
)

const hudWidth = 260

var keyByName = map[string]ebiten.Key{
	"A": ebiten.KeyA, "B": ebiten.KeyB, "C": ebiten.KeyC, "D": ebiten.KeyD,
	"E": ebiten.KeyE, "F": ebiten.KeyF, "G": ebiten.KeyG, "H": ebiten.KeyH,
	"I": ebiten.KeyI, "J": ebiten.KeyJ, "K": ebiten.KeyK, "L": ebiten.KeyL,
	"M": ebiten.KeyM, "N": ebiten.KeyN, "O": ebiten.KeyO, "P": ebiten.KeyP,
	"Q": ebiten.KeyQ, "R": ebiten.KeyR, "S": ebiten.KeyS, "T": ebiten.KeyT,
	"U": ebiten.KeyU, "V": ebiten.KeyV, "W": ebiten.KeyW, "X": ebiten.KeyX,
	"Y": ebiten.KeyY, "Z": ebiten.KeyZ,
	"Escape": ebiten.KeyEscape,
	"Space":  ebiten.KeySpace,
	"Shift":  ebiten.KeyShift,
}

// Game adapts a maze viewer to the ebiten.Game interface.
type Game struct {
	cfg      *Config
	settings *Settings
	opts     *maze.Options

	view     *viewer.Viewer
	stats    maze.Stats
	controls *Controls
	clock    *core.Stopwatch
	painters []*render.Painter
	rects    []image.Rectangle

	hud     *ui.HUD
	overlay *ui.Overlay
	log     *logrus.Entry
}

// New generates the configured maze and opens a viewer on it.
func New(cfg *Config, s *Settings) (*Game, error) {
	mode, err := cfg.Mode()
	if err != nil {
		return nil, err
	}
	g := &Game{
		cfg:      cfg,
		settings: s,
		opts:     s.Maze,
		controls: DefaultControls(mode),
		clock:    core.NewStopwatch(),
		log:      logger.Component("app"),
	}
	if err := g.regenerate(); err != nil {
		return nil, err
	}
	g.hud = ui.NewHUD(g.opts, hudWidth, g.status)
	g.overlay = ui.NewOverlay(g.view, 6)
	return g, nil
}

// Size returns the window size the game lays itself out in.
func (g *Game) Size() core.Size {
	return core.Size{W: g.cfg.Width + hudWidth, H: g.cfg.Height}
}

func (g *Game) regenerate() error {
	grid, stats := maze.New(g.opts.Clone())
	vopts, err := g.cfg.ViewerOptions(g.settings, grid.NumDims())
	if err != nil {
		return err
	}
	view, err := viewer.New(grid, vopts, g.settings.Camera)
	if err != nil {
		return err
	}
	if g.view != nil {
		g.view.Close()
	}
	g.view = view
	g.stats = stats
	g.painters = nil
	g.rects = FitSlices(view, image.Rect(0, 0, g.cfg.Width, g.cfg.Height), g.cfg.Scale)
	if g.overlay != nil {
		g.overlay.SetViewer(view)
	}
	g.log.WithFields(logrus.Fields{
		"dims":   maze.FormatDims(grid.Dims()),
		"seed":   g.opts.Seed(),
		"opened": stats.Opened,
		"slices": view.NumSlices(),
	}).Info("maze generated")
	return nil
}

// Close releases the render workers.
func (g *Game) Close() {
	if g.view != nil {
		g.view.Close()
	}
}

func (g *Game) keys() (held, pressed []string) {
	for _, name := range g.controls.Keys() {
		key, ok := keyByName[name]
		if !ok {
			continue
		}
		if ebiten.IsKeyPressed(key) {
			held = append(held, name)
		}
		if inpututil.IsKeyJustPressed(key) {
			pressed = append(pressed, name)
		}
	}
	return held, pressed
}

// Update applies the held keys to the viewer.
func (g *Game) Update() error {
	held, pressed := g.keys()
	actions := g.controls.Resolve(held, pressed)
	req := g.controls.Apply(g.view, actions, g.clock.Lap())
	if req.Quit {
		return ebiten.Termination
	}
	if req.Reseed {
		g.opts.SetSeed(strconv.FormatInt(time.Now().UnixNano(), 36))
	}
	if req.Regenerate || req.Reseed {
		if err := g.regenerate(); err != nil {
			return err
		}
	}
	g.overlay.Update()
	g.hud.Update(g.cfg.Width)
	return nil
}

// Draw renders every slice into its tile.
func (g *Game) Draw(screen *ebiten.Image) {
	bufs := g.view.Render()
	if len(g.painters) != len(bufs) {
		g.painters = make([]*render.Painter, len(bufs))
	}
	for i, buf := range bufs {
		size := g.view.Slice(i).Size()
		if g.painters[i] == nil || g.painters[i].Size() != size {
			g.painters[i] = render.NewPainter(size)
		}
		if i < len(g.rects) {
			g.painters[i].Blit(screen, buf, g.rects[i])
		}
	}
	g.overlay.Draw(screen, g.rects)
	g.hud.Draw(screen, g.cfg.Width, g.cfg.Height)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.Size()
	return s.W, s.H
}

func (g *Game) status() []string {
	v := g.view
	lines := []string{
		fmt.Sprintf("seed %s  dims %s", g.opts.Seed(), maze.FormatDims(v.Grid().Dims())),
		fmt.Sprintf("opened %d/%d", g.stats.Opened, g.stats.Carvable),
		fmt.Sprintf("slice %d/%d %s", v.ActiveSlice()+1, v.NumSlices(), v.Active().Name),
	}
	if v.NumSlices() > 1 {
		next := (v.ActiveSlice() + 1) % v.NumSlices()
		b, _ := v.Binding(v.ActiveSlice(), next)
		lines = append(lines, fmt.Sprintf("binding -> %d: %s", next+1, b))
	}
	if hit := v.Look(); hit.Solid {
		lines = append(lines, fmt.Sprintf("wall ahead %.2f", hit.T))
	}
	lines = append(lines, "G regen  N new seed  B bind")
	return lines
}
