//go:build !ebiten

package app

import (
	"errors"

	"ndmaze/internal/core"
)

var errNoGUI = errors.New("app: the interactive viewer requires building with the 'ebiten' tag")

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New reports that the ebiten build tag is required for GUI support.
func New(*Config, *Settings) (*Game, error) { return nil, errNoGUI }

// Size is zero in the headless build.
func (g *Game) Size() core.Size { return core.Size{} }

// Close is a no-op placeholder.
func (g *Game) Close() {}

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error { return errNoGUI }

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
