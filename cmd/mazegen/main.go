package main

import (
	"flag"
	"fmt"
	"image/color"
	"strings"

	"github.com/sirupsen/logrus"

	"ndmaze/internal/app"
	"ndmaze/internal/core"
	"ndmaze/internal/maze"
	"ndmaze/internal/render"
	"ndmaze/pkg/logger"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	axes := flag.String("axes", "0,1", "section axes as x,y")
	ascii := flag.Bool("ascii", true, "print the section through the entrance")
	out := flag.String("png", "", "write the section through the entrance to this PNG file")
	scale := flag.Int("scale", 8, "PNG pixels per cell")
	flag.Parse()

	logger.Init()
	log := logger.Component("mazegen")

	settings, err := cfg.Load()
	if err != nil {
		log.WithError(err).Fatal("load settings")
	}
	opts := settings.Maze

	clock := core.NewStopwatch()
	clock.Lap()
	g, stats := maze.New(opts)
	elapsed := clock.Lap()

	exit, hasExit := maze.Exit(g)
	path, solvable := 0, false
	if hasExit {
		path, solvable = maze.PathLength(g, maze.Entrance(g), exit)
	}
	log.WithFields(logrus.Fields{
		"dims":       maze.FormatDims(g.Dims()),
		"seed":       opts.Seed(),
		"opened":     stats.Opened,
		"carvable":   stats.Carvable,
		"steps":      stats.Steps,
		"spawned":    stats.Spawned,
		"died":       stats.Died,
		"backtracks": stats.Backtracks,
		"early_stop": stats.EarlyStop,
		"rescued":    stats.Rescued,
		"dead_ends":  maze.DeadEnds(g),
		"solvable":   solvable,
		"path":       path,
		"seconds":    fmt.Sprintf("%.3f", elapsed),
	}).Info("maze generated")
	if !hasExit {
		log.Warn("no exit was carved")
	}

	ax, ay, err := parseAxes(*axes, g.NumDims())
	if err != nil {
		log.WithError(err).Fatal("flag -axes")
	}
	origin := maze.Entrance(g)
	if *ascii {
		fmt.Print(sectionText(g, origin, ax, ay, exit))
	}
	if *out != "" {
		buf, size := render.SectionPixels(g, origin, ax, ay, render.SectionPalette)
		render.MarkCell(buf, size, origin[ax], origin[ay], color.RGBA{R: 220, G: 60, B: 50, A: 255})
		if hasExit && sameSection(exit, origin, ax, ay) {
			render.MarkCell(buf, size, exit[ax], exit[ay], color.RGBA{R: 60, G: 180, B: 90, A: 255})
		}
		buf, size = render.Upscale(buf, size, *scale)
		if err := render.WritePNG(*out, buf, size); err != nil {
			log.WithError(err).Fatal("write section")
		}
		log.WithField("path", *out).Info("section written")
	}
}

func parseAxes(s string, dims int) (int, int, error) {
	var x, y int
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d,%d", &x, &y); err != nil {
		return 0, 0, fmt.Errorf("want x,y: %w", err)
	}
	if x < 0 || y < 0 || x >= dims || y >= dims || x == y {
		return 0, 0, fmt.Errorf("axes %d,%d invalid for %d dimensions", x, y, dims)
	}
	return x, y, nil
}

func sameSection(a, b []int, ax, ay int) bool {
	for i := range a {
		if i != ax && i != ay && a[i] != b[i] {
			return false
		}
	}
	return true
}

// sectionText renders walls as '#' with S and E marking entrance and exit.
func sectionText(g *core.Grid, origin []int, ax, ay int, exit []int) string {
	cells, size := render.Section(g, origin, ax, ay)
	var b strings.Builder
	for row := 0; row < size.H; row++ {
		y := size.H - 1 - row
		for x := 0; x < size.W; x++ {
			switch {
			case x == origin[ax] && y == origin[ay]:
				b.WriteByte('S')
			case exit != nil && sameSection(exit, origin, ax, ay) && x == exit[ax] && y == exit[ay]:
				b.WriteByte('E')
			case cells[row*size.W+x] == core.Wall:
				b.WriteByte('#')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
