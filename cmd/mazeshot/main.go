package main

import (
	"flag"
	"fmt"

	"github.com/sirupsen/logrus"

	"ndmaze/internal/app"
	"ndmaze/internal/maze"
	"ndmaze/internal/render"
	"ndmaze/internal/viewer"
	"ndmaze/pkg/logger"
)

func main() {
	cfg := app.NewConfig()
	cfg.Width, cfg.Height, cfg.Scale = 320, 240, 1
	cfg.Bind(flag.CommandLine)
	cfg.BindView(flag.CommandLine)
	prefix := flag.String("out", "slice", "output file prefix; slice i is written to <out>-<i>.png")
	forward := flag.Float64("forward", 0, "blocks to move forward before rendering")
	turn := flag.Float64("turn", 0, "degrees to rotate right before rendering")
	flag.Parse()

	logger.Init()
	log := logger.Component("mazeshot")

	settings, err := cfg.Load()
	if err != nil {
		log.WithError(err).Fatal("load settings")
	}
	g, stats := maze.New(settings.Maze)
	vopts, err := cfg.ViewerOptions(settings, g.NumDims())
	if err != nil {
		log.WithError(err).Fatal("viewer options")
	}
	v, err := viewer.New(g, vopts, settings.Camera)
	if err != nil {
		log.WithError(err).Fatal("open viewer")
	}
	defer v.Close()

	if *turn != 0 {
		v.RotateRight(*turn)
	}
	moved := v.MoveForward(*forward)

	bufs := v.Render()
	frames := make([]render.Frame, len(bufs))
	for i, buf := range bufs {
		s := v.Slice(i)
		px, size := render.Upscale(buf, s.Size(), cfg.Scale)
		frames[i] = render.Frame{
			Path:   fmt.Sprintf("%s-%d.png", *prefix, i),
			Pixels: px,
			Size:   size,
		}
	}
	if err := render.WritePNGs(frames); err != nil {
		log.WithError(err).Fatal("write frames")
	}

	hit := v.Look()
	log.WithFields(logrus.Fields{
		"dims":   maze.FormatDims(g.Dims()),
		"seed":   settings.Maze.Seed(),
		"opened": stats.Opened,
		"slices": len(frames),
		"moved":  fmt.Sprintf("%.3f", moved),
		"camera": v.Camera(),
		"ahead":  fmt.Sprintf("%.3f", hit.T),
		"wall":   hit.Solid,
	}).Info("frames written")
}
