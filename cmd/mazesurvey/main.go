package main

import (
	"flag"
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"

	"ndmaze/internal/app"
	"ndmaze/internal/core"
	"ndmaze/internal/maze"
	"ndmaze/pkg/logger"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	seeds := flag.Int("seeds", 32, "number of seeds to generate")
	prefix := flag.String("prefix", "survey", "seed prefix; seeds are <prefix>0, <prefix>1, ...")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel generations")
	verbose := flag.Bool("v", false, "print one line per maze")
	flag.Parse()

	logger.Init()
	log := logger.Component("mazesurvey")

	settings, err := cfg.Load()
	if err != nil {
		log.WithError(err).Fatal("load settings")
	}
	base := settings.Maze
	log.WithFields(logrus.Fields{
		"dims":    maze.FormatDims(base.Dimensions()),
		"seeds":   *seeds,
		"workers": *workers,
	}).Info("survey started")

	results := maze.Survey(base, maze.SeedRange(*prefix, *seeds), *workers)
	if *verbose {
		for _, r := range results {
			fmt.Printf("  %-12s open %.3f  path %4d  dead ends %4d  solvable %-5t  rescued %t\n",
				r.Seed, r.OpenFraction, r.PathLength, r.DeadEnds, r.Solvable, r.Stats.Rescued)
		}
	}

	sum := maze.Summarize(results)
	fmt.Printf("Mazes: %d, solvable %d, rescued %d\n", sum.Mazes, sum.Solvable, sum.Rescued)
	fmt.Printf("Mean open fraction %.3f, mean path %.1f (max %d), mean dead ends %.1f\n",
		sum.MeanOpen, sum.MeanPath, sum.MaxPath, sum.MeanDeadEnds)
	printParams(base)
}

func printParams(o *maze.Options) {
	fmt.Println("Parameters:")
	o.Parameters().Each(func(_ string, p core.Parameter) {
		fmt.Printf("  %s=%s\n", p.Key, p.Value)
	})
}
