package maze

import (
	"strconv"
	"sync"
)

// SurveyResult captures measurements of one generated maze.
type SurveyResult struct {
	Seed string
	// Stats is the generator's own report for the run.
	Stats Stats
	// OpenFraction is the share of interior cells left open.
	OpenFraction float64
	// PathLength is the shortest entrance-to-exit path in steps, 0 when
	// unsolvable.
	PathLength int
	Solvable   bool
	DeadEnds   int
}

// SurveySummary aggregates a batch of survey results.
type SurveySummary struct {
	Mazes        int
	Solvable     int
	MeanOpen     float64
	MeanPath     float64
	MaxPath      int
	MeanDeadEnds float64
	Rescued      int
}

// SeedRange returns n seeds of the form prefix0, prefix1, ...
func SeedRange(prefix string, n int) []string {
	if n < 0 {
		n = 0
	}
	seeds := make([]string, n)
	for i := range seeds {
		seeds[i] = prefix + strconv.Itoa(i)
	}
	return seeds
}

// Measure generates one maze from opts and measures it.
func Measure(opts *Options) SurveyResult {
	g, stats := New(opts)
	res := SurveyResult{
		Seed:         opts.Seed(),
		Stats:        stats,
		OpenFraction: OpenFraction(g),
		DeadEnds:     DeadEnds(g),
	}
	if exit, ok := Exit(g); ok {
		res.PathLength, res.Solvable = PathLength(g, Entrance(g), exit)
	}
	return res
}

// Survey generates one maze per seed from base, running at most workers
// generations at once. Results are returned in seed order.
func Survey(base *Options, seeds []string, workers int) []SurveyResult {
	if workers <= 0 {
		workers = 1
	}
	results := make([]SurveyResult, len(seeds))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for idx, seed := range seeds {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, s string) {
			defer wg.Done()
			opts := base.Clone()
			opts.SetSeed(s)
			results[i] = Measure(opts)
			<-sem
		}(idx, seed)
	}

	wg.Wait()
	return results
}

// Summarize aggregates survey results.
func Summarize(results []SurveyResult) SurveySummary {
	sum := SurveySummary{Mazes: len(results)}
	if len(results) == 0 {
		return sum
	}
	var open, path, dead float64
	for _, r := range results {
		open += r.OpenFraction
		dead += float64(r.DeadEnds)
		if r.Stats.Rescued {
			sum.Rescued++
		}
		if !r.Solvable {
			continue
		}
		sum.Solvable++
		path += float64(r.PathLength)
		if r.PathLength > sum.MaxPath {
			sum.MaxPath = r.PathLength
		}
	}
	n := float64(len(results))
	sum.MeanOpen = open / n
	sum.MeanDeadEnds = dead / n
	if sum.Solvable > 0 {
		sum.MeanPath = path / float64(sum.Solvable)
	}
	return sum
}
