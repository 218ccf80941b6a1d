package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurveyMatchesAcrossWorkerCounts(t *testing.T) {
	base := NewOptions([]int{11, 11}, "")
	base.SetBranchProbability(0.1)
	seeds := SeedRange("s", 8)

	serial := Survey(base, seeds, 1)
	parallel := Survey(base, seeds, 4)
	require.Len(t, serial, len(seeds))
	assert.Equal(t, serial, parallel)
	for i, r := range serial {
		assert.Equal(t, seeds[i], r.Seed)
		assert.True(t, r.Solvable, "seed %s", r.Seed)
		assert.Positive(t, r.PathLength)
	}
	assert.Equal(t, "", base.Seed(), "survey must not mutate the base options")
}

func TestSummarize(t *testing.T) {
	results := []SurveyResult{
		{OpenFraction: 0.5, PathLength: 10, Solvable: true, DeadEnds: 2},
		{OpenFraction: 0.3, PathLength: 20, Solvable: true, DeadEnds: 4, Stats: Stats{Rescued: true}},
		{OpenFraction: 0.1, Solvable: false},
	}
	sum := Summarize(results)
	assert.Equal(t, 3, sum.Mazes)
	assert.Equal(t, 2, sum.Solvable)
	assert.Equal(t, 1, sum.Rescued)
	assert.Equal(t, 20, sum.MaxPath)
	assert.InDelta(t, 15, sum.MeanPath, 1e-12)
	assert.InDelta(t, 0.3, sum.MeanOpen, 1e-12)
	assert.InDelta(t, 2, sum.MeanDeadEnds, 1e-12)

	assert.Equal(t, SurveySummary{}, Summarize(nil))
	assert.Empty(t, SeedRange("x", -2))
}
