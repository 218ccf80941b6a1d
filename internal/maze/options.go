package maze

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"ndmaze/internal/core"
)

// MaxRestrictNew bounds the newness allowance given to spawned heads.
const MaxRestrictNew = 999999

// Schedule selects which head of the frontier moves next.
type Schedule int

const (
	// ScheduleFirst always advances the oldest head.
	ScheduleFirst Schedule = iota
	// ScheduleNewest always advances the most recently spawned head.
	ScheduleNewest
	// ScheduleRoundRobin lets every head take one step in turn.
	ScheduleRoundRobin
)

func (s Schedule) String() string {
	switch s {
	case ScheduleNewest:
		return "newest"
	case ScheduleRoundRobin:
		return "round-robin"
	default:
		return "first"
	}
}

// ParseSchedule maps a schedule name to its value.
func ParseSchedule(name string) (Schedule, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "first", "":
		return ScheduleFirst, true
	case "newest", "dfs":
		return ScheduleNewest, true
	case "round-robin", "roundrobin", "wave":
		return ScheduleRoundRobin, true
	}
	return ScheduleFirst, false
}

// Options holds the generation parameters. Every setter clamps its input to
// the valid range instead of rejecting it.
type Options struct {
	dims []int
	seed string

	density     float64
	branch      float64
	branchDeath float64
	twist       float64
	flow        float64
	loop        float64
	block       float64

	restrictNew int
	maxUseless  int
	schedule    Schedule
	targetGuard bool
}

// DefaultOptions returns the standard configuration.
func DefaultOptions() *Options {
	return &Options{
		dims:        []int{5, 5, 5},
		seed:        "1",
		density:     1,
		branch:      0.05,
		branchDeath: 0.01,
		twist:       0.5,
		flow:        0.7,
		loop:        0,
		block:       0,
		restrictNew: 1,
		maxUseless:  50000000,
		schedule:    ScheduleFirst,
		targetGuard: true,
	}
}

// NewOptions returns the defaults with the given extents and seed.
func NewOptions(dims []int, seed string) *Options {
	o := DefaultOptions()
	o.SetDimensions(dims...)
	o.SetSeed(seed)
	return o
}

// Clone returns an independent copy.
func (o *Options) Clone() *Options {
	c := *o
	c.dims = slices.Clone(o.dims)
	return &c
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Dimensions returns a copy of the extents.
func (o *Options) Dimensions() []int { return slices.Clone(o.dims) }

// NumDims returns the number of axes.
func (o *Options) NumDims() int { return len(o.dims) }

// SetDimensions stores the extents, raising short vectors to two axes and
// small extents to three.
func (o *Options) SetDimensions(dims ...int) { o.dims = core.ClampDims(dims) }

// Seed returns the seed string.
func (o *Options) Seed() string { return o.seed }

// SetSeed stores the seed string.
func (o *Options) SetSeed(seed string) { o.seed = seed }

// Density returns the target fraction of carvable cells to open.
func (o *Options) Density() float64 { return o.density }

// SetDensity stores the target open fraction, clamped to [0,1].
func (o *Options) SetDensity(v float64) { o.density = clamp01(v) }

// BranchProbability returns the per-trial chance of spawning a head.
func (o *Options) BranchProbability() float64 { return o.branch }

// SetBranchProbability stores the spawn chance, clamped to [0,1].
func (o *Options) SetBranchProbability(v float64) { o.branch = clamp01(v) }

// BranchDeathProbability returns the per-step chance of dropping a head.
func (o *Options) BranchDeathProbability() float64 { return o.branchDeath }

// SetBranchDeathProbability stores the death chance, clamped to [0,1].
func (o *Options) SetBranchDeathProbability(v float64) { o.branchDeath = clamp01(v) }

// TwistProbability returns the weight given to turning versus continuing.
func (o *Options) TwistProbability() float64 { return o.twist }

// SetTwistProbability stores the twist weight, clamped to [0,1].
func (o *Options) SetTwistProbability(v float64) { o.twist = clamp01(v) }

// FlowProbability returns the weight given to positive-axis moves.
func (o *Options) FlowProbability() float64 { return o.flow }

// SetFlowProbability stores the flow weight, clamped to [0,1].
func (o *Options) SetFlowProbability(v float64) { o.flow = clamp01(v) }

// LoopProbability returns the chance that the loop check is skipped for a
// candidate move.
func (o *Options) LoopProbability() float64 { return o.loop }

// SetLoopProbability stores the loop chance, clamped to [0,1].
func (o *Options) SetLoopProbability(v float64) { o.loop = clamp01(v) }

// BlockProbability returns the chance that a move completing a 2x2 open
// square is rejected.
func (o *Options) BlockProbability() float64 { return o.block }

// SetBlockProbability stores the block chance, clamped to [0,1].
func (o *Options) SetBlockProbability(v float64) { o.block = clamp01(v) }

// RestrictNewAmount returns the carve steps a new head takes before the loop
// and block checks apply to it.
func (o *Options) RestrictNewAmount() int { return o.restrictNew }

// SetRestrictNewAmount stores the newness allowance, clamped to
// [0, MaxRestrictNew].
func (o *Options) SetRestrictNewAmount(v int) {
	switch {
	case v < 0:
		v = 0
	case v > MaxRestrictNew:
		v = MaxRestrictNew
	}
	o.restrictNew = v
}

// MaxUseless returns the useless-step streak that ends generation early once
// the far corner is open.
func (o *Options) MaxUseless() int { return o.maxUseless }

// SetMaxUseless stores the streak cutoff, clamped to at least 1.
func (o *Options) SetMaxUseless(v int) {
	if v < 1 {
		v = 1
	}
	o.maxUseless = v
}

// Schedule returns the frontier scheduling strategy.
func (o *Options) Schedule() Schedule { return o.schedule }

// SetSchedule stores the scheduling strategy; unknown values fall back to
// ScheduleFirst.
func (o *Options) SetSchedule(s Schedule) {
	if s < ScheduleFirst || s > ScheduleRoundRobin {
		s = ScheduleFirst
	}
	o.schedule = s
}

// TargetGuard reports whether carving keeps the still-solid target at no
// more than one open neighbour.
func (o *Options) TargetGuard() bool { return o.targetGuard }

// SetTargetGuard toggles the target guard.
func (o *Options) SetTargetGuard(on bool) { o.targetGuard = on }

// ParseDims parses an extent list such as "9,9,9" or "9x9x9".
func ParseDims(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == 'x' || r == 'X' || r == ' '
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("parse dims %q: no extents", s)
	}
	dims := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("parse dims %q: %w", s, err)
		}
		dims[i] = v
	}
	return dims, nil
}

// FormatDims renders extents in the "9x9x9" form.
func FormatDims(dims []int) string {
	parts := make([]string, len(dims))
	for i, d := range dims {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, "x")
}

// FromMap builds options from the defaults and a flag-style key/value map.
func FromMap(cfg map[string]string) *Options {
	o := DefaultOptions()
	o.Apply(cfg)
	return o
}

// Apply overrides options from a flag-style key/value map. Unparseable
// values are ignored; parsed values pass through the clamping setters.
func (o *Options) Apply(cfg map[string]string) {
	if cfg == nil {
		return
	}
	if v, ok := cfg["dims"]; ok {
		if parsed, err := ParseDims(v); err == nil {
			o.SetDimensions(parsed...)
		}
	}
	if v, ok := cfg["seed"]; ok {
		o.SetSeed(v)
	}
	floats := map[string]func(float64){
		"density":      o.SetDensity,
		"branch":       o.SetBranchProbability,
		"branch_death": o.SetBranchDeathProbability,
		"twist":        o.SetTwistProbability,
		"flow":         o.SetFlowProbability,
		"loop":         o.SetLoopProbability,
		"block":        o.SetBlockProbability,
	}
	for key, set := range floats {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				set(parsed)
			}
		}
	}
	if v, ok := cfg["restrict_new"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			o.SetRestrictNewAmount(parsed)
		}
	}
	if v, ok := cfg["max_useless"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			o.SetMaxUseless(parsed)
		}
	}
	if v, ok := cfg["schedule"]; ok {
		if parsed, ok := ParseSchedule(v); ok {
			o.SetSchedule(parsed)
		}
	}
	if v, ok := cfg["target_guard"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			o.SetTargetGuard(parsed)
		}
	}
}
