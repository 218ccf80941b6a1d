package maze

import (
	"strconv"

	"ndmaze/internal/core"
)

// Parameters exposes the options for the HUD and the command-line tools.
func (o *Options) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Maze",
			Params: []core.Parameter{
				{Key: "dims", Label: "Extents", Type: core.ParamTypeString, Value: FormatDims(o.dims)},
				{Key: "seed", Label: "Seed", Type: core.ParamTypeString, Value: o.seed},
				{Key: "schedule", Label: "Schedule", Type: core.ParamTypeString, Value: o.schedule.String()},
			},
		},
		{
			Name: "Carving",
			Params: []core.Parameter{
				floatParam("density", "Density", o.density),
				floatParam("branch", "Branch chance", o.branch),
				floatParam("branch_death", "Branch death chance", o.branchDeath),
				floatParam("twist", "Twist", o.twist),
				floatParam("flow", "Flow", o.flow),
			},
		},
		{
			Name: "Checks",
			Params: []core.Parameter{
				floatParam("loop", "Loop chance", o.loop),
				floatParam("block", "Block chance", o.block),
				intParam("restrict_new", "Restrict new", o.restrictNew),
				intParam("max_useless", "Max useless streak", o.maxUseless),
				{Key: "target_guard", Label: "Target guard", Type: core.ParamTypeString, Value: strconv.FormatBool(o.targetGuard)},
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable options.
func (o *Options) ParameterControls() []core.ParameterControl {
	prob := func(key, label string) core.ParameterControl {
		return core.ParameterControl{
			Key: key, Label: label, Type: core.ParamTypeFloat,
			Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true,
		}
	}
	return []core.ParameterControl{
		prob("density", "Density"),
		prob("branch", "Branch chance"),
		prob("branch_death", "Branch death"),
		prob("twist", "Twist"),
		prob("flow", "Flow"),
		prob("loop", "Loop chance"),
		prob("block", "Block chance"),
		{
			Key: "restrict_new", Label: "Restrict new", Type: core.ParamTypeInt,
			Step: 1, Min: 0, Max: MaxRestrictNew, HasMin: true, HasMax: true,
		},
	}
}

// SetFloatParameter updates a probability by key.
func (o *Options) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "density":
		o.SetDensity(value)
	case "branch":
		o.SetBranchProbability(value)
	case "branch_death":
		o.SetBranchDeathProbability(value)
	case "twist":
		o.SetTwistProbability(value)
	case "flow":
		o.SetFlowProbability(value)
	case "loop":
		o.SetLoopProbability(value)
	case "block":
		o.SetBlockProbability(value)
	default:
		return false
	}
	return true
}

// SetIntParameter updates a counter by key.
func (o *Options) SetIntParameter(key string, value int) bool {
	switch key {
	case "restrict_new":
		o.SetRestrictNewAmount(value)
	case "max_useless":
		o.SetMaxUseless(value)
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
