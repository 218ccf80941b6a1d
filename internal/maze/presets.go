package maze

import "sort"

// Factory builds a fresh Options value for a named preset.
type Factory func() *Options

var presets = map[string]Factory{}

// Register adds a preset factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	presets[name] = f
}

// Presets returns the registered preset names in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset builds the named preset.
func Preset(name string) (*Options, bool) {
	f, ok := presets[name]
	if !ok {
		return nil, false
	}
	return f(), true
}

func init() {
	Register("classic", func() *Options {
		o := DefaultOptions()
		o.SetDimensions(11, 11, 11)
		return o
	})
	Register("corridors", func() *Options {
		o := DefaultOptions()
		o.SetDimensions(15, 15, 15)
		o.SetTwistProbability(0.15)
		o.SetBranchProbability(0.02)
		o.SetBlockProbability(1)
		o.SetRestrictNewAmount(0)
		return o
	})
	Register("braided", func() *Options {
		o := DefaultOptions()
		o.SetDimensions(11, 11, 11)
		o.SetLoopProbability(0.08)
		o.SetBlockProbability(1)
		o.SetMaxUseless(20000)
		return o
	})
	Register("caves", func() *Options {
		o := DefaultOptions()
		o.SetDimensions(13, 13, 13)
		o.SetDensity(0.6)
		o.SetBranchProbability(0.25)
		o.SetTwistProbability(0.8)
		o.SetLoopProbability(0.3)
		o.SetRestrictNewAmount(3)
		o.SetMaxUseless(5000)
		return o
	})
	Register("wave", func() *Options {
		o := DefaultOptions()
		o.SetDimensions(11, 11, 11)
		o.SetBranchProbability(0.15)
		o.SetBranchDeathProbability(0.05)
		o.SetSchedule(ScheduleRoundRobin)
		return o
	})
	Register("tesseract", func() *Options {
		o := DefaultOptions()
		o.SetDimensions(7, 7, 7, 7)
		o.SetBlockProbability(1)
		return o
	})
	Register("flat", func() *Options {
		o := DefaultOptions()
		o.SetDimensions(31, 31)
		o.SetFlowProbability(0.5)
		o.SetBlockProbability(1)
		o.SetRestrictNewAmount(0)
		return o
	})
}
