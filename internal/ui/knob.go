package ui

import (
	"math"
	"strconv"

	"ndmaze/internal/core"
)

// knob is one adjustable parameter row of the HUD together with the value
// last read from the parameter snapshot.
type knob struct {
	ctrl  core.ParameterControl
	value float64
	known bool
}

func knobsFor(target any) []knob {
	provider, ok := target.(core.ParameterControlsProvider)
	if !ok {
		return nil
	}
	ctrls := provider.ParameterControls()
	knobs := make([]knob, len(ctrls))
	for i, c := range ctrls {
		knobs[i] = knob{ctrl: c}
	}
	return knobs
}

// sync reads the knob's value from snap.
func (k *knob) sync(snap core.ParameterSnapshot) {
	k.known = false
	p, ok := snap.Lookup(k.ctrl.Key)
	if !ok {
		return
	}
	switch k.ctrl.Type {
	case core.ParamTypeInt:
		v, err := strconv.Atoi(p.Value)
		if err != nil {
			return
		}
		k.value = float64(v)
	case core.ParamTypeFloat:
		v, err := strconv.ParseFloat(p.Value, 64)
		if err != nil {
			return
		}
		k.value = v
	default:
		return
	}
	k.known = true
}

func (k knob) step() float64 {
	switch {
	case k.ctrl.Step > 0 && k.ctrl.Type == core.ParamTypeInt:
		return math.Max(1, math.Round(k.ctrl.Step))
	case k.ctrl.Step > 0:
		return k.ctrl.Step
	case k.ctrl.Type == core.ParamTypeInt:
		return 1
	default:
		return 0.05
	}
}

// next returns the value one step in direction dir, clamped to the
// control's bounds. ok is false when the value would not change.
func (k knob) next(dir int) (float64, bool) {
	if !k.known || dir == 0 {
		return k.value, false
	}
	v := k.value + float64(dir)*k.step()
	if k.ctrl.HasMin {
		v = math.Max(v, k.ctrl.Min)
	}
	if k.ctrl.HasMax {
		v = math.Min(v, k.ctrl.Max)
	}
	if k.ctrl.Type == core.ParamTypeInt {
		v = math.Round(v)
	}
	return v, math.Abs(v-k.value) > 1e-9
}

// nudge moves the parameter one step on target. It reports whether the
// target accepted the new value.
func (k *knob) nudge(target any, dir int) bool {
	v, ok := k.next(dir)
	if !ok {
		return false
	}
	switch k.ctrl.Type {
	case core.ParamTypeInt:
		s, ok := target.(core.IntParameterSetter)
		if !ok || !s.SetIntParameter(k.ctrl.Key, int(v)) {
			return false
		}
	case core.ParamTypeFloat:
		s, ok := target.(core.FloatParameterSetter)
		if !ok || !s.SetFloatParameter(k.ctrl.Key, v) {
			return false
		}
	default:
		return false
	}
	k.value = v
	return true
}

// text formats the value with a precision that matches the step.
func (k knob) text() string {
	if !k.known {
		return "--"
	}
	if k.ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(k.value))
	}
	prec := 1
	switch s := k.step(); {
	case s < 0.001:
		prec = 4
	case s < 0.01:
		prec = 3
	case s < 0.1:
		prec = 2
	}
	return strconv.FormatFloat(k.value, 'f', prec, 64)
}
