package core

// ParamType is the value kind of a Parameter.
type ParamType string

// ParamTypeString values are read-only, e.g. seeds and extents.
const (
	ParamTypeInt    ParamType = "int"
	ParamTypeFloat  ParamType = "float"
	ParamTypeString ParamType = "string"
)

// Parameter is one named value of a snapshot, already formatted as text.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup is a titled run of parameters.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot is a point-in-time view of a component's settings, used
// by the HUD and the command-line tools.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup returns the parameter with the given key from any group.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, group := range s.Groups {
		for _, p := range group.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// Each calls fn for every parameter in group order.
func (s ParameterSnapshot) Each(fn func(group string, p Parameter)) {
	for _, group := range s.Groups {
		for _, p := range group.Params {
			fn(group.Name, p)
		}
	}
}

// ParameterControl marks a numeric parameter as steppable with +/- buttons.
// Min and Max only apply when the matching Has flag is set.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType
	Step  float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter and FloatParameterSetter report false for keys they do
// not own.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}
