package core

// ParamType tells the HUD how to parse and step a parameter value.
type ParamType string

const (
	ParamTypeInt   ParamType = "int"
	ParamTypeFloat ParamType = "float"
)

// Parameter is one named value in its formatted form.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup is a titled list of parameters.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot is the full set of parameters at one instant.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup returns the parameter with the given key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterControl describes a parameter the HUD may step up and down. A
// non-positive Step means the type's default step; Min and Max only apply
// when the matching Has flag is set.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType
	Step  float64

	Min, Max       float64
	HasMin, HasMax bool
}

type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}
