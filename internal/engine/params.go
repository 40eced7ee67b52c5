package engine

import (
	"math"
	"strconv"
	"time"

	"lifegrid/internal/core"
)

const (
	paramDensity    = "density"
	paramIntervalMS = "interval_ms"
)

// Parameters reports the tunables shown on the HUD along with read-only grid
// information.
func (e *Engine) Parameters() core.ParameterSnapshot {
	size := e.life.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Controls",
			Params: []core.Parameter{
				floatParam(paramDensity, "Density", e.density),
				intParam(paramIntervalMS, "Interval (ms)", int(e.Interval()/time.Millisecond)),
			},
		},
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("cols", "Columns", size.W),
				intParam("rows", "Rows", size.H),
				intParam("cell", "Cell size", e.cellSize),
				int64Param("generation", "Generation", int64(e.life.Generation())),
			},
		},
	}}
}

// ParameterControls lists the parameters the HUD may adjust.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: paramDensity, Label: "Density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: paramIntervalMS, Label: "Interval ms", Type: core.ParamTypeInt, Step: 10, Min: 10, Max: 2000, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a float tunable. It reports false for unknown
// keys and NaN values.
func (e *Engine) SetFloatParameter(key string, value float64) bool {
	if math.IsNaN(value) {
		return false
	}
	switch key {
	case paramDensity:
		e.SetDensity(value)
		return true
	case paramIntervalMS:
		e.SetInterval(time.Duration(value * float64(time.Millisecond)))
		return true
	}
	return false
}

// SetIntParameter updates an integer tunable. It reports false for unknown
// keys.
func (e *Engine) SetIntParameter(key string, value int) bool {
	switch key {
	case paramIntervalMS:
		e.SetInterval(time.Duration(value) * time.Millisecond)
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
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
