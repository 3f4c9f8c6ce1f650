package life

import (
	"strconv"

	"torus-life/internal/core"
)

const (
	paramDensity = "density"

	// MaxDensityDivisor bounds the HUD control for the seeding divisor.
	MaxDensityDivisor = 64
)

// Parameters reports the grid configuration and run statistics.
func (e *Engine) Parameters() core.ParameterSnapshot {
	st := e.stats
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("size", "Map size", e.mapSize),
				intParam(paramDensity, "Density divisor", e.densityDivisor),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				intParam("generation", "Generation", st.Generations),
				intParam("population", "Population", st.Population),
				intParam("births", "Births", st.Births),
				intParam("deaths", "Deaths", st.Deaths),
				boolParam("initial", "At seed", e.isInitial),
			},
		},
	}}
}

// ParameterControls lists the values the HUD may adjust.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key:    paramDensity,
		Label:  "Density divisor",
		Step:   1,
		Min:    0,
		Max:    MaxDensityDivisor,
		HasMin: true,
		HasMax: true,
	}}
}

// SetIntParameter applies a HUD adjustment. Unknown keys are rejected.
func (e *Engine) SetIntParameter(key string, value int) bool {
	switch key {
	case paramDensity:
		if value < 0 || value > MaxDensityDivisor {
			return false
		}
		e.SetDensityDivisor(value)
		return true
	default:
		return false
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
