package app

import (
	"strconv"

	"torus-life/internal/core"
)

const paramRate = "fps"

// MaxRate bounds the generations-per-second control.
const MaxRate = 60

var rateControl = core.ParameterControl{
	Key:    paramRate,
	Label:  "Generations/s",
	Step:   1,
	Min:    1,
	Max:    MaxRate,
	HasMin: true,
	HasMax: true,
}

// Name returns the simulation identifier shown on the HUD.
func (s *Session) Name() string { return s.engine.Name() }

// Size returns the grid dimensions.
func (s *Session) Size() core.Size { return s.engine.Size() }

// Parameters reports the engine's values plus the host cadence.
func (s *Session) Parameters() core.ParameterSnapshot {
	snap := s.engine.Parameters()
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "Host",
		Params: []core.Parameter{
			{Key: paramRate, Label: rateControl.Label, Type: core.ParamTypeInt, Value: strconv.Itoa(s.rate)},
			{Key: "paused", Label: "Paused", Type: core.ParamTypeBool, Value: strconv.FormatBool(s.paused)},
		},
	})
	return snap
}

// ParameterControls lists the engine's controls followed by the rate.
func (s *Session) ParameterControls() []core.ParameterControl {
	return append(s.engine.ParameterControls(), rateControl)
}

// SetIntParameter routes HUD adjustments to the cadence or the engine.
func (s *Session) SetIntParameter(key string, value int) bool {
	if key != paramRate {
		return s.engine.SetIntParameter(key, value)
	}
	if value < rateControl.Min || value > rateControl.Max {
		return false
	}
	s.SetRate(value)
	return true
}
