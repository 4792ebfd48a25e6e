package life

import (
	"strconv"

	"bitlife/pkg/core"
)

const maxDimension = 1024

// Parameters reports the universe's dimensions, seeding options and counters.
func (u *Universe) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", u.width),
				intParam("h", "Height", u.height),
				intParam("population", "Population", u.Population()),
				{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.FormatUint(u.generation, 10)},
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				stringParam("fill", "Fill", string(u.cfg.Fill)),
				stringParam("resize_fill", "Resize fill", string(u.cfg.ResizeFill)),
				{Key: "legacy_set_cells", Label: "Legacy set cells", Type: core.ParamTypeBool, Value: strconv.FormatBool(u.cfg.LegacySetCells)},
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(u.cfg.Seed, 10)},
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls exposes the grid dimensions to the HUD.
func (u *Universe) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "w", Label: "Width", Step: 8, Min: 1, Max: maxDimension, HasMin: true, HasMax: true},
		{Key: "h", Label: "Height", Step: 8, Min: 1, Max: maxDimension, HasMin: true, HasMax: true},
	}
}

// SetIntParameter resizes the grid for the "w" and "h" keys. Resizing
// reseeds the grid with Config.ResizeFill.
func (u *Universe) SetIntParameter(key string, value int) bool {
	if value > maxDimension {
		return false
	}
	switch key {
	case "w":
		return u.SetWidth(value) == nil
	case "h":
		return u.SetHeight(value) == nil
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

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
