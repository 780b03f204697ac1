package snake

import (
	"strconv"

	"gridsnake/internal/core"
)

// Parameters describes the board constants and live counters for the HUD.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	c := s.cfg
	st := s.stats
	groups := []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				intParam("size", "Grid size", c.Size),
				intParam("start_x", "Start X", c.StartX),
				intParam("start_y", "Start Y", c.StartY),
				intParam("start_len", "Starting length", c.StartLength),
				stringParam("start_dir", "Starting direction", c.StartDir.String()),
				intParam("growth", "Growth per food", c.Growth),
				int64Param("seed", "Seed", c.Seed),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				intParam("tick", "Tick", st.Ticks),
				intParam("length", "Length", s.snake.Len()),
				intParam("best", "Best length", st.BestLength),
				intParam("eaten", "Food eaten", st.FoodEaten),
				intParam("resets", "Resets", st.Resets),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
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

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
