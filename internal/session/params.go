package session

import (
	"strconv"

	"minefield/internal/core"
	"minefield/internal/field"
)

// Parameter keys exposed through Parameters.
const (
	ParamWidth     = "w"
	ParamHeight    = "h"
	ParamMines     = "mines"
	ParamOutcome   = "outcome"
	ParamFlags     = "flags_remaining"
	ParamFlagsInit = "flags_initial"
	ParamRevealed  = "revealed"
)

// Parameters returns a read-only snapshot of the field shape and game status
// for status displays.
func (s *Session) Parameters() core.ParameterSnapshot {
	size := s.grid.Size()
	groups := []core.ParameterGroup{
		{
			Name: "Field",
			Params: []core.Parameter{
				intParam(ParamWidth, "Width", size.W),
				intParam(ParamHeight, "Height", size.H),
				intParam(ParamMines, "Mines", s.grid.MineCount()),
			},
		},
		{
			Name: "Status",
			Params: []core.Parameter{
				stringParam(ParamOutcome, "Outcome", s.outcome.String()),
				intParam(ParamFlags, "Flags remaining", s.flags.Remaining),
				intParam(ParamFlagsInit, "Flags", s.flags.Initial),
				intParam(ParamRevealed, "Revealed", s.revealedCount()),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func (s *Session) revealedCount() int {
	n := 0
	s.grid.Each(func(_ core.Coord, cell field.Cell) {
		if cell.Visibility == field.Revealed {
			n++
		}
	})
	return n
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
