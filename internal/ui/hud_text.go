package ui

import (
	"fmt"

	"gridsnake/internal/core"
)

// Lines flattens a parameter snapshot into the text rows shown on the HUD.
func Lines(title string, snap core.ParameterSnapshot) []string {
	lines := []string{title}
	for _, g := range snap.Groups {
		lines = append(lines, "", "["+g.Name+"]")
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("%-18s %s", p.Label, p.Value))
		}
	}
	return lines
}

// Flags renders the mode indicators shown under the parameter list.
func Flags(paused, auto bool) string {
	s := "running"
	if paused {
		s = "paused"
	}
	if auto {
		s += " / autopilot"
	}
	return s
}
