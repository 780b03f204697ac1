package ui

import (
	"slices"
	"testing"

	"gridsnake/internal/core"
)

func TestLinesListsGroupsInOrder(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Board", Params: []core.Parameter{{Label: "Grid size", Value: "15"}}},
		{Name: "Run", Params: []core.Parameter{{Label: "Length", Value: "3"}}},
	}}
	got := Lines("snake", snap)
	want := []string{
		"snake",
		"",
		"[Board]",
		"Grid size          15",
		"",
		"[Run]",
		"Length             3",
	}
	if !slices.Equal(got, want) {
		t.Fatalf("Lines =\n%q\nwant\n%q", got, want)
	}
}

func TestFlags(t *testing.T) {
	if got := Flags(true, true); got != "paused / autopilot" {
		t.Fatalf("Flags(true, true) = %q", got)
	}
	if got := Flags(false, false); got != "running" {
		t.Fatalf("Flags(false, false) = %q", got)
	}
}
