package ui

import (
	"slices"
	"testing"

	"torus-life/internal/core"
)

func TestLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Generation", Params: []core.Parameter{
			{Key: "generation", Label: "Gen", Value: "12"},
			{Key: "population", Value: "40"},
		}},
	}}

	got := Lines("life stats", snap)
	want := []string{
		"life stats",
		"",
		"GENERATION",
		"Gen      12",
		"population 40",
	}
	if !slices.Equal(got, want) {
		t.Fatalf("Lines = %q, expected %q", got, want)
	}
}

func TestLinesEmptySnapshot(t *testing.T) {
	got := Lines("Stats", core.ParameterSnapshot{})
	if !slices.Equal(got, []string{"Stats"}) {
		t.Fatalf("Lines = %q", got)
	}
}
