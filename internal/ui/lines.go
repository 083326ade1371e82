package ui

import (
	"fmt"
	"strings"

	"torus-life/internal/core"
)

// Lines formats a parameter snapshot as the text rows of the HUD panel.
func Lines(title string, snap core.ParameterSnapshot) []string {
	lines := []string{title}
	for _, group := range snap.Groups {
		lines = append(lines, "", strings.ToUpper(group.Name))
		for _, p := range group.Params {
			label := p.Label
			if label == "" {
				label = p.Key
			}
			lines = append(lines, fmt.Sprintf("%-8s %s", label, p.Value))
		}
	}
	return lines
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Stats"
	}
	return sim.Name() + " stats"
}
