package render

import (
	"regexp"
	"strings"
)

// Ingredients and instructions arrive as free-text blobs; these helpers
// recover list structure by delimiter splitting. This is lossy best-effort
// recovery, isolated here so a structured backend field could replace it
// without touching callers.

var (
	ingredientSep  = regexp.MustCompile(`[,|\n]`)
	instructionSep = regexp.MustCompile(`\d+\.|\n`)
)

// SplitIngredients splits a free-text ingredient blob on commas, pipes and
// newlines, trimming whitespace and discarding empty fragments.
func SplitIngredients(s string) []string {
	var items []string
	for _, part := range ingredientSep.Split(s, -1) {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

// Step is one numbered instruction step.
type Step struct {
	Number int
	Text   string
}

// SplitInstructions splits a free-text instruction blob on "<number>."
// markers and newlines, then renumbers the surviving steps sequentially
// from 1 regardless of the original numbering.
func SplitInstructions(s string) []Step {
	var steps []Step
	for _, part := range instructionSep.Split(s, -1) {
		if part = strings.TrimSpace(part); part != "" {
			steps = append(steps, Step{Number: len(steps) + 1, Text: part})
		}
	}
	return steps
}
