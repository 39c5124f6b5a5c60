package prompt

import (
	_ "embed"
	"strings"
)

var (
	//go:embed template/planner.txt
	plannerRaw string

	//go:embed template/reviser.txt
	reviserRaw string
)

// PromptSet holds loaded prompt content.
type PromptSet struct {
	Planner string
	Reviser string
}

// LoadPromptSet returns a PromptSet with trimmed prompt strings.
// This is safe to call concurrently; the embed is compile-time, and trimming is cheap.
func LoadPromptSet() PromptSet {
	return PromptSet{
		Planner: strings.TrimSpace(plannerRaw),
		Reviser: strings.TrimSpace(reviserRaw),
	}
}
