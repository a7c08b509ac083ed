package tools

import (
	"fmt"

	"github.com/studycoach/studycoach/internal/syllabus"
)

// All returns the full study-coach tool set for a catalog.
func All(cat *syllabus.Catalog) []Tool {
	return []Tool{
		OutlineTool(cat),
		ScheduleTool(cat),
		PracticeTool(cat),
	}
}

// ValidateUnique returns an error if two tools share a name.
func ValidateUnique(ts []Tool) error {
	seen := make(map[string]bool, len(ts))
	for _, t := range ts {
		if seen[t.Name] {
			return fmt.Errorf("duplicate tool name: %s", t.Name)
		}
		seen[t.Name] = true
	}
	return nil
}
