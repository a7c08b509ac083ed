package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/studycoach/studycoach/internal/syllabus"
)

// PracticeTool suggests hands-on practice tasks for a module, optionally
// narrowed to the student's focus topics
func PracticeTool(cat *syllabus.Catalog) Tool {
	return Tool{
		Name:        "suggest_practice_tasks",
		Description: "Suggest hands-on practice tasks for a module. Pass focus_topics to narrow the suggestions to the student's weak areas.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"module_name": map[string]interface{}{
					"type":        "string",
					"description": "The name of the study module",
				},
				"focus_topics": map[string]interface{}{
					"type":        "string",
					"description": "Comma-separated topics to focus on (optional)",
				},
			},
			"required": []string{"module_name"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			module := stringArg(input, "module_name")
			module, note := resolveModule(module)

			topics, ok := cat.Topics(module)
			if !ok {
				return unknownModuleText(cat, module), nil
			}

			focus := splitList(stringArg(input, "focus_topics"))

			lines := []string{note + fmt.Sprintf("Practice tasks for '%s':", module)}
			matched := false
			for _, topic := range topics {
				if len(focus) > 0 && !matchesAny(topic, focus) {
					continue
				}
				tasks := cat.Tasks(topic)
				if len(tasks) == 0 {
					continue
				}
				matched = true
				lines = append(lines, "* "+topic)
				for _, t := range tasks {
					lines = append(lines, "  - "+t)
				}
				lines = append(lines, "")
			}

			if !matched {
				return fmt.Sprintf("No specific practice tasks found in '%s' for the given focus topics.", module), nil
			}
			return strings.TrimRight(strings.Join(lines, "\n"), "\n"), nil
		},
	}
}

func matchesAny(topic string, focus []string) bool {
	lower := strings.ToLower(topic)
	for _, f := range focus {
		if strings.Contains(lower, f) {
			return true
		}
	}
	return false
}
