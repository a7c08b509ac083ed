package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/studycoach/studycoach/internal/syllabus"
)

// OutlineTool returns the topic outline for a syllabus module
func OutlineTool(cat *syllabus.Catalog) Tool {
	return Tool{
		Name:        "get_module_outline",
		Description: "Get the ordered list of topics covered by a study module. Use this first to understand what the student needs to study.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"module_name": map[string]interface{}{
					"type":        "string",
					"description": "The name of the study module, e.g. 'generative ai'",
				},
			},
			"required": []string{"module_name"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			module, note := resolveModule(stringArg(input, "module_name"))

			topics, ok := cat.Topics(module)
			if !ok {
				return unknownModuleText(cat, module), nil
			}

			lines := []string{note + fmt.Sprintf("Topics for %s:", module)}
			for _, t := range topics {
				lines = append(lines, "- "+t)
			}
			return strings.Join(lines, "\n"), nil
		},
	}
}

// resolveModule falls back to the default module when none is given. The
// fallback is noted in the output so the model knows what happened.
func resolveModule(module string) (string, string) {
	if module != "" {
		return module, ""
	}
	return syllabus.DefaultModule, fmt.Sprintf("No module specified, assuming '%s'.\n", syllabus.DefaultModule)
}

func unknownModuleText(cat *syllabus.Catalog, module string) string {
	return fmt.Sprintf("No module named '%s' found. Available modules: %s.",
		module, strings.Join(cat.Modules(), ", "))
}
