package tools

import (
	"encoding/json"
	"strconv"
	"strings"
)

// stringArg extracts a string argument, trimmed. Missing or non-string
// values yield "".
func stringArg(input map[string]interface{}, key string) string {
	v, ok := input[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}

// numberArg extracts a numeric argument. Models are inconsistent about
// whether numbers arrive as JSON numbers or quoted strings, so both forms
// are accepted. Values outside [min, max] are clamped rather than rejected.
func numberArg(input map[string]interface{}, key string, def, min, max float64) float64 {
	n := def
	switch v := input[key].(type) {
	case float64:
		n = v
	case int:
		n = float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			n = f
		}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			n = f
		}
	}
	if n < min {
		n = min
	}
	if n > max {
		n = max
	}
	return n
}

// splitList splits a comma-separated list into normalized non-empty items.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.ToLower(strings.TrimSpace(part)); p != "" {
			out = append(out, p)
		}
	}
	return out
}
