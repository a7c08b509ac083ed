// Package tools defines the Tool type and the canned study-coach tools the
// agent exposes to the LLM. Tools are stateless text formatters over the
// syllabus catalog: no I/O, no network, and they never return an error for
// well-formed string input.
package tools

import "context"

// Tool represents a callable function the LLM can invoke
type Tool struct {
	Name        string
	Description string
	InputSchema map[string]interface{}
	Execute     func(ctx context.Context, input map[string]interface{}) (string, error)
}
