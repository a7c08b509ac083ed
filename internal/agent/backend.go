// Package agent implements the study-coach agent loop. Tool selection is
// delegated to a remote chat-completions backend; this package only defines
// the tool schemas, executes whichever tools the model requests, and
// collects the final answer together with an ordered invocation trace.
package agent

import (
	"context"

	"github.com/studycoach/studycoach/internal/tools"
)

// ToolCall is a single tool invocation request from the model.
type ToolCall struct {
	ID    string
	Name  string
	Input map[string]interface{}
}

// ToolResult is the outcome of executing one requested tool.
type ToolResult struct {
	ID      string
	Name    string
	Content string
	IsError bool
}

// Turn is one model response: assistant text plus any requested tool calls.
// Done is true when the model signalled it has finished (no more tools).
type Turn struct {
	Text      string
	ToolCalls []ToolCall
	Done      bool
}

// Backend is the remote reasoning service behind the agent. It is the one
// swappable dependency: production backends wrap Groq or Anthropic, tests
// use a scripted stub.
type Backend interface {
	// NewSession starts a conversation with the given system prompt and
	// tool schemas. Sessions are single-goroutine and last one invocation.
	NewSession(system string, ts []tools.Tool) (Session, error)
	// Name identifies the provider ("groq", "anthropic", ...).
	Name() string
	// Model identifies the model the backend targets.
	Model() string
}

// Session is one in-flight conversation with the backend.
type Session interface {
	// Send appends a user message and returns the model's next turn.
	Send(ctx context.Context, text string) (*Turn, error)
	// SendToolResults appends tool results for the previous turn's calls
	// and returns the model's next turn.
	SendToolResults(ctx context.Context, results []ToolResult) (*Turn, error)
}
