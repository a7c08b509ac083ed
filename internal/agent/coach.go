package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/studycoach/studycoach/internal/tools"
)

const finalAnswerNudge = "You have enough information. Provide your final study advice now without calling any more tools."

// Invocation is one completed tool call, in execution order.
type Invocation struct {
	Tool   string                 `json:"tool"`
	Input  map[string]interface{} `json:"input"`
	Output string                 `json:"output"`
}

// Result is the outcome of one agent invocation. It is ephemeral: rendered
// once and discarded.
type Result struct {
	Answer    string
	Reasoning string
	Trace     []Invocation
}

// Coach drives the tool-calling loop: the backend decides which tools to
// call, Coach executes them and feeds the results back until the backend
// produces a final answer.
type Coach struct {
	backend Backend
	tools   []tools.Tool
	maxIter int
}

// NewCoach creates an agent over a backend and a tool set. Tool names must
// be unique.
func NewCoach(backend Backend, ts []tools.Tool, maxIter int) (*Coach, error) {
	if err := tools.ValidateUnique(ts); err != nil {
		return nil, err
	}
	if maxIter <= 0 {
		maxIter = 10
	}
	return &Coach{backend: backend, tools: ts, maxIter: maxIter}, nil
}

// Backend exposes the underlying reasoning backend, for health reporting.
func (c *Coach) Backend() Backend { return c.backend }

// Run executes one agent invocation for a user goal. Backend failures
// surface as a single error; there is no retry.
func (c *Coach) Run(ctx context.Context, systemPrompt, goal string) (*Result, error) {
	sess, err := c.backend.NewSession(systemPrompt, c.tools)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	var trace []Invocation
	var reasoning []string

	turn, err := sess.Send(ctx, goal)
	if err != nil {
		return nil, fmt.Errorf("agent failed: %w", err)
	}

	for iter := 0; iter < c.maxIter; iter++ {
		log.Debug().
			Int("iter", iter).
			Bool("done", turn.Done).
			Int("tool_calls", len(turn.ToolCalls)).
			Str("text_preview", preview(turn.Text)).
			Msg("agent iteration")

		if turn.Done || len(turn.ToolCalls) == 0 {
			return &Result{
				Answer:    turn.Text,
				Reasoning: strings.Join(reasoning, "\n"),
				Trace:     trace,
			}, nil
		}

		// Text emitted alongside tool calls is the model thinking out
		// loud; keep it as the reasoning summary.
		if t := strings.TrimSpace(turn.Text); t != "" {
			reasoning = append(reasoning, t)
		}

		results := make([]ToolResult, 0, len(turn.ToolCalls))
		for _, tc := range turn.ToolCalls {
			output, execErr := c.execute(ctx, tc)
			if execErr != nil {
				log.Warn().Err(execErr).Str("tool", tc.Name).Msg("tool execution error")
				results = append(results, ToolResult{
					ID:      tc.ID,
					Name:    tc.Name,
					Content: execErr.Error(),
					IsError: true,
				})
				continue
			}
			// Only registered tools that actually ran enter the trace.
			trace = append(trace, Invocation{Tool: tc.Name, Input: tc.Input, Output: output})
			results = append(results, ToolResult{ID: tc.ID, Name: tc.Name, Content: output})
		}

		// Near the cap, tell the model to wrap up instead of letting the
		// loop die with a useless error.
		if iter == c.maxIter-2 {
			if _, err := sess.SendToolResults(ctx, results); err != nil {
				return nil, fmt.Errorf("agent failed: %w", err)
			}
			final, err := sess.Send(ctx, finalAnswerNudge)
			if err != nil {
				return nil, fmt.Errorf("agent failed: %w", err)
			}
			return &Result{
				Answer:    final.Text,
				Reasoning: strings.Join(reasoning, "\n"),
				Trace:     trace,
			}, nil
		}

		turn, err = sess.SendToolResults(ctx, results)
		if err != nil {
			return nil, fmt.Errorf("agent failed: %w", err)
		}
	}

	return nil, fmt.Errorf("agent loop exceeded max iterations (%d)", c.maxIter)
}

func (c *Coach) execute(ctx context.Context, tc ToolCall) (string, error) {
	for _, t := range c.tools {
		if t.Name == tc.Name {
			return t.Execute(ctx, tc.Input)
		}
	}
	return "", fmt.Errorf("unknown tool: %s", tc.Name)
}

func preview(s string) string {
	if len(s) > 80 {
		return s[:80]
	}
	return s
}
