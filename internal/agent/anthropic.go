package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rs/zerolog/log"

	"github.com/studycoach/studycoach/internal/tools"
)

// AnthropicBackend talks to Anthropic Claude or a compatible proxy.
type AnthropicBackend struct {
	client    *anthropic.Client
	model     string
	maxTokens int
}

// NewAnthropicBackend creates an Anthropic-backed reasoning backend.
func NewAnthropicBackend(apiKey, model, baseURL string) *AnthropicBackend {
	if model == "" {
		model = "claude-sonnet-4-6"
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &AnthropicBackend{
		client:    anthropic.NewClient(opts...),
		model:     model,
		maxTokens: 4096,
	}
}

func (b *AnthropicBackend) Name() string  { return "anthropic" }
func (b *AnthropicBackend) Model() string { return b.model }

func (b *AnthropicBackend) NewSession(system string, ts []tools.Tool) (Session, error) {
	toolParams := make([]anthropic.ToolUnionUnionParam, len(ts))
	for i, t := range ts {
		var propsRaw interface{}
		if props, ok := t.InputSchema["properties"]; ok {
			propsRaw = props
		}
		schema := map[string]interface{}{
			"type":       "object",
			"properties": propsRaw,
		}
		if required, ok := t.InputSchema["required"]; ok {
			schema["required"] = required
		}
		toolParams[i] = anthropic.ToolParam{
			Name:        anthropic.String(t.Name),
			Description: anthropic.String(t.Description),
			InputSchema: anthropic.F[interface{}](schema),
		}
	}

	return &anthropicSession{backend: b, system: system, tools: toolParams}, nil
}

type anthropicSession struct {
	backend  *AnthropicBackend
	system   string
	tools    []anthropic.ToolUnionUnionParam
	messages []anthropic.MessageParam
}

func (s *anthropicSession) Send(ctx context.Context, text string) (*Turn, error) {
	s.messages = append(s.messages, anthropic.NewUserMessage(anthropic.NewTextBlock(text)))
	return s.complete(ctx)
}

func (s *anthropicSession) SendToolResults(ctx context.Context, results []ToolResult) (*Turn, error) {
	blocks := make([]anthropic.ContentBlockParamUnion, len(results))
	for i, res := range results {
		blocks[i] = anthropic.NewToolResultBlock(res.ID, res.Content, res.IsError)
	}
	s.messages = append(s.messages, anthropic.NewUserMessage(blocks...))
	return s.complete(ctx)
}

func (s *anthropicSession) complete(ctx context.Context) (*Turn, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.F(anthropic.Model(s.backend.model)),
		MaxTokens: anthropic.F(int64(s.backend.maxTokens)),
		Messages:  anthropic.F(s.messages),
		Tools:     anthropic.F(s.tools),
	}
	if s.system != "" {
		params.System = anthropic.F([]anthropic.TextBlockParam{
			anthropic.NewTextBlock(s.system),
		})
	}

	resp, err := s.backend.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic message: %w", err)
	}
	s.messages = append(s.messages, resp.ToParam())

	turn := &Turn{}
	for _, block := range resp.Content {
		switch b := block.AsUnion().(type) {
		case anthropic.TextBlock:
			turn.Text += b.Text
		case anthropic.ToolUseBlock:
			var input map[string]interface{}
			if err := json.Unmarshal(b.Input, &input); err != nil {
				log.Warn().Err(err).Str("tool", b.Name).Msg("failed to parse tool input")
				input = map[string]interface{}{}
			}
			turn.ToolCalls = append(turn.ToolCalls, ToolCall{
				ID:    b.ID,
				Name:  b.Name,
				Input: input,
			})
		}
	}

	turn.Done = resp.StopReason == "end_turn" ||
		resp.StopReason == "stop" ||
		resp.StopReason == "stop_sequence" ||
		resp.StopReason == "max_tokens" ||
		len(turn.ToolCalls) == 0
	return turn, nil
}
