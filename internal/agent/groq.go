package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/studycoach/studycoach/internal/tools"
)

// DefaultGroqBaseURL is Groq's OpenAI-compatible endpoint.
const DefaultGroqBaseURL = "https://api.groq.com/openai/v1"

// GroqBackend talks to Groq through its OpenAI-compatible chat-completions
// API. Any OpenAI-compatible endpoint works by overriding the base URL.
type GroqBackend struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
}

// NewGroqBackend creates a Groq-backed reasoning backend.
func NewGroqBackend(apiKey, model, baseURL string) *GroqBackend {
	if model == "" {
		model = "llama-3.1-8b-instant"
	}
	if baseURL == "" {
		baseURL = DefaultGroqBaseURL
	}
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &GroqBackend{
		client:      openai.NewClientWithConfig(cfg),
		model:       model,
		maxTokens:   4096,
		temperature: 0.3,
	}
}

func (b *GroqBackend) Name() string  { return "groq" }
func (b *GroqBackend) Model() string { return b.model }

func (b *GroqBackend) NewSession(system string, ts []tools.Tool) (Session, error) {
	toolDefs := make([]openai.Tool, len(ts))
	for i, t := range ts {
		toolDefs[i] = openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.InputSchema,
			},
		}
	}

	s := &groqSession{backend: b, tools: toolDefs}
	if system != "" {
		s.messages = append(s.messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	return s, nil
}

type groqSession struct {
	backend  *GroqBackend
	tools    []openai.Tool
	messages []openai.ChatCompletionMessage
}

func (s *groqSession) Send(ctx context.Context, text string) (*Turn, error) {
	s.messages = append(s.messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: text,
	})
	return s.complete(ctx)
}

func (s *groqSession) SendToolResults(ctx context.Context, results []ToolResult) (*Turn, error) {
	for _, res := range results {
		content := res.Content
		if res.IsError {
			content = "error: " + content
		}
		s.messages = append(s.messages, openai.ChatCompletionMessage{
			Role:       openai.ChatMessageRoleTool,
			Content:    content,
			Name:       res.Name,
			ToolCallID: res.ID,
		})
	}
	return s.complete(ctx)
}

func (s *groqSession) complete(ctx context.Context) (*Turn, error) {
	resp, err := s.backend.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.backend.model,
		Messages:    s.messages,
		Tools:       s.tools,
		MaxTokens:   s.backend.maxTokens,
		Temperature: s.backend.temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("groq chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("groq returned no choices")
	}

	msg := resp.Choices[0].Message
	s.messages = append(s.messages, msg)

	turn := &Turn{Text: msg.Content}
	for _, tc := range msg.ToolCalls {
		var input map[string]interface{}
		if err := json.Unmarshal([]byte(tc.Function.Arguments), &input); err != nil {
			log.Warn().Err(err).Str("tool", tc.Function.Name).Msg("failed to parse tool arguments")
			input = map[string]interface{}{}
		}
		turn.ToolCalls = append(turn.ToolCalls, ToolCall{
			ID:    tc.ID,
			Name:  tc.Function.Name,
			Input: input,
		})
	}
	turn.Done = resp.Choices[0].FinishReason != openai.FinishReasonToolCalls || len(turn.ToolCalls) == 0
	return turn, nil
}
