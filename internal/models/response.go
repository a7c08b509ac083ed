package models

import "github.com/studycoach/studycoach/internal/agent"

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// CoachResponse is returned by POST /api/v1/coach
type CoachResponse struct {
	Status    string                 `json:"status"`
	Goal      string                 `json:"goal"`
	Answer    string                 `json:"answer"`
	Reasoning string                 `json:"reasoning,omitempty"`
	ToolCalls []agent.Invocation     `json:"tool_calls"`
	Metadata  map[string]interface{} `json:"metadata"`
}

// ModuleInfo represents one syllabus module
type ModuleInfo struct {
	Name   string `json:"name"`
	Topics int    `json:"topics"`
}

// TopicInfo represents one topic and its practice tasks
type TopicInfo struct {
	Name  string   `json:"name"`
	Tasks []string `json:"tasks,omitempty"`
}
