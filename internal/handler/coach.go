package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/studycoach/studycoach/internal/agent"
	"github.com/studycoach/studycoach/internal/models"
	"github.com/studycoach/studycoach/internal/security"
	"github.com/studycoach/studycoach/internal/service"
)

// CoachHandler handles POST /api/v1/coach
type CoachHandler struct {
	coach       *agent.Coach
	router      *service.IntentRouter
	validator   *security.PromptValidator
	auditLogger *security.AuditLogger
}

func NewCoachHandler(
	coach *agent.Coach,
	router *service.IntentRouter,
	validator *security.PromptValidator,
	auditLogger *security.AuditLogger,
) *CoachHandler {
	return &CoachHandler{
		coach:       coach,
		router:      router,
		validator:   validator,
		auditLogger: auditLogger,
	}
}

// Ask handles POST /api/v1/coach
func (h *CoachHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req models.CoachRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		models.WriteError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	req.SetDefaults()

	if req.Goal == "" {
		models.WriteError(w, http.StatusBadRequest, "goal is required")
		return
	}

	apiKey := r.Header.Get("X-API-Key")

	if res := h.validator.Validate(req.Goal); !res.Valid {
		h.auditLogger.LogValidationReject(req.Goal, apiKey, res.Message)
		models.WriteError(w, http.StatusBadRequest, res.Message)
		return
	}

	if h.coach == nil {
		models.WriteError(w, http.StatusServiceUnavailable, "agent is not configured")
		return
	}

	routing := h.router.Route(req.Goal)

	module := ""
	if req.Module != nil {
		module = *req.Module
	}

	backend := h.coach.Backend()
	metadata := map[string]interface{}{
		"provider":           backend.Name(),
		"model":              backend.Model(),
		"intent":             string(routing.Intent),
		"routing_confidence": routing.Confidence,
		"routing_reasoning":  routing.Reasoning,
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(req.Timeout)*time.Second)
	defer cancel()

	start := time.Now()
	result, err := h.coach.Run(ctx, agent.SystemPrompt(module, routing.Intent), req.Goal)
	elapsed := time.Since(start).Milliseconds()
	metadata["execution_time_ms"] = elapsed

	if err != nil {
		h.auditLogger.LogInvocation(req.Goal, apiKey, 0, elapsed, false, err.Error())
		models.WriteError(w, http.StatusBadGateway, "agent failed: "+err.Error())
		return
	}

	h.auditLogger.LogInvocation(req.Goal, apiKey, len(result.Trace), elapsed, true, "")

	toolCalls := result.Trace
	if toolCalls == nil {
		toolCalls = []agent.Invocation{}
	}
	models.WriteJSON(w, http.StatusOK, models.CoachResponse{
		Status:    "success",
		Goal:      req.Goal,
		Answer:    result.Answer,
		Reasoning: result.Reasoning,
		ToolCalls: toolCalls,
		Metadata:  metadata,
	})
}
