package security

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/rs/zerolog/log"
)

// AuditLogger logs agent invocations with hashed identifiers so goals and
// API keys never appear in plain text in the logs
type AuditLogger struct {
	enabled bool
}

func NewAuditLogger(enabled bool) *AuditLogger {
	return &AuditLogger{enabled: enabled}
}

// LogInvocation records one agent invocation event
func (a *AuditLogger) LogInvocation(
	goal, apiKey string,
	toolCalls int,
	executionTimeMs int64,
	success bool,
	errMsg string,
) {
	if !a.enabled {
		return
	}

	evt := log.Info().
		Str("event", "coach_audit").
		Str("goal_hash", hashStr(goal)[:16]).
		Str("api_key_hash", hashStr(apiKey)[:16]).
		Int("tool_calls", toolCalls).
		Int64("execution_time_ms", executionTimeMs).
		Bool("success", success)

	if errMsg != "" {
		evt = evt.Str("error", errMsg)
	}
	evt.Msg("audit")
}

// LogValidationReject records a goal rejected by the prompt validator
func (a *AuditLogger) LogValidationReject(goal, apiKey, reason string) {
	if !a.enabled {
		return
	}
	log.Warn().
		Str("event", "validation_reject").
		Str("goal_hash", hashStr(goal)[:16]).
		Str("api_key_hash", hashStr(apiKey)[:16]).
		Str("reason", reason).
		Msg("audit")
}

func hashStr(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
