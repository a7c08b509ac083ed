// Package security holds the request-level guardrails: prompt validation
// before the goal reaches the LLM, and audit logging of every invocation.
package security

import (
	"fmt"
	"regexp"
	"strings"
)

const MaxGoalLength = 2000

// dangerousPatterns covers prompt injection and command-execution attempts
var dangerousPatterns = []*regexp.Regexp{
	// Command execution
	regexp.MustCompile(`(?i)\brm\s+-`),
	regexp.MustCompile(`(?i)\brm\s+/`),
	regexp.MustCompile(`(?i)\bcurl\s+`),
	regexp.MustCompile(`(?i)\bwget\s+`),
	regexp.MustCompile(`(?i)\bbash\s+-`),
	regexp.MustCompile(`(?i)\bsh\s+-`),
	regexp.MustCompile(`(?i)\bsudo\s+`),

	// File operations / path traversal
	regexp.MustCompile(`\.\.\/`),
	regexp.MustCompile(`/etc/passwd`),
	regexp.MustCompile(`/etc/shadow`),
	regexp.MustCompile(`/proc/`),
	regexp.MustCompile(`id_rsa`),
	regexp.MustCompile(`\.ssh/`),

	// Code execution
	regexp.MustCompile(`(?i)eval\s*\(`),
	regexp.MustCompile(`(?i)exec\s*\(`),
	regexp.MustCompile(`(?i)system\s*\(`),
	regexp.MustCompile(`(?i)__import__\s*\(`),
	regexp.MustCompile(`(?i)subprocess\s*\(`),
	regexp.MustCompile(`(?i)os\.system`),

	// Prompt injection
	regexp.MustCompile(`(?i)ignore\s+(all\s+)?previous\s+instructions`),
	regexp.MustCompile(`(?i)disregard\s+(all\s+)?previous\s+instructions`),
	regexp.MustCompile(`(?i)forget\s+(all\s+)?previous\s+instructions`),
	regexp.MustCompile(`(?i)override\s+(all\s+)?previous\s+instructions`),
	regexp.MustCompile(`(?i)new\s+context\s*:`),
	regexp.MustCompile(`(?i)change\s+context\s*:`),
	regexp.MustCompile(`(?i)instead\s+of\s+the\s+above`),
}

// PromptValidator validates study goals for injection and dangerous content
type PromptValidator struct{}

func NewPromptValidator() *PromptValidator {
	return &PromptValidator{}
}

// ValidationResult contains validation outcome
type ValidationResult struct {
	Valid   bool
	Message string
}

// Validate checks a goal for dangerous patterns
func (v *PromptValidator) Validate(goal string) ValidationResult {
	if len(goal) > MaxGoalLength {
		return ValidationResult{
			Valid:   false,
			Message: fmt.Sprintf("goal too long: %d chars (max %d)", len(goal), MaxGoalLength),
		}
	}

	if strings.TrimSpace(goal) == "" {
		return ValidationResult{Valid: false, Message: "goal cannot be empty"}
	}

	for _, pattern := range dangerousPatterns {
		if pattern.MatchString(goal) {
			return ValidationResult{
				Valid:   false,
				Message: fmt.Sprintf("dangerous pattern detected: %s", pattern.String()),
			}
		}
	}

	return ValidationResult{Valid: true, Message: "ok"}
}
