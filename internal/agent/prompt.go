package agent

import (
	"fmt"

	"github.com/studycoach/studycoach/internal/service"
)

const baseSystemPrompt = `You are a helpful Study Coach agent.

Your goals:
- Understand the student's exam timeline and weak areas.
- Use tools when helpful:
  - get_module_outline
  - build_study_schedule
  - suggest_practice_tasks
- Combine tool outputs into a clear, actionable study plan.
- Do NOT talk about internal tool calls; focus on advice, schedules and tasks.`

var intentEmphasis = map[service.Intent]string{
	service.IntentSchedule: "The student seems to be on a deadline: prioritize building a concrete day-by-day schedule.",
	service.IntentPractice: "The student wants hands-on work: prioritize suggesting practice tasks for their weak topics.",
	service.IntentOutline:  "The student wants to know what to study: start from the module outline.",
}

// SystemPrompt builds the per-request system prompt. module may be empty;
// intent emphasis comes from the intent router.
func SystemPrompt(module string, intent service.Intent) string {
	prompt := baseSystemPrompt
	if module != "" {
		prompt += fmt.Sprintf("\n\nThe student is studying the '%s' module.", module)
	}
	if emphasis, ok := intentEmphasis[intent]; ok {
		prompt += "\n\n" + emphasis
	}
	return prompt
}
