// Package service contains the keyword-based intent router that classifies
// a student's goal before it reaches the agent.
package service

import "strings"

// Intent represents what kind of help the student is asking for
type Intent string

const (
	IntentSchedule Intent = "schedule"
	IntentPractice Intent = "practice"
	IntentOutline  Intent = "outline"
)

var scheduleKeywords = []string{
	// timeline / exam pressure
	"exam", "test", "deadline", "schedule", "plan", "timeline",
	"days", "day", "week", "weeks", "hours", "hour",
	"in 2", "in two", "in 3", "in three", "by friday", "by monday",
	"revision", "revise", "cram", "prepare", "preparation",
}

var practiceKeywords = []string{
	// hands-on work
	"practice", "practise", "exercise", "exercises", "task", "tasks",
	"hands-on", "hands on", "project", "projects", "drill", "build",
	"implement", "code", "coding", "homework", "assignment",
}

var outlineKeywords = []string{
	// syllabus discovery
	"outline", "syllabus", "topics", "topic", "curriculum", "cover",
	"covered", "what should i learn", "what do i need", "overview",
	"contents", "roadmap",
}

// RoutingResult contains intent routing info
type RoutingResult struct {
	Intent        Intent
	Confidence    float64
	ScheduleScore int
	PracticeScore int
	OutlineScore  int
	Reasoning     string
}

// IntentRouter classifies free-text study goals into one of the known
// intents so the agent's system prompt can emphasize the right tools
type IntentRouter struct{}

func NewIntentRouter() *IntentRouter {
	return &IntentRouter{}
}

// Route analyses the goal and returns the best matching intent
func (r *IntentRouter) Route(goal string) RoutingResult {
	lower := strings.ToLower(goal)

	count := func(keywords []string) int {
		n := 0
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				n++
			}
		}
		return n
	}

	schedScore := count(scheduleKeywords)
	pracScore := count(practiceKeywords)
	outScore := count(outlineKeywords)

	total := schedScore + pracScore + outScore
	if total == 0 {
		return RoutingResult{
			Intent:     IntentSchedule,
			Confidence: 0.5,
			Reasoning:  "no strong keywords, defaulting to a study schedule",
		}
	}

	res := RoutingResult{
		ScheduleScore: schedScore,
		PracticeScore: pracScore,
		OutlineScore:  outScore,
	}
	switch {
	case pracScore > schedScore && pracScore >= outScore:
		res.Intent = IntentPractice
		res.Confidence = float64(pracScore) / float64(total)
		res.Reasoning = "goal mentions hands-on practice"
	case outScore > schedScore && outScore > pracScore:
		res.Intent = IntentOutline
		res.Confidence = float64(outScore) / float64(total)
		res.Reasoning = "goal asks what the module covers"
	default:
		res.Intent = IntentSchedule
		res.Confidence = float64(schedScore) / float64(total)
		res.Reasoning = "goal mentions an exam timeline or schedule"
	}
	return res
}
