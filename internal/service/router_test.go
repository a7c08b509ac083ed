package service_test

import (
	"testing"

	"github.com/studycoach/studycoach/internal/service"
)

func TestIntentRouter_Schedule(t *testing.T) {
	r := service.NewIntentRouter()

	goals := []string{
		"I have an exam in 5 days, 3 hours per day",
		"build me a study plan for next week",
		"help me prepare, the deadline is Friday",
		"Learn Python in 2 weeks",
	}
	for _, g := range goals {
		res := r.Route(g)
		if res.Intent != service.IntentSchedule {
			t.Errorf("expected schedule for %q, got %q (confidence %.2f: %s)",
				g, res.Intent, res.Confidence, res.Reasoning)
		}
	}
}

func TestIntentRouter_Practice(t *testing.T) {
	r := service.NewIntentRouter()

	goals := []string{
		"give me hands-on exercises for RAG",
		"I want practice tasks to drill prompt engineering",
		"suggest a project to build for agents",
	}
	for _, g := range goals {
		res := r.Route(g)
		if res.Intent != service.IntentPractice {
			t.Errorf("expected practice for %q, got %q (confidence %.2f: %s)",
				g, res.Intent, res.Confidence, res.Reasoning)
		}
	}
}

func TestIntentRouter_Outline(t *testing.T) {
	r := service.NewIntentRouter()

	goals := []string{
		"what topics does the generative ai syllabus cover",
		"show me the module outline",
		"give me an overview of the curriculum",
	}
	for _, g := range goals {
		res := r.Route(g)
		if res.Intent != service.IntentOutline {
			t.Errorf("expected outline for %q, got %q (confidence %.2f: %s)",
				g, res.Intent, res.Confidence, res.Reasoning)
		}
	}
}

func TestIntentRouter_Defaults(t *testing.T) {
	r := service.NewIntentRouter()

	res := r.Route("hello there")
	if res.Intent != service.IntentSchedule {
		t.Errorf("default intent should be schedule, got %s", res.Intent)
	}
	if res.Confidence <= 0 || res.Confidence > 1 {
		t.Errorf("confidence out of range: %.2f", res.Confidence)
	}
	if res.Reasoning == "" {
		t.Error("reasoning should not be empty")
	}
}
