package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/studycoach/studycoach/internal/syllabus"
)

const (
	maxScheduleDays  = 365
	maxHoursPerDay   = 16
	defaultDays      = 7
	defaultHoursADay = 2
)

// ScheduleTool builds a day-by-day study schedule for a module, giving
// double weight to the topics the student reports as weak
func ScheduleTool(cat *syllabus.Catalog) Tool {
	return Tool{
		Name:        "build_study_schedule",
		Description: "Build a day-by-day study schedule for a module up to the exam date. Weak topics are given double study time. Use after you know the student's timeline.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"module_name": map[string]interface{}{
					"type":        "string",
					"description": "The name of the study module",
				},
				"days_until_exam": map[string]interface{}{
					"type":        "number",
					"description": "How many days remain before the exam",
				},
				"hours_per_day": map[string]interface{}{
					"type":        "number",
					"description": "How many hours per day the student can study",
				},
				"weak_topics": map[string]interface{}{
					"type":        "string",
					"description": "Comma-separated topics the student is weak in (optional)",
				},
			},
			"required": []string{"module_name", "days_until_exam", "hours_per_day"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			module := stringArg(input, "module_name")
			module, note := resolveModule(module)

			topics, ok := cat.Topics(module)
			if !ok {
				return unknownModuleText(cat, module), nil
			}

			days := int(numberArg(input, "days_until_exam", defaultDays, 1, maxScheduleDays))
			hoursPerDay := numberArg(input, "hours_per_day", defaultHoursADay, 0.5, maxHoursPerDay)
			weakTopics := stringArg(input, "weak_topics")

			plan := buildSchedule(topics, days, hoursPerDay, splitList(weakTopics))
			if len(plan) == 0 {
				return "Could not build a useful schedule.", nil
			}

			var sb strings.Builder
			sb.WriteString(note)
			fmt.Fprintf(&sb, "Study schedule for '%s'\n", module)
			fmt.Fprintf(&sb, "Days until exam: %d, Hours per day: %g\n", days, hoursPerDay)
			if weakTopics == "" {
				weakTopics = "None specified"
			}
			fmt.Fprintf(&sb, "Weak topics prioritized: %s\n\n", weakTopics)
			for d := 1; d <= days; d++ {
				items := plan[d]
				if len(items) == 0 {
					continue
				}
				fmt.Fprintf(&sb, "Day %d:\n", d)
				for _, it := range items {
					fmt.Fprintf(&sb, "  - %s: %.1f hour(s)\n", it.topic, it.hours)
				}
				sb.WriteString("\n")
			}
			return strings.TrimRight(sb.String(), "\n"), nil
		},
	}
}

type slot struct {
	topic string
	hours float64
}

// buildSchedule distributes topic hours across days greedily: each topic is
// split into chunks of at most half a day's hours, and the schedule advances
// to the next day once a day is at 90% of its capacity. Weak topics carry
// double weight when dividing the total hours.
func buildSchedule(topics []string, days int, hoursPerDay float64, weak []string) map[int][]slot {
	weights := make([]float64, len(topics))
	total := 0.0
	for i, t := range topics {
		weights[i] = 1
		lower := strings.ToLower(t)
		for _, w := range weak {
			if strings.Contains(lower, w) {
				weights[i] = 2
				break
			}
		}
		total += weights[i]
	}
	if total == 0 {
		return nil
	}

	totalHours := float64(days) * hoursPerDay
	plan := make(map[int][]slot, days)
	day := 1
	for i, topic := range topics {
		remaining := weights[i] / total * totalHours
		for remaining > 0 && day <= days {
			chunk := remaining
			if half := hoursPerDay / 2; chunk > half {
				chunk = half
			}
			plan[day] = append(plan[day], slot{topic: topic, hours: chunk})
			remaining -= chunk

			load := 0.0
			for _, s := range plan[day] {
				load += s.hours
			}
			if load >= hoursPerDay*0.9 {
				day++
			}
		}
	}
	return plan
}
