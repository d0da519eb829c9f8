// Package insights derives performance insights, streaks and a momentum
// score from the user's goals, priorities and business models.
package insights

import (
	"fmt"
	"time"

	"hustlehub-backend/internal/business"
	"hustlehub-backend/internal/goals"
	"hustlehub-backend/internal/priorities"
)

type InsightType string

const (
	TypeSuccess     InsightType = "success"
	TypeWarning     InsightType = "warning"
	TypeInfo        InsightType = "info"
	TypeAchievement InsightType = "achievement"
)

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Insight is one generated observation.
type Insight struct {
	ID          string      `json:"id"`
	Type        InsightType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Action      string      `json:"action,omitempty"`
	Value       float64     `json:"value,omitempty"`
	Trend       Trend       `json:"trend,omitempty"`
}

// Streak is one named activity streak.
type Streak struct {
	Name    string `json:"name"`
	Current int    `json:"current"`
	Best    int    `json:"best"`
	Active  bool   `json:"active"`
}

// Generate walks the user's data and emits the insights that apply.
func Generate(userGoals []goals.Goal, prios []priorities.Priority, models []business.Model, now time.Time) []Insight {
	out := []Insight{}

	for _, goal := range userGoals {
		progress := goal.ProgressPercent()
		daysLeft := goal.DaysLeft(now)
		dailyRequired := goal.Remaining() / float64(daysLeft)

		switch {
		case progress > 75:
			out = append(out, Insight{
				ID:          fmt.Sprintf("goal-%s-success", goal.ID),
				Type:        TypeSuccess,
				Title:       fmt.Sprintf("%s is on track! 🎯", goal.Name),
				Description: fmt.Sprintf("You're %.0f%% complete with %d days remaining", progress, daysLeft),
				Trend:       TrendUp,
				Value:       progress,
			})
		case daysLeft < 30 && progress < 50:
			out = append(out, Insight{
				ID:          fmt.Sprintf("goal-%s-warning", goal.ID),
				Type:        TypeWarning,
				Title:       fmt.Sprintf("%s needs attention ⚠️", goal.Name),
				Description: fmt.Sprintf("Only %d days left but %.0f%% complete. Need $%.0f/day", daysLeft, progress, dailyRequired),
				Action:      "Increase daily actions",
				Trend:       TrendDown,
			})
		}
	}

	completed := 0
	for _, p := range prios {
		if p.Completed {
			completed++
		}
	}
	total := len(prios)
	if total > 0 {
		if completed == total {
			out = append(out, Insight{
				ID:          "tasks-complete",
				Type:        TypeAchievement,
				Title:       "Perfect day! All tasks completed 🔥",
				Description: fmt.Sprintf("You completed all %d tasks today. This momentum will compound!", total),
				Trend:       TrendUp,
			})
		} else if float64(completed)/float64(total) > 0.8 {
			out = append(out, Insight{
				ID:          "tasks-good",
				Type:        TypeSuccess,
				Title:       "Strong execution today 💪",
				Description: fmt.Sprintf("%d/%d tasks completed. You're building great habits!", completed, total),
				Trend:       TrendUp,
			})
		}
	}

	systemized := 0
	for _, m := range models {
		if m.Status == business.StatusSystemized {
			systemized++
		}
	}
	if systemized > 0 {
		plural := ""
		if systemized > 1 {
			plural = "s"
		}
		out = append(out, Insight{
			ID:          "business-systemized",
			Type:        TypeAchievement,
			Title:       fmt.Sprintf("%d business model%s systemized! 🚀", systemized, plural),
			Description: "Systemized models generate passive income and scale automatically",
			Trend:       TrendUp,
		})
	}

	return out
}

// DefaultStreaks stands in until real historical tracking exists.
// TODO: derive streaks from habit logs once enough history accumulates.
func DefaultStreaks() []Streak {
	return []Streak{
		{Name: "Daily Tasks", Current: 7, Best: 12, Active: true},
		{Name: "Goal Updates", Current: 3, Best: 8, Active: true},
		{Name: "Content Creation", Current: 0, Best: 5, Active: false},
		{Name: "Networking", Current: 2, Best: 4, Active: true},
	}
}

// Progress summarizes weekly task completion, mean monthly goal progress
// and a blended momentum score capped at 100.
type Progress struct {
	Weekly   float64 `json:"weekly"`
	Monthly  float64 `json:"monthly"`
	Momentum float64 `json:"momentum"`
}

func CalculateProgress(userGoals []goals.Goal, prios []priorities.Priority, streaks []Streak) Progress {
	weekly := priorities.CompletionRate(prios)

	monthly := 0.0
	if len(userGoals) > 0 {
		sum := 0.0
		for _, g := range userGoals {
			sum += g.ProgressPercent()
		}
		monthly = sum / float64(len(userGoals))
	}

	active := 0
	for _, s := range streaks {
		if s.Active {
			active++
		}
	}
	momentum := weekly*0.4 + float64(active)*15 + monthly*0.3
	if momentum > 100 {
		momentum = 100
	}

	return Progress{Weekly: weekly, Monthly: monthly, Momentum: momentum}
}
