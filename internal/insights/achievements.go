package insights

import (
	"time"

	"github.com/google/uuid"
)

type AchievementCategory string

const (
	CategoryMilestone   AchievementCategory = "milestone"
	CategoryStreak      AchievementCategory = "streak"
	CategoryPerformance AchievementCategory = "performance"
	CategoryLifestyle   AchievementCategory = "lifestyle"
)

// Achievement is one unlocked badge.
type Achievement struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Icon        string              `json:"icon"`
	UnlockedAt  string              `json:"unlockedAt"` // RFC 3339
	Category    AchievementCategory `json:"category"`
}

// DefaultAchievements seeds a fresh account.
func DefaultAchievements(now time.Time) []Achievement {
	ts := now.Format(time.RFC3339)
	return []Achievement{
		{
			ID:          "first-goal",
			Title:       "Goal Setter",
			Description: "Created your first goal",
			Icon:        "🎯",
			UnlockedAt:  ts,
			Category:    CategoryMilestone,
		},
		{
			ID:          "first-task",
			Title:       "Task Master",
			Description: "Completed your first task",
			Icon:        "✅",
			UnlockedAt:  ts,
			Category:    CategoryPerformance,
		},
	}
}

// Sanitize backfills missing fields on stored achievements so older or
// hand-edited records still render.
func Sanitize(list []Achievement, now time.Time) []Achievement {
	out := make([]Achievement, 0, len(list))
	for _, a := range list {
		if a.ID == "" {
			a.ID = uuid.NewString()
		}
		if a.Title == "" {
			a.Title = "Achievement"
		}
		if a.Description == "" {
			a.Description = "You earned an achievement!"
		}
		if a.Icon == "" {
			a.Icon = "🏆"
		}
		if _, err := time.Parse(time.RFC3339, a.UnlockedAt); err != nil {
			a.UnlockedAt = now.Format(time.RFC3339)
		}
		if a.Category == "" {
			a.Category = CategoryMilestone
		}
		out = append(out, a)
	}
	return out
}
