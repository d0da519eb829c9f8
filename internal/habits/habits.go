// Package habits tracks daily habits with streak and weekly counters.
package habits

import "time"

type Category string

const (
	CategoryHealth   Category = "Health"
	CategoryBusiness Category = "Business"
	CategoryPersonal Category = "Personal"
	CategoryLearning Category = "Learning"
)

// Habit is one tracked habit with its running counters.
type Habit struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Category          Category `json:"category"`
	TargetFrequency   int      `json:"targetFrequency"` // times per week
	CurrentStreak     int      `json:"currentStreak"`
	BestStreak        int      `json:"bestStreak"`
	CompletedToday    bool     `json:"completedToday"`
	CompletedThisWeek int      `json:"completedThisWeek"`
	LinkedGoal        string   `json:"linkedGoal,omitempty"`
}

// Log is one habit check mark for a calendar day.
type Log struct {
	HabitID   string `json:"habitId"`
	Date      string `json:"date"` // YYYY-MM-DD
	Completed bool   `json:"completed"`
}

// Defaults seeds the first visit with business-building habits.
func Defaults() []Habit {
	return []Habit{
		{
			ID:              "1",
			Name:            "Morning Planning",
			Description:     "Plan the day's priorities and goals",
			Category:        CategoryBusiness,
			TargetFrequency: 7,
		},
		{
			ID:              "2",
			Name:            "Cold Outreach",
			Description:     "Make calls or send messages to prospects",
			Category:        CategoryBusiness,
			TargetFrequency: 5,
		},
		{
			ID:              "3",
			Name:            "Content Creation",
			Description:     "Create valuable content for audience",
			Category:        CategoryBusiness,
			TargetFrequency: 5,
		},
	}
}

// Toggle flips today's completion and adjusts the counters. Unchecking
// steps the streaks back down, never below zero. The best streak only
// ratchets up.
func (h *Habit) Toggle() {
	h.CompletedToday = !h.CompletedToday
	if h.CompletedToday {
		h.CurrentStreak++
		h.CompletedThisWeek++
	} else {
		if h.CurrentStreak > 0 {
			h.CurrentStreak--
		}
		if h.CompletedThisWeek > 0 {
			h.CompletedThisWeek--
		}
	}
	if h.CurrentStreak > h.BestStreak {
		h.BestStreak = h.CurrentStreak
	}
}

// Upsert records today's state in the log, overwriting an existing entry
// for the same habit and day.
func Upsert(logs []Log, habitID string, day time.Time, completed bool) []Log {
	date := day.Format("2006-01-02")
	for i := range logs {
		if logs[i].HabitID == habitID && logs[i].Date == date {
			logs[i].Completed = completed
			return logs
		}
	}
	return append(logs, Log{HabitID: habitID, Date: date, Completed: completed})
}

// WeeklyProgress is completions against the weekly target as a percentage.
func (h Habit) WeeklyProgress() float64 {
	if h.TargetFrequency == 0 {
		return 0
	}
	return float64(h.CompletedThisWeek) / float64(h.TargetFrequency) * 100
}

// AverageStreak is the mean current streak across habits.
func AverageStreak(list []Habit) float64 {
	if len(list) == 0 {
		return 0
	}
	total := 0
	for _, h := range list {
		total += h.CurrentStreak
	}
	return float64(total) / float64(len(list))
}

// CompletedToday counts habits checked off today.
func CompletedToday(list []Habit) int {
	n := 0
	for _, h := range list {
		if h.CompletedToday {
			n++
		}
	}
	return n
}
