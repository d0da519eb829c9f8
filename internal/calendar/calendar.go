// Package calendar builds the execution calendar: a month grid of
// generated tasks with revenue checkpoints and goal milestones.
package calendar

import (
	"fmt"
	"math"
	"time"

	"hustlehub-backend/internal/business"
	"hustlehub-backend/internal/engine"
	"hustlehub-backend/internal/goals"
)

type TaskType string

const (
	TaskDaily         TaskType = "daily"
	TaskMRRCheckpoint TaskType = "mrr_checkpoint"
	TaskGoalMilestone TaskType = "goal_milestone"
	TaskBusiness      TaskType = "business_task"
)

// Task is one generated calendar entry.
type Task struct {
	ID       string          `json:"id"`
	Text     string          `json:"text"`
	Type     TaskType        `json:"type"`
	Priority engine.Priority `json:"priority"`
	Amount   float64         `json:"amount,omitempty"`
	Category string          `json:"category,omitempty"`
}

// Day is one cell of the month grid.
type Day struct {
	Date           time.Time `json:"date"`
	IsCurrentMonth bool      `json:"isCurrentMonth"`
	IsToday        bool      `json:"isToday"`
	Tasks          []Task    `json:"tasks"`
}

const gridDays = 42 // six full weeks

// Generator produces calendar tasks from goals and business models. The
// clock anchors "days since today" math.
type Generator struct {
	now func() time.Time
}

func New(clock func() time.Time) *Generator {
	if clock == nil {
		clock = time.Now
	}
	return &Generator{now: clock}
}

// MonthGrid renders a six-week grid around the given month. Only days of
// the current month carry generated tasks.
func (g *Generator) MonthGrid(year int, month time.Month, userGoals []goals.Goal, models []business.Model, currentMRR float64) []Day {
	today := dateOnly(g.now())
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	lead := int(first.Weekday()) // Sunday-based

	days := make([]Day, 0, gridDays)
	for i := lead; i > 0; i-- {
		date := first.AddDate(0, 0, -i)
		days = append(days, Day{Date: date, IsToday: date.Equal(today), Tasks: []Task{}})
	}
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		days = append(days, Day{
			Date:           date,
			IsCurrentMonth: true,
			IsToday:        date.Equal(today),
			Tasks:          g.TasksForDay(date, userGoals, models, currentMRR),
		})
	}
	for d := 1; len(days) < gridDays; d++ {
		date := first.AddDate(0, 1, d-1)
		days = append(days, Day{Date: date, IsToday: date.Equal(today), Tasks: []Task{}})
	}
	return days
}

// TasksForDay generates the schedule for one date.
func (g *Generator) TasksForDay(date time.Time, userGoals []goals.Goal, models []business.Model, currentMRR float64) []Task {
	now := g.now()
	day := date.Day()
	weekday := date.Weekday()
	stamp := date.Format("2006-01-02")
	tasks := []Task{}

	// Revenue checkpoint every fifth day, ratcheting up through the month.
	if day%5 == 0 {
		target := math.Ceil(currentMRR * (1 + float64(day)/100))
		tasks = append(tasks, Task{
			ID:       fmt.Sprintf("mrr-%s", stamp),
			Text:     fmt.Sprintf("MRR Checkpoint: $%s", engine.Dollars(target)),
			Type:     TaskMRRCheckpoint,
			Priority: engine.PriorityHigh,
			Amount:   target,
			Category: "Revenue",
		})
	}

	for _, goal := range userGoals {
		if t, ok := goalMilestone(goal, date, now, stamp); ok {
			tasks = append(tasks, t)
		}
	}

	for _, model := range models {
		if model.Status != business.StatusInProgress {
			continue
		}
		if t, ok := businessTask(model, weekday, stamp); ok {
			tasks = append(tasks, t)
		}
	}

	tasks = append(tasks, dailyExecutionTask(currentMRR, stamp))

	if weekday == time.Tuesday || weekday == time.Thursday {
		tasks = append(tasks, Task{
			ID:       fmt.Sprintf("daily-%s-content", stamp),
			Text:     "Create valuable content",
			Type:     TaskDaily,
			Priority: engine.PriorityMedium,
		})
	}

	return tasks
}

// goalMilestone emits a linear progress target every 7-10 days until a
// goal's target date.
func goalMilestone(goal goals.Goal, date, now time.Time, stamp string) (Task, bool) {
	target, ok := goal.Target()
	if !ok {
		return Task{}, false
	}
	daysUntilTarget := int(math.Ceil(target.Sub(now).Hours() / 24))
	if daysUntilTarget <= 0 {
		return Task{}, false
	}

	interval := daysUntilTarget / 10
	if interval < 7 {
		interval = 7
	}
	daysOut := int(math.Ceil(date.Sub(now).Hours() / 24))
	if daysOut <= 0 || daysOut%interval != 0 {
		return Task{}, false
	}

	progress := goal.CurrentAmount + (goal.TargetAmount-goal.CurrentAmount)*float64(daysOut)/float64(daysUntilTarget)
	return Task{
		ID:       fmt.Sprintf("goal-%s-%s", goal.ID, stamp),
		Text:     fmt.Sprintf("%s: $%s", goal.Name, engine.Dollars(progress)),
		Type:     TaskGoalMilestone,
		Priority: engine.Priority(goal.Priority),
		Amount:   math.Round(progress),
		Category: string(goal.Category),
	}, true
}

// businessTask follows a Monday plan / Wednesday execute / Friday review
// cadence for each in-progress model.
func businessTask(model business.Model, weekday time.Weekday, stamp string) (Task, bool) {
	switch weekday {
	case time.Monday:
		return Task{
			ID:       fmt.Sprintf("business-%s-%s-planning", model.ID, stamp),
			Text:     fmt.Sprintf("Plan %s week strategy", model.Name),
			Type:     TaskBusiness,
			Priority: engine.PriorityHigh,
			Category: model.Name,
		}, true
	case time.Wednesday:
		var text, suffix string
		switch model.Type {
		case business.TypeContent:
			text, suffix = "Create 3 pieces of content", "content"
		case business.TypeConsulting:
			text, suffix = "Conduct 3 discovery calls", "calls"
		case business.TypeAgency:
			text, suffix = "Deliver client work & follow up", "clients"
		default:
			return Task{}, false
		}
		return Task{
			ID:       fmt.Sprintf("business-%s-%s-%s", model.ID, stamp, suffix),
			Text:     text,
			Type:     TaskBusiness,
			Priority: engine.PriorityHigh,
			Category: model.Name,
		}, true
	case time.Friday:
		return Task{
			ID:       fmt.Sprintf("business-%s-%s-review", model.ID, stamp),
			Text:     fmt.Sprintf("Review %s weekly performance", model.Name),
			Type:     TaskBusiness,
			Priority: engine.PriorityMedium,
			Category: model.Name,
		}, true
	}
	return Task{}, false
}

func dailyExecutionTask(currentMRR float64, stamp string) Task {
	switch {
	case currentMRR < 5_000:
		return Task{
			ID:       fmt.Sprintf("daily-%s-outreach", stamp),
			Text:     "10 cold outreach messages",
			Type:     TaskDaily,
			Priority: engine.PriorityHigh,
		}
	case currentMRR < 15_000:
		return Task{
			ID:       fmt.Sprintf("daily-%s-leads", stamp),
			Text:     "Follow up with 5 warm leads",
			Type:     TaskDaily,
			Priority: engine.PriorityHigh,
		}
	default:
		return Task{
			ID:       fmt.Sprintf("daily-%s-optimize", stamp),
			Text:     "Optimize systems & processes",
			Type:     TaskDaily,
			Priority: engine.PriorityMedium,
		}
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
