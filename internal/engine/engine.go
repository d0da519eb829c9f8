// Package engine derives recommended action items from the user's business
// models, goals and current income. Everything here is a pure function over
// its inputs: fixed rule tables, an injected clock, no I/O. Same inputs,
// same output, every time.
package engine

import (
	"fmt"
	"time"

	"hustlehub-backend/internal/business"
	"hustlehub-backend/internal/goals"
)

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// SmartTask is one generated recommendation. It has no identity until the
// user promotes it into a persisted daily priority.
type SmartTask struct {
	Task          string   `json:"task"`
	Reason        string   `json:"reason"`
	Priority      Priority `json:"priority"`
	Impact        string   `json:"impact"`
	BusinessModel string   `json:"businessModel"`
}

// MaxSmartTasks caps the full action plan; MaxDailyTasks caps the dashboard
// variant.
const (
	MaxSmartTasks = 8
	MaxDailyTasks = 4
)

// Generator holds the injected clock. No other state.
type Generator struct {
	now func() time.Time
}

func New(clock func() time.Time) *Generator {
	if clock == nil {
		clock = time.Now
	}
	return &Generator{now: clock}
}

// SmartTasks builds the ranked action plan: per-model bundles keyed by
// (status, type), then one banded task per income goal, concatenated in
// input order and truncated to MaxSmartTasks. Inputs are not mutated.
func (g *Generator) SmartTasks(models []business.Model, userGoals []goals.Goal, currentIncome float64) []SmartTask {
	tasks := []SmartTask{}

	for _, model := range models {
		switch model.Status {
		case business.StatusNotStarted:
			tasks = append(tasks, expand(startupBundle(model.Type), model.Name)...)
		case business.StatusInProgress:
			tasks = append(tasks, expand(growthBundle(model.Type, currentIncome), model.Name)...)
		case business.StatusSystemized:
			tasks = append(tasks, expand(optimizationBundle(model.Type), model.Name)...)
		}
	}

	now := g.now()
	for _, goal := range userGoals {
		if goal.Category != goals.CategoryIncome {
			continue
		}
		monthlyTarget := goal.Remaining() / float64(goal.MonthsLeft(now))
		if t, ok := incomeGoalTask(monthlyTarget); ok {
			tasks = append(tasks, t)
		}
	}

	if len(tasks) > MaxSmartTasks {
		tasks = tasks[:MaxSmartTasks]
	}
	return tasks
}

func startupBundle(t business.Type) []rule {
	if bundle, ok := startupRules[t]; ok {
		return bundle
	}
	return []rule{startupFallback}
}

func growthBundle(t business.Type, currentIncome float64) []rule {
	gr, ok := growthRules[t]
	if !ok {
		return []rule{growthFallback}
	}
	if currentIncome < incomeThreshold {
		return gr.low
	}
	return gr.high
}

func optimizationBundle(t business.Type) []rule {
	if bundle, ok := optimizationRules[t]; ok {
		return bundle
	}
	return []rule{optimizationFallback}
}

func expand(rules []rule, modelName string) []SmartTask {
	out := make([]SmartTask, 0, len(rules))
	for _, r := range rules {
		reason := r.Reason
		if r.nameInReason {
			reason = fmt.Sprintf(r.Reason, modelName)
		}
		out = append(out, SmartTask{
			Task:          r.Task,
			Reason:        reason,
			Priority:      r.Priority,
			Impact:        r.Impact,
			BusinessModel: modelName,
		})
	}
	return out
}

// incomeGoalTask maps the required monthly funding rate onto its band. Below
// the lowest band no task is emitted: the goal is on a pace ordinary work
// covers.
func incomeGoalTask(monthlyTarget float64) (SmartTask, bool) {
	r, ok := Pick(incomeGoalBands, monthlyTarget)
	if !ok {
		return SmartTask{}, false
	}
	return SmartTask{
		Task:          r.Task,
		Reason:        fmt.Sprintf(r.Reason, Dollars(monthlyTarget)),
		Priority:      PriorityHigh,
		Impact:        r.Impact,
		BusinessModel: "Income Goal",
	}, true
}
