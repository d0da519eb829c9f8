package insights

import (
	"testing"
	"time"

	"hustlehub-backend/internal/business"
	"hustlehub-backend/internal/goals"
	"hustlehub-backend/internal/priorities"
)

var testNow = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func findInsight(list []Insight, id string) *Insight {
	for i := range list {
		if list[i].ID == id {
			return &list[i]
		}
	}
	return nil
}

func TestGenerateGoalInsights(t *testing.T) {
	t.Parallel()

	userGoals := []goals.Goal{
		{ID: "on-track", Name: "Revenue", CurrentAmount: 80, TargetAmount: 100, TargetDate: "2025-06-01"},
		{ID: "at-risk", Name: "Savings", CurrentAmount: 10, TargetAmount: 100, TargetDate: "2025-01-20"},
		{ID: "quiet", Name: "Side", CurrentAmount: 60, TargetAmount: 100, TargetDate: "2025-06-01"},
	}

	out := Generate(userGoals, nil, nil, testNow)

	if in := findInsight(out, "goal-on-track-success"); in == nil || in.Type != TypeSuccess {
		t.Errorf("success insight missing: %+v", out)
	}
	if in := findInsight(out, "goal-at-risk-warning"); in == nil || in.Type != TypeWarning {
		t.Errorf("warning insight missing: %+v", out)
	} else if in.Action != "Increase daily actions" {
		t.Errorf("warning action = %q", in.Action)
	}
	if findInsight(out, "goal-quiet-success") != nil || findInsight(out, "goal-quiet-warning") != nil {
		t.Error("mid-progress goal should stay quiet")
	}
}

func TestGenerateTaskInsights(t *testing.T) {
	t.Parallel()

	all := []priorities.Priority{
		{ID: "1", Completed: true},
		{ID: "2", Completed: true},
	}
	out := Generate(nil, all, nil, testNow)
	if findInsight(out, "tasks-complete") == nil {
		t.Error("perfect day insight missing")
	}

	most := []priorities.Priority{
		{ID: "1", Completed: true},
		{ID: "2", Completed: true},
		{ID: "3", Completed: true},
		{ID: "4", Completed: true},
		{ID: "5", Completed: false},
	}
	out = Generate(nil, most, nil, testNow)
	if findInsight(out, "tasks-good") == nil {
		t.Error("strong execution insight missing at 4/5")
	}

	// No priorities at all should not claim a perfect day.
	out = Generate(nil, nil, nil, testNow)
	if findInsight(out, "tasks-complete") != nil || findInsight(out, "tasks-good") != nil {
		t.Error("empty list produced a task insight")
	}
}

func TestGenerateSystemizedInsight(t *testing.T) {
	t.Parallel()

	models := []business.Model{
		{ID: "m1", Status: business.StatusSystemized},
		{ID: "m2", Status: business.StatusInProgress},
	}
	out := Generate(nil, nil, models, testNow)
	in := findInsight(out, "business-systemized")
	if in == nil {
		t.Fatal("systemized insight missing")
	}
	if in.Title != "1 business model systemized! 🚀" {
		t.Errorf("title = %q", in.Title)
	}
}

func TestCalculateProgress(t *testing.T) {
	t.Parallel()

	prios := []priorities.Priority{
		{ID: "1", Completed: true},
		{ID: "2", Completed: false},
	}
	userGoals := []goals.Goal{
		{CurrentAmount: 50, TargetAmount: 100},
		{CurrentAmount: 100, TargetAmount: 100},
	}
	streaks := []Streak{
		{Name: "A", Active: true},
		{Name: "B", Active: false},
	}

	p := CalculateProgress(userGoals, prios, streaks)
	if p.Weekly != 50 {
		t.Errorf("Weekly = %v, want 50", p.Weekly)
	}
	if p.Monthly != 75 {
		t.Errorf("Monthly = %v, want 75", p.Monthly)
	}
	// 50*0.4 + 1*15 + 75*0.3
	if p.Momentum != 57.5 {
		t.Errorf("Momentum = %v, want 57.5", p.Momentum)
	}
}

func TestCalculateProgressMomentumCapped(t *testing.T) {
	t.Parallel()

	prios := []priorities.Priority{{ID: "1", Completed: true}}
	userGoals := []goals.Goal{{CurrentAmount: 100, TargetAmount: 100}}
	streaks := []Streak{
		{Active: true}, {Active: true}, {Active: true}, {Active: true},
	}

	p := CalculateProgress(userGoals, prios, streaks)
	if p.Momentum != 100 {
		t.Errorf("Momentum = %v, want capped at 100", p.Momentum)
	}
}

func TestSanitizeBackfills(t *testing.T) {
	t.Parallel()

	out := Sanitize([]Achievement{{}}, testNow)
	a := out[0]
	if a.ID == "" || a.Title != "Achievement" || a.Icon != "🏆" {
		t.Errorf("empty record not backfilled: %+v", a)
	}
	if _, err := time.Parse(time.RFC3339, a.UnlockedAt); err != nil {
		t.Errorf("UnlockedAt = %q, want RFC 3339", a.UnlockedAt)
	}
	if a.Category != CategoryMilestone {
		t.Errorf("Category = %q", a.Category)
	}

	keep := Achievement{
		ID: "x", Title: "First 50K", Description: "d", Icon: "💰",
		UnlockedAt: "2024-03-15T00:00:00Z", Category: CategoryPerformance,
	}
	if got := Sanitize([]Achievement{keep}, testNow)[0]; got != keep {
		t.Errorf("complete record changed: %+v", got)
	}
}
