package calendar

import (
	"strings"
	"testing"
	"time"

	"hustlehub-backend/internal/business"
	"hustlehub-backend/internal/goals"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	}
}

func day(d int) time.Time {
	return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
}

func findType(tasks []Task, tt TaskType) []Task {
	var out []Task
	for _, t := range tasks {
		if t.Type == tt {
			out = append(out, t)
		}
	}
	return out
}

func TestMRRCheckpointEveryFifthDay(t *testing.T) {
	t.Parallel()

	gen := New(fixedClock())

	with := findType(gen.TasksForDay(day(5), nil, nil, 4_000), TaskMRRCheckpoint)
	if len(with) != 1 {
		t.Fatalf("day 5: got %d checkpoints, want 1", len(with))
	}
	// ceil(4000 * 1.05)
	if with[0].Amount != 4_200 {
		t.Errorf("checkpoint amount = %v, want 4200", with[0].Amount)
	}
	if with[0].Text != "MRR Checkpoint: $4,200" {
		t.Errorf("checkpoint text = %q", with[0].Text)
	}

	without := findType(gen.TasksForDay(day(6), nil, nil, 4_000), TaskMRRCheckpoint)
	if len(without) != 0 {
		t.Fatalf("day 6: got %d checkpoints, want 0", len(without))
	}
}

func TestDailyExecutionBands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		mrr  float64
		want string
	}{
		{"under 5k", 1_000, "10 cold outreach messages"},
		{"under 15k", 8_000, "Follow up with 5 warm leads"},
		{"over 15k", 20_000, "Optimize systems & processes"},
	}

	gen := New(fixedClock())
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			daily := findType(gen.TasksForDay(day(1), nil, nil, tt.mrr), TaskDaily)
			if len(daily) == 0 {
				t.Fatal("no daily task")
			}
			if daily[0].Text != tt.want {
				t.Errorf("daily task = %q, want %q", daily[0].Text, tt.want)
			}
		})
	}
}

func TestBusinessWeekCadence(t *testing.T) {
	t.Parallel()

	gen := New(fixedClock())
	models := []business.Model{{
		ID: "m1", Name: "Growth Agency", Type: business.TypeAgency, Status: business.StatusInProgress,
	}}

	// Jan 2025: the 6th is a Monday.
	monday := findType(gen.TasksForDay(day(6), nil, models, 0), TaskBusiness)
	if len(monday) != 1 || !strings.HasPrefix(monday[0].Text, "Plan Growth Agency") {
		t.Fatalf("monday tasks = %+v", monday)
	}

	wednesday := findType(gen.TasksForDay(day(8), nil, models, 0), TaskBusiness)
	if len(wednesday) != 1 || wednesday[0].Text != "Deliver client work & follow up" {
		t.Fatalf("wednesday tasks = %+v", wednesday)
	}

	friday := findType(gen.TasksForDay(day(10), nil, models, 0), TaskBusiness)
	if len(friday) != 1 || friday[0].Text != "Review Growth Agency weekly performance" {
		t.Fatalf("friday tasks = %+v", friday)
	}

	tuesday := findType(gen.TasksForDay(day(7), nil, models, 0), TaskBusiness)
	if len(tuesday) != 0 {
		t.Fatalf("tuesday business tasks = %+v, want none", tuesday)
	}
}

func TestBusinessWednesdayUnknownTypeSkipped(t *testing.T) {
	t.Parallel()

	gen := New(fixedClock())
	models := []business.Model{{
		ID: "m1", Name: "Rentals", Type: business.TypeRealEstate, Status: business.StatusInProgress,
	}}

	wednesday := findType(gen.TasksForDay(day(8), nil, models, 0), TaskBusiness)
	if len(wednesday) != 0 {
		t.Fatalf("got %+v, want no execution task for unmapped type", wednesday)
	}
}

func TestContentDays(t *testing.T) {
	t.Parallel()

	gen := New(fixedClock())
	for _, d := range []int{7, 9} { // Tuesday, Thursday
		tasks := gen.TasksForDay(day(d), nil, nil, 0)
		found := false
		for _, task := range tasks {
			if task.Text == "Create valuable content" {
				found = true
			}
		}
		if !found {
			t.Errorf("day %d: content task missing", d)
		}
	}
}

func TestGoalMilestoneSpacing(t *testing.T) {
	t.Parallel()

	gen := New(fixedClock())
	userGoals := []goals.Goal{{
		ID:            "g1",
		Name:          "Monthly Income",
		CurrentAmount: 2_000,
		TargetAmount:  10_000,
		TargetDate:    "2025-03-02", // 60 days out, interval clamps to 7
		Priority:      goals.PriorityHigh,
		Category:      goals.CategoryIncome,
	}}

	onInterval := findType(gen.TasksForDay(day(8), userGoals, nil, 0), TaskGoalMilestone)
	if len(onInterval) != 1 {
		t.Fatalf("day 8: got %d milestones, want 1", len(onInterval))
	}
	// 7/60 of the 8k gap on top of 2k.
	if onInterval[0].Amount != 2_933 {
		t.Errorf("milestone amount = %v, want 2933", onInterval[0].Amount)
	}

	offInterval := findType(gen.TasksForDay(day(9), userGoals, nil, 0), TaskGoalMilestone)
	if len(offInterval) != 0 {
		t.Fatalf("day 9: got %d milestones, want 0", len(offInterval))
	}
}

func TestMonthGridShape(t *testing.T) {
	t.Parallel()

	gen := New(fixedClock())
	days := gen.MonthGrid(2025, time.January, nil, nil, 0)
	if len(days) != 42 {
		t.Fatalf("grid has %d cells, want 42", len(days))
	}

	current := 0
	for _, d := range days {
		if d.IsCurrentMonth {
			current++
		} else if len(d.Tasks) != 0 {
			t.Errorf("%s: out-of-month cell has tasks", d.Date.Format("2006-01-02"))
		}
	}
	if current != 31 {
		t.Errorf("grid has %d January cells, want 31", current)
	}

	today := 0
	for _, d := range days {
		if d.IsToday {
			today++
		}
	}
	if today != 1 {
		t.Errorf("grid marks %d cells as today, want 1", today)
	}
}
