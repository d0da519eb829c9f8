package habits

import (
	"testing"
	"time"
)

func TestToggleCounters(t *testing.T) {
	t.Parallel()

	h := Habit{ID: "1", Name: "Cold Outreach", TargetFrequency: 5}

	h.Toggle()
	if !h.CompletedToday || h.CurrentStreak != 1 || h.BestStreak != 1 || h.CompletedThisWeek != 1 {
		t.Fatalf("after check: %+v", h)
	}

	h.Toggle()
	if h.CompletedToday || h.CurrentStreak != 0 || h.CompletedThisWeek != 0 {
		t.Fatalf("after uncheck: %+v", h)
	}
	if h.BestStreak != 1 {
		t.Errorf("best streak dropped to %d, want 1", h.BestStreak)
	}
}

func TestToggleNeverGoesNegative(t *testing.T) {
	t.Parallel()

	h := Habit{ID: "1", CompletedToday: true}
	h.Toggle()
	if h.CurrentStreak != 0 || h.CompletedThisWeek != 0 {
		t.Fatalf("counters went negative: %+v", h)
	}
}

func TestUpsertLog(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

	logs := Upsert(nil, "h1", day, true)
	if len(logs) != 1 || logs[0].Date != "2025-01-15" || !logs[0].Completed {
		t.Fatalf("after insert: %+v", logs)
	}

	logs = Upsert(logs, "h1", day, false)
	if len(logs) != 1 {
		t.Fatalf("same day inserted twice: %+v", logs)
	}
	if logs[0].Completed {
		t.Error("existing entry not overwritten")
	}

	logs = Upsert(logs, "h2", day, true)
	if len(logs) != 2 {
		t.Fatalf("different habit should append: %+v", logs)
	}
}

func TestWeeklyProgress(t *testing.T) {
	t.Parallel()

	h := Habit{TargetFrequency: 5, CompletedThisWeek: 2}
	if got := h.WeeklyProgress(); got != 40 {
		t.Errorf("WeeklyProgress = %v, want 40", got)
	}

	zero := Habit{}
	if got := zero.WeeklyProgress(); got != 0 {
		t.Errorf("zero-target WeeklyProgress = %v, want 0", got)
	}
}

func TestAverageStreak(t *testing.T) {
	t.Parallel()

	if got := AverageStreak(nil); got != 0 {
		t.Errorf("AverageStreak(nil) = %v, want 0", got)
	}

	list := []Habit{{CurrentStreak: 4}, {CurrentStreak: 2}}
	if got := AverageStreak(list); got != 3 {
		t.Errorf("AverageStreak = %v, want 3", got)
	}
}
