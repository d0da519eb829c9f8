package goals

import (
	"testing"
	"time"
)

var testNow = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestDaysLeftClamped(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		date string
		want int
	}{
		{"future", "2025-01-31", 30},
		{"today", "2025-01-01", 1},
		{"past due", "2024-06-01", 1},
		{"garbage", "not-a-date", 1},
	}
	for _, tt := range tests {
		g := Goal{TargetDate: tt.date}
		if got := g.DaysLeft(testNow); got != tt.want {
			t.Errorf("%s: DaysLeft = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestMonthsLeftClamped(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		date string
		want int
	}{
		{"one year", "2025-12-27", 12},
		{"partial month rounds up", "2025-02-15", 2},
		{"past due", "2024-01-01", 1},
	}
	for _, tt := range tests {
		g := Goal{TargetDate: tt.date}
		if got := g.MonthsLeft(testNow); got != tt.want {
			t.Errorf("%s: MonthsLeft = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestProgressPercentClamped(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current float64
		target  float64
		want    float64
	}{
		{"halfway", 50, 100, 50},
		{"overshot", 150, 100, 100},
		{"zero target", 50, 0, 0},
		{"negative current", -10, 100, 0},
	}
	for _, tt := range tests {
		g := Goal{CurrentAmount: tt.current, TargetAmount: tt.target}
		if got := g.ProgressPercent(); got != tt.want {
			t.Errorf("%s: ProgressPercent = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMonthlyNeeded(t *testing.T) {
	t.Parallel()

	g := Goal{CurrentAmount: 0, TargetAmount: 240_000, TargetDate: "2025-12-27"}
	if got := g.MonthlyNeeded(testNow); got != 20_000 {
		t.Errorf("MonthlyNeeded = %v, want 20000", got)
	}
}

func TestTopPriority(t *testing.T) {
	t.Parallel()

	if got := TopPriority(nil); got != nil {
		t.Fatalf("empty list: got %+v, want nil", got)
	}

	list := []Goal{
		{ID: "a", Priority: PriorityMedium},
		{ID: "b", Priority: PriorityHigh, CurrentAmount: 80, TargetAmount: 100},
		{ID: "c", Priority: PriorityHigh, CurrentAmount: 10, TargetAmount: 100},
	}
	if got := TopPriority(list); got.ID != "c" {
		t.Errorf("got %s, want c (least-progressed High goal)", got.ID)
	}

	noHigh := []Goal{
		{ID: "a", Priority: PriorityLow},
		{ID: "b", Priority: PriorityMedium},
	}
	if got := TopPriority(noHigh); got.ID != "a" {
		t.Errorf("got %s, want first goal when none are High", got.ID)
	}
}

func TestCurrentIncome(t *testing.T) {
	t.Parallel()

	list := []Goal{
		{Category: CategorySavings, CurrentAmount: 99_999},
		{Category: CategoryIncome, CurrentAmount: 4_000},
		{Category: CategoryIncome, CurrentAmount: 7_500},
	}
	if got := CurrentIncome(list); got != 7_500 {
		t.Errorf("CurrentIncome = %v, want 7500", got)
	}
	if got := CurrentIncome(nil); got != 0 {
		t.Errorf("CurrentIncome(nil) = %v, want 0", got)
	}
}

func TestSyncRevenue(t *testing.T) {
	t.Parallel()

	metrics := DefaultMetrics()
	userGoals := []Goal{{Category: CategoryIncome, CurrentAmount: 12_000, TargetAmount: 24_000}}
	metrics = SyncRevenue(metrics, userGoals)

	if got := RevenueCurrent(metrics); got != 12_000 {
		t.Errorf("RevenueCurrent after sync = %v, want 12000", got)
	}
}
