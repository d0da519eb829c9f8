package engine

import (
	"reflect"
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

// 360 days from the fixed clock, 12 nominal months exactly.
const targetDate = "2025-12-27"

func incomeGoal(target float64) goals.Goal {
	return goals.Goal{
		ID:           "g1",
		Name:         "Monthly Income",
		TargetAmount: target,
		TargetDate:   targetDate,
		Priority:     goals.PriorityHigh,
		Category:     goals.CategoryIncome,
	}
}

func TestSmartTasksStartupSaaS(t *testing.T) {
	t.Parallel()

	gen := New(fixedClock())
	models := []business.Model{{
		ID:     "m1",
		Name:   "CloudMetrics",
		Type:   business.TypeSaaS,
		Status: business.StatusNotStarted,
	}}

	tasks := gen.SmartTasks(models, nil, 0)
	if len(tasks) != 3 {
		t.Fatalf("got %d tasks, want 3", len(tasks))
	}

	wantTasks := []string{
		"Build MVP with core features",
		"Interview 10 potential customers",
		"Set up analytics and user tracking",
	}
	for i, want := range wantTasks {
		if tasks[i].Task != want {
			t.Errorf("task[%d] = %q, want %q", i, tasks[i].Task, want)
		}
		if tasks[i].BusinessModel != "CloudMetrics" {
			t.Errorf("task[%d].BusinessModel = %q, want CloudMetrics", i, tasks[i].BusinessModel)
		}
	}
	if tasks[0].Reason != "Essential foundation for CloudMetrics" {
		t.Errorf("task[0].Reason = %q", tasks[0].Reason)
	}
}

func TestSmartTasksIncomeGoalBands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		targetAmount float64 // monthly target is targetAmount / 12
		wantTask     string
		wantReason   string
	}{
		{
			name:         "above 50k",
			targetAmount: 720_000,
			wantTask:     "Focus on enterprise deals and strategic partnerships",
			wantReason:   "Need $60,000/month - requires big moves",
		},
		{
			name:         "above 20k",
			targetAmount: 360_000,
			wantTask:     "Scale proven systems and hire team members",
			wantReason:   "$30,000/month requires leverage",
		},
		{
			name:         "above 5k",
			targetAmount: 240_000,
			wantTask:     "Increase prices and focus on premium clients",
			wantReason:   "$20,000/month needs higher-value work",
		},
	}

	gen := New(fixedClock())
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tasks := gen.SmartTasks(nil, []goals.Goal{incomeGoal(tt.targetAmount)}, 0)
			if len(tasks) != 1 {
				t.Fatalf("got %d tasks, want 1", len(tasks))
			}
			if tasks[0].Task != tt.wantTask {
				t.Errorf("Task = %q, want %q", tasks[0].Task, tt.wantTask)
			}
			if tasks[0].Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", tasks[0].Reason, tt.wantReason)
			}
			if tasks[0].Priority != PriorityHigh {
				t.Errorf("Priority = %q, want High", tasks[0].Priority)
			}
			if tasks[0].BusinessModel != "Income Goal" {
				t.Errorf("BusinessModel = %q, want Income Goal", tasks[0].BusinessModel)
			}
		})
	}
}

func TestSmartTasksLowIncomeGoalSkipped(t *testing.T) {
	t.Parallel()

	gen := New(fixedClock())
	// 24k over 12 months is 2k/month, below the lowest band.
	tasks := gen.SmartTasks(nil, []goals.Goal{incomeGoal(24_000)}, 0)
	if len(tasks) != 0 {
		t.Fatalf("got %d tasks, want 0", len(tasks))
	}
}

func TestSmartTasksNonIncomeGoalsIgnored(t *testing.T) {
	t.Parallel()

	gen := New(fixedClock())
	g := incomeGoal(720_000)
	g.Category = goals.CategorySavings
	tasks := gen.SmartTasks(nil, []goals.Goal{g}, 0)
	if len(tasks) != 0 {
		t.Fatalf("got %d tasks for savings goal, want 0", len(tasks))
	}
}

func TestSmartTasksUnknownGrowthTypeFallsBack(t *testing.T) {
	t.Parallel()

	gen := New(fixedClock())
	models := []business.Model{{
		ID:     "m1",
		Name:   "Mystery Venture",
		Type:   business.Type("Something New"),
		Status: business.StatusInProgress,
	}}

	tasks := gen.SmartTasks(models, nil, 0)
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1 generic fallback", len(tasks))
	}
	if tasks[0].Task != "Define your core growth channel and double down" {
		t.Errorf("Task = %q", tasks[0].Task)
	}
}

func TestSmartTasksGrowthThreshold(t *testing.T) {
	t.Parallel()

	gen := New(fixedClock())
	models := []business.Model{{
		ID:     "m1",
		Name:   "CloudMetrics",
		Type:   business.TypeSaaS,
		Status: business.StatusInProgress,
	}}

	low := gen.SmartTasks(models, nil, 9_999)
	if low[0].Task != "Launch beta and get first 100 users" {
		t.Errorf("below threshold: Task = %q", low[0].Task)
	}

	high := gen.SmartTasks(models, nil, 10_000)
	if high[0].Task != "Optimize conversion funnel and reduce churn" {
		t.Errorf("at threshold: Task = %q", high[0].Task)
	}
}

func TestSmartTasksTruncated(t *testing.T) {
	t.Parallel()

	gen := New(fixedClock())
	models := []business.Model{
		{ID: "m1", Name: "A", Type: business.TypeSaaS, Status: business.StatusNotStarted},
		{ID: "m2", Name: "B", Type: business.TypeEcommerce, Status: business.StatusNotStarted},
		{ID: "m3", Name: "C", Type: business.TypeConsulting, Status: business.StatusNotStarted},
	}

	tasks := gen.SmartTasks(models, nil, 0)
	if len(tasks) != MaxSmartTasks {
		t.Fatalf("got %d tasks, want cap of %d", len(tasks), MaxSmartTasks)
	}
}

func TestSmartTasksDeterministic(t *testing.T) {
	t.Parallel()

	gen := New(fixedClock())
	models := []business.Model{
		{ID: "m1", Name: "A", Type: business.TypeSaaS, Status: business.StatusInProgress},
		{ID: "m2", Name: "B", Type: business.TypeAgency, Status: business.StatusSystemized},
	}
	userGoals := []goals.Goal{incomeGoal(240_000)}

	first := gen.SmartTasks(models, userGoals, 12_000)
	second := gen.SmartTasks(models, userGoals, 12_000)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("same inputs produced different plans")
	}
}

func TestDailyTasksTypeBranches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modelType business.Type
		wantFirst string
	}{
		{"content", business.TypeContent, "Create and post 3 pieces of content across platforms"},
		{"consulting", business.TypeConsulting, "Conduct 3 high-value discovery calls"},
		{"agency", business.TypeAgency, "Deliver exceptional results for current clients"},
	}

	gen := New(fixedClock())
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			models := []business.Model{{
				ID: "m1", Name: "X", Type: tt.modelType, Status: business.StatusInProgress,
			}}
			tasks := gen.DailyTasks(models, 0)
			if len(tasks) != 2 {
				t.Fatalf("got %d tasks, want 2", len(tasks))
			}
			if tasks[0].Task != tt.wantFirst {
				t.Errorf("first task = %q, want %q", tasks[0].Task, tt.wantFirst)
			}
		})
	}
}

func TestDailyTasksNotStarted(t *testing.T) {
	t.Parallel()

	gen := New(fixedClock())
	models := []business.Model{{
		ID: "m1", Name: "New Venture", Type: business.TypeSaaS, Status: business.StatusNotStarted,
	}}

	tasks := gen.DailyTasks(models, 0)
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(tasks))
	}
	if tasks[0].Task != "Start building New Venture - complete setup tasks" {
		t.Errorf("Task = %q", tasks[0].Task)
	}
}

func TestDailyTasksIncomeBootstrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		income    float64
		wantFirst string
	}{
		{"under 5k", 0, "Set up your business model in the Business section"},
		{"under 10k", 7_000, "Follow up with 5 warm leads"},
		{"over 10k", 20_000, "Focus on premium clients and raise your prices"},
	}

	gen := New(fixedClock())
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tasks := gen.DailyTasks(nil, tt.income)
			if len(tasks) != 2 {
				t.Fatalf("got %d tasks, want 2", len(tasks))
			}
			if tasks[0].Task != tt.wantFirst {
				t.Errorf("first task = %q, want %q", tasks[0].Task, tt.wantFirst)
			}
		})
	}
}

func TestDailyTasksTruncated(t *testing.T) {
	t.Parallel()

	gen := New(fixedClock())
	models := []business.Model{
		{ID: "m1", Name: "A", Type: business.TypeContent, Status: business.StatusInProgress},
		{ID: "m2", Name: "B", Type: business.TypeConsulting, Status: business.StatusInProgress},
		{ID: "m3", Name: "C", Type: business.TypeAgency, Status: business.StatusInProgress},
	}

	tasks := gen.DailyTasks(models, 0)
	if len(tasks) != MaxDailyTasks {
		t.Fatalf("got %d tasks, want cap of %d", len(tasks), MaxDailyTasks)
	}
}
