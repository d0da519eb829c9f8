package goals

// Metric is one of the three headline dashboard numbers.
type Metric struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
	Unit    string  `json:"unit"`
}

const MetricMonthlyRevenue = "Monthly Revenue"

// DefaultMetrics seeds a fresh dashboard.
func DefaultMetrics() []Metric {
	return []Metric{
		{ID: "1", Name: MetricMonthlyRevenue, Current: 5000, Target: 15000, Unit: "$"},
		{ID: "2", Name: "Followers", Current: 2500, Target: 50000, Unit: ""},
		{ID: "3", Name: "Active Clients", Current: 8, Target: 25, Unit: ""},
	}
}

// SyncRevenue overwrites the Monthly Revenue metric from the income goal with
// the highest target, keeping the headline number in step with goal setup.
func SyncRevenue(metrics []Metric, userGoals []Goal) []Metric {
	top := HighestIncome(userGoals)
	if top == nil {
		return metrics
	}
	for i := range metrics {
		if metrics[i].Name == MetricMonthlyRevenue {
			metrics[i].Current = top.CurrentAmount
			metrics[i].Target = top.TargetAmount
		}
	}
	return metrics
}

// RevenueCurrent reads the current Monthly Revenue figure, zero if absent.
func RevenueCurrent(metrics []Metric) float64 {
	for _, m := range metrics {
		if m.Name == MetricMonthlyRevenue {
			return m.Current
		}
	}
	return 0
}
