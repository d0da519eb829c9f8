package engine

import (
	"fmt"

	"hustlehub-backend/internal/business"
)

// DailyTask is the dashboard's smaller recommendation shape (no attributed
// business model field in the original card).
type DailyTask struct {
	Task     string   `json:"task"`
	Reason   string   `json:"reason"`
	Priority Priority `json:"priority"`
	Impact   string   `json:"impact"`
}

// DailyTasks is the simplified dashboard plan: type-keyed pairs for each
// in-progress model, a start-building nudge for each untouched one, and an
// income-band bootstrap pair when no model produced anything. Capped at
// MaxDailyTasks.
func (g *Generator) DailyTasks(models []business.Model, currentIncome float64) []DailyTask {
	tasks := []DailyTask{}

	for _, model := range models {
		switch model.Status {
		case business.StatusInProgress:
			tasks = append(tasks, dailyGrowthTasks(model)...)
		case business.StatusNotStarted:
			tasks = append(tasks, DailyTask{
				Task:     fmt.Sprintf("Start building %s - complete setup tasks", model.Name),
				Reason:   "Getting started is the hardest part - take the first step",
				Priority: PriorityHigh,
				Impact:   "Business foundation",
			})
		}
	}

	if len(tasks) == 0 {
		tasks = append(tasks, incomeBootstrapTasks(currentIncome)...)
	}

	if len(tasks) > MaxDailyTasks {
		tasks = tasks[:MaxDailyTasks]
	}
	return tasks
}

func dailyGrowthTasks(model business.Model) []DailyTask {
	switch model.Type {
	case business.TypeContent:
		return []DailyTask{
			{
				Task:     "Create and post 3 pieces of content across platforms",
				Reason:   fmt.Sprintf("Building audience for %s - content drives growth", model.Name),
				Priority: PriorityHigh,
				Impact:   "Audience growth & brand building",
			},
			{
				Task:     "Reach out to 5 brands for partnership opportunities",
				Reason:   "Monetize your growing audience through brand deals",
				Priority: PriorityMedium,
				Impact:   "Revenue diversification",
			},
		}
	case business.TypeConsulting:
		return []DailyTask{
			{
				Task:     "Conduct 3 high-value discovery calls",
				Reason:   fmt.Sprintf("Direct path to closing %s deals", model.IncomeModel),
				Priority: PriorityHigh,
				Impact:   "Revenue generation",
			},
			{
				Task:     "Follow up with 5 warm prospects",
				Reason:   "Converting existing leads is the fastest path to revenue",
				Priority: PriorityHigh,
				Impact:   "Sales conversion",
			},
		}
	case business.TypeAgency:
		return []DailyTask{
			{
				Task:     "Deliver exceptional results for current clients",
				Reason:   "Client success leads to referrals and retention",
				Priority: PriorityHigh,
				Impact:   "Client satisfaction & referrals",
			},
			{
				Task:     "Pitch 5 potential new clients",
				Reason:   "Consistent sales activity drives agency growth",
				Priority: PriorityHigh,
				Impact:   "Client acquisition",
			},
		}
	default:
		return nil
	}
}

func incomeBootstrapTasks(currentIncome float64) []DailyTask {
	switch {
	case currentIncome < 5_000:
		return []DailyTask{
			{
				Task:     "Set up your business model in the Business section",
				Reason:   "Define your revenue strategy to generate specific daily actions",
				Priority: PriorityHigh,
				Impact:   "Strategic foundation",
			},
			{
				Task:     "Make 10 cold outreach calls/messages",
				Reason:   "Direct outreach creates immediate opportunities",
				Priority: PriorityHigh,
				Impact:   "Lead generation",
			},
		}
	case currentIncome < 10_000:
		return []DailyTask{
			{
				Task:     "Follow up with 5 warm leads",
				Reason:   "Converting existing leads is the fastest path to revenue",
				Priority: PriorityHigh,
				Impact:   "Revenue conversion",
			},
			{
				Task:     "Create valuable content for your audience",
				Reason:   "Content builds authority and attracts opportunities",
				Priority: PriorityMedium,
				Impact:   "Brand building",
			},
		}
	default:
		return []DailyTask{
			{
				Task:     "Focus on premium clients and raise your prices",
				Reason:   "Higher income requires higher-value work",
				Priority: PriorityHigh,
				Impact:   "Revenue optimization",
			},
			{
				Task:     "Build systems to scale your business",
				Reason:   "Systemization enables growth beyond personal time",
				Priority: PriorityMedium,
				Impact:   "Business scaling",
			},
		}
	}
}
